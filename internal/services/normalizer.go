package services

import (
	"regexp"
	"strings"
)

var (
	// Keep . , - + # because they appear inside skill tokens like "c++",
	// "c#" and "node.js"; everything else non-alphanumeric becomes a space.
	reNonSemantic = regexp.MustCompile(`[^\w\s.,\-+#]`)
	reWhitespace  = regexp.MustCompile(`\s+`)
)

// NormalizeText cleans extracted resume text for skill matching: strips
// non-semantic characters, collapses whitespace runs to single spaces and
// trims. Pure and idempotent; empty input yields empty output.
func NormalizeText(text string) string {
	text = reNonSemantic.ReplaceAllString(text, " ")
	text = reWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
