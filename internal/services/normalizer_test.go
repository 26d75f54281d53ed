package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"collapses whitespace", "hello\n\t  world", "hello world"},
		{"paragraph breaks", "Hello\n\nWorld", "Hello World"},
		{"keeps skill symbols", "C++, C# and node.js - yes", "C++, C# and node.js - yes"},
		{"strips bullets", "• Python • SQL", "Python SQL"},
		{"strips unicode punctuation", "résumé — skills: Go", "r sum skills Go"},
		{"trims", "  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"Hello\n\nWorld",
		"• bullet | pipe · dot",
		"tabs\tand\nnewlines  and   runs",
		"C++ C# node.js ci/cd",
	}

	for _, input := range inputs {
		once := NormalizeText(input)
		assert.Equal(t, once, NormalizeText(once), "normalize(normalize(%q))", input)
	}
}
