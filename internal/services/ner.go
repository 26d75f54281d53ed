package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const nerPrompt = `You are a named-entity extraction assistant.
Extract every entity of type ORGANIZATION, PRODUCT or LANGUAGE from the text below.
Respond with a JSON array of lowercase strings and nothing else, e.g. ["python", "aws"].
If there are no such entities, respond with [].

Text:
"""
%s
"""`

// geminiEntityRecognizer is the LLM-backed EntityRecognizer used for the
// optional third skill-extraction pass. Errors are reported, not fatal; the
// skill extractor keeps its deterministic matches either way.
type geminiEntityRecognizer struct {
	gemini     GeminiService
	maxRetries int
}

func NewGeminiEntityRecognizer(gemini GeminiService, maxRetries int) EntityRecognizer {
	return &geminiEntityRecognizer{
		gemini:     gemini,
		maxRetries: maxRetries,
	}
}

// RecognizeEntities implements EntityRecognizer.
func (r *geminiEntityRecognizer) RecognizeEntities(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	response, err := r.gemini.GenerateTextWithRetry(ctx, fmt.Sprintf(nerPrompt, text), 0.0, r.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate entities: %w", err)
	}

	var entities []string
	if err := json.Unmarshal([]byte(extractJSON(response)), &entities); err != nil {
		return nil, fmt.Errorf("failed to parse entity response: %w", err)
	}

	return entities, nil
}

// extractJSON tries to extract JSON from text that might contain markdown or
// other formatting around it.
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	} else if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}

	return text
}
