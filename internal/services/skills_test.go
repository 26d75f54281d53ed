package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEntityRecognizer struct {
	entities []string
	err      error
}

func (s *stubEntityRecognizer) RecognizeEntities(ctx context.Context, text string) ([]string, error) {
	return s.entities, s.err
}

func testVocabulary() SkillVocabulary {
	return SkillVocabulary{
		Keywords: []string{"java", "javascript", "python", "c++", "c#", "node.js", "go"},
		Phrases:  []string{"machine learning", "data analysis"},
	}
}

func skillSet(skills ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		set[skill] = struct{}{}
	}
	return set
}

func TestExtractSkills(t *testing.T) {
	extractor := NewSkillExtractorService(testVocabulary(), nil)
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		want map[string]struct{}
	}{
		{
			name: "empty input",
			text: "",
			want: skillSet(),
		},
		{
			name: "whitespace only",
			text: "   \n\t ",
			want: skillSet(),
		},
		{
			name: "java does not match inside javascript",
			text: "5 years of javascript development",
			want: skillSet("javascript"),
		},
		{
			name: "java as a whole word",
			text: "backend services in Java and Go",
			want: skillSet("java", "go"),
		},
		{
			name: "symbol-suffixed keywords",
			text: "Skills C++, C# and node.js",
			want: skillSet("c++", "c#", "node.js"),
		},
		{
			name: "c++ at end of text",
			text: "expert in c++",
			want: skillSet("c++"),
		},
		{
			name: "case insensitive",
			text: "PYTHON and Machine Learning",
			want: skillSet("python", "machine learning"),
		},
		{
			name: "phrase containment",
			text: "performed data analysis on customer churn",
			want: skillSet("data analysis"),
		},
		{
			name: "no vocabulary hits",
			text: "managed a team of accountants",
			want: skillSet(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.ExtractSkills(ctx, tt.text))
		})
	}
}

func TestExtractSkillsDeterministic(t *testing.T) {
	extractor := NewSkillExtractorService(DefaultSkillVocabulary(), nil)
	ctx := context.Background()

	text := "Python developer with SQL, Docker, machine learning and C++ experience"
	first := extractor.ExtractSkills(ctx, text)
	second := extractor.ExtractSkills(ctx, text)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestExtractSkillsEntityRecognizer(t *testing.T) {
	t.Run("entities filtered through lexicon", func(t *testing.T) {
		rec := &stubEntityRecognizer{entities: []string{"Python", "blockchain-quantum-synergy"}}
		extractor := NewSkillExtractorService(testVocabulary(), rec)

		got := extractor.ExtractSkills(context.Background(), "worked on various projects")
		assert.Equal(t, skillSet("python"), got)
	})

	t.Run("recognizer failure keeps lexicon matches", func(t *testing.T) {
		rec := &stubEntityRecognizer{err: errors.New("backend down")}
		extractor := NewSkillExtractorService(testVocabulary(), rec)

		got := extractor.ExtractSkills(context.Background(), "java and python")
		assert.Equal(t, skillSet("java", "python"), got)
	})
}

func TestExtractEmail(t *testing.T) {
	extractor := NewSkillExtractorService(testVocabulary(), nil)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"simple", "Contact: john.doe@example.com", "john.doe@example.com"},
		{"with plus tag", "mail me at dev+jobs@mail.co", "dev+jobs@mail.co"},
		{"first of several", "a@one.com b@two.com", "a@one.com"},
		{"absent", "no contact details here", ""},
		{"not an email", "twitter handle @johndoe", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.ExtractEmail(tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	extractor := NewSkillExtractorService(testVocabulary(), nil)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"dashed", "call 555-123-4567 anytime", "555-123-4567"},
		{"parenthesized with country code", "Phone: +1 (555) 123-4567", "+1 (555) 123-4567"},
		{"dotted", "555.123.4567", "555.123.4567"},
		{"absent", "no phone listed", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.ExtractPhone(tt.text))
		})
	}
}
