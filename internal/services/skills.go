package services

import (
	"context"
	"log"
	"regexp"
	"strings"
)

// EntityRecognizer produces candidate skill strings from free text. It is an
// optional enhancement layered on top of the deterministic lexicon and phrase
// scans; implementations may call external NLP backends.
type EntityRecognizer interface {
	RecognizeEntities(ctx context.Context, text string) ([]string, error)
}

// SkillVocabulary is the controlled vocabulary the extractor matches against.
// Keywords are matched with word-boundary semantics, Phrases by substring
// containment. Injected at construction so tests can use small fixtures.
type SkillVocabulary struct {
	Keywords []string
	Phrases  []string
}

type SkillExtractorService interface {
	ExtractSkills(ctx context.Context, text string) map[string]struct{}
	ExtractEmail(text string) string
	ExtractPhone(text string) string
}

type skillExtractorService struct {
	keywords    []string
	phrases     []string
	keywordSet  map[string]struct{}
	keywordRe   []*regexp.Regexp
	entityRec   EntityRecognizer
	maxNERInput int
}

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// NewSkillExtractorService builds an extractor over the given vocabulary.
// entityRec may be nil; the lexicon and phrase scans alone are sufficient for
// correctness.
func NewSkillExtractorService(vocabulary SkillVocabulary, entityRec EntityRecognizer) SkillExtractorService {
	s := &skillExtractorService{
		keywordSet:  make(map[string]struct{}, len(vocabulary.Keywords)),
		entityRec:   entityRec,
		maxNERInput: 1000000,
	}

	for _, keyword := range vocabulary.Keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		s.keywords = append(s.keywords, keyword)
		s.keywordSet[keyword] = struct{}{}
		s.keywordRe = append(s.keywordRe, keywordPattern(keyword))
	}

	for _, phrase := range vocabulary.Phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase != "" {
			s.phrases = append(s.phrases, phrase)
		}
	}

	return s
}

// keywordPattern compiles a whole-word pattern for one vocabulary entry.
// \b does not work after trailing + or # (both are non-word characters, so no
// boundary exists), so tokens like "c++" and "c#" get an explicit
// end-of-token alternative instead.
func keywordPattern(keyword string) *regexp.Regexp {
	prefix := `\b`
	if !isWordChar(keyword[0]) {
		prefix = ``
	}
	suffix := `\b`
	if !isWordChar(keyword[len(keyword)-1]) {
		suffix = `(?:[^\w]|$)`
	}
	return regexp.MustCompile(prefix + regexp.QuoteMeta(keyword) + suffix)
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// ExtractSkills returns the deduplicated lowercase set of vocabulary skills
// found in text. Never fails; empty input yields an empty set.
func (s *skillExtractorService) ExtractSkills(ctx context.Context, text string) map[string]struct{} {
	found := make(map[string]struct{})
	if strings.TrimSpace(text) == "" {
		return found
	}

	textLower := strings.ToLower(text)

	// Pass 1: whole-word lexicon scan.
	for i, re := range s.keywordRe {
		if re.MatchString(textLower) {
			found[s.keywords[i]] = struct{}{}
		}
	}

	// Pass 2: multi-word phrase containment.
	for _, phrase := range s.phrases {
		if strings.Contains(textLower, phrase) {
			found[phrase] = struct{}{}
		}
	}

	// Pass 3: optional entity recognition, capped to bound cost. Only
	// entities already present in the lexicon are accepted, so a noisy
	// recognizer cannot invent skills.
	if s.entityRec != nil {
		nerInput := text
		if len(nerInput) > s.maxNERInput {
			nerInput = nerInput[:s.maxNERInput]
		}
		entities, err := s.entityRec.RecognizeEntities(ctx, nerInput)
		if err != nil {
			log.Printf("⚠️  Entity recognition failed, continuing with lexicon matches: %v\n", err)
		}
		for _, entity := range entities {
			entity = strings.ToLower(strings.TrimSpace(entity))
			if _, ok := s.keywordSet[entity]; ok {
				found[entity] = struct{}{}
			}
		}
	}

	return found
}

// ExtractEmail returns the first email-shaped substring, or "" when absent.
func (s *skillExtractorService) ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone returns the first phone-shaped substring (optional country
// code, optional parens, -/./space separators), or "" when absent.
func (s *skillExtractorService) ExtractPhone(text string) string {
	return phoneRe.FindString(text)
}
