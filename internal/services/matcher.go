package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"alfredoptarigan/resume-matcher/internal/models"
)

// Embedder encodes text into a fixed-size dense vector. It is the external
// model boundary of the matching engine; any implementation producing
// comparable vectors for both inputs satisfies the contract.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// SkillCategory names one bucket of the categorized match output.
type SkillCategory struct {
	Name   string
	Skills []string
}

type MatcherService interface {
	Match(ctx context.Context, resume *models.ResumeRecord, jobTitle string) (*models.MatchResult, error)
}

// Skill overlap is weighted higher than prose similarity: exact presence of a
// required skill is a stronger signal than embedding closeness.
const (
	semanticWeight = 0.4
	skillWeight    = 0.6
)

type matcherService struct {
	catalog    JobCatalogService
	embedder   Embedder
	categories []SkillCategory
}

func NewMatcherService(catalog JobCatalogService, embedder Embedder, categories []SkillCategory) MatcherService {
	return &matcherService{
		catalog:    catalog,
		embedder:   embedder,
		categories: categories,
	}
}

// Match scores the resume against one catalog job. Pure computation over its
// two inputs and the catalog snapshot; an unknown title fails before anything
// is computed.
func (m *matcherService) Match(ctx context.Context, resume *models.ResumeRecord, jobTitle string) (*models.MatchResult, error) {
	job, ok := m.catalog.Find(jobTitle)
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownJobTitle, jobTitle)
	}

	semanticMatch, err := m.semanticSimilarity(ctx, resume.CleanedText, job.Description)
	if err != nil {
		return nil, err
	}

	userSkills := normalizeSkillSet(resume.SkillList())
	requiredSkills := dedupeSkills(job.RequiredSkills)

	var matched, missing []string
	for _, skill := range requiredSkills {
		if _, ok := userSkills[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	skillMatch := 0.0
	if len(requiredSkills) > 0 {
		skillMatch = round2(float64(len(matched)) / float64(len(requiredSkills)) * 100)
	}

	resources := make(map[string]string)
	for _, skill := range missing {
		if url, ok := job.Resources[skill]; ok {
			resources[skill] = url
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)
	userSkillList := make([]string, 0, len(userSkills))
	for skill := range userSkills {
		userSkillList = append(userSkillList, skill)
	}
	sort.Strings(userSkillList)

	return &models.MatchResult{
		JobTitle:            jobTitle,
		OverallMatch:        round2(semanticMatch*semanticWeight + skillMatch*skillWeight),
		SemanticMatch:       semanticMatch,
		SkillMatch:          skillMatch,
		TotalRequiredSkills: len(requiredSkills),
		MatchedSkillsCount:  len(matched),
		MissingSkillsCount:  len(missing),
		MatchedSkills:       matched,
		MissingSkills:       missing,
		UserSkills:          userSkillList,
		CategorizedSkills:   m.categorize(userSkillList),
		CategorizedMissing:  m.categorize(missing),
		LearningResources:   resources,
		JobDescription:      job.Description,
	}, nil
}

// semanticSimilarity encodes both texts with the same model and maps cosine
// similarity to a 0-100 percentage. An embedding failure surfaces as
// ErrEngineUnavailable rather than a silent zero score.
func (m *matcherService) semanticSimilarity(ctx context.Context, resumeText, jobDescription string) (float64, error) {
	resumeVec, err := m.embedder.GenerateEmbedding(ctx, resumeText)
	if err != nil {
		return 0, fmt.Errorf("%w: resume embedding: %v", models.ErrEngineUnavailable, err)
	}

	jobVec, err := m.embedder.GenerateEmbedding(ctx, jobDescription)
	if err != nil {
		return 0, fmt.Errorf("%w: job description embedding: %v", models.ErrEngineUnavailable, err)
	}

	if len(resumeVec) != len(jobVec) {
		return 0, fmt.Errorf("%w: embedding dimensions differ (%d vs %d)",
			models.ErrEngineUnavailable, len(resumeVec), len(jobVec))
	}

	return round2(cosineSimilarity(resumeVec, jobVec) * 100), nil
}

// categorize buckets skills by the configured category tables. Skills in no
// table are omitted; empty buckets do not appear.
func (m *matcherService) categorize(skills []string) map[string][]string {
	categorized := make(map[string][]string)

	for _, category := range m.categories {
		memberSet := make(map[string]struct{}, len(category.Skills))
		for _, skill := range category.Skills {
			memberSet[strings.ToLower(skill)] = struct{}{}
		}

		var bucket []string
		for _, skill := range skills {
			if _, ok := memberSet[strings.ToLower(skill)]; ok {
				bucket = append(bucket, skill)
			}
		}
		if len(bucket) > 0 {
			sort.Strings(bucket)
			categorized[category.Name] = bucket
		}
	}

	return categorized
}

func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// dedupeSkills lowercases, trims and deduplicates while preserving first
// occurrence order, so duplicate catalog entries count once.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	var out []string
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}

func normalizeSkillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" {
			set[skill] = struct{}{}
		}
	}
	return set
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
