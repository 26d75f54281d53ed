package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-matcher/internal/models"
)

type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (s *stubEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	return []float32{1, 0, 0}, nil
}

func testResume() *models.ResumeRecord {
	return &models.ResumeRecord{
		RawText:     "Data scientist with Python, SQL, machine learning and pandas.",
		CleanedText: "Data scientist with Python, SQL, machine learning and pandas.",
		Skills: map[string]struct{}{
			"python":           {},
			"sql":              {},
			"machine learning": {},
			"pandas":           {},
		},
	}
}

func testMatcher(t *testing.T, embedder Embedder, categories []SkillCategory) MatcherService {
	t.Helper()
	catalog := NewJobCatalogService(writeTestCatalog(t, testCatalogJSON))
	return NewMatcherService(catalog, embedder, categories)
}

func TestMatchAgainstCatalogJob(t *testing.T) {
	matcher := testMatcher(t, &stubEmbedder{}, DefaultSkillCategories())

	result, err := matcher.Match(context.Background(), testResume(), "Data Scientist")
	require.NoError(t, err)

	// 4 of 5 required skills present; identical embeddings give semantic 100.
	assert.Equal(t, 80.0, result.SkillMatch)
	assert.Equal(t, 100.0, result.SemanticMatch)
	assert.Equal(t, 88.0, result.OverallMatch)

	assert.Equal(t, "Data Scientist", result.JobTitle)
	assert.Equal(t, 5, result.TotalRequiredSkills)
	assert.Equal(t, 4, result.MatchedSkillsCount)
	assert.Equal(t, 1, result.MissingSkillsCount)
	assert.Equal(t, result.TotalRequiredSkills, result.MatchedSkillsCount+result.MissingSkillsCount)

	assert.Equal(t, []string{"machine learning", "pandas", "python", "sql"}, result.MatchedSkills)
	assert.Equal(t, []string{"tensorflow"}, result.MissingSkills)
	assert.Equal(t, []string{"machine learning", "pandas", "python", "sql"}, result.UserSkills)

	assert.Equal(t, "Build predictive models from large datasets.", result.JobDescription)

	// Resources only for missing skills that have one.
	assert.Equal(t, map[string]string{"tensorflow": "https://www.tensorflow.org/tutorials"}, result.LearningResources)
}

func TestMatchUnknownJobTitle(t *testing.T) {
	matcher := testMatcher(t, &stubEmbedder{}, nil)

	result, err := matcher.Match(context.Background(), testResume(), "Quantum Plumber")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrUnknownJobTitle)
}

func TestMatchEmbedderFailure(t *testing.T) {
	matcher := testMatcher(t, &stubEmbedder{err: errors.New("model offline")}, nil)

	result, err := matcher.Match(context.Background(), testResume(), "Data Scientist")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrEngineUnavailable)
}

func TestMatchDimensionMismatch(t *testing.T) {
	resume := testResume()
	embedder := &stubEmbedder{vectors: map[string][]float32{
		resume.CleanedText: {1, 0, 0},
		"Build predictive models from large datasets.": {1, 0},
	}}
	matcher := testMatcher(t, embedder, nil)

	_, err := matcher.Match(context.Background(), resume, "Data Scientist")
	assert.ErrorIs(t, err, models.ErrEngineUnavailable)
}

func TestMatchOrthogonalEmbeddings(t *testing.T) {
	resume := testResume()
	embedder := &stubEmbedder{vectors: map[string][]float32{
		resume.CleanedText: {1, 0, 0},
		"Build predictive models from large datasets.": {0, 1, 0},
	}}
	matcher := testMatcher(t, embedder, nil)

	result, err := matcher.Match(context.Background(), resume, "Data Scientist")
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.SemanticMatch)
	// Overall falls back entirely on the skill component.
	assert.InDelta(t, result.SkillMatch*0.6, result.OverallMatch, 0.01)
}

func TestMatchEmptyRequiredSkills(t *testing.T) {
	catalogJSON := `{"Generalist": {"description": "Anything goes.", "required_skills": [], "resources": {}}}`
	catalog := NewJobCatalogService(writeTestCatalog(t, catalogJSON))
	matcher := NewMatcherService(catalog, &stubEmbedder{}, nil)

	result, err := matcher.Match(context.Background(), testResume(), "Generalist")
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.SkillMatch)
	assert.Equal(t, 0, result.TotalRequiredSkills)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
	assert.InDelta(t, result.SemanticMatch*0.4, result.OverallMatch, 0.01)
}

func TestMatchDuplicateRequiredSkills(t *testing.T) {
	catalogJSON := `{"Sloppy": {"description": "Catalog entry with duplicates.", "required_skills": ["python", "Python", " sql "], "resources": {}}}`
	catalog := NewJobCatalogService(writeTestCatalog(t, catalogJSON))
	matcher := NewMatcherService(catalog, &stubEmbedder{}, nil)

	result, err := matcher.Match(context.Background(), testResume(), "Sloppy")
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalRequiredSkills)
	assert.Equal(t, 2, result.MatchedSkillsCount)
	assert.Equal(t, 100.0, result.SkillMatch)
}

func TestMatchCategorization(t *testing.T) {
	categories := []SkillCategory{
		{Name: "Languages", Skills: []string{"python"}},
		{Name: "Data", Skills: []string{"sql", "pandas"}},
		{Name: "Unused", Skills: []string{"cobol"}},
	}
	matcher := testMatcher(t, &stubEmbedder{}, categories)

	result, err := matcher.Match(context.Background(), testResume(), "Data Scientist")
	require.NoError(t, err)

	// "machine learning" belongs to no category and is omitted; empty
	// buckets do not appear.
	assert.Equal(t, map[string][]string{
		"Languages": {"python"},
		"Data":      {"pandas", "sql"},
	}, result.CategorizedSkills)
	assert.Empty(t, result.CategorizedMissing)
}

func TestMatchDeterministic(t *testing.T) {
	matcher := testMatcher(t, &stubEmbedder{}, DefaultSkillCategories())

	first, err := matcher.Match(context.Background(), testResume(), "Data Scientist")
	require.NoError(t, err)
	second, err := matcher.Match(context.Background(), testResume(), "Data Scientist")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, round2(66.666666))
	assert.Equal(t, 80.0, round2(80.0))
	assert.Equal(t, 0.0, round2(0.004))
}
