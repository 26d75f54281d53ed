package models

// MatchResult is the outcome of scoring one resume against one job record.
// All percentage fields are 0-100 rounded to 2 decimals.
type MatchResult struct {
	JobTitle            string              `json:"job_title"`
	OverallMatch        float64             `json:"overall_match"`
	SemanticMatch       float64             `json:"semantic_match"`
	SkillMatch          float64             `json:"skill_match"`
	TotalRequiredSkills int                 `json:"total_required_skills"`
	MatchedSkillsCount  int                 `json:"matched_skills_count"`
	MissingSkillsCount  int                 `json:"missing_skills_count"`
	MatchedSkills       []string            `json:"matched_skills"`
	MissingSkills       []string            `json:"missing_skills"`
	UserSkills          []string            `json:"user_skills"`
	CategorizedSkills   map[string][]string `json:"categorized_user_skills"`
	CategorizedMissing  map[string][]string `json:"categorized_missing_skills"`
	LearningResources   map[string]string   `json:"learning_resources"`
	JobDescription      string              `json:"job_description"`

	// Contact fields copied from the resume for the API response.
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// SimilarJobs is a best-effort list of other catalog titles ranked by
	// vector similarity; empty when the job index is unavailable.
	SimilarJobs []SimilarJob `json:"similar_jobs,omitempty"`
}

// SimilarJob is one entry of the vector-index recommendation list.
type SimilarJob struct {
	Title string  `json:"title"`
	Score float32 `json:"score"`
}
