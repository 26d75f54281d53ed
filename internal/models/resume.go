package models

// ResumeRecord holds everything extracted from a single resume document.
// It is built once per analysis request and never mutated afterwards.
type ResumeRecord struct {
	RawText     string              `json:"raw_text"`
	CleanedText string              `json:"cleaned_text"`
	Skills      map[string]struct{} `json:"-"`
	Email       string              `json:"email,omitempty"`
	Phone       string              `json:"phone,omitempty"`
}

// SkillList returns the detected skills as a plain slice (unordered).
func (r *ResumeRecord) SkillList() []string {
	skills := make([]string, 0, len(r.Skills))
	for skill := range r.Skills {
		skills = append(skills, skill)
	}
	return skills
}
