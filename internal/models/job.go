package models

// JobRecord is one entry of the external job catalog. Title is the unique
// key; Resources maps a required skill to a learning resource URL.
type JobRecord struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	RequiredSkills []string          `json:"required_skills"`
	Resources      map[string]string `json:"resources,omitempty"`
}
