package services

import (
	"encoding/json"
	"log"
	"os"
	"sort"

	"alfredoptarigan/resume-matcher/internal/models"
)

// JobCatalogService reads the external job catalog: a JSON mapping from job
// title to description, required skills and per-skill learning resources.
// The catalog is consumed read-only; an unavailable backing file yields an
// empty catalog, never an error — an unknown title is the matcher's failure
// case, not a catalog-load failure.
type JobCatalogService interface {
	Load() map[string]models.JobRecord
	Find(title string) (models.JobRecord, bool)
	Titles() []string
}

type catalogEntry struct {
	Description    string            `json:"description"`
	RequiredSkills []string          `json:"required_skills"`
	Resources      map[string]string `json:"resources"`
}

type fileJobCatalog struct {
	path string
}

func NewJobCatalogService(path string) JobCatalogService {
	return &fileJobCatalog{path: path}
}

// Load implements JobCatalogService. The file is re-read on every call so
// catalog edits show up without a restart; reload policy beyond that is the
// caller's concern.
func (c *fileJobCatalog) Load() map[string]models.JobRecord {
	jobs := make(map[string]models.JobRecord)

	data, err := os.ReadFile(c.path)
	if err != nil {
		log.Printf("⚠️  Job catalog unavailable at %s: %v\n", c.path, err)
		return jobs
	}

	var entries map[string]catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️  Failed to parse job catalog %s: %v\n", c.path, err)
		return jobs
	}

	for title, entry := range entries {
		jobs[title] = models.JobRecord{
			Title:          title,
			Description:    entry.Description,
			RequiredSkills: entry.RequiredSkills,
			Resources:      entry.Resources,
		}
	}

	return jobs
}

// Find implements JobCatalogService.
func (c *fileJobCatalog) Find(title string) (models.JobRecord, bool) {
	job, ok := c.Load()[title]
	return job, ok
}

// Titles implements JobCatalogService.
func (c *fileJobCatalog) Titles() []string {
	jobs := c.Load()
	titles := make([]string, 0, len(jobs))
	for title := range jobs {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}
