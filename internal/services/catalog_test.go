package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogJSON = `{
  "Data Scientist": {
    "description": "Build predictive models from large datasets.",
    "required_skills": ["python", "sql", "machine learning", "pandas", "tensorflow"],
    "resources": {
      "tensorflow": "https://www.tensorflow.org/tutorials",
      "pandas": "https://pandas.pydata.org/docs/"
    }
  },
  "Backend Developer": {
    "description": "Design and build scalable APIs.",
    "required_skills": ["go", "sql", "docker"],
    "resources": {}
  }
}`

func writeTestCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestJobCatalogLoad(t *testing.T) {
	catalog := NewJobCatalogService(writeTestCatalog(t, testCatalogJSON))

	jobs := catalog.Load()
	require.Len(t, jobs, 2)

	ds := jobs["Data Scientist"]
	assert.Equal(t, "Data Scientist", ds.Title)
	assert.Equal(t, "Build predictive models from large datasets.", ds.Description)
	assert.Equal(t, []string{"python", "sql", "machine learning", "pandas", "tensorflow"}, ds.RequiredSkills)
	assert.Equal(t, "https://www.tensorflow.org/tutorials", ds.Resources["tensorflow"])
}

func TestJobCatalogFind(t *testing.T) {
	catalog := NewJobCatalogService(writeTestCatalog(t, testCatalogJSON))

	job, ok := catalog.Find("Backend Developer")
	require.True(t, ok)
	assert.Equal(t, []string{"go", "sql", "docker"}, job.RequiredSkills)

	_, ok = catalog.Find("Quantum Plumber")
	assert.False(t, ok)
}

func TestJobCatalogTitlesSorted(t *testing.T) {
	catalog := NewJobCatalogService(writeTestCatalog(t, testCatalogJSON))
	assert.Equal(t, []string{"Backend Developer", "Data Scientist"}, catalog.Titles())
}

func TestJobCatalogUnavailableFile(t *testing.T) {
	catalog := NewJobCatalogService(filepath.Join(t.TempDir(), "does-not-exist.json"))

	assert.Empty(t, catalog.Load())
	assert.Empty(t, catalog.Titles())

	_, ok := catalog.Find("Data Scientist")
	assert.False(t, ok)
}

func TestJobCatalogMalformedFile(t *testing.T) {
	catalog := NewJobCatalogService(writeTestCatalog(t, "{not valid json"))
	assert.Empty(t, catalog.Load())
}
