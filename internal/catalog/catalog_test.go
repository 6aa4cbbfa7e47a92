package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/jobtracker/internal/schemas"
	"github.com/jonathan/jobtracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SampleSet(t *testing.T) {
	jobs := Default()
	require.Len(t, jobs, 8)

	titles := make([]string, len(jobs))
	for i, j := range jobs {
		titles[i] = j.Title
	}
	assert.Equal(t, []string{
		"Frontend Developer", "Backend Engineer", "UX Designer", "Product Manager",
		"DevOps Engineer", "Data Scientist", "Mobile Developer", "QA Engineer",
	}, titles)

	assert.Equal(t, types.Job{
		ID:       6,
		Title:    "Data Scientist",
		Company:  "Data Insights",
		Location: "Seattle",
		Type:     types.JobTypePartTime,
		Salary:   "$65 - $85 per hour",
	}, jobs[5])
}

func TestDefault_ReturnsCopy(t *testing.T) {
	first := Default()
	first[0].Title = "changed"

	assert.Equal(t, "Frontend Developer", Default()[0].Title)
}

func TestLoad_Valid(t *testing.T) {
	jobs, err := Load([]byte(`[{"id": 9, "title": "SRE", "company": "Ops Co", "location": "Remote", "type": "contract", "salary": "n/a"}]`))
	require.Error(t, err, "schema enum is case sensitive")
	assert.Nil(t, jobs)

	jobs, err = Load([]byte(`[{"id": 9, "title": "SRE", "company": "Ops Co", "location": "Remote", "type": "Contract", "salary": "n/a"}]`))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, types.JobTypeContract, jobs[0].Type)
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not an array", `{"id": 1}`},
		{"missing title", `[{"id": 1, "company": "c", "location": "l", "type": "Full-Time", "salary": ""}]`},
		{"unknown type", `[{"id": 1, "title": "t", "company": "c", "location": "l", "type": "Temp", "salary": ""}]`},
		{"extra field", `[{"id": 1, "title": "t", "company": "c", "location": "l", "type": "Full-Time", "salary": "", "remote": true}]`},
		{"zero id", `[{"id": 0, "title": "t", "company": "c", "location": "l", "type": "Full-Time", "salary": ""}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			var validationErr *schemas.ValidationError
			assert.True(t, errors.As(err, &validationErr))
		})
	}
}

func TestLoad_DuplicateID(t *testing.T) {
	data := `[
		{"id": 1, "title": "a", "company": "c", "location": "l", "type": "Full-Time", "salary": ""},
		{"id": 1, "title": "b", "company": "c", "location": "l", "type": "Full-Time", "salary": ""}
	]`
	_, err := Load([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate job id 1")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, defaultJobs, 0o600))

	jobs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), jobs)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
