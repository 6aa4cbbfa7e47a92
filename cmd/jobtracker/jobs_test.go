package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobtracker/internal/types"
)

func TestJobsCommand_All(t *testing.T) {
	out, err := executeCommand(t, "jobs")
	require.NoError(t, err)

	assert.Contains(t, out, "JOB ANALYTICS (8)")
	assert.Contains(t, out, "#1  Frontend Developer")
	assert.Contains(t, out, "#8  QA Engineer")
	assert.NotContains(t, out, "Filters:")
}

func TestJobsCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "jobs", "--search", "engineer", "--sort", "title", "--json")
	require.NoError(t, err)

	var view types.DerivedView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.True(t, view.Applied)
	assert.Equal(t, 3, view.Count)
	assert.Equal(t, "Backend Engineer", view.Jobs[0].Title)
	assert.Equal(t, "DevOps Engineer", view.Jobs[1].Title)
	assert.Equal(t, "QA Engineer", view.Jobs[2].Title)
}

func TestJobsCommand_NoMatches(t *testing.T) {
	out, err := executeCommand(t, "jobs", "--search", "zzz")
	require.NoError(t, err)

	assert.Contains(t, out, "No jobs match your criteria")
	assert.Contains(t, out, `Filters: search="zzz"`)
}

func TestJobsCommand_UnknownSort(t *testing.T) {
	out, err := executeCommand(t, "jobs", "--sort", "salary")
	require.NoError(t, err)

	assert.Contains(t, out, `unknown sort key "salary"`)
	assert.Contains(t, out, "JOB ANALYTICS (8)")
}

func TestJobsCommand_FlagsDoNotLeak(t *testing.T) {
	_, err := executeCommand(t, "jobs", "--search", "zzz")
	require.NoError(t, err)

	out, err := executeCommand(t, "jobs")
	require.NoError(t, err)
	assert.Contains(t, out, "JOB ANALYTICS (8)")
}

func TestJobsCommand_Dataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id": 1, "title": "Site Reliability Engineer", "company": "Pager Co", "location": "Lisbon", "type": "Full-Time", "salary": "€70,000"}
	]`), 0644))

	out, err := executeCommand(t, "jobs", "--dataset", path)
	require.NoError(t, err)
	assert.Contains(t, out, "JOB ANALYTICS (1)")
	assert.Contains(t, out, "Site Reliability Engineer")
}

func TestJobsCommand_InvalidDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "title": "No company"}]`), 0644))

	_, err := executeCommand(t, "jobs", "--dataset", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load dataset")
}

func TestJobsCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	dataset := filepath.Join(dir, "jobs.json")
	require.NoError(t, os.WriteFile(dataset, []byte(`[
		{"id": 7, "title": "Analyst", "company": "Numbers Ltd", "location": "Leeds", "type": "Part-Time", "salary": "£30/h"}
	]`), 0644))
	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"dataset": "`+filepath.ToSlash(dataset)+`"}`), 0644))

	out, err := executeCommand(t, "--config", cfgPath, "jobs")
	require.NoError(t, err)
	assert.Contains(t, out, "#7  Analyst")
}

func TestJobsCommand_MissingDataset(t *testing.T) {
	_, err := executeCommand(t, "jobs", "--dataset", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load dataset")
}
