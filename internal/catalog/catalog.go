// Package catalog provides the job postings shown by the dashboard.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/jonathan/jobtracker/internal/schemas"
	"github.com/jonathan/jobtracker/internal/types"
	schemafiles "github.com/jonathan/jobtracker/schemas"
)

//go:embed jobs.json
var defaultJobs []byte

var (
	schemaCheck = schemas.MustCompile(schemafiles.JobCatalog, schemafiles.MustRead(schemafiles.JobCatalog))
	sample      = mustLoad(defaultJobs)
)

// LoadError represents a catalog that could not be used.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Default returns the built-in sample postings in source order.
// Callers get their own copy.
func Default() []types.Job {
	return slices.Clone(sample)
}

// Load validates and decodes a JSON array of job postings.
func Load(data []byte) ([]types.Job, error) {
	if err := schemaCheck.Validate(data); err != nil {
		return nil, &LoadError{Message: "schema validation failed", Cause: err}
	}

	var jobs []types.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, &LoadError{Message: "failed to decode jobs", Cause: err}
	}

	seen := make(map[int]bool, len(jobs))
	for _, job := range jobs {
		if seen[job.ID] {
			return nil, &LoadError{Message: fmt.Sprintf("duplicate job id %d", job.ID)}
		}
		seen[job.ID] = true
	}
	return jobs, nil
}

// LoadFile reads a catalog from disk.
func LoadFile(path string) ([]types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: "failed to read " + path, Cause: err}
	}
	return Load(data)
}

func mustLoad(data []byte) []types.Job {
	jobs, err := Load(data)
	if err != nil {
		panic(err)
	}
	return jobs
}
