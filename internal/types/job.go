// Package types provides type definitions for structured data used throughout the jobtracker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"slices"
)

// JobType is the employment type of a posting.
type JobType string

// Known job types. The string value is the display spelling.
const (
	JobTypeFullTime JobType = "Full-Time"
	JobTypePartTime JobType = "Part-Time"
	JobTypeContract JobType = "Contract"
)

// JobTypes lists every known job type in display order.
var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract}

// ParseJobType resolves a job type by its exact display spelling, the same
// rule the catalog schema enforces.
func ParseJobType(s string) (JobType, error) {
	if t := JobType(s); slices.Contains(JobTypes, t) {
		return t, nil
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

// String returns the display spelling.
func (t JobType) String() string {
	return string(t)
}

// UnmarshalJSON rejects values outside the known set.
func (t *JobType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("job type must be a string: %w", err)
	}
	parsed, err := ParseJobType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Job represents a single job posting in the dashboard catalog.
// Salary is display text and is never parsed into a range.
type Job struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Company  string  `json:"company"`
	Location string  `json:"location"`
	Type     JobType `json:"type"`
	Salary   string  `json:"salary"`
}
