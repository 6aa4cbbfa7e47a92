// Package schemas holds the JSON Schemas of the files the tracker reads.
package schemas

import (
	"embed"
	"fmt"
)

// File names of the bundled schemas.
const (
	JobCatalog = "job_catalog.schema.json"
	Config     = "config.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Read returns the content of a bundled schema.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown schema %s: %w", name, err)
	}
	return data, nil
}

// MustRead is like Read but panics if the schema is not bundled.
func MustRead(name string) []byte {
	data, err := Read(name)
	if err != nil {
		panic(err)
	}
	return data
}
