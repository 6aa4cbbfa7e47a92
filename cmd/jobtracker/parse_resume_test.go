package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobtracker/internal/resumeparse"
)

func writeResume(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseResumeCommand(t *testing.T) {
	path := writeResume(t, "resume.pdf", "%PDF-1.4 mock")

	out, err := executeCommand(t, "parse-resume", path, "--delay", "5ms")
	require.NoError(t, err)

	assert.Contains(t, out, "Parsing resume.pdf...")
	assert.Contains(t, out, "PARSED INFORMATION")
	assert.Contains(t, out, "File: resume.pdf (13 bytes)")
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "JavaScript, React, Node.js, Python, SQL, AWS")
}

func TestParseResumeCommand_JSON(t *testing.T) {
	path := writeResume(t, "cv.docx", "PK mock")

	out, err := executeCommand(t, "parse-resume", path, "--delay", "5ms", "--json")
	require.NoError(t, err)

	// Skip the progress notice on the first line.
	start := 0
	for start < len(out) && out[start] != '{' {
		start++
	}
	var snap resumeparse.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out[start:]), &snap))
	assert.Equal(t, resumeparse.StatusDone, snap.Status)
	assert.Equal(t, resumeparse.MockForm(), snap.Form)
	require.NotNil(t, snap.File)
	assert.Equal(t, "cv.docx", snap.File.Name)
}

func TestParseResumeCommand_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{"unsupported format", func(t *testing.T) string { return writeResume(t, "resume.txt", "text") }, "unsupported format"},
		{"empty file", func(t *testing.T) string { return writeResume(t, "resume.pdf", "") }, "incomplete file description"},
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.pdf") }, "failed to read resume file"},
		{"directory", func(t *testing.T) string { return t.TempDir() }, "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, "parse-resume", tt.path(t), "--delay", "5ms")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseResumeCommand_Cancelled(t *testing.T) {
	path := writeResume(t, "resume.pdf", "%PDF-1.4 mock")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resetFlags(rootCmd)
	parseResumeCmd.SetContext(ctx)
	rootCmd.SetArgs([]string{"parse-resume", path, "--delay", "1h"})
	rootCmd.SetOut(&discard{})
	rootCmd.SetErr(&discard{})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, resumeparse.ErrCancelled)
}

func TestParseResumeCommand_NonPositiveDelay(t *testing.T) {
	path := writeResume(t, "resume.pdf", "%PDF")

	for _, delay := range []string{"-1s", "0", "0s"} {
		t.Run(delay, func(t *testing.T) {
			_, err := executeCommand(t, "parse-resume", path, "--delay", delay)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "--delay must be positive")
		})
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
