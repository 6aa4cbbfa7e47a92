package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCommand_InvalidPort(t *testing.T) {
	_, err := executeCommand(t, "serve", "--port", "70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'port' must be between 0 and 65535")
}

func TestServeCommand_MissingConfig(t *testing.T) {
	_, err := executeCommand(t, "serve", "--config", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
