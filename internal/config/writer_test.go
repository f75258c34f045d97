package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T) {
	t.Helper()
	orig := now
	t.Cleanup(func() { now = orig })
	now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
}

func TestWriteValues(t *testing.T) {
	fixedClock(t)
	outputPath := filepath.Join(t.TempDir(), "values.yaml")

	require.NoError(t, WriteValues("global:\n  elasticsearch:\n    enabled: true\n", outputPath, "answers.yaml"))

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	s := string(content)

	assert.True(t, strings.HasPrefix(s, "# Camunda 8 Helm values\n"))
	assert.Contains(t, s, "# Generated at: 2026-01-02T03:04:05Z")
	assert.Contains(t, s, "# Answers: answers.yaml")
	assert.Contains(t, s, "-f "+outputPath)
	assert.True(t, strings.HasSuffix(s, "\nglobal:\n  elasticsearch:\n    enabled: true\n"))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteValues_DefaultSource(t *testing.T) {
	fixedClock(t)
	assert.Contains(t, generateHeader("v.yaml", ""), "# Answers: interactive wizard")
}

func TestWriteValues_BadPath(t *testing.T) {
	err := WriteValues("x", filepath.Join(t.TempDir(), "missing", "values.yaml"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write file")
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.yaml")
	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	assert.True(t, FileExists(path))
}

func TestConfirmOverwrite_Injected(t *testing.T) {
	orig := confirmOverwrite
	t.Cleanup(func() { confirmOverwrite = orig })

	var asked string
	confirmOverwrite = func(path string) (bool, error) {
		asked = path
		return true, nil
	}

	ok, err := ConfirmOverwrite("values.yaml")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "values.yaml", asked)
}
