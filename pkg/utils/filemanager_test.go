package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOutputFileName(t *testing.T) {
	name := GenerateOutputFileName("{label} {date}", map[string]string{
		"label": "Disbursement Report",
		"date":  "02-01-2023",
	})
	assert.Equal(t, "Disbursement Report 02-01-2023.xlsx", name)
}

func TestGenerateOutputFileNameUUIDAndTimestamp(t *testing.T) {
	name := GenerateOutputFileName("{label}_{timestamp}_{uuid}", map[string]string{
		"label": "report",
	})

	pattern := regexp.MustCompile(`^report_\d{8}_\d{6}_[0-9a-f-]{36}\.xlsx$`)
	assert.Regexp(t, pattern, name)
}

func TestGenerateOutputFileNameKeepsExistingExtension(t *testing.T) {
	name := GenerateOutputFileName("report.xlsx", nil)
	assert.Equal(t, "report.xlsx", name)
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(filepath.Join(dir, "out"), filepath.Join(dir, "arch"))

	require.NoError(t, fm.EnsureDirectories())
	assert.DirExists(t, filepath.Join(dir, "out"))
	assert.DirExists(t, filepath.Join(dir, "arch"))
}

func TestArchiveInputFileMoves(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(filepath.Join(dir, "out"), filepath.Join(dir, "arch"))
	require.NoError(t, fm.EnsureDirectories())

	input := filepath.Join(dir, "summary.json")
	require.NoError(t, os.WriteFile(input, []byte(`{}`), 0644))

	archived, err := fm.ArchiveInputFile(input)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "arch", "summary.json"), archived)
	assert.FileExists(t, archived)
	assert.NoFileExists(t, input)
}

func TestArchiveInputFileDisabled(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(filepath.Join(dir, "out"), filepath.Join(dir, "arch"))
	fm.ArchiveOnSuccess = false

	input := filepath.Join(dir, "summary.json")
	require.NoError(t, os.WriteFile(input, []byte(`{}`), 0644))

	archived, err := fm.ArchiveInputFile(input)
	require.NoError(t, err)
	assert.Equal(t, input, archived)
	assert.FileExists(t, input)
}
