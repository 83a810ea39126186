// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env",
		"# comment\nTEXT2XLSX_TEST_SHEET=Bearings\nTEXT2XLSX_TEST_OUT_DIR=\"exports\"\n")

	t.Setenv("TEXT2XLSX_TEST_SHEET", "")
	os.Unsetenv("TEXT2XLSX_TEST_SHEET")
	t.Setenv("TEXT2XLSX_TEST_OUT_DIR", "")
	os.Unsetenv("TEXT2XLSX_TEST_OUT_DIR")

	applied, err := Load(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"TEXT2XLSX_TEST_SHEET", "TEXT2XLSX_TEST_OUT_DIR"}, applied)
	assert.Equal(t, "Bearings", os.Getenv("TEXT2XLSX_TEST_SHEET"))
	assert.Equal(t, "exports", os.Getenv("TEXT2XLSX_TEST_OUT_DIR"))
}

func TestLoad_EnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "TEXT2XLSX_TEST_HISTORY=false\n")
	t.Setenv("TEXT2XLSX_TEST_HISTORY", "true")

	applied, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, applied)
	assert.Equal(t, "true", os.Getenv("TEXT2XLSX_TEST_HISTORY"))
}

func TestLoad_MissingFile(t *testing.T) {
	applied, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "BAD-KEY=value\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading env file")
}
