package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDirMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	content := "data_file: people.db\nexport:\n  path: out.svg\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "people.db", cfg.DataFile)
	assert.Equal(t, "country_data", cfg.Table)
	assert.Equal(t, "out.svg", cfg.Export.Path)
	assert.Equal(t, 1400, cfg.Export.Width)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("data_file: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.DataFile = "other.csv"
	cfg.Log.File = "agedash.log"

	require.NoError(t, Save(filepath.Join(dir, FileName), cfg))

	got, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
