package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agedash.log")

	cleanup, err := Setup(path, "debug")
	require.NoError(t, err)
	logrus.WithField("rows", 3).Debug("dataset loaded")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dataset loaded")
	assert.Contains(t, string(data), "rows=3")
}

func TestSetupLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agedash.log")

	cleanup, err := Setup(path, "warn")
	require.NoError(t, err)
	logrus.Info("hidden")
	logrus.Warn("shown")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestSetupDisabled(t *testing.T) {
	cleanup, err := Setup("", "")
	require.NoError(t, err)
	cleanup()
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestSetupBadLevel(t *testing.T) {
	_, err := Setup("", "loud")
	assert.Error(t, err)
}
