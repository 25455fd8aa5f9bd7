package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty working directory so logs/ lands there
func inTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	inTempDir(t)

	logger, f := setupLogging(false)
	assert.Nil(t, f)
	assert.Equal(t, io.Discard, logger.Out)

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "no log directory without debug")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	inTempDir(t)

	logger, f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.NotEqual(t, os.Stdout, logger.Out)
	assert.NotEqual(t, os.Stderr, logger.Out)

	logger.WithField("enemy", 3).Debug("enemy spawned")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "logging started")
	assert.Contains(t, string(data), "enemy=3")
}

func TestSetupLogging_Rotation(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.MkdirAll(logDir, 0755))

	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	_, f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)

	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	assert.True(t, rotated, "oversized log moved aside")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}
