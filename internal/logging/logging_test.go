package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWritesToFile(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original })

	logPath := filepath.Join(t.TempDir(), "logs", "pomodoro.log")
	closer, err := Initialize(Options{File: logPath})
	require.NoError(t, err)

	Logger.Info("phase changed", "to", "work")
	require.NoError(t, closer())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "phase changed")
	assert.Contains(t, string(data), "to=work")
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original })

	_, err := Initialize(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestInitializeDebugFiltersNothing(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original })

	logPath := filepath.Join(t.TempDir(), "debug.log")
	closer, err := Initialize(Options{File: logPath, Debug: true})
	require.NoError(t, err)

	Logger.Debug("tick", "remaining", "00:59")
	require.NoError(t, closer())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick")
}
