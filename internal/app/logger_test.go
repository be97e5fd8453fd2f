package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger_LevelAndOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	logger, err := NewLogger(LogSettings{Env: "production", Level: "warn", Outputs: []string{path}})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	logger.Info("hidden message")
	logger.Warn("slot generation lagging")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "slot generation lagging")
	assert.Contains(t, string(data), `"service":"slot_booking"`)
	assert.NotContains(t, string(data), "hidden message")
}

func TestNewLogger_Defaults(t *testing.T) {
	dev, err := NewLogger(LogSettings{Env: "development"})
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zap.DebugLevel))

	prod, err := NewLogger(LogSettings{Env: "production"})
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zap.DebugLevel))
	assert.True(t, prod.Core().Enabled(zap.InfoLevel))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(LogSettings{Env: "development", Level: "loud"})
	assert.Error(t, err)
}
