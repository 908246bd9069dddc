package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLoggerIsNopBeforeSetup(t *testing.T) {
	assert.False(t, Logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	require.NoError(t, Setup(true, "filecat", "test"))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
	assert.Same(t, Logger, zap.L())

	require.NoError(t, Setup(false, "filecat", "test"))
	assert.False(t, Logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.WarnLevel))
}

func TestSyncNop(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })
	Logger = zap.NewNop()
	assert.NoError(t, Sync())
}
