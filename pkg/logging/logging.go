// Package logging holds the process-wide zap logger used by filecat commands.
package logging

import (
	"errors"
	"os"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger stays a no-op until Setup runs, so library code and tests may log freely
// before the root command has parsed --debug and the config file.
var Logger = zap.NewNop()

// Setup replaces Logger. Both modes write to stderr because stdout may carry an
// export. With debug set entries are human-readable from debug level up; otherwise
// they are JSON and only warnings and errors are emitted. On failure Logger stays
// unchanged.
func Setup(debug bool, appName, appVersion string) error {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.InitialFields = map[string]any{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}

// Sync flushes Logger. Syncing a pipe or a console returns EINVAL or ENOTTY on
// some platforms; those are not reported.
func Sync() error {
	err := Logger.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) || errors.Is(err, os.ErrInvalid) {
		return nil
	}
	return err
}
