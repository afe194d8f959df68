// Package logging provides structured logging for the hangul-dtw CLI.
// The library packages themselves never log.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It defaults to a no-op logger so
// library consumers of cmd helpers never pay for logging they did not
// configure.
var Logger = zap.NewNop()

// Sugar is the sugared view of Logger.
var Sugar = Logger.Sugar()

// Initialize sets up the global logger writing to stderr. With verbose
// true the level drops to debug and caller information is included.
func Initialize(verbose bool) error {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableCaller = !verbose

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = logger
	Sugar = logger.Sugar()
	return nil
}

// Sync flushes buffered log entries; call on exit.
func Sync() {
	_ = Logger.Sync()
}
