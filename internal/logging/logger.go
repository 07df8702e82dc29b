// Package logging builds the zap logger shared by the CLI and pipeline.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a zap logger writing to stderr. When verbose is true it
// uses the development config (human-readable, debug level); otherwise the
// production config (JSON) raised to warn level so a normal run prints
// nothing but the word list.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}
