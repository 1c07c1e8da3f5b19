package main

import (
	"go.uber.org/zap"
)

// newLogger returns a console logger that writes to stderr. Only warnings
// and errors are logged unless verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
