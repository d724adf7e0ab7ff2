// Package logging builds the process-wide zap logger, following the
// teacher's pattern of constructing one logger at startup and passing
// it down explicitly rather than reaching for a global.
package logging

import "go.uber.org/zap"

// New builds a *zap.Logger suited to CLI use: human-readable in
// development mode, leveled by verbose.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
