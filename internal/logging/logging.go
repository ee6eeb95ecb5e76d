// Package logging provides the router's package-level logger, in the
// same spirit as sarama.Logger: a swappable, process-wide sink callers
// may redirect before wiring the router into their own process.
package logging

import (
	"go.uber.org/zap"
)

// L is the package-level logger. It defaults to a no-op logger so that
// importing this package never panics or spams stderr in tests; real
// binaries call SetLogger during startup.
var L *zap.Logger = zap.NewNop()

// SetLogger replaces the package-level logger. Passing nil is a no-op,
// matching the teacher's tolerance for callers that forget to wire a
// logger in.
func SetLogger(l *zap.Logger) {
	if l == nil {
		return
	}
	L = l
}

// New builds a production or development zap.Logger depending on
// debug; routerd passes its log_debug config setting.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
