// Package logging builds the zap loggers used across loglens.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction.
type Options struct {
	// Verbose switches to a human-readable development encoder at debug level.
	Verbose bool
	// Level overrides the minimum level (debug, info, warn, error).
	Level string
	// Output receives log lines; defaults to stderr.
	Output io.Writer
}

// New creates a structured logger. Diagnostics always go to stderr so that
// NDJSON on stdout stays machine-readable.
func New(opts Options) *zap.Logger {
	var encCfg zapcore.EncoderConfig
	var enc zapcore.Encoder
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)

	if opts.Verbose {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
		level.SetLevel(zapcore.DebugLevel)
	} else {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	if lvl, ok := ParseLevel(opts.Level); ok {
		level.SetLevel(lvl)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(out), level)
	return zap.New(core)
}

// ParseLevel converts a level name to a zap level.
func ParseLevel(s string) (zapcore.Level, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return zapcore.InfoLevel, false
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return zapcore.InfoLevel, false
	}
	return lvl, true
}

// NewNop creates a no-op logger for testing.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
