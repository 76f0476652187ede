// SPDX-License-Identifier: MIT

// Package logging is a thin wrapper of zap logging library.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix names the environment variables holding log levels:
// DEPOSIT_LOG sets the default, DEPOSIT_LOG_<PKG> overrides one package.
const EnvPrefix = "DEPOSIT_LOG"

var root = func() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		os.Stderr,
		zap.DebugLevel,
	)
	return zap.New(core)
}()

// New creates a logger.
// By convention, this should appear in the same .go file as the package docstring:
//
//	var logger = logging.New("histogram")
func New(pkg string) *zap.Logger {
	return NewAt(pkg, ParseLevel(GetLevel(pkg)))
}

// NewAt creates a logger with an explicit minimum level, ignoring the environment.
func NewAt(pkg string, lvl zapcore.Level) *zap.Logger {
	return root.Named(pkg).WithOptions(zap.IncreaseLevel(lvl))
}

// GetLevel returns configured log level of a package as a letter, or 0 if unset.
func GetLevel(pkg string) rune {
	lvl, ok := os.LookupEnv(EnvPrefix + "_" + strings.ToUpper(pkg))
	if !ok {
		lvl, ok = os.LookupEnv(EnvPrefix)
	}
	if !ok || len(lvl) == 0 {
		return 0
	}
	return rune(lvl[0])
}

// ParseLevel converts a level letter to a zap level.
// Unset or unknown letters yield WarnLevel: a library stays quiet by default.
func ParseLevel(lvl rune) zapcore.Level {
	switch lvl {
	case 'V', 'D', 'v', 'd':
		return zapcore.DebugLevel
	case 'I', 'i':
		return zapcore.InfoLevel
	case 'W', 'w':
		return zapcore.WarnLevel
	case 'E', 'e':
		return zapcore.ErrorLevel
	case 'F', 'N', 'f', 'n':
		return zapcore.DPanicLevel
	}
	return zapcore.WarnLevel
}
