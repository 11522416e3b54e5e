// Package log provides the scoped structured logger used across checkrun.
//
// A Logger carries an explicit scope stack. Scope returns a child logger
// whose records are attributed to the nested scope path, so a scope "closes"
// on every exit path simply by the child value going out of use. There is no
// package-level logger; callers thread a *Logger through each component.
package log

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a leveled, scope-aware logger.
type Logger struct {
	zl     *zap.Logger
	scopes []string
}

// New builds a console logger writing to stderr at the given level.
// Unrecognized levels fall back to info.
func New(level string) *Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		parseLevel(level),
	)
	return &Logger{zl: zap.New(core)}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

// Wrap adapts an existing zap logger. Used by tests to observe records.
func Wrap(zl *zap.Logger) *Logger {
	return &Logger{zl: zl}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Scope returns a child logger with name pushed onto the scope stack.
// The receiver is not modified.
func (l *Logger) Scope(name string) *Logger {
	scopes := make([]string, 0, len(l.scopes)+1)
	scopes = append(scopes, l.scopes...)
	scopes = append(scopes, name)
	return &Logger{zl: l.zl.Named(name), scopes: scopes}
}

// ScopePath returns the scope stack joined top-down, empty for the root.
func (l *Logger) ScopePath() string {
	return strings.Join(l.scopes, " / ")
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zl.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.zl.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.zl.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zl.Error(msg, fields...) }

// Sync flushes buffered records. Errors are ignored; stderr does not buffer.
func (l *Logger) Sync() { _ = l.zl.Sync() }
