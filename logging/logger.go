package logging

import (
	"go.uber.org/zap"
)

// Logger emits messages through the handlers configured for its name.
// All instances returned for one name share the same handler set and
// severity threshold, so the latest SetupLogger call governs them all.
type Logger struct {
	zl    *zap.Logger
	sugar *zap.SugaredLogger
}

func newLogger(zl *zap.Logger) *Logger {
	return &Logger{zl: zl, sugar: zl.Sugar()}
}

// Debug logs a message at DEBUG severity.
func (l *Logger) Debug(args ...any) {
	l.sugar.Debug(args...)
}

// Debugf logs a formatted message at DEBUG severity.
func (l *Logger) Debugf(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

// Info logs a message at INFO severity.
func (l *Logger) Info(args ...any) {
	l.sugar.Info(args...)
}

// Infof logs a formatted message at INFO severity.
func (l *Logger) Infof(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

// Warn logs a message at WARNING severity.
func (l *Logger) Warn(args ...any) {
	l.sugar.Warn(args...)
}

// Warnf logs a formatted message at WARNING severity.
func (l *Logger) Warnf(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

// Error logs a message at ERROR severity.
func (l *Logger) Error(args ...any) {
	l.sugar.Error(args...)
}

// Errorf logs a formatted message at ERROR severity.
func (l *Logger) Errorf(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

// Critical logs a message at CRITICAL severity. The process keeps running;
// CRITICAL is the highest severity, not a fatal exit.
func (l *Logger) Critical(args ...any) {
	l.sugar.DPanic(args...)
}

// Criticalf logs a formatted message at CRITICAL severity.
func (l *Logger) Criticalf(format string, args ...any) {
	l.sugar.DPanicf(format, args...)
}

// Sync flushes any buffered output on the underlying handlers.
func (l *Logger) Sync() error {
	return l.zl.Sync()
}
