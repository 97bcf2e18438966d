package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is the severity of a log message and, when passed to SetupLogger,
// the minimum severity a logger emits.
type Level int8

// The five severities, ordered by increasing urgency.
const (
	DebugLevel Level = iota
	InfoLevel
	WarningLevel
	ErrorLevel
	CriticalLevel
)

var levelNames = [...]string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// String returns the severity name as it appears in log lines.
func (l Level) String() string {
	if l < DebugLevel || l > CriticalLevel {
		return fmt.Sprintf("LEVEL(%d)", int8(l))
	}

	return levelNames[l]
}

// ParseLevel converts a severity name (case-insensitive) into a Level.
func ParseLevel(s string) (Level, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range levelNames {
		if upper == name {
			return Level(i), nil
		}
	}

	return InfoLevel, fmt.Errorf("logging: unknown level %q", s)
}

// zapLevel maps a Level onto the zapcore level used for threshold checks.
// Critical maps to DPanicLevel, which logs without exiting the process.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarningLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case CriticalLevel:
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}

// levelName renders a zapcore level with this package's severity names.
func levelName(zl zapcore.Level) string {
	switch zl {
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.InfoLevel:
		return "INFO"
	case zapcore.WarnLevel:
		return "WARNING"
	case zapcore.ErrorLevel:
		return "ERROR"
	default:
		return "CRITICAL"
	}
}
