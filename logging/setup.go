// Package logging configures named loggers with a console handler and an
// optional append-mode file handler.
//
// Lines are rendered as `LEVEL name: message`, with a timestamp prefix when
// enabled. Loggers are tracked in a process-wide registry: setting up the
// same name again replaces its handlers and severity threshold rather than
// stacking new handlers on top.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap/zapcore"
)

// Setup builds named loggers. A single Setup can configure any number of
// logger names; the timestamp choice applies to all of them.
type Setup struct {
	addTimestamp bool
	registry     *Registry
	console      zapcore.WriteSyncer
}

// Option configures a Setup.
type Option func(*Setup)

// WithTimestamp prefixes every log line with a `2006-01-02 15:04:05`
// timestamp.
func WithTimestamp() Option {
	return func(s *Setup) {
		s.addTimestamp = true
	}
}

// WithRegistry makes the Setup configure loggers in r instead of the
// process-wide registry. Useful for testing.
func WithRegistry(r *Registry) Option {
	return func(s *Setup) {
		s.registry = r
	}
}

// WithConsoleWriter redirects the console handler to w instead of standard
// error. Useful for testing.
func WithConsoleWriter(w io.Writer) Option {
	return func(s *Setup) {
		s.console = zapcore.AddSync(w)
	}
}

// New creates a Setup writing console output to standard error.
func New(opts ...Option) *Setup {
	s := &Setup{
		registry: defaultRegistry,
		console:  zapcore.Lock(os.Stderr),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetupLogger configures the logger registered under loggerName: a console
// handler, plus a file handler appending to logFilePath when it is
// non-empty. Messages below level are discarded by every handler.
//
// Calling SetupLogger again for the same name replaces the previous handler
// set; the returned *Logger is the same underlying logger every time.
// It returns a *SetupError if the settings are invalid or the log file
// cannot be opened for appending.
func (s *Setup) SetupLogger(level Level, loggerName, logFilePath string) (*Logger, error) {
	settings := Settings{
		Level:        level.String(),
		LoggerName:   loggerName,
		LogFilePath:  logFilePath,
		AddTimestamp: s.addTimestamp,
	}

	if err := settings.Validate(); err != nil {
		return nil, &SetupError{LoggerName: loggerName, Err: err}
	}

	nl := s.registry.logger(loggerName)
	if err := nl.configure(level, logFilePath, s.addTimestamp, s.console); err != nil {
		return nil, err
	}

	return nl.logger, nil
}
