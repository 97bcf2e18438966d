package notify

// Logger is the minimal logging surface the client uses for its own
// diagnostics. The logging package's Logger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

// nopLogger discards everything; a library must not write to its embedder's
// streams unless asked to.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

func (nopLogger) Warnf(string, ...any) {}
