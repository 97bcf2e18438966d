package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Registry tracks named loggers. Configuring the same name twice replaces
// its handler set instead of accumulating handlers, and the last configured
// severity threshold wins; loggers handed out earlier observe both changes.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*namedLogger
}

// defaultRegistry backs Setup instances that were not given an explicit
// registry, mirroring the process-wide registry of the logging facility.
var defaultRegistry = NewRegistry()

// NewRegistry creates an empty logger registry. Most callers use the
// process-wide default; separate registries are useful in tests.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*namedLogger)}
}

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Logger returns the logger registered under name, creating a silenced one
// (no handlers, so no output) if the name was never set up.
func (r *Registry) Logger(name string) *Logger {
	return r.logger(name).logger
}

// HandlerCount reports how many output handlers name currently has.
func (r *Registry) HandlerCount(name string) int {
	r.mu.Lock()
	nl, ok := r.loggers[name]
	r.mu.Unlock()

	if !ok {
		return 0
	}

	nl.mu.Lock()
	defer nl.mu.Unlock()

	return nl.handlerCount
}

func (r *Registry) logger(name string) *namedLogger {
	r.mu.Lock()
	defer r.mu.Unlock()

	nl, ok := r.loggers[name]
	if !ok {
		nl = newNamedLogger(name)
		r.loggers[name] = nl
	}

	return nl
}

// namedLogger is one registry entry: the swappable handler set, the shared
// severity threshold, and the zap logger built on top of both.
type namedLogger struct {
	name     string
	level    zap.AtomicLevel
	handlers *swapCore
	logger   *Logger

	mu           sync.Mutex
	file         *os.File
	handlerCount int
}

func newNamedLogger(name string) *namedLogger {
	nl := &namedLogger{
		name:     name,
		level:    zap.NewAtomicLevel(),
		handlers: newSwapCore(),
	}
	nl.logger = newLogger(zap.New(nl.handlers).Named(name))

	return nl
}

// configure swaps in a fresh handler set built from the settings. The
// previous file handle, if any, is closed after the swap.
func (nl *namedLogger) configure(level Level, logFilePath string, addTimestamp bool, console zapcore.WriteSyncer) error {
	nl.mu.Lock()
	defer nl.mu.Unlock()

	cores := []zapcore.Core{newTextCore(console, nl.level, addTimestamp)}

	var file *os.File

	if logFilePath != "" {
		f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return &SetupError{LoggerName: nl.name, Path: logFilePath, Err: err}
		}

		file = f
		cores = append(cores, newTextCore(zapcore.Lock(f), nl.level, addTimestamp))
	}

	nl.level.SetLevel(level.zapLevel())
	nl.handlers.swap(zapcore.NewTee(cores...))

	if nl.file != nil {
		_ = nl.file.Close()
	}

	nl.file = file
	nl.handlerCount = len(cores)

	return nil
}
