// Package config reads INI-format application settings from a file whose
// location is supplied through an environment variable.
//
// Every `key = value` entry of every `[SECTION]` is exposed as a flattened,
// read-only setting named `section_key` (both parts lowercased). Values are
// kept as raw strings; interpreting them further is up to the caller. The
// file is read exactly once, at construction, and is expected to be UTF-8.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Reader holds the settings parsed from an INI file. It is immutable after
// construction and safe for concurrent reads.
type Reader struct {
	path   string
	values map[string]string
	names  []string
}

type options struct {
	dotenv      bool
	dotenvPaths []string
}

// Option configures the behavior of New.
type Option func(*options)

// WithDotenv preloads the given dotenv files (default ".env") before the
// environment variable naming the configuration file is resolved. A missing
// default ".env" is not an error; an explicitly named file must exist.
func WithDotenv(paths ...string) Option {
	return func(o *options) {
		o.dotenv = true
		o.dotenvPaths = paths
	}
}

// New reads the configuration file named by the environment variable envVar.
//
// It returns a *LoadError if the variable is unset or empty, if the file
// cannot be read, or if its content is not valid INI.
func New(envVar string, opts ...Option) (*Reader, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.dotenv {
		if err := godotenv.Load(o.dotenvPaths...); err != nil {
			if len(o.dotenvPaths) > 0 || !errors.Is(err, fs.ErrNotExist) {
				return nil, &LoadError{EnvVar: envVar, Err: err}
			}
		}
	}

	path, ok := os.LookupEnv(envVar)
	if !ok || path == "" {
		return nil, &LoadError{EnvVar: envVar, Err: ErrEnvVarNotSet}
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, &LoadError{EnvVar: envVar, Path: path, Err: err}
	}

	r := &Reader{
		path:   path,
		values: make(map[string]string),
	}

	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}

		prefix := strings.ToLower(section.Name()) + "_"
		for _, key := range section.Keys() {
			name := prefix + strings.ToLower(key.Name())
			if _, seen := r.values[name]; !seen {
				r.names = append(r.names, name)
			}

			r.values[name] = key.Value()
		}
	}

	return r, nil
}

// Get returns the value of the flattened setting name (`section_key`).
// It returns a *UnknownSettingError if no such section/key pair exists.
func (r *Reader) Get(name string) (string, error) {
	value, ok := r.values[name]
	if !ok {
		return "", &UnknownSettingError{Name: name}
	}

	return value, nil
}

// Lookup returns the value of the setting and whether it exists.
func (r *Reader) Lookup(name string) (string, bool) {
	value, ok := r.values[name]
	return value, ok
}

// MustGet returns the value of the setting and panics if it does not exist.
// Intended for startup-time reads of settings the application cannot run
// without.
func (r *Reader) MustGet(name string) string {
	value, err := r.Get(name)
	if err != nil {
		panic(err)
	}

	return value
}

// Settings returns the flattened setting names in file order.
func (r *Reader) Settings() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)

	return names
}

// Path returns the path the configuration was loaded from.
func (r *Reader) Path() string {
	return r.path
}
