package config

import (
	"errors"
	"fmt"
)

// ErrEnvVarNotSet indicates the environment variable naming the
// configuration file is unset or empty.
var ErrEnvVarNotSet = errors.New("environment variable not set")

// LoadError records a failure to locate, read, or parse the configuration
// file at construction time.
type LoadError struct {
	EnvVar string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: loading file named by %s: %v", e.EnvVar, e.Err)
	}

	return fmt.Sprintf("config: loading %s (named by %s): %v", e.Path, e.EnvVar, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// UnknownSettingError records an access to a setting no section/key pair of
// the loaded file maps to.
type UnknownSettingError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownSettingError) Error() string {
	return fmt.Sprintf("config: unknown setting %q", e.Name)
}

// IsLoadError checks if an error originated from loading the configuration file.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// IsUnknownSetting checks if an error records an access to an absent setting.
func IsUnknownSetting(err error) bool {
	var ue *UnknownSettingError
	return errors.As(err, &ue)
}
