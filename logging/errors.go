package logging

import (
	"errors"
	"fmt"
)

// SetupError records a failure to configure a named logger, either because
// the settings are invalid or because the log file path cannot be opened
// for appending.
type SetupError struct {
	LoggerName string
	Path       string
	Err        error
}

// Error implements the error interface.
func (e *SetupError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("logging: setting up logger %q: %v", e.LoggerName, e.Err)
	}

	return fmt.Sprintf("logging: setting up logger %q with file %s: %v", e.LoggerName, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SetupError) Unwrap() error {
	return e.Err
}

// IsSetupError checks if an error originated from logger configuration.
func IsSetupError(err error) bool {
	var se *SetupError
	return errors.As(err, &se)
}
