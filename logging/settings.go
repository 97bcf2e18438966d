package logging

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Settings holds the configuration applied to one named logger
type Settings struct {
	Level        string `validate:"required,oneof=DEBUG INFO WARNING ERROR CRITICAL"`
	LoggerName   string `validate:"required"`
	LogFilePath  string
	AddTimestamp bool
}

// Validate checks that all fields in Settings are valid
func (s *Settings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for Settings: %w", err)
	}

	return nil
}
