// Package config loads and watches the contrast configuration file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrConfigNotFound is returned by Load when the configuration file does not exist.
var ErrConfigNotFound = errors.New("config not found")

// Output formats understood by the check command.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config holds user defaults for the contrast commands.
type Config struct {
	Foreground  string  `toml:"foreground" validate:"required"`
	Background  string  `toml:"background" validate:"required"`
	TargetRatio float64 `toml:"target_ratio" validate:"gte=1,lte=21"`
	Format      string  `toml:"format" validate:"oneof=text table json"`
	Preview     bool    `toml:"preview"`
}

// Default returns the configuration used when no file is present:
// black text on a white background.
func Default() *Config {
	return &Config{
		Foreground:  "#000000",
		Background:  "#ffffff",
		TargetRatio: 4.5,
		Format:      FormatText,
		Preview:     true,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := tomlName(fe.StructField())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte", "lte":
		return fmt.Sprintf("%s must be between 1 and 21, got %v", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

func tomlName(structField string) string {
	switch structField {
	case "TargetRatio":
		return "target_ratio"
	default:
		return strings.ToLower(structField)
	}
}
