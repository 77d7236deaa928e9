// Package config defines the command line client's configuration and how it
// is loaded.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" json:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format" json:"log_format"`

	// Env selects the Schoox deployment: stage or prod.
	Env string `koanf:"env" json:"env"`

	// AcadID and APIKey authenticate every request.
	AcadID string `koanf:"acad_id" json:"acad_id"`
	APIKey string `koanf:"api_key" json:"api_key"`

	// BaseURL overrides the environment's API root when set.
	BaseURL string `koanf:"base_url" json:"base_url"`

	// TimeoutMS bounds each request. Zero keeps the client default.
	TimeoutMS int `koanf:"timeout_ms" json:"timeout_ms"`

	UserAgent string `koanf:"user_agent" json:"user_agent"`

	// Tracing turns on OpenTelemetry export of client spans.
	Tracing bool `koanf:"tracing" json:"tracing"`

	// Output selects how response bodies are printed: json or yaml.
	Output string `koanf:"output" json:"output"`

	// MetricsTextfile, when set, receives the request metrics in Prometheus
	// text format after each command.
	MetricsTextfile string `koanf:"metrics_textfile" json:"metrics_textfile"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Env:       "prod",
		TimeoutMS: 30_000,
		Output:    "json",
	}
}

// Timeout returns TimeoutMS as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// Validate checks required credentials and enumerated values. Errors name
// fields by their configuration keys.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.AcadID, validation.Required),
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.Env, validation.Required, validation.In("stage", "prod")),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "warning", "error")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
		validation.Field(&c.Output, validation.Required, validation.In("json", "yaml")),
		validation.Field(&c.BaseURL, is.URL),
		validation.Field(&c.TimeoutMS, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
