// Package config handles configuration loading and defaults.
package config

import "fmt"

// Default values.
const (
	DefaultMessage   = "Time is up!"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for remind. The duration token and
// an explicit message are positional arguments and never come from a
// config file.
type Config struct {
	// Message is the fallback alert text when no message argument is
	// given.
	Message string `toml:"message"`

	// Once stops after a single alert instead of repeating.
	Once bool `toml:"once"`

	// Bell prefixes alert lines with the audible bell character.
	Bell bool `toml:"bell"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// setDefaults sets compiled-in default values.
func setDefaults(cfg *Config) {
	cfg.Message = DefaultMessage
	cfg.Once = false
	cfg.Bell = true
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
}

// finalizeConfig fills in anything a config file blanked out and rejects
// values nothing downstream can interpret.
func finalizeConfig(cfg *Config) error {
	if cfg.Message == "" {
		cfg.Message = DefaultMessage
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log format: %s", cfg.LogFormat)
	}
	return nil
}
