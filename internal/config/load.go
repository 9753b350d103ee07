package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (remind/remind.toml under the OS config dir)
// 3. Project config file (.remind.toml in the current directory)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	userConfigFile := findUserConfigFile()
	if userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	projectConfigFile := findProjectConfigFile()
	if projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Fill derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile loads configuration from a TOML file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("REMIND_MESSAGE"); v != "" {
		cfg.Message = v
	}
	if v := os.Getenv("REMIND_ONCE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Once = b
		}
	}
	if v := os.Getenv("REMIND_BELL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Bell = b
		}
	}
	if v := os.Getenv("REMIND_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("REMIND_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// parseFlags registers the config flags on fs and parses args.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.BoolVar(&cfg.Once, "once", cfg.Once, "Run the reminder only once")
	fs.BoolVar(&cfg.Once, "o", cfg.Once, "Run the reminder only once (shorthand)")
	fs.StringVar(&cfg.Message, "message", cfg.Message, "Fallback reminder message")
	noBell := fs.Bool("no-bell", !cfg.Bell, "Do not ring the terminal bell")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.Bell = !*noBell
	return nil
}

// findUserConfigFile returns the path to the user config file, or empty
// string if none exists.
func findUserConfigFile() string {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(cfgDir, "remind", "remind.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// findProjectConfigFile returns the path to a .remind.toml in the current
// directory, or empty string if none exists.
func findProjectConfigFile() string {
	path := ".remind.toml"
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path
	}
	return ""
}
