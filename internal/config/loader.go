// Package config provides configuration management for histlint.
//
// This file contains config loading functionality including:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	histerrors "github.com/chazuruo/histlint/internal/errors"
)

// DetectConfigPath searches for a config file using XDG standard paths.
// Returns the first config file found, or empty string if none exists.
//
// Search order:
// 1. $XDG_CONFIG_HOME/histlint/config.toml
// 2. ~/.config/histlint/config.toml
//
// Returns empty string if no config file is found (caller should use defaults).
func DetectConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configPath := filepath.Join(xdg, "histlint", "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	configPath := filepath.Join(homeDir, ".config", "histlint", "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &histerrors.ConfigError{Path: path, Err: histerrors.ErrNotFound}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &histerrors.ConfigError{Path: path, Err: err}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &histerrors.ConfigError{Path: path, Err: err}
	}

	applyEnvOverrides(cfg)
	cfg.History.File = ExpandPath(cfg.History.File)

	if err := cfg.Validate(); err != nil {
		return nil, &histerrors.ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from XDG standard paths.
// If no config file is found, returns a config with all default values.
// If a config file is found but fails to load/validate, returns an error.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		cfg.History.File = ExpandPath(cfg.History.File)
		if err := cfg.Validate(); err != nil {
			return nil, &histerrors.ConfigError{Err: err}
		}
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: HISTLINT_<SECTION>_<FIELD>
//
// Examples:
// - HISTLINT_HISTORY_FILE overrides [history].file
// - HISTLINT_HISTORY_SHELL overrides [history].shell
// - HISTLINT_SHELLCHECK_ENABLED overrides [shellcheck].enabled
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyBool := func(key string, target *bool) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				*target = true
			case "false", "0", "no", "off":
				*target = false
			}
		}
	}

	applyInt := func(key string, target *int) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			var i int
			if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
				*target = i
			}
		}
	}

	// History section
	applyString("HISTLINT_HISTORY_FILE", &c.History.File)
	applyString("HISTLINT_HISTORY_SHELL", &c.History.Shell)
	applyInt("HISTLINT_HISTORY_LIMIT", &c.History.Limit)
	applyBool("HISTLINT_HISTORY_DEDUP", &c.History.Dedup)

	// Rules section
	applyInt("HISTLINT_RULES_MIN_REPEATS", &c.Rules.MinRepeats)
	applyInt("HISTLINT_RULES_MAX_SPREAD", &c.Rules.MaxSpread)
	applyInt("HISTLINT_RULES_NAME_THRESHOLD", &c.Rules.NameThreshold)
	applyInt("HISTLINT_RULES_VARIED_ARGS_MIN", &c.Rules.VariedArgsMin)
	applyInt("HISTLINT_RULES_SHORT_COMMAND_LEN", &c.Rules.ShortCommandLen)

	// Report section
	applyInt("HISTLINT_REPORT_TOP_COMMANDS", &c.Report.TopCommands)
	applyInt("HISTLINT_REPORT_TOP_WITH_ARGUMENTS", &c.Report.TopWithArguments)
	applyString("HISTLINT_REPORT_FORMAT", &c.Report.Format)
	applyBool("HISTLINT_REPORT_COLOR", &c.Report.Color)

	// Shellcheck section
	applyBool("HISTLINT_SHELLCHECK_ENABLED", &c.Shellcheck.Enabled)
	applyString("HISTLINT_SHELLCHECK_BINARY", &c.Shellcheck.Binary)
	applyInt("HISTLINT_SHELLCHECK_MAX_FINDINGS", &c.Shellcheck.MaxFindings)
}
