// Package config provides configuration management for histlint.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields. Every tunable threshold used by the
// suggestion rules lives here so the pipeline never reads magic numbers.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the top-level configuration struct for histlint.
// It contains all configuration sections as embedded structs.
type Config struct {
	History    HistoryConfig    `toml:"history"`
	Rules      RulesConfig      `toml:"rules"`
	Report     ReportConfig     `toml:"report"`
	Shellcheck ShellcheckConfig `toml:"shellcheck"`
}

// HistoryConfig contains history-reading settings.
type HistoryConfig struct {
	// File is an explicit history file path. When empty the path is
	// resolved from the shell and environment.
	File string `toml:"file"`

	// Shell overrides shell detection. Valid values: "bash", "zsh",
	// "csh", "tcsh", "sh", "" (auto-detect from $SHELL).
	Shell string `toml:"shell"`

	// Limit is the maximum number of history lines to analyze
	// (most recent first; 0 = no limit).
	Limit int `toml:"limit"`

	// Dedup removes duplicate commands before analysis, keeping the
	// most recent occurrence. Frequency statistics are usually more
	// useful with duplicates retained.
	Dedup bool `toml:"dedup"`
}

// RulesConfig contains thresholds for the suggestion rules.
type RulesConfig struct {
	// MinRepeats is the minimum number of occurrences before a command
	// qualifies for alias or history-ignore suggestions.
	MinRepeats int `toml:"min_repeats"`

	// MaxSpread caps how rare a command may be relative to the whole
	// history and still qualify: a count qualifies when
	// total/count <= MaxSpread.
	MaxSpread int `toml:"max_spread"`

	// NameThreshold is the minimum count for the frequent-command-name
	// rule.
	NameThreshold int `toml:"name_threshold"`

	// VariedArgsMin is the minimum number of distinct full command
	// lines sharing a command name before that name counts as "used
	// with widely varying arguments".
	VariedArgsMin int `toml:"varied_args_min"`

	// ShortCommandLen is the maximum length of a command considered
	// short enough for the history-ignore suggestion.
	ShortCommandLen int `toml:"short_command_len"`

	// RenameRatio is the maximum ratio of rewritten length to original
	// length for the mv/cp brace-expansion suggestion to be worth
	// printing.
	RenameRatio float64 `toml:"rename_ratio"`
}

// ReportConfig contains report rendering settings.
type ReportConfig struct {
	// TopCommands is the number of entries in the command-name table.
	TopCommands int `toml:"top_commands"`

	// TopWithArguments is the number of entries in the full-line table.
	TopWithArguments int `toml:"top_with_arguments"`

	// Format is the output format. Valid values: "text", "json", "yaml".
	Format string `toml:"format"`

	// Color controls ANSI styling. NO_COLOR in the environment always
	// wins over this setting.
	Color bool `toml:"color"`
}

// ShellcheckConfig contains settings for the external lint tool.
type ShellcheckConfig struct {
	// Enabled controls whether shellcheck is invoked at all.
	Enabled bool `toml:"enabled"`

	// Binary is the shellcheck executable name or path.
	Binary string `toml:"binary"`

	// Excludes lists shellcheck codes (numeric part of SCnnnn) that are
	// not relevant to interactive one-liners.
	Excludes []int `toml:"excludes"`

	// MaxFindings caps the number of findings shown in the report.
	MaxFindings int `toml:"max_findings"`

	// Timeout bounds each shellcheck invocation.
	Timeout Duration `toml:"timeout"`
}

// Duration wraps time.Duration so it can round-trip through TOML as a
// string like "5s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// DefaultConfig returns a Config with all default values set.
// The rule thresholds follow the behavior of classic history linters:
// a command qualifies for an alias when it was typed at least twice and
// makes up at least 1/20th of the history.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			Limit: 10000,
			Dedup: false,
		},
		Rules: RulesConfig{
			MinRepeats:      2,
			MaxSpread:       20,
			NameThreshold:   10,
			VariedArgsMin:   5,
			ShortCommandLen: 4,
			RenameRatio:     0.8,
		},
		Report: ReportConfig{
			TopCommands:      5,
			TopWithArguments: 5,
			Format:           "text",
			Color:            true,
		},
		Shellcheck: ShellcheckConfig{
			Enabled: true,
			Binary:  "shellcheck",
			// Codes about sourcing, missing shebangs, cd-without-exit
			// and friends do not apply to interactive one-liners.
			Excludes:    []int{1089, 1090, 1091, 1117, 2103, 2148, 2154, 2164, 2224, 2230},
			MaxFindings: 10,
			Timeout:     Duration(5 * time.Second),
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.History.Shell {
	case "", "bash", "sh", "zsh", "csh", "tcsh":
	default:
		return fmt.Errorf("history.shell: unsupported shell %q", c.History.Shell)
	}

	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit: must be >= 0, got %d", c.History.Limit)
	}

	if c.Rules.MinRepeats < 1 {
		return fmt.Errorf("rules.min_repeats: must be >= 1, got %d", c.Rules.MinRepeats)
	}
	if c.Rules.MaxSpread < 1 {
		return fmt.Errorf("rules.max_spread: must be >= 1, got %d", c.Rules.MaxSpread)
	}
	if c.Rules.RenameRatio <= 0 || c.Rules.RenameRatio > 1 {
		return fmt.Errorf("rules.rename_ratio: must be in (0, 1], got %g", c.Rules.RenameRatio)
	}

	if c.Report.TopCommands < 1 {
		return fmt.Errorf("report.top_commands: must be >= 1, got %d", c.Report.TopCommands)
	}
	if c.Report.TopWithArguments < 1 {
		return fmt.Errorf("report.top_with_arguments: must be >= 1, got %d", c.Report.TopWithArguments)
	}
	switch c.Report.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("report.format: must be text, json or yaml, got %q", c.Report.Format)
	}

	if c.Shellcheck.MaxFindings < 0 {
		return fmt.Errorf("shellcheck.max_findings: must be >= 0, got %d", c.Shellcheck.MaxFindings)
	}
	if c.Shellcheck.Timeout < 0 {
		return fmt.Errorf("shellcheck.timeout: must be >= 0, got %s", time.Duration(c.Shellcheck.Timeout))
	}

	return nil
}

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	}
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
