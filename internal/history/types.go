package history

import "time"

// Line represents a single command from shell history, stripped of any
// shell-specific metadata (timestamps, zsh extended-history prefixes).
type Line struct {
	Command   string
	Timestamp time.Time
	Shell     string // "bash", "zsh", "csh", ...
}

// Env is a snapshot of environment variables. The history layer never
// reads the process environment directly; callers capture it once and
// pass it in, which keeps path resolution a pure function.
type Env map[string]string

// Get returns the value for key, or "" if unset.
func (e Env) Get(key string) string { return e[key] }

// FilterOptions specifies filtering criteria for history lines.
type FilterOptions struct {
	Since time.Time // Only include commands at or after this time
	Limit int       // Maximum number of lines to return, newest kept (0 = no limit)
	Dedup bool      // Remove duplicate commands, keeping the most recent
}
