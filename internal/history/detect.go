package history

import (
	"os"
	"path/filepath"
	"strings"
)

// CaptureEnv snapshots the current process environment into an Env.
func CaptureEnv() Env {
	env := make(Env)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}

// DetectShell returns the shell name from $SHELL (basename only).
// Falls back to "bash" when $SHELL is unset.
func DetectShell(env Env) string {
	if shell := env.Get("SHELL"); shell != "" {
		return filepath.Base(shell)
	}
	return "bash"
}

// HistoryPath resolves the history file path for the given shell.
// Resolution is a pure function of its arguments:
//
//  1. $HISTFILE, joined to $HOME when relative (typical zsh setups export
//     a relative HISTFILE).
//  2. Shell default: ~/.bash_history for bash/sh, the first of
//     ~/.zsh_history, ~/.zhistory, ~/.histfile for zsh, and ~/.history
//     for csh-like shells.
//
// The zsh candidates are probed with exists; all other branches return a
// path without touching the filesystem, so a missing file surfaces as an
// open error with the resolved path in it.
func HistoryPath(shell string, env Env, exists func(string) bool) string {
	home := env.Get("HOME")

	if histfile := env.Get("HISTFILE"); histfile != "" {
		if filepath.IsAbs(histfile) {
			return histfile
		}
		return filepath.Join(home, histfile)
	}

	switch shell {
	case "bash", "sh":
		return filepath.Join(home, ".bash_history")
	case "zsh":
		candidates := []string{
			filepath.Join(home, ".zsh_history"),
			filepath.Join(home, ".zhistory"),
			filepath.Join(home, ".histfile"),
		}
		if exists != nil {
			for _, path := range candidates {
				if exists(path) {
					return path
				}
			}
		}
		return candidates[0]
	default:
		// Typical .csh or .tcsh.
		return filepath.Join(home, ".history")
	}
}

// FileExists reports whether path is an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
