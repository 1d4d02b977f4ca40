// Package history reads shell history files for various shells.
//
// Each parser strips the shell's history-file metadata (bash timestamp
// comments, zsh extended-history prefixes, backslash continuations) and
// hands the rest of the pipeline plain command lines. Parsers are
// deliberately forgiving: a line that doesn't match the expected format
// is kept as-is rather than dropped, since the downstream statistics
// only need command text.
package history

import (
	"io"
	"io/fs"
	"os"

	histerrors "github.com/chazuruo/histlint/internal/errors"
)

// Read opens the history file at path and parses it with the parser for
// the given shell. A missing or unreadable file is a fatal error; it is
// reported once before any aggregation begins.
func Read(path, shell string) ([]Line, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &histerrors.HistoryError{Op: "open", Path: path, Err: histerrors.ErrNotFound}
		}
		return nil, &histerrors.HistoryError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	lines, err := parseShell(file, shell)
	if err != nil {
		return nil, &histerrors.HistoryError{Op: "parse", Path: path, Err: err}
	}
	return lines, nil
}

func parseShell(r io.Reader, shell string) ([]Line, error) {
	switch shell {
	case "zsh":
		return ParseZsh(r)
	case "bash", "sh":
		return ParseBash(r)
	default:
		// csh, tcsh and anything else: plain one-command-per-line.
		return ParsePlain(r, shell)
	}
}

// LooseMode returns the permission bits that make a history file readable
// by users other than its owner. Shell history routinely contains
// hostnames, paths and the occasional pasted secret.
func LooseMode(path string) (fs.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, &histerrors.HistoryError{Op: "stat", Path: path, Err: err}
	}
	return info.Mode().Perm() & 0o044, nil
}
