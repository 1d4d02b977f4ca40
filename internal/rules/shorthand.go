package rules

import (
	"context"
	"fmt"
	"strings"

	"github.com/chazuruo/histlint/internal/stats"
)

// shortcut maps a verbose idiom (whitespace-normalized) to its shorter
// form. Single-shot entries fire on the first occurrence; the rest are
// frequency-gated so one-off commands don't generate noise.
type shortcut struct {
	pattern     string
	replacement string
	oneShot     bool
}

var shortcuts = []shortcut{
	{pattern: "cd ~", replacement: `"cd" alone moves to your home directory`, oneShot: true},
	{pattern: "cd ~/", replacement: `"cd" alone moves to your home directory`, oneShot: true},
	{pattern: "cd $HOME", replacement: `"cd" alone moves to your home directory`, oneShot: true},
	{pattern: "ls -l", replacement: `many setups ship an "ll" alias for this`},
	{pattern: "ls -la", replacement: `consider: alias ll="ls -la"`},
	{pattern: "ls -al", replacement: `consider: alias ll="ls -al"`},
	{pattern: "cd ..", replacement: `consider: alias ..="cd .."`},
	{pattern: "cd ../..", replacement: `consider: alias ...="cd ../.."`},
	{pattern: "git status", replacement: `consider: alias gs="git status"`},
	{pattern: "clear", replacement: "Ctrl-L clears the screen without a command"},
}

// ShorterSyntax matches known verbose idioms against the static
// shortcut table.
type ShorterSyntax struct {
	// MinRepeats gates the frequency-based entries.
	MinRepeats int
}

func (r *ShorterSyntax) ID() string { return "shorter-syntax" }

func (r *ShorterSyntax) Evaluate(_ context.Context, snap *stats.Snapshot) []Suggestion {
	var suggestions []Suggestion
	for _, entry := range snap.Lines.Entries() {
		normalized := standardize(entry.Key)
		for _, sc := range shortcuts {
			if normalized != sc.pattern {
				continue
			}
			if !sc.oneShot && entry.Count < r.MinRepeats {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				RuleID:   r.ID(),
				Severity: SeverityInfo,
				Message:  sc.replacement,
				Example:  entry.Key,
			})
			break
		}
	}
	return suggestions
}

// Rename suggests brace expansion for mv/cp invocations whose two path
// arguments share a prefix: "mv report.txt report.bak" can be written
// "mv report.{txt,bak}". Only emitted when the rewrite is actually
// shorter (ratio <= Ratio).
type Rename struct {
	// Ratio is the maximum rewritten/original length ratio.
	Ratio float64
}

func (r *Rename) ID() string { return "shorter-syntax" }

func (r *Rename) Evaluate(_ context.Context, snap *stats.Snapshot) []Suggestion {
	var suggestions []Suggestion
	for _, line := range snap.DistinctLines() {
		tokens := strings.Fields(line)
		if len(tokens) != 3 || (tokens[0] != "mv" && tokens[0] != "cp") {
			continue
		}
		prefix := commonPrefix(tokens[1], tokens[2])
		if prefix == "" {
			continue
		}

		rewritten := fmt.Sprintf("%s{%s,%s}", prefix,
			tokens[1][len(prefix):], tokens[2][len(prefix):])
		full := tokens[0] + " " + rewritten
		if float64(len(full))/float64(len(line)) > r.Ratio {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			RuleID:   r.ID(),
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("brace expansion is shorter: %s", full),
			Example:  line,
		})
	}
	return suggestions
}

// commonPrefix returns the longest common prefix of a and b.
func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// standardize collapses runs of whitespace to single spaces.
func standardize(line string) string {
	return strings.Join(strings.Fields(line), " ")
}
