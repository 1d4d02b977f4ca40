package rules

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chazuruo/histlint/internal/stats"
)

// FrequentFullCommand suggests an alias for full command lines typed
// often enough to be worth shortening.
type FrequentFullCommand struct {
	// MinRepeats is the minimum occurrence count.
	MinRepeats int
	// MaxSpread caps rarity: total/count must be <= MaxSpread.
	MaxSpread int
	// HistIgnore holds command lines the user already excludes from
	// history; suggesting aliases for those is noise.
	HistIgnore map[string]bool
}

func (r *FrequentFullCommand) ID() string { return "frequent-full-command" }

func (r *FrequentFullCommand) Evaluate(_ context.Context, snap *stats.Snapshot) []Suggestion {
	var suggestions []Suggestion
	for _, entry := range snap.Lines.Entries() {
		if !qualifies(entry.Count, snap.Total, r.MinRepeats, r.MaxSpread) {
			continue
		}
		// Single-word commands get no alias; they are already short.
		if !strings.Contains(entry.Key, " ") {
			continue
		}
		if r.HistIgnore[entry.Key] {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			RuleID:   r.ID(),
			Severity: SeverityInfo,
			Message: fmt.Sprintf("you ran this %d times; consider an alias: alias %s=%q",
				entry.Count, Initialism(entry.Key), entry.Key),
			Example: entry.Key,
		})
	}
	return suggestions
}

// Initialism builds a short alias name from the first letter of each
// word-like token: "git status" -> "gs". Tokens that don't start with a
// word character (flags' dashes are kept out by the letter check) are
// skipped.
func Initialism(line string) string {
	var b strings.Builder
	for _, word := range strings.Fields(line) {
		r, _ := utf8.DecodeRuneInString(word)
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FrequentCommandName suggests a function or alias for a base command
// that is used heavily but with widely varying arguments, where a
// full-line alias would not help.
type FrequentCommandName struct {
	// NameThreshold is the minimum count for the command name.
	NameThreshold int
	// VariedArgsMin is the minimum number of distinct full lines using
	// the name.
	VariedArgsMin int
}

func (r *FrequentCommandName) ID() string { return "frequent-command-name" }

func (r *FrequentCommandName) Evaluate(_ context.Context, snap *stats.Snapshot) []Suggestion {
	variants := make(map[string]map[string]bool)
	for _, inv := range snap.Invocations {
		if variants[inv.Name] == nil {
			variants[inv.Name] = make(map[string]bool)
		}
		variants[inv.Name][inv.Raw] = true
	}

	var suggestions []Suggestion
	for _, entry := range snap.Names.Entries() {
		if entry.Count < r.NameThreshold {
			continue
		}
		if len(variants[entry.Key]) < r.VariedArgsMin {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			RuleID:   r.ID(),
			Severity: SeverityInfo,
			Message: fmt.Sprintf("%q appears %d times with %d argument variations; a short alias or shell function for the base command would save typing",
				entry.Key, entry.Count, len(variants[entry.Key])),
			Example: entry.Key,
		})
	}
	return suggestions
}

// HistoryIgnore suggests excluding very short, very frequent commands
// from history so they stop crowding out useful entries.
type HistoryIgnore struct {
	// Shell picks the variable to recommend.
	Shell string
	// MaxLen is the maximum command length considered "short".
	MaxLen int
	// MinRepeats / MaxSpread gate frequency like the alias rule.
	MinRepeats int
	MaxSpread  int
}

func (r *HistoryIgnore) ID() string { return "history-ignore" }

func (r *HistoryIgnore) Evaluate(_ context.Context, snap *stats.Snapshot) []Suggestion {
	var variable string
	switch r.Shell {
	case "bash", "sh":
		variable = "HISTIGNORE"
	case "zsh":
		variable = "HISTORY_IGNORE"
	default:
		return nil
	}

	var suggestions []Suggestion
	for _, entry := range snap.Lines.Entries() {
		if len(entry.Key) >= r.MaxLen {
			continue
		}
		if !qualifies(entry.Count, snap.Total, r.MinRepeats, r.MaxSpread) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			RuleID:   r.ID(),
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("frequent but short; consider adding it to %s", variable),
			Example:  entry.Key,
		})
	}
	return suggestions
}
