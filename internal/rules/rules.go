// Package rules implements the suggestion rule catalog.
//
// Each rule is an independent, pure predicate over aggregated history
// statistics. Rules never mutate the snapshot, and the engine's output
// is fully deterministic: identical input always yields an identical
// ordered suggestion list regardless of map iteration order.
package rules

import (
	"context"
	"sort"

	"github.com/chazuruo/histlint/internal/config"
	"github.com/chazuruo/histlint/internal/shellcheck"
	"github.com/chazuruo/histlint/internal/stats"
)

// Severity classifies a suggestion.
type Severity string

const (
	// SeverityInfo marks a tip: the command works, but could be shorter
	// or better configured.
	SeverityInfo Severity = "info"
	// SeverityWarning marks a risky habit worth flagging regardless of
	// frequency.
	SeverityWarning Severity = "warning"
)

// Suggestion is one piece of advice emitted by a rule.
type Suggestion struct {
	RuleID   string   `json:"rule_id" yaml:"rule_id"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
	// Example is the offending command when the rule matches a single
	// invocation rather than aggregate state.
	Example string `json:"example,omitempty" yaml:"example,omitempty"`
}

// Rule produces zero or more suggestions from aggregated state. The
// context is only consulted by rules that shell out (the external lint
// rule); pure rules ignore it.
type Rule interface {
	ID() string
	Evaluate(ctx context.Context, snap *stats.Snapshot) []Suggestion
}

// Catalog builds the fixed rule list from configuration. The external
// lint runner may be nil, in which case that rule contributes nothing.
func Catalog(cfg *config.Config, shell string, histIgnore map[string]bool, linter shellcheck.Runner) []Rule {
	rules := []Rule{
		&FrequentFullCommand{
			MinRepeats: cfg.Rules.MinRepeats,
			MaxSpread:  cfg.Rules.MaxSpread,
			HistIgnore: histIgnore,
		},
		&FrequentCommandName{
			NameThreshold: cfg.Rules.NameThreshold,
			VariedArgsMin: cfg.Rules.VariedArgsMin,
		},
		&ShorterSyntax{
			MinRepeats: cfg.Rules.MinRepeats,
		},
		&Rename{
			Ratio: cfg.Rules.RenameRatio,
		},
		&HistoryIgnore{
			Shell:      shell,
			MaxLen:     cfg.Rules.ShortCommandLen,
			MinRepeats: cfg.Rules.MinRepeats,
			MaxSpread:  cfg.Rules.MaxSpread,
		},
		&Dangerous{},
	}

	if cfg.Shellcheck.Enabled && linter != nil {
		rules = append(rules, &Shellcheck{
			Runner:      linter,
			MaxFindings: cfg.Shellcheck.MaxFindings,
		})
	}

	return rules
}

// Evaluate runs every rule and returns the combined suggestions in
// display order: warnings before tips, then by example, then by rule
// ID, then by message. Rule evaluation order never affects the result.
func Evaluate(ctx context.Context, rules []Rule, snap *stats.Snapshot) []Suggestion {
	var suggestions []Suggestion
	for _, rule := range rules {
		suggestions = append(suggestions, rule.Evaluate(ctx, snap)...)
	}
	Sort(suggestions)
	return suggestions
}

// Sort orders suggestions deterministically for display.
func Sort(suggestions []Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Severity != b.Severity {
			return a.Severity == SeverityWarning
		}
		if a.Example != b.Example {
			return a.Example < b.Example
		}
		if a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		return a.Message < b.Message
	})
}

// qualifies implements the shared frequency gate: a count qualifies
// when it repeats enough and makes up a large enough share of the
// history (total/count <= maxSpread).
func qualifies(count, total, minRepeats, maxSpread int) bool {
	if count < minRepeats {
		return false
	}
	return total/count <= maxSpread
}
