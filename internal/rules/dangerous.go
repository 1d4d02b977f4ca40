package rules

import (
	"context"
	"fmt"
	"regexp"

	"github.com/chazuruo/histlint/internal/stats"
)

// dangerousPatterns contains patterns for risky habits worth flagging
// regardless of how often they occur.
var dangerousPatterns = []struct {
	pattern *regexp.Regexp
	name    string
	risk    string
}{
	{
		pattern: regexp.MustCompile(`(?i)\brm\s+(-[a-z]*r[a-z]*\s+)+/(\s|$)`),
		name:    "Recursive delete from root",
		risk:    "will delete everything under /",
	},
	{
		pattern: regexp.MustCompile(`(?i)\brm\s+(-[a-z]*[rf][a-z]*\s+)+\S*\*`),
		name:    "Destructive delete with unquoted glob",
		risk:    "the shell expands the glob before rm sees it; a stray space deletes more than intended",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bdd\s+.*(if|of)=/dev/`),
		name:    "Raw device write",
		risk:    "will destroy all data on the target device",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bmkfs(\.[a-z0-9]+)?\b`),
		name:    "Filesystem creation",
		risk:    "creates a new filesystem, destroying existing data",
	},
	{
		pattern: regexp.MustCompile(`(?i)chmod\s+-R\s+777`),
		name:    "World-writable permissions",
		risk:    "makes every file writable by every user",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bgit\s+push\s+(--force|-f)\b`),
		name:    "Force push",
		risk:    "may overwrite remote history",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bgit\s+branch\s+-D\b`),
		name:    "Forced branch deletion",
		risk:    "deletes the branch even when unmerged",
	},
	{
		pattern: regexp.MustCompile(`(?i):\s*>\s*\S+`),
		name:    "File truncation",
		risk:    "truncates the file to zero bytes",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bcurl\b.*\|\s*(ba)?sh\b`),
		name:    "Piped download execution",
		risk:    "runs unreviewed remote code",
	},
}

// Dangerous flags invocations matching the risky-pattern table with
// warning severity. Each distinct command line produces at most one
// warning, from the first matching pattern.
type Dangerous struct{}

func (r *Dangerous) ID() string { return "dangerous-pattern" }

func (r *Dangerous) Evaluate(_ context.Context, snap *stats.Snapshot) []Suggestion {
	var suggestions []Suggestion
	for _, line := range snap.DistinctLines() {
		for _, p := range dangerousPatterns {
			if !p.pattern.MatchString(line) {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				RuleID:   r.ID(),
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("%s: %s", p.name, p.risk),
				Example:  line,
			})
			break
		}
	}
	return suggestions
}
