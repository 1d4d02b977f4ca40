package rules

import (
	"context"
	"fmt"

	"github.com/chazuruo/histlint/internal/shellcheck"
	"github.com/chazuruo/histlint/internal/stats"
)

// Shellcheck folds findings from the external shellcheck tool into the
// suggestion stream. Each distinct command line is linted once as a
// synthetic one-line script. When the tool is unavailable or fails the
// rule silently contributes nothing.
type Shellcheck struct {
	Runner shellcheck.Runner
	// MaxFindings caps the suggestions emitted (0 = no cap).
	MaxFindings int
}

func (r *Shellcheck) ID() string { return "shellcheck" }

func (r *Shellcheck) Evaluate(ctx context.Context, snap *stats.Snapshot) []Suggestion {
	if r.Runner == nil || !r.Runner.Available() {
		return nil
	}

	var suggestions []Suggestion
	seenCodes := make(map[int]bool)

	// Distinct lines in sorted order keep the output deterministic and
	// avoid linting repeats.
	for _, line := range snap.DistinctLines() {
		if r.MaxFindings > 0 && len(suggestions) >= r.MaxFindings {
			break
		}
		for _, finding := range r.Runner.Check(ctx, line) {
			// Report each SC code once; the same quoting mistake tends
			// to recur across the whole history.
			if seenCodes[finding.Code] {
				continue
			}
			seenCodes[finding.Code] = true

			suggestions = append(suggestions, Suggestion{
				RuleID:   r.ID(),
				Severity: findingSeverity(finding.Level),
				Message:  fmt.Sprintf("%s [SC%04d]", finding.Message, finding.Code),
				Example:  line,
			})
			if r.MaxFindings > 0 && len(suggestions) >= r.MaxFindings {
				break
			}
		}
	}
	return suggestions
}

func findingSeverity(level string) Severity {
	switch level {
	case "error", "warning":
		return SeverityWarning
	default: // "note", "style"
		return SeverityInfo
	}
}
