// Package report assembles and renders the history lint report.
package report

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/chazuruo/histlint/internal/rules"
	"github.com/chazuruo/histlint/internal/stats"
)

// Report is the structured result of one lint run. It renders to text
// by default and marshals directly for the json/yaml output formats.
type Report struct {
	Shell         string `json:"shell" yaml:"shell"`
	HistoryFile   string `json:"history_file" yaml:"history_file"`
	TotalCommands int    `json:"total_commands" yaml:"total_commands"`
	AverageLength int    `json:"average_length" yaml:"average_length"`
	AverageArgs   int    `json:"average_args" yaml:"average_args"`

	TopCommands      []stats.Entry `json:"top_commands" yaml:"top_commands"`
	TopWithArguments []stats.Entry `json:"top_with_arguments" yaml:"top_with_arguments"`
	TopFlags         []stats.Entry `json:"top_flags,omitempty" yaml:"top_flags,omitempty"`

	Suggestions []rules.Suggestion `json:"suggestions" yaml:"suggestions"`

	// LintAvailable records whether the external lint tool could be
	// invoked; the text renderer prints a pointer to it when absent.
	LintAvailable bool `json:"lint_available" yaml:"lint_available"`
}

// Warnings returns the warning-severity suggestions in display order.
func (r *Report) Warnings() []rules.Suggestion {
	return r.filter(rules.SeverityWarning)
}

// Tips returns the info-severity suggestions in display order.
func (r *Report) Tips() []rules.Suggestion {
	return r.filter(rules.SeverityInfo)
}

func (r *Report) filter(severity rules.Severity) []rules.Suggestion {
	var out []rules.Suggestion
	for _, s := range r.Suggestions {
		if s.Severity == severity {
			out = append(out, s)
		}
	}
	return out
}

// JSON marshals the report with indentation.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// YAML marshals the report.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
