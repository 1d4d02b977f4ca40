package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/histlint/internal/config"
	"github.com/chazuruo/histlint/internal/history"
	"github.com/chazuruo/histlint/internal/report"
	"github.com/chazuruo/histlint/internal/rules"
)

func histLines(commands ...string) []history.Line {
	lines := make([]history.Line, len(commands))
	for i, cmd := range commands {
		lines[i] = history.Line{Command: cmd, Shell: "bash"}
	}
	return lines
}

func baseOptions() Options {
	cfg := config.DefaultConfig()
	cfg.Shellcheck.Enabled = false
	return Options{
		Config:      cfg,
		Shell:       "bash",
		HistoryFile: "/home/u/.bash_history",
		Env:         history.Env{"HISTSIZE": "10000", "HISTFILESIZE": "20000"},
	}
}

func TestLintFrequencyTables(t *testing.T) {
	lines := histLines("ls -la", "ls -la", "cd /tmp", "ls -la")
	rep := Lint(context.Background(), lines, baseOptions())

	require.Equal(t, 4, rep.TotalCommands)

	require.NotEmpty(t, rep.TopWithArguments)
	assert.Equal(t, "ls -la", rep.TopWithArguments[0].Key)
	assert.Equal(t, 3, rep.TopWithArguments[0].Count)
	assert.Equal(t, "cd /tmp", rep.TopWithArguments[1].Key)
	assert.Equal(t, 1, rep.TopWithArguments[1].Count)

	assert.Equal(t, "ls", rep.TopCommands[0].Key)
	assert.Equal(t, 3, rep.TopCommands[0].Count)
	assert.Equal(t, "cd", rep.TopCommands[1].Key)
	assert.Equal(t, 1, rep.TopCommands[1].Count)
}

func TestLintWhitespaceOnlyLines(t *testing.T) {
	rep := Lint(context.Background(), histLines("   "), baseOptions())

	assert.Equal(t, 0, rep.TotalCommands)
	assert.Empty(t, rep.TopCommands)
	assert.Empty(t, rep.TopWithArguments)
}

func TestLintFrequentFullCommand(t *testing.T) {
	opts := baseOptions()
	opts.Config.Rules.MinRepeats = 3

	lines := histLines(
		"git status", "git status", "git status", "git status", "git status",
	)
	rep := Lint(context.Background(), lines, opts)

	var matched []rules.Suggestion
	for _, s := range rep.Suggestions {
		if s.RuleID == "frequent-full-command" {
			matched = append(matched, s)
		}
	}
	require.Len(t, matched, 1)
	assert.Equal(t, "git status", matched[0].Example)
}

func TestLintDangerousWarning(t *testing.T) {
	rep := Lint(context.Background(), histLines("rm -rf ./*"), baseOptions())

	var warnings []rules.Suggestion
	for _, s := range rep.Suggestions {
		if s.RuleID == "dangerous-pattern" {
			warnings = append(warnings, s)
		}
	}
	require.Len(t, warnings, 1)
	assert.Equal(t, rules.SeverityWarning, warnings[0].Severity)
	assert.Equal(t, "rm -rf ./*", warnings[0].Example)
}

// TestLintWithoutLinter checks that the pipeline completes when the
// external lint tool contributes nothing.
func TestLintWithoutLinter(t *testing.T) {
	opts := baseOptions()
	opts.Config.Shellcheck.Enabled = true
	opts.Linter = nil

	rep := Lint(context.Background(), histLines("echo $X"), opts)

	assert.False(t, rep.LintAvailable)
	for _, s := range rep.Suggestions {
		assert.NotEqual(t, "shellcheck", s.RuleID)
	}
}

// TestLintIdempotent runs the pipeline twice over the same input and
// requires byte-identical rendered output.
func TestLintIdempotent(t *testing.T) {
	lines := histLines(
		"git status", "git status", "git status",
		"rm -rf ./*", "cd ~", "ls -la", "ls -la",
		"mv deploy/config.yaml deploy/config.bak",
	)

	render := func() string {
		rep := Lint(context.Background(), lines, baseOptions())
		var buf bytes.Buffer
		require.NoError(t, report.NewRenderer(&buf, false).Render(rep))
		return buf.String()
	}

	first := render()
	for i := 0; i < 10; i++ {
		require.Equal(t, first, render())
	}
}

func TestLintEnvironmentAdvice(t *testing.T) {
	opts := baseOptions()
	opts.Env = history.Env{"HISTSIZE": "100"}
	opts.LooseMode = 0o044

	rep := Lint(context.Background(), nil, opts)

	var ids []string
	for _, s := range rep.Suggestions {
		ids = append(ids, s.RuleID)
	}
	assert.Contains(t, ids, "environment")

	// Permission warning sorts with the warnings.
	require.NotEmpty(t, rep.Warnings())
	assert.Contains(t, rep.Warnings()[0].Message, "chmod 600")
}

func TestLintShellOptionAdvice(t *testing.T) {
	opts := baseOptions()
	opts.Env = history.Env{"HISTSIZE": "10000", "HISTFILESIZE": "20000"}
	opts.ShellOptions = "histappend     \toff\n"

	rep := Lint(context.Background(), nil, opts)

	var messages []string
	for _, s := range rep.Suggestions {
		messages = append(messages, s.Message)
	}
	assert.Contains(t, messages, `run "shopt -s histappend" to retain more history`)
}
