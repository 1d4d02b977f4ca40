// Package app wires the lint pipeline: history lines in, report out.
package app

import (
	"context"
	"io/fs"

	"github.com/chazuruo/histlint/internal/command"
	"github.com/chazuruo/histlint/internal/config"
	"github.com/chazuruo/histlint/internal/history"
	"github.com/chazuruo/histlint/internal/report"
	"github.com/chazuruo/histlint/internal/rules"
	"github.com/chazuruo/histlint/internal/shellcheck"
	"github.com/chazuruo/histlint/internal/stats"
)

// Options carries everything the pipeline needs besides the history
// lines themselves. All environment state is captured here up front so
// the pipeline is a function of its inputs.
type Options struct {
	Config *config.Config
	// Shell is the resolved shell name ("bash", "zsh", ...).
	Shell string
	// HistoryFile is the resolved history file path, for display and
	// permission advice.
	HistoryFile string
	// Env is the environment snapshot used for configuration advice.
	Env history.Env
	// ShellOptions is the shell's option snapshot (`shopt`/`setopt`
	// output); empty when it could not be captured.
	ShellOptions string
	// LooseMode holds the history file's group/other read bits, or 0.
	LooseMode fs.FileMode
	// Linter is the external lint collaborator; nil disables that rule.
	Linter shellcheck.Runner
}

// Lint runs the full pipeline over the given history lines:
// parse -> aggregate -> evaluate rules -> assemble report.
// Given identical inputs the result is always identical.
func Lint(ctx context.Context, lines []history.Line, opts Options) *report.Report {
	cfg := opts.Config

	raws := make([]string, len(lines))
	for i, line := range lines {
		raws[i] = line.Command
	}

	invocations := command.ParseAll(raws)
	snap := stats.Aggregate(invocations)

	histIgnore := rules.HistIgnoreSet(opts.Env)
	catalog := rules.Catalog(cfg, opts.Shell, histIgnore, opts.Linter)

	suggestions := rules.Evaluate(ctx, catalog, snap)
	suggestions = append(suggestions,
		rules.EnvironmentAdvice(opts.Shell, opts.Env, opts.LooseMode, opts.HistoryFile, opts.ShellOptions)...)
	rules.Sort(suggestions)

	lintAvailable := cfg.Shellcheck.Enabled && opts.Linter != nil && opts.Linter.Available()

	return &report.Report{
		Shell:            opts.Shell,
		HistoryFile:      opts.HistoryFile,
		TotalCommands:    snap.Total,
		AverageLength:    snap.AverageLength(),
		AverageArgs:      snap.AverageArgs(),
		TopCommands:      snap.Names.Top(cfg.Report.TopCommands),
		TopWithArguments: snap.Lines.Top(cfg.Report.TopWithArguments),
		TopFlags:         snap.Flags.Top(cfg.Report.TopCommands),
		Suggestions:      suggestions,
		LintAvailable:    lintAvailable,
	}
}
