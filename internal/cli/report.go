// Package cli provides Cobra command definitions for histlint.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chazuruo/histlint/internal/app"
	"github.com/chazuruo/histlint/internal/config"
	"github.com/chazuruo/histlint/internal/history"
	"github.com/chazuruo/histlint/internal/report"
	"github.com/chazuruo/histlint/internal/shellcheck"
)

// ReportOptions contains the options for the report command.
type ReportOptions struct {
	ConfigPath   string
	File         string
	Shell        string
	Limit        int
	Since        time.Duration
	Dedup        bool
	Format       string
	NoColor      bool
	NoShellcheck bool
}

// NewRootCommand creates the histlint root command. Running it without a
// subcommand behaves like `histlint report`.
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "histlint [history-file]",
		Short: "Lint your shell history",
		Long: `histlint analyzes a shell history file and prints usage statistics
together with suggestions for shortening or improving commands.

The history file is located automatically from $HISTFILE and the
detected shell, or can be given explicitly as an argument.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.File = args[0]
			}
			return runReport(cmd.Context(), opts)
		},
	}

	addReportFlags(cmd, opts)
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewVersionCommand(version, commit, date, "unknown"))

	return cmd
}

// NewReportCommand creates the report command, which runs the full
// lint pipeline over a history file and prints the result.
func NewReportCommand() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report [history-file]",
		Short: "Lint your shell history and print a report",
		Long: `Analyze a shell history file and print usage statistics together
with suggestions for shortening or improving commands.

The history file is located automatically from $HISTFILE and the
detected shell, or can be given explicitly as an argument.

Examples:
  histlint report                      # lint the default history file
  histlint report ~/.bash_history      # lint an explicit file
  histlint report --shell zsh          # force the zsh parser
  histlint report --format json        # machine-readable output
  histlint report --since 168h         # only the last week`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.File = args[0]
			}
			return runReport(cmd.Context(), opts)
		},
	}

	addReportFlags(cmd, opts)

	return cmd
}

func addReportFlags(cmd *cobra.Command, opts *ReportOptions) {
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "shell to assume (bash, zsh, csh, tcsh)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "analyze at most this many recent commands (0 = config default)")
	cmd.Flags().DurationVar(&opts.Since, "since", 0, "only analyze commands newer than this (requires timestamped history)")
	cmd.Flags().BoolVar(&opts.Dedup, "dedup", false, "drop duplicate commands before analysis")
	cmd.Flags().StringVar(&opts.Format, "format", "", "output format (text, json, yaml)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&opts.NoShellcheck, "no-shellcheck", false, "skip the external shellcheck pass")
}

func runReport(ctx context.Context, opts *ReportOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	applyReportFlags(cfg, opts)

	env := history.CaptureEnv()

	shell := cfg.History.Shell
	if shell == "" {
		shell = history.DetectShell(env)
	}

	path := cfg.History.File
	if path == "" {
		path = history.HistoryPath(shell, env, history.FileExists)
	}

	// A missing or unreadable history file is the one fatal error;
	// report it before any aggregation begins.
	lines, err := history.Read(path, shell)
	if err != nil {
		return err
	}

	lines = history.Filter(lines, history.FilterOptions{
		Limit: cfg.History.Limit,
		Dedup: cfg.History.Dedup,
		Since: sinceCutoff(opts.Since),
	})

	looseMode, statErr := history.LooseMode(path)
	if statErr != nil {
		looseMode = 0
	}

	var linter shellcheck.Runner
	if cfg.Shellcheck.Enabled {
		linter = &shellcheck.CommandRunner{
			Binary:   cfg.Shellcheck.Binary,
			Shell:    lintShell(shell),
			Excludes: cfg.Shellcheck.Excludes,
			Timeout:  time.Duration(cfg.Shellcheck.Timeout),
		}
	}

	rep := app.Lint(ctx, lines, app.Options{
		Config:       cfg,
		Shell:        shell,
		HistoryFile:  path,
		Env:          env,
		ShellOptions: history.CaptureShellOptions(ctx, shell),
		LooseMode:    looseMode,
		Linter:       linter,
	})

	return emit(rep, cfg, env)
}

func emit(rep *report.Report, cfg *config.Config, env history.Env) error {
	switch cfg.Report.Format {
	case "json":
		data, err := rep.JSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	case "yaml":
		data, err := rep.YAML()
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	default:
		// https://no-color.org: any non-empty NO_COLOR disables color.
		color := cfg.Report.Color && env.Get("NO_COLOR") == ""
		return report.NewRenderer(os.Stdout, color).Render(rep)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadWithDefaults()
}

// applyReportFlags overlays explicit command-line flags on the loaded
// configuration. Flags always win over config file and environment.
func applyReportFlags(cfg *config.Config, opts *ReportOptions) {
	if opts.File != "" {
		cfg.History.File = config.ExpandPath(opts.File)
	}
	if opts.Shell != "" {
		cfg.History.Shell = opts.Shell
	}
	if opts.Limit > 0 {
		cfg.History.Limit = opts.Limit
	}
	if opts.Dedup {
		cfg.History.Dedup = true
	}
	if opts.Format != "" {
		cfg.Report.Format = opts.Format
	}
	if opts.NoColor {
		cfg.Report.Color = false
	}
	if opts.NoShellcheck {
		cfg.Shellcheck.Enabled = false
	}
}

// lintShell maps the detected shell to a dialect shellcheck accepts.
func lintShell(shell string) string {
	switch shell {
	case "bash", "sh", "dash", "ksh":
		return shell
	case "zsh":
		// shellcheck has no zsh dialect; bash is the closest.
		return "bash"
	default:
		return "sh"
	}
}

func sinceCutoff(since time.Duration) time.Time {
	if since <= 0 {
		return time.Time{}
	}
	return time.Now().Add(-since)
}
