package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"

	"github.com/chazuruo/histlint/internal/stats"
)

// Renderer writes a report as human-readable text.
type Renderer struct {
	out   io.Writer
	color bool

	headerStyle  lipgloss.Style
	warnStyle    lipgloss.Style
	tipStyle     lipgloss.Style
	subtleStyle  lipgloss.Style
	commandStyle lipgloss.Style
}

// NewRenderer creates a text renderer. Styling is applied only when
// color is true; callers should disable it for NO_COLOR, non-TTY
// output, and tests.
func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{
		out:   out,
		color: color,
		headerStyle: lipgloss.NewStyle().
			Reverse(true).
			Bold(true),
		warnStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		tipStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")),
		subtleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		commandStyle: lipgloss.NewStyle().
			Bold(true),
	}
}

// Render writes the full report.
func (r *Renderer) Render(rep *Report) error {
	r.header("Overview", false)
	fmt.Fprintf(r.out, "shell:        %s\n", rep.Shell)
	fmt.Fprintf(r.out, "history file: %s\n", rep.HistoryFile)
	fmt.Fprintf(r.out, "commands:     %d\n", rep.TotalCommands)
	fmt.Fprintf(r.out, "%s\n", r.subtle(fmt.Sprintf(
		"commands average %d characters with %s",
		rep.AverageLength, plural(rep.AverageArgs, "argument"))))

	r.header(fmt.Sprintf("Top %d commands", len(rep.TopCommands)), true)
	r.renderTable(rep.TopCommands, rep.TotalCommands)

	r.header(fmt.Sprintf("Top %d with arguments", len(rep.TopWithArguments)), true)
	r.renderTable(rep.TopWithArguments, rep.TotalCommands)

	if len(rep.TopFlags) > 0 {
		r.header(fmt.Sprintf("Top %d flags", len(rep.TopFlags)), true)
		r.renderTable(rep.TopFlags, rep.TotalCommands)
	}

	warnings := rep.Warnings()
	tips := rep.Tips()

	r.header("Warnings", true)
	if len(warnings) == 0 {
		fmt.Fprintln(r.out, "Nothing to report.")
	}
	for _, s := range warnings {
		if s.Example != "" {
			fmt.Fprintln(r.out, r.command(s.Example))
		}
		fmt.Fprintf(r.out, "%s\n", r.warn("^-- "+s.Message))
	}

	r.header("Tips", true)
	if len(tips) == 0 {
		fmt.Fprintln(r.out, "Nothing to report.")
	}
	for _, s := range tips {
		if s.Example != "" {
			fmt.Fprintln(r.out, r.command(s.Example))
		}
		fmt.Fprintf(r.out, "%s\n", r.tip("^-- "+s.Message))
	}

	if !rep.LintAvailable {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, r.subtle("shellcheck not installed - see https://www.shellcheck.net"))
	}

	return nil
}

func (r *Renderer) renderTable(entries []stats.Entry, total int) {
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "Nothing to report.")
		return
	}

	tbl := table.New("Command", "Count", "Share").WithWriter(r.out)
	if r.color {
		headerStyle := r.headerStyle
		tbl = tbl.WithHeaderFormatter(func(format string, vals ...interface{}) string {
			return headerStyle.Render(fmt.Sprintf(format, vals...))
		})
	}
	for _, entry := range entries {
		share := "0.0%"
		if total > 0 {
			share = fmt.Sprintf("%.1f%%", 100*float64(entry.Count)/float64(total))
		}
		tbl.AddRow(entry.Key, fmt.Sprintf("%d/%d", entry.Count, total), share)
	}
	tbl.Print()
}

func (r *Renderer) header(title string, leadingNewline bool) {
	if leadingNewline {
		fmt.Fprintln(r.out)
	}
	if r.color {
		fmt.Fprintln(r.out, r.headerStyle.Render(" "+title+" "))
	} else {
		fmt.Fprintf(r.out, "== %s ==\n", title)
	}
}

func (r *Renderer) warn(s string) string {
	if r.color {
		return r.warnStyle.Render(s)
	}
	return s
}

func (r *Renderer) tip(s string) string {
	if r.color {
		return r.tipStyle.Render(s)
	}
	return s
}

func (r *Renderer) subtle(s string) string {
	if r.color {
		return r.subtleStyle.Render(s)
	}
	return s
}

func (r *Renderer) command(s string) string {
	if r.color {
		return r.commandStyle.Render(s)
	}
	return s
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
