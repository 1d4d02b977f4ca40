// Package cli provides tests for CLI commands.
package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chazuruo/histlint/internal/config"
	histerrors "github.com/chazuruo/histlint/internal/errors"
	"github.com/chazuruo/histlint/internal/testutil"
)

func TestRunReport_MissingHistoryFile(t *testing.T) {
	tmpDir := t.TempDir()

	opts := &ReportOptions{
		ConfigPath:   writeTestConfig(t, tmpDir),
		File:         filepath.Join(tmpDir, "no-such-history"),
		Shell:        "bash",
		NoShellcheck: true,
	}

	err := runReport(context.Background(), opts)
	if err == nil {
		t.Fatal("runReport() expected error for missing history file, got nil")
	}
	if !histerrors.IsNotFound(err) {
		t.Errorf("runReport() error = %v, want not-found", err)
	}
	if !strings.Contains(err.Error(), opts.File) {
		t.Errorf("error message should include the history path, got: %s", err.Error())
	}
}

func TestRunReport_Text(t *testing.T) {
	tmpDir := t.TempDir()

	histPath := testutil.WriteHistory(t, "cd /tmp\nls -la\ncd /tmp\ngit status\n")

	opts := &ReportOptions{
		ConfigPath:   writeTestConfig(t, tmpDir),
		File:         histPath,
		Shell:        "bash",
		NoColor:      true,
		NoShellcheck: true,
	}

	out := captureStdout(t, func() {
		if err := runReport(context.Background(), opts); err != nil {
			t.Errorf("runReport() error = %v", err)
		}
	})

	for _, want := range []string{"Overview", "cd /tmp", "Warnings", "Tips"} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
}

func TestRunReport_JSON(t *testing.T) {
	tmpDir := t.TempDir()

	histPath := testutil.WriteHistory(t, "ls -la\n")

	opts := &ReportOptions{
		ConfigPath:   writeTestConfig(t, tmpDir),
		File:         histPath,
		Shell:        "bash",
		Format:       "json",
		NoShellcheck: true,
	}

	out := captureStdout(t, func() {
		if err := runReport(context.Background(), opts); err != nil {
			t.Errorf("runReport() error = %v", err)
		}
	})

	if !strings.Contains(out, `"total_commands": 1`) {
		t.Errorf("JSON output missing total_commands:\n%s", out)
	}
}

func TestApplyReportFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	opts := &ReportOptions{
		File:         "/tmp/hist",
		Shell:        "zsh",
		Limit:        50,
		Dedup:        true,
		Format:       "yaml",
		NoColor:      true,
		NoShellcheck: true,
	}

	applyReportFlags(cfg, opts)

	if cfg.History.File != "/tmp/hist" {
		t.Errorf("History.File = %q, want /tmp/hist", cfg.History.File)
	}
	if cfg.History.Shell != "zsh" {
		t.Errorf("History.Shell = %q, want zsh", cfg.History.Shell)
	}
	if cfg.History.Limit != 50 {
		t.Errorf("History.Limit = %d, want 50", cfg.History.Limit)
	}
	if !cfg.History.Dedup {
		t.Error("History.Dedup should be true")
	}
	if cfg.Report.Format != "yaml" {
		t.Errorf("Report.Format = %q, want yaml", cfg.Report.Format)
	}
	if cfg.Report.Color {
		t.Error("Report.Color should be false")
	}
	if cfg.Shellcheck.Enabled {
		t.Error("Shellcheck.Enabled should be false")
	}
}

func TestApplyReportFlags_ZeroValuesKeepConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.History.Limit = 123
	cfg.Report.Format = "json"

	applyReportFlags(cfg, &ReportOptions{})

	if cfg.History.Limit != 123 {
		t.Errorf("History.Limit = %d, want 123", cfg.History.Limit)
	}
	if cfg.Report.Format != "json" {
		t.Errorf("Report.Format = %q, want json", cfg.Report.Format)
	}
}

func TestLintShell(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "bash"},
		{"sh", "sh"},
		{"zsh", "bash"},
		{"csh", "sh"},
		{"tcsh", "sh"},
		{"fish", "sh"},
	}

	for _, tt := range tests {
		if got := lintShell(tt.shell); got != tt.want {
			t.Errorf("lintShell(%q) = %q, want %q", tt.shell, got, tt.want)
		}
	}
}

func TestSinceCutoff(t *testing.T) {
	if !sinceCutoff(0).IsZero() {
		t.Error("sinceCutoff(0) should be the zero time")
	}
	cutoff := sinceCutoff(time.Hour)
	if time.Since(cutoff) < 59*time.Minute {
		t.Errorf("sinceCutoff(1h) = %v, want about an hour ago", cutoff)
	}
}

// writeTestConfig writes a minimal config file with shellcheck disabled
// so tests never shell out, and returns its path.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	content := "[shellcheck]\nenabled = false\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	if err := w.Close(); err != nil {
		t.Fatalf("failed to close pipe: %v", err)
	}
	os.Stdout = orig

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return buf.String()
}
