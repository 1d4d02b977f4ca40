// Package shellcheck invokes the shellcheck binary as a best-effort
// collaborator. The tool being absent, timing out or exiting non-zero
// without usable output never fails the caller; it just means no
// findings.
package shellcheck

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Finding is one shellcheck diagnostic for a one-line script.
type Finding struct {
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Level   string `json:"level" yaml:"level"` // "error", "warning", "note", "style"
	Code    int    `json:"code" yaml:"code"`   // numeric part of SCnnnn
	Message string `json:"message" yaml:"message"`
}

// Runner checks a shell snippet and returns findings.
type Runner interface {
	// Check lints script as a one-line shell script. A nil slice with a
	// nil error means no findings (including "tool unavailable").
	Check(ctx context.Context, script string) []Finding
	// Available reports whether the tool can be invoked at all.
	Available() bool
}

// CommandRunner runs the real shellcheck binary.
type CommandRunner struct {
	// Binary is the executable name or path.
	Binary string
	// Shell is passed to --shell.
	Shell string
	// Excludes are SC codes passed to --exclude.
	Excludes []int
	// Timeout bounds each invocation (0 = no timeout).
	Timeout time.Duration
}

// Available reports whether the shellcheck binary is on PATH.
func (r *CommandRunner) Available() bool {
	_, err := exec.LookPath(r.Binary)
	return err == nil
}

// Check feeds script to shellcheck on stdin and parses its gcc-format
// output. shellcheck exits non-zero whenever it has findings, so exit
// status is ignored; only the output matters. Every failure mode
// degrades to zero findings.
func (r *CommandRunner) Check(ctx context.Context, script string) []Finding {
	if !r.Available() {
		return nil
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	args := []string{"--format=gcc"}
	if r.Shell != "" {
		args = append(args, "--shell="+r.Shell)
	}
	if len(r.Excludes) > 0 {
		codes := make([]string, len(r.Excludes))
		for i, code := range r.Excludes {
			codes[i] = strconv.Itoa(code)
		}
		args = append(args, "--exclude="+strings.Join(codes, ","))
	}
	args = append(args, "-")

	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Stdin = strings.NewReader(script + "\n")

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = nil

	// Non-zero exit means findings were produced; a genuine failure
	// leaves stdout empty and parses to nothing.
	_ = cmd.Run()

	return ParseGCC(stdout.String())
}

// gcc format: <file>:<line>:<col>: <level>: <message> [SCnnnn]
var gccLineRegex = regexp.MustCompile(`^.+?:(\d+):(\d+):\s+(\w+):\s+(.*?)\s*\[SC(\d+)\]$`)

// ParseGCC parses shellcheck --format=gcc output into findings.
// Unparseable lines are skipped.
func ParseGCC(output string) []Finding {
	var findings []Finding
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		matches := gccLineRegex.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		lineNo, _ := strconv.Atoi(matches[1])
		col, _ := strconv.Atoi(matches[2])
		code, _ := strconv.Atoi(matches[5])
		findings = append(findings, Finding{
			Line:    lineNo,
			Column:  col,
			Level:   matches[3],
			Code:    code,
			Message: matches[4],
		})
	}
	return findings
}

// String renders a finding the way shellcheck's gcc format does, minus
// the filename.
func (f Finding) String() string {
	return fmt.Sprintf("%d:%d: %s: %s [SC%04d]", f.Line, f.Column, f.Level, f.Message, f.Code)
}
