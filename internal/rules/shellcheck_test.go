package rules

import (
	"context"
	"testing"

	"github.com/chazuruo/histlint/internal/shellcheck"
)

// stubRunner is a canned shellcheck implementation for tests.
type stubRunner struct {
	available bool
	findings  map[string][]shellcheck.Finding
	calls     []string
}

func (s *stubRunner) Available() bool { return s.available }

func (s *stubRunner) Check(_ context.Context, script string) []shellcheck.Finding {
	s.calls = append(s.calls, script)
	return s.findings[script]
}

func TestShellcheckRule(t *testing.T) {
	runner := &stubRunner{
		available: true,
		findings: map[string][]shellcheck.Finding{
			"rm -rf $DIR": {
				{Line: 1, Column: 8, Level: "warning", Code: 2086, Message: "Double quote to prevent globbing."},
			},
			"echo $UNDEF": {
				{Line: 1, Column: 6, Level: "warning", Code: 2086, Message: "Double quote to prevent globbing."},
				{Line: 1, Column: 6, Level: "note", Code: 2248, Message: "Prefer double quoting."},
			},
		},
	}
	rule := &Shellcheck{Runner: runner, MaxFindings: 10}

	snap := snapshot("rm -rf $DIR", "echo $UNDEF", "rm -rf $DIR")
	got := rule.Evaluate(context.Background(), snap)

	// SC2086 is reported once even though two lines trigger it.
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2 (code-level dedup)", len(got))
	}
	if got[0].Severity != SeverityWarning {
		t.Errorf("first finding severity = %q, want warning", got[0].Severity)
	}
	if got[1].Severity != SeverityInfo {
		t.Errorf("note finding severity = %q, want info", got[1].Severity)
	}

	// Distinct lines only, in sorted order.
	if len(runner.calls) != 2 {
		t.Fatalf("runner invoked %d times, want 2 (distinct lines)", len(runner.calls))
	}
	if runner.calls[0] != "echo $UNDEF" || runner.calls[1] != "rm -rf $DIR" {
		t.Errorf("call order = %v, want sorted distinct lines", runner.calls)
	}
}

func TestShellcheckRuleCap(t *testing.T) {
	runner := &stubRunner{
		available: true,
		findings: map[string][]shellcheck.Finding{
			"a": {{Level: "warning", Code: 1}, {Level: "warning", Code: 2}},
			"b": {{Level: "warning", Code: 3}},
		},
	}
	rule := &Shellcheck{Runner: runner, MaxFindings: 2}

	got := rule.Evaluate(context.Background(), snapshot("a", "b"))
	if len(got) != 2 {
		t.Errorf("got %d suggestions, want cap of 2", len(got))
	}
}

// TestShellcheckRuleUnavailable covers the degradation contract: no
// tool, no findings, no failure.
func TestShellcheckRuleUnavailable(t *testing.T) {
	rule := &Shellcheck{Runner: &stubRunner{available: false}}

	got := rule.Evaluate(context.Background(), snapshot("rm -rf $DIR"))
	if got != nil {
		t.Errorf("got %v from unavailable tool, want nil", got)
	}
}

func TestShellcheckRuleNilRunner(t *testing.T) {
	rule := &Shellcheck{}
	if got := rule.Evaluate(context.Background(), snapshot("ls")); got != nil {
		t.Errorf("got %v from nil runner, want nil", got)
	}
}
