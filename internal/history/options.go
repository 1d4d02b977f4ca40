package history

import (
	"context"
	"os/exec"
)

// CaptureShellOptions snapshots the shell's option state so advice over
// it stays a pure function of the snapshot. For bash it is the output
// of `shopt`, for zsh the output of `setopt`; the shell is started
// interactively so rc files apply. Any failure yields an empty
// snapshot, which downstream advice treats as "unknown".
func CaptureShellOptions(ctx context.Context, shell string) string {
	var listCmd string
	switch shell {
	case "bash", "sh":
		listCmd = "shopt"
	case "zsh":
		listCmd = "setopt"
	default:
		return ""
	}

	path, err := exec.LookPath(shell)
	if err != nil {
		return ""
	}

	out, err := exec.CommandContext(ctx, path, "-i", "-c", listCmd).Output()
	if err != nil {
		return ""
	}
	return string(out)
}
