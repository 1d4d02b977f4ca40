package history

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Zsh extended history format: ": <timestamp>:<elapsed>;<command>"
var zshExtendedRegex = regexp.MustCompile(`^: (\d+):(\d+);(.*)`)

// ParseZsh parses zsh history from r.
// With EXTENDED_HISTORY set, entries look like:
//
//	: 1616420000:0;ls -la
//	: 1616420100:1;git status
//
// Multi-line commands continue on subsequent lines with a trailing
// backslash. Files written without EXTENDED_HISTORY are plain
// one-command-per-line; those lines are kept verbatim.
func ParseZsh(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var currentCmd strings.Builder
	var currentTimestamp time.Time
	inEntry := false

	flush := func() {
		cmd := strings.TrimSpace(currentCmd.String())
		if cmd != "" {
			lines = append(lines, Line{
				Timestamp: currentTimestamp,
				Command:   cmd,
				Shell:     "zsh",
			})
		}
		currentCmd.Reset()
		inEntry = false
	}

	for scanner.Scan() {
		line := scanner.Text()

		if matches := zshExtendedRegex.FindStringSubmatch(line); matches != nil {
			flush()
			ts, err := strconv.ParseInt(matches[1], 10, 64)
			if err == nil {
				currentTimestamp = time.Unix(ts, 0)
			} else {
				currentTimestamp = time.Time{}
			}
			currentCmd.WriteString(matches[3])
			inEntry = true
			continue
		}

		if inEntry && strings.HasSuffix(currentCmd.String(), "\\") {
			// Continuation of a multi-line entry. Zsh stores the
			// backslash; drop it and join with a newline.
			joined := strings.TrimRight(strings.TrimSuffix(currentCmd.String(), "\\"), " \t")
			currentCmd.Reset()
			currentCmd.WriteString(joined)
			currentCmd.WriteString("\n")
			currentCmd.WriteString(line)
			continue
		}

		flush()

		// Plain (non-extended) history line.
		if strings.TrimSpace(line) != "" {
			currentTimestamp = time.Time{}
			currentCmd.WriteString(line)
			inEntry = true
		}
	}

	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
