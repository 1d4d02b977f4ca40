package history

import (
	"bufio"
	"io"
	"strings"
)

// ParsePlain parses a plain one-command-per-line history file, the
// format used by csh and tcsh (~/.history). No timestamps are recorded.
func ParsePlain(r io.Reader, shell string) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, Line{
			Command: line,
			Shell:   shell,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
