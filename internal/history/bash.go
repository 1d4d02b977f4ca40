package history

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Regex for timestamp comment lines written with HISTTIMEFORMAT: #<unix_timestamp>
var bashTimestampRegex = regexp.MustCompile(`^#(\d+)$`)

// ParseBash parses bash history from r.
// Bash history format varies:
// - With HISTTIMEFORMAT: #timestamp comment lines precede each command
// - Without HISTTIMEFORMAT: just commands, one per line
//
// Example with timestamps:
//
//	#1616420000
//	ls -la
//	#1616420100
//	git status
//
// Multi-line commands use backslash continuation and are joined with a
// newline, matching how bash writes them back to the file.
func ParseBash(r io.Reader) ([]Line, error) {
	var lines []Line
	var currentTimestamp time.Time
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")

		if line == "" {
			continue
		}

		// Timestamp comment line
		if matches := bashTimestampRegex.FindStringSubmatch(line); matches != nil {
			ts, err := strconv.ParseInt(matches[1], 10, 64)
			if err == nil {
				currentTimestamp = time.Unix(ts, 0)
			}
			continue
		}

		// Any other comment line is history-file metadata, not a command.
		if strings.HasPrefix(line, "#") {
			continue
		}

		// Multi-line commands (continuation with \)
		for strings.HasSuffix(line, "\\") {
			line = strings.TrimRight(strings.TrimSuffix(line, "\\"), " \t")
			line += "\n"
			if !scanner.Scan() {
				break
			}
			line += strings.TrimRight(scanner.Text(), " \t")
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lines = append(lines, Line{
			Timestamp: currentTimestamp,
			Command:   line,
			Shell:     "bash",
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
