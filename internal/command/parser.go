// Package command turns raw history lines into parsed invocations.
//
// This is deliberately not a shell parser. It splits a line into a
// command name and argument tokens well enough for frequency statistics
// and pattern matching; it never expands, rewrites or executes anything.
package command

import "strings"

// Invocation is one parsed command line from the history.
type Invocation struct {
	// Name is the command name (first token). Never empty.
	Name string
	// Args are the remaining tokens in order, with surrounding quotes
	// stripped.
	Args []string
	// Raw is the trimmed original line, kept for display and for the
	// external lint pass.
	Raw string
}

// Parse parses a raw history line. It is a total function: for any
// input it either returns an Invocation with a non-empty Name, or
// ok=false for lines that carry no command (blank, whitespace-only, or
// shell comments). It never fails on malformed input; worst case the
// whole line becomes a single-token command.
func Parse(raw string) (Invocation, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Invocation{}, false
	}

	tokens := tokenize(trimmed)
	// Quoted empty strings produce empty tokens; the command name must
	// be non-empty, so skip past them.
	for len(tokens) > 0 && tokens[0] == "" {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return Invocation{}, false
	}

	return Invocation{
		Name: tokens[0],
		Args: tokens[1:],
		Raw:  trimmed,
	}, true
}

// ParseAll parses a batch of raw lines, dropping the ones that produce
// no invocation.
func ParseAll(raws []string) []Invocation {
	invocations := make([]Invocation, 0, len(raws))
	for _, raw := range raws {
		if inv, ok := Parse(raw); ok {
			invocations = append(invocations, inv)
		}
	}
	return invocations
}

// tokenize splits a line on whitespace, honoring simple single and
// double quoting: a quoted span groups into one token and the quotes
// are stripped. Unbalanced quotes fall back to a naive whitespace
// split of the entire line rather than failing. History-expansion
// references like !! stay opaque tokens.
func tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	inToken := false
	var quote byte

	flush := func() {
		if inToken {
			tokens = append(tokens, current.String())
			current.Reset()
			inToken = false
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]

		if quote != 0 {
			if c == quote {
				quote = 0
				continue
			}
			current.WriteByte(c)
			continue
		}

		switch c {
		case '\'', '"':
			quote = c
			inToken = true
		case ' ', '\t', '\n':
			flush()
		default:
			current.WriteByte(c)
			inToken = true
		}
	}

	if quote != 0 {
		// Unbalanced quote: don't guess about grouping.
		return strings.Fields(line)
	}

	flush()
	return tokens
}
