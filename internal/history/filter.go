package history

// Filter filters history lines based on the given options.
// It walks newest-to-oldest so that Limit and Dedup keep the most recent
// occurrences, then restores chronological order.
func Filter(lines []Line, opts FilterOptions) []Line {
	var result []Line
	seen := make(map[string]bool)

	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]

		if !opts.Since.IsZero() && !line.Timestamp.IsZero() && line.Timestamp.Before(opts.Since) {
			continue
		}

		if opts.Dedup {
			if seen[line.Command] {
				continue
			}
			seen[line.Command] = true
		}

		result = append(result, line)

		if opts.Limit > 0 && len(result) >= opts.Limit {
			break
		}
	}

	// Reverse back to chronological order
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return result
}
