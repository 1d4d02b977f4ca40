// Package stats aggregates frequency statistics over parsed invocations.
package stats

import (
	"sort"
	"strings"

	"github.com/chazuruo/histlint/internal/command"
)

// Table counts occurrences per key. Keys are unique; insertion order is
// irrelevant because tables are always consumed through Entries, which
// sorts deterministically.
type Table map[string]int

// Entry is one ranked row of a Table.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// Add increments the count for key.
func (t Table) Add(key string) { t[key]++ }

// Entries returns all rows sorted by count descending, then key
// ascending. The tie-break is byte-wise lexicographic so that reports
// are reproducible.
func (t Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t))
	for key, count := range t {
		entries = append(entries, Entry{Key: key, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Top returns the first n ranked entries.
func (t Table) Top(n int) []Entry {
	entries := t.Entries()
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Sum returns the total of all counts.
func (t Table) Sum() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// FlagKey builds the key for the (command, flag) table.
func FlagKey(name, flag string) string {
	return name + " " + flag
}

// Snapshot is the aggregated state handed to the suggestion rules.
type Snapshot struct {
	// Lines counts occurrences of each full command line (trimmed).
	Lines Table
	// Names counts occurrences of each command name regardless of
	// arguments.
	Names Table
	// Flags counts occurrences of each (command, flag) pair for every
	// argument that looks like a flag. The heuristic is nothing
	// stricter than "starts with a dash".
	Flags Table
	// Total is the number of invocations aggregated.
	Total int
	// Invocations is the original parsed stream, in order, for rules
	// that match individual command lines.
	Invocations []command.Invocation
}

// Aggregate consumes a finite sequence of invocations in one pass and
// builds the three frequency tables.
func Aggregate(invocations []command.Invocation) *Snapshot {
	snap := &Snapshot{
		Lines:       make(Table),
		Names:       make(Table),
		Flags:       make(Table),
		Invocations: invocations,
	}

	for _, inv := range invocations {
		snap.Lines.Add(inv.Raw)
		snap.Names.Add(inv.Name)
		for _, arg := range inv.Args {
			if strings.HasPrefix(arg, "-") && arg != "-" {
				snap.Flags.Add(FlagKey(inv.Name, arg))
			}
		}
		snap.Total++
	}

	return snap
}

// DistinctLines returns the distinct full command lines in ascending
// order, for consumers that need a deterministic iteration order.
func (s *Snapshot) DistinctLines() []string {
	lines := make([]string, 0, len(s.Lines))
	for line := range s.Lines {
		lines = append(lines, line)
	}
	sort.Strings(lines)
	return lines
}

// AverageLength returns the mean character length of the aggregated
// command lines, or 0 for an empty snapshot.
func (s *Snapshot) AverageLength() int {
	if s.Total == 0 {
		return 0
	}
	total := 0
	for _, inv := range s.Invocations {
		total += len(inv.Raw)
	}
	return total / s.Total
}

// AverageArgs returns the mean number of argument tokens per
// invocation, or 0 for an empty snapshot.
func (s *Snapshot) AverageArgs() int {
	if s.Total == 0 {
		return 0
	}
	total := 0
	for _, inv := range s.Invocations {
		total += len(inv.Args)
	}
	return total / s.Total
}
