package stats

import (
	"reflect"
	"testing"

	"github.com/chazuruo/histlint/internal/command"
)

func parseAll(t *testing.T, raws ...string) []command.Invocation {
	t.Helper()
	return command.ParseAll(raws)
}

func TestAggregate(t *testing.T) {
	invocations := parseAll(t, "ls -la", "ls -la", "cd /tmp", "ls -la")
	snap := Aggregate(invocations)

	if snap.Total != 4 {
		t.Errorf("Total = %d, want 4", snap.Total)
	}
	if snap.Lines["ls -la"] != 3 {
		t.Errorf("Lines[ls -la] = %d, want 3", snap.Lines["ls -la"])
	}
	if snap.Lines["cd /tmp"] != 1 {
		t.Errorf("Lines[cd /tmp] = %d, want 1", snap.Lines["cd /tmp"])
	}
	if snap.Names["ls"] != 3 {
		t.Errorf("Names[ls] = %d, want 3", snap.Names["ls"])
	}
	if snap.Names["cd"] != 1 {
		t.Errorf("Names[cd] = %d, want 1", snap.Names["cd"])
	}
	if snap.Flags[FlagKey("ls", "-la")] != 3 {
		t.Errorf("Flags[ls -la] = %d, want 3", snap.Flags[FlagKey("ls", "-la")])
	}
}

func TestAggregateEmpty(t *testing.T) {
	snap := Aggregate(nil)
	if snap.Total != 0 || len(snap.Lines) != 0 || len(snap.Names) != 0 || len(snap.Flags) != 0 {
		t.Errorf("Aggregate(nil) produced non-empty snapshot: %+v", snap)
	}
}

func TestAggregateWhitespaceOnlyInput(t *testing.T) {
	snap := Aggregate(parseAll(t, "   "))
	if snap.Total != 0 {
		t.Errorf("whitespace-only line produced %d invocations, want 0", snap.Total)
	}
}

// TestConservation checks that the full-line counts sum to the number
// of invocations.
func TestConservation(t *testing.T) {
	raws := []string{
		"git status", "git status", "make", "ls -la", "   ", "# skip",
		"du -sh .", "git status",
	}
	invocations := command.ParseAll(raws)
	snap := Aggregate(invocations)

	if snap.Lines.Sum() != len(invocations) {
		t.Errorf("Lines.Sum() = %d, want %d", snap.Lines.Sum(), len(invocations))
	}
	if snap.Names.Sum() != len(invocations) {
		t.Errorf("Names.Sum() = %d, want %d", snap.Names.Sum(), len(invocations))
	}
}

func TestFlagHeuristic(t *testing.T) {
	snap := Aggregate(parseAll(t,
		"tar -xzf a.tgz",
		"tar --extract b.tgz",
		"cat - file",
	))

	if snap.Flags[FlagKey("tar", "-xzf")] != 1 {
		t.Error("short flag not counted")
	}
	if snap.Flags[FlagKey("tar", "--extract")] != 1 {
		t.Error("long flag not counted")
	}
	// A bare dash means stdin, not a flag.
	if snap.Flags[FlagKey("cat", "-")] != 0 {
		t.Error("bare dash counted as flag")
	}
	if snap.Flags[FlagKey("tar", "a.tgz")] != 0 {
		t.Error("non-flag argument counted as flag")
	}
}

func TestEntriesRanking(t *testing.T) {
	table := Table{"b": 2, "a": 2, "c": 5, "d": 1}
	got := table.Entries()
	want := []Entry{{"c", 5}, {"a", 2}, {"b", 2}, {"d", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
}

// TestEntriesDeterminism runs the same ranking repeatedly; map
// iteration order must never leak into the result.
func TestEntriesDeterminism(t *testing.T) {
	table := Table{"x": 1, "y": 1, "z": 1, "w": 1, "v": 1}
	first := table.Entries()
	for i := 0; i < 50; i++ {
		if !reflect.DeepEqual(table.Entries(), first) {
			t.Fatal("Entries() order varied between calls")
		}
	}
}

func TestTop(t *testing.T) {
	table := Table{"a": 3, "b": 2, "c": 1}
	got := table.Top(2)
	want := []Entry{{"a", 3}, {"b", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Top(2) = %v, want %v", got, want)
	}

	if len(table.Top(10)) != 3 {
		t.Error("Top(10) should return all entries")
	}
}

func TestDistinctLines(t *testing.T) {
	snap := Aggregate(parseAll(t, "b cmd", "a cmd", "b cmd"))
	got := snap.DistinctLines()
	want := []string{"a cmd", "b cmd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctLines() = %v, want %v", got, want)
	}
}

func TestAverages(t *testing.T) {
	snap := Aggregate(parseAll(t, "ls -la /tmp", "cd"))

	// ("ls -la /tmp" = 11 chars + "cd" = 2 chars) / 2 = 6
	if got := snap.AverageLength(); got != 6 {
		t.Errorf("AverageLength() = %d, want 6", got)
	}
	// (2 args + 0 args) / 2 = 1
	if got := snap.AverageArgs(); got != 1 {
		t.Errorf("AverageArgs() = %d, want 1", got)
	}

	empty := Aggregate(nil)
	if empty.AverageLength() != 0 || empty.AverageArgs() != 0 {
		t.Error("averages over empty snapshot should be 0")
	}
}
