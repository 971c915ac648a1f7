package journal

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestTailReturnsRecentLinesAndTotal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.log")
	jrnl, err := New(path)
	if err != nil {
		t.Fatalf("new journal: %v", err)
	}
	for i := 0; i < 5; i++ {
		jrnl.Info("entry-%d", i)
	}
	lines, total := jrnl.Tail(3)
	if total != 5 {
		t.Fatalf("total lines = %d, want 5", total)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestLevelsArePrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.log")
	jrnl, err := New(path)
	if err != nil {
		t.Fatalf("new journal: %v", err)
	}
	jrnl.Warn("skipped record %s", "e-1")
	lines, _ := jrnl.Tail(1)
	if len(lines) != 1 || !strings.Contains(lines[0], "WARN") {
		t.Fatalf("lines = %v, want a WARN entry", lines)
	}
}

func TestNilJournalIsSafe(t *testing.T) {
	var jrnl *Journal
	jrnl.Info("ignored")
	jrnl.Warn("ignored")
	if lines, total := jrnl.Tail(5); lines != nil || total != 0 {
		t.Fatalf("nil journal Tail = (%v, %d), want (nil, 0)", lines, total)
	}
}
