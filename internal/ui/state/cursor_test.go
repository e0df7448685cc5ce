package state

import "testing"

func newTestLevel(values ...string) *Level {
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry{Kind: EntryItem, Key: "item:" + v, Value: v, Label: v}
	}
	return NewLevel("test", entries)
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 0
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}

	empty := newTestLevel()
	if empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 0
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on first page down")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on second page down")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(2) {
		t.Fatalf("expected movement on page up")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp(10) {
		t.Fatalf("expected movement back to start")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.ViewportOffset = 0
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}

func TestMoveCursorUpDown(t *testing.T) {
	l := newTestLevel("a", "b")
	if l.MoveCursorUp() {
		t.Fatalf("expected no movement above the first entry")
	}
	if !l.MoveCursorDown() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	if l.MoveCursorDown() {
		t.Fatalf("expected no movement past the last entry")
	}
}

func TestUpdateEntriesKeepsCursorOnKey(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	l.UpdateEntries([]Entry{
		{Kind: EntryItem, Key: "item:c", Value: "c"},
		{Kind: EntryItem, Key: "item:a", Value: "a"},
	})
	if l.Cursor != 0 {
		t.Fatalf("expected cursor to follow key c to 0, got %d", l.Cursor)
	}

	l.Cursor = 1
	l.UpdateEntries([]Entry{{Kind: EntryItem, Key: "item:z", Value: "z"}})
	if l.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", l.Cursor)
	}

	l.UpdateEntries(nil)
	if _, ok := l.Current(); ok {
		t.Fatalf("expected no current entry for an empty level")
	}
}

func TestVisibleWindow(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	got, start := l.Visible(2)
	if start != 3 || len(got) != 2 || got[1].Value != "e" {
		t.Fatalf("unexpected window start=%d entries=%#v", start, got)
	}
	all, start := l.Visible(0)
	if start != 0 || len(all) != 5 {
		t.Fatalf("expected every entry without a limit, got %d from %d", len(all), start)
	}
}
