package state

import "testing"

func TestSetFilterRemembersAndRestoresCursor(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two", len("two"))

	if level.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", level.Filter)
	}
	if level.FilterCursor != len("two") {
		t.Fatalf("expected cursor at end, got %d", level.FilterCursor)
	}
	if level.LastCursor != 2 {
		t.Fatalf("expected last cursor 2, got %d", level.LastCursor)
	}

	level.UpdateEntries([]Entry{{Kind: EntryItem, Key: "item:two", Value: "two", Label: "two"}})
	level.SettleCursor()
	if level.Cursor != 0 {
		t.Fatalf("expected cursor on the only match, got %d", level.Cursor)
	}

	level.SetFilter("", 0)
	level.UpdateEntries(newTestLevel("one", "two", "three").Entries)
	level.SettleCursor()
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	level := newTestLevel("alpha")

	if !level.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}

	level.FilterCursor = 1
	if !level.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if level.Filter != "azb" {
		t.Fatalf("expected insert into middle, got %q", level.Filter)
	}
	if level.FilterCursor != 2 {
		t.Fatalf("expected cursor 2 after insert, got %d", level.FilterCursor)
	}

	if !level.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", level.Filter, level.FilterCursor)
	}

	level.SetFilter("abc def", len("abc def"))
	if !level.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if level.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", level.Filter)
	}

	level.SetFilter("abc", 0)
	if level.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	level := newTestLevel("one", "two")
	level.SetFilter("one two", len("one two"))

	if !level.MoveFilterCursorWordBackward() {
		t.Fatal("expected word backward movement")
	}
	if level.FilterCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorWordForward() {
		t.Fatal("expected word forward movement")
	}
	if level.FilterCursor != len("one two") {
		t.Fatalf("expected cursor restored to end, got %d", level.FilterCursor)
	}

	if !level.MoveFilterCursorRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if level.FilterCursor != len("one two")-1 {
		t.Fatalf("expected cursor len-1, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if level.FilterCursor != len("one two") {
		t.Fatalf("expected cursor at end, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorStart() {
		t.Fatal("expected move to start")
	}
	if level.FilterCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestBestMatchIndex(t *testing.T) {
	entries := []Entry{
		{Kind: EntrySelectAll, Key: "selectAll", Label: "[Select all]"},
		{Kind: EntryItem, Key: "item:one", Value: "one", Label: "First"},
		{Kind: EntryItem, Key: "item:two", Value: "two", Label: "Second"},
		{Kind: EntryItem, Key: "item:three", Value: "three", Label: "Third"},
		{Kind: EntryOK, Key: "ok", Label: "OK"},
	}

	if idx := BestMatchIndex(entries, "Second"); idx != 2 {
		t.Fatalf("expected exact label match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(entries, "two"); idx != 2 {
		t.Fatalf("expected value match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(entries, "th"); idx != 3 {
		t.Fatalf("expected prefix match index 3, got %d", idx)
	}
	if idx := BestMatchIndex(entries, "scd"); idx != 2 {
		t.Fatalf("expected fuzzy match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(entries, "zzz"); idx != 1 {
		t.Fatalf("expected fallback to first searchable entry, got %d", idx)
	}
	if idx := BestMatchIndex(entries, "ok"); idx == 4 {
		t.Fatalf("expected controls to be skipped")
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestEntryToggleable(t *testing.T) {
	if (Entry{Kind: EntryNotice}).Toggleable() {
		t.Fatal("expected notices to be inert")
	}
	if (Entry{Kind: EntryItem, Disabled: true}).Toggleable() {
		t.Fatal("expected disabled entries to be inert")
	}
	if (Entry{Kind: EntryGroup, Inert: true}).Toggleable() {
		t.Fatal("expected headers without a checkbox to be inert")
	}
	if !(Entry{Kind: EntryItem}).Toggleable() {
		t.Fatal("expected plain items to toggle")
	}
}
