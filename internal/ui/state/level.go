package state

// Level tracks the popup cursor, the search text and the scroll offset.
type Level struct {
	ID             string
	Entries        []Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level using the provided entries.
func NewLevel(id string, entries []Entry) *Level {
	l := &Level{
		ID:         id,
		LastCursor: -1,
	}
	l.UpdateEntries(entries)
	return l
}

// IndexOf returns the index for a given entry key.
func (l *Level) IndexOf(key string) int {
	if key == "" {
		return -1
	}
	for i, e := range l.Entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// Current returns the entry under the cursor.
func (l *Level) Current() (Entry, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Entries) {
		return Entry{}, false
	}
	return l.Entries[l.Cursor], true
}

// UpdateEntries replaces the entries and keeps the cursor on the same key
// when it is still present.
func (l *Level) UpdateEntries(entries []Entry) {
	key := ""
	if cur, ok := l.Current(); ok {
		key = cur.Key
	}
	prevOffset := l.ViewportOffset
	l.Entries = CloneEntries(entries)
	if len(l.Entries) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if idx := l.IndexOf(key); idx >= 0 {
		l.Cursor = idx
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Entries) {
		l.Cursor = len(l.Entries) - 1
	}
	if prevOffset < 0 || prevOffset > len(l.Entries)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
