package state

// EntryKind says what a popup line does when activated.
type EntryKind int

const (
	EntrySelectAll EntryKind = iota
	EntryGroup
	EntryItem
	EntryOK
	EntryNotice
)

// Entry is one line of the rendered popup.
type Entry struct {
	Kind     EntryKind
	Key      string
	Value    string
	Label    string
	Indent   bool
	Checked  bool
	Disabled bool
	// Inert entries are shown but cannot be toggled.
	Inert bool
	Radio bool
}

// Toggleable reports whether activating the entry changes anything.
func (e Entry) Toggleable() bool {
	return !e.Inert && !e.Disabled && e.Kind != EntryNotice
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
