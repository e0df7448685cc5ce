package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/multiselect/internal/logging/events"
	"github.com/atomicstack/multiselect/internal/widget"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.level.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput edits the search input. Every change is handed to the
// widget, which refilters the list.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.level
	switch msg.String() {
	case "ctrl+u":
		if current.Filter == "" {
			return false, nil
		}
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		events.Filter.Cleared(current.ID)
		m.applySearch(widget.KeyOther)
		return true, nil
	case "ctrl+w":
		before := current.FilterCursorPos()
		if !current.DeleteFilterWordBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.WordBackspace(current.ID, current.Filter)
		m.applySearch(widget.KeyOther)
		return true, nil
	case "ctrl+a":
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorStart() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(current.ID, current.FilterCursor)
		return true, nil
	case "ctrl+e":
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorEnd() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(current.ID, current.FilterCursor)
		return true, nil
	case "alt+b":
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorWordBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(current.ID, current.FilterCursor)
		return true, nil
	case "alt+f":
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorWordForward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(current.ID, current.FilterCursor)
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune(), nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes), widget.KeyOther), nil
	case tea.KeySpace:
		return m.appendToFilter(" ", widget.KeySpace), nil
	case tea.KeyLeft:
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorRuneBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(current.ID, current.FilterCursor)
		return true, nil
	case tea.KeyRight:
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorRuneForward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(current.ID, current.FilterCursor)
		return true, nil
	}
	return false, nil
}

func (m *Model) appendToFilter(text string, key widget.Key) bool {
	if text == "" {
		return false
	}
	current := m.level
	before := current.FilterCursorPos()
	if !current.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Append(current.ID, current.Filter)
	m.applySearch(key)
	return true
}

func (m *Model) removeFilterRune() bool {
	current := m.level
	before := current.FilterCursorPos()
	if !current.DeleteFilterRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Backspace(current.ID, current.Filter)
	m.applySearch(widget.KeyOther)
	return true
}

// applySearch hands the search text to the widget and moves the cursor onto
// the best match.
func (m *Model) applySearch(key widget.Key) {
	m.forceClearInfo()
	m.errMsg = ""
	m.widget.SearchInput(m.level.Filter, key)
	if !m.widget.IsOpen() {
		// accepted: the next open starts from an empty query
		m.level.SetFilter("", 0)
		m.level.LastCursor = -1
	}
	m.sync()
	m.level.SettleCursor()
	m.level.EnsureCursorVisible(m.maxVisibleEntries())
}

func (m *Model) filterPrompt() string {
	current := m.level
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := current.Filter
	if text == "" {
		runes := []rune("(type to search)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := current.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
