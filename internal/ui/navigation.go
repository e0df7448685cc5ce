package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/multiselect/internal/logging/events"
	"github.com/atomicstack/multiselect/internal/ui/command"
	uistate "github.com/atomicstack/multiselect/internal/ui/state"
	"github.com/atomicstack/multiselect/internal/widget"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	open := m.widget.IsOpen()
	events.UI.Key(key.String(), open)
	if key.Type == tea.KeyCtrlC {
		m.aborted = true
		return tea.Quit
	}
	if open {
		return m.handleOpenKey(key)
	}
	return m.handleClosedKey(key)
}

func (m *Model) handleClosedKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case " ", "down", "o":
		m.widget.ClickChoice()
		m.afterToggle()
	case "enter", "q":
		return m.finish()
	case "esc":
		m.aborted = true
		return tea.Quit
	case "alt+a":
		return m.invoke("checkAll")
	case "alt+d":
		return m.invoke("uncheckAll")
	}
	return nil
}

func (m *Model) handleOpenKey(key tea.KeyMsg) tea.Cmd {
	if m.widget.Popup().Search != nil {
		if handled, cmd := m.handleTextInput(key); handled {
			return cmd
		}
	}
	switch key.String() {
	case "up", "ctrl+p":
		m.moveCursor(m.level.MoveCursorUp)
	case "down", "ctrl+n":
		m.moveCursor(m.level.MoveCursorDown)
	case "pgup":
		m.moveCursor(func() bool { return m.level.MoveCursorPageUp(m.maxVisibleEntries()) })
	case "pgdown":
		m.moveCursor(func() bool { return m.level.MoveCursorPageDown(m.maxVisibleEntries()) })
	case "home":
		m.moveCursor(m.level.MoveCursorHome)
	case "end":
		m.moveCursor(m.level.MoveCursorEnd)
	case " ", "tab":
		if current, ok := m.level.Current(); ok {
			m.activate(current)
		}
	case "enter":
		m.handleEnter()
	case "esc":
		m.widget.KeyDown(widget.KeyEscape)
		m.sync()
	case "shift+tab":
		m.widget.SearchKeyDown(widget.KeyShiftTab)
		m.sync()
	case "alt+a":
		return m.invoke("checkAll")
	case "alt+d":
		return m.invoke("uncheckAll")
	}
	return nil
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		m.level.EnsureCursorVisible(m.maxVisibleEntries())
		events.UI.Cursor(m.level.Cursor)
	}
}

// handleEnter toggles in single mode, accepts the search with
// FilterAcceptOnEnter and otherwise confirms like the OK button.
func (m *Model) handleEnter() {
	cfg := m.widget.GetOptions()
	if m.widget.Popup().Search != nil && cfg.FilterAcceptOnEnter && strings.TrimSpace(m.level.Filter) != "" {
		m.applySearch(widget.KeyEnter)
		return
	}
	current, ok := m.level.Current()
	if cfg.Single && ok && current.Kind == uistate.EntryItem {
		m.activate(current)
		return
	}
	if m.widget.Popup().OK != nil {
		m.widget.ClickOK()
	} else {
		m.widget.Close()
	}
	m.sync()
}

// activate performs the click that belongs to the entry.
func (m *Model) activate(e uistate.Entry) {
	if !e.Toggleable() {
		return
	}
	switch e.Kind {
	case uistate.EntrySelectAll:
		m.widget.ClickSelectAll()
	case uistate.EntryGroup:
		m.widget.ClickGroup(e.Value)
	case uistate.EntryItem:
		m.widget.ClickItem(e.Value)
	case uistate.EntryOK:
		m.widget.ClickOK()
	}
	m.sync()
}

// afterToggle resets the search text when the popup just opened, since
// opening clears the widget's search input.
func (m *Model) afterToggle() {
	if m.widget.IsOpen() {
		m.level.SetFilter("", 0)
		m.level.LastCursor = -1
	}
	m.sync()
}

func (m *Model) invoke(method string) tea.Cmd {
	cmd := m.bus.Execute(command.Request{Method: method})
	m.sync()
	return cmd
}

func (m *Model) finish() tea.Cmd {
	m.finished = true
	m.widget.Blur()
	return tea.Quit
}
