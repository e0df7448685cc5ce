package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/multiselect/internal/backend"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.widget.Destroyed() {
		return
	}
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		m.backendLastErr = fmt.Sprintf("reload %s: %v", evt.Kind, res.Err)
		m.errMsg = m.backendLastErr
		return
	}
	if !res.OptionsUpdated && !res.SettingsUpdated {
		return
	}
	m.backendLastErr = ""
	m.errMsg = ""
	if m.widget.IsOpen() && (res.OptionsUpdated || res.Rebuilt) {
		// a rebuild reopens the popup with an empty search input
		m.level.SetFilter("", 0)
		m.level.LastCursor = -1
	}
	m.sync()
	m.setInfo(fmt.Sprintf("%s reloaded", evt.Kind))
}
