package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/multiselect/internal/ui/command"
)

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		return nil
	}
	m.errMsg = ""
	return nil
}
