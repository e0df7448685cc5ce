package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/multiselect/internal/inputbus"
	"github.com/atomicstack/multiselect/internal/layout"
	"github.com/atomicstack/multiselect/internal/logging/events"
	uistate "github.com/atomicstack/multiselect/internal/ui/state"
	"github.com/atomicstack/multiselect/internal/widget"
)

const footerText = "space toggle  enter confirm  esc close  alt+a all  alt+d none  ctrl+c abort"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model. It also records which screen row belongs to
// which target so mouse clicks can be routed.
func (m *Model) View() string {
	m.hits = make(map[int]hit)
	lines := make([]styledLine, 0, 16)
	if m.el.Title != "" {
		lines = append(lines, styledLine{text: m.el.Title, style: styles.Header})
	}
	if m.widget.Destroyed() {
		return renderLines(applyWidth(lines, m.width))
	}

	choice := m.choiceLine()
	var popup []styledLine
	var entries []int
	if m.widget.IsOpen() {
		popup, entries = m.popupLines()
	}
	if m.widget.Popup().Position == layout.PositionTop && len(popup) > 0 {
		for len(lines)+len(popup) < m.host.Trigger.Top {
			lines = append(lines, styledLine{})
		}
		lines = m.appendPopup(lines, popup, entries)
		m.hits[len(lines)] = hit{target: inputbus.TargetChoice, entry: -1}
		lines = append(lines, choice)
	} else {
		for len(lines) < m.host.Trigger.Top {
			lines = append(lines, styledLine{})
		}
		m.hits[len(lines)] = hit{target: inputbus.TargetChoice, entry: -1}
		lines = append(lines, choice)
		lines = m.appendPopup(lines, popup, entries)
	}

	lines = limitHeight(lines, m.height-m.bottomRows(), m.width)
	lines = applyWidth(lines, m.width)

	var status styledLine
	if m.errMsg != "" {
		status = styledLine{text: "Error: " + m.errMsg, style: styles.Error}
	} else if info := m.currentInfo(); info != "" {
		status = styledLine{text: info, style: styles.Info}
	}
	bottom := []styledLine{status}
	if m.showFooter {
		bottom = append(bottom, styledLine{text: footerText, style: styles.Footer})
	}
	lines = append(lines, applyWidth(bottom, m.width)...)
	return renderLines(lines)
}

func (m *Model) appendPopup(lines, popup []styledLine, entries []int) []styledLine {
	for i, line := range popup {
		m.hits[len(lines)] = hit{target: inputbus.TargetPopup, entry: entries[i]}
		lines = append(lines, line)
	}
	return lines
}

func (m *Model) choiceLine() styledLine {
	c := m.widget.Choice()
	arrow := "▾"
	if c.Open {
		arrow = "▴"
	}
	text := c.Text
	if c.HTML {
		text = widget.PlainText(text)
	}
	style := styles.Choice
	if c.Placeholder {
		style = styles.Placeholder
	}
	if c.Focused {
		style = styles.ChoiceFocused
	}
	if c.Disabled {
		style = styles.ChoiceDisabled
	}
	width := m.host.Trigger.Width
	body := truncateText(text, width-2)
	if pad := width - 2 - ansi.StringWidth(body); pad > 0 {
		body += strings.Repeat(" ", pad)
	}
	return styledLine{text: body + " " + arrow, style: style}
}

// popupLines renders the bordered popup. The second result maps each line to
// its entry index, -1 for the border and search input.
func (m *Model) popupLines() ([]styledLine, []int) {
	inner := m.popupWidth() - popupBorder
	if inner < 1 {
		inner = 1
	}
	body := make([]styledLine, 0, 8)
	index := make([]int, 0, 10)
	index = append(index, -1)
	if m.widget.Popup().Search != nil {
		body = append(body, styledLine{text: m.filterPrompt(), raw: true})
		index = append(index, -1)
	}
	m.level.EnsureCursorVisible(m.maxVisibleEntries())
	visible, start := m.level.Visible(m.maxVisibleEntries())
	for i, e := range visible {
		body = append(body, m.entryLine(e, start+i, inner))
		index = append(index, start+i)
	}
	index = append(index, -1)

	box := lipgloss.NewStyle()
	if styles.Popup != nil {
		box = styles.Popup.Copy()
	}
	rendered := box.Width(inner).Render(renderLines(applyWidth(body, inner)))
	out := strings.Split(rendered, "\n")
	lines := make([]styledLine, len(out))
	for i, text := range out {
		lines[i] = styledLine{text: text, raw: true}
	}
	for len(index) < len(lines) {
		index = append(index, -1)
	}
	return lines, index[:len(lines)]
}

// entryLine constructs a single styledLine for a popup entry. The text is
// padded to width so the cursor's background spans the popup.
func (m *Model) entryLine(e uistate.Entry, idx int, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	switch e.Kind {
	case uistate.EntrySelectAll:
		lineStyle = styles.SelectAll
	case uistate.EntryGroup:
		lineStyle = styles.GroupHeader
	case uistate.EntryOK:
		lineStyle = styles.OKButton
	case uistate.EntryNotice:
		lineStyle = styles.NoResults
	case uistate.EntryItem:
		if e.Checked {
			lineStyle = styles.ItemChecked
		}
	}
	if e.Disabled {
		lineStyle = styles.ItemDisabled
	}
	if idx == m.level.Cursor && e.Kind != uistate.EntryNotice {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + entryText(e)
	if width > 0 {
		if pad := width - ansi.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func entryText(e uistate.Entry) string {
	switch e.Kind {
	case uistate.EntrySelectAll:
		return checkbox(e) + " " + e.Label
	case uistate.EntryGroup:
		if e.Inert {
			return e.Label
		}
		return checkbox(e) + " " + e.Label
	case uistate.EntryItem:
		prefix := ""
		if e.Indent {
			prefix = "  "
		}
		return prefix + checkbox(e) + " " + e.Label
	case uistate.EntryOK:
		return "[ " + e.Label + " ]"
	default:
		return e.Label
	}
}

func checkbox(e uistate.Entry) string {
	if e.Radio {
		if e.Checked {
			return "(•)"
		}
		return "( )"
	}
	if e.Checked {
		return "[x]"
	}
	return "[ ]"
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.widget.Destroyed() {
		return nil
	}
	h, onTarget := m.hits[ev.Y]
	switch {
	case ev.Action == tea.MouseActionMotion:
		if onTarget && h.target == inputbus.TargetChoice {
			m.widget.Hover()
			m.afterToggle()
		}
		return nil
	case ev.Button == tea.MouseButtonWheelUp:
		m.moveCursor(m.level.MoveCursorUp)
		return nil
	case ev.Button == tea.MouseButtonWheelDown:
		m.moveCursor(m.level.MoveCursorDown)
		return nil
	case ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft:
		return nil
	}

	if !onTarget {
		events.UI.Click(inputbus.TargetOutside.String())
		m.clicks.Publish(inputbus.Click{Target: inputbus.TargetOutside})
		m.sync()
		return nil
	}
	events.UI.Click(h.target.String())
	m.clicks.Publish(inputbus.Click{Target: h.target, Owner: m.widget})
	switch h.target {
	case inputbus.TargetChoice:
		m.widget.ClickChoice()
		m.afterToggle()
	case inputbus.TargetPopup:
		if h.entry >= 0 && h.entry < len(m.level.Entries) {
			m.level.Cursor = h.entry
			m.activate(m.level.Entries[h.entry])
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.host.resize(m.width, m.height)
	m.sync()
	return nil
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
