package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/multiselect/internal/backend"
	"github.com/atomicstack/multiselect/internal/data/dispatcher"
	"github.com/atomicstack/multiselect/internal/element"
	"github.com/atomicstack/multiselect/internal/inputbus"
	"github.com/atomicstack/multiselect/internal/layout"
	"github.com/atomicstack/multiselect/internal/theme"
	"github.com/atomicstack/multiselect/internal/ui/command"
	uistate "github.com/atomicstack/multiselect/internal/ui/state"
	"github.com/atomicstack/multiselect/internal/widget"
)

type level = uistate.Level

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Watcher    *backend.Watcher
	// Override is applied to reloaded settings.
	Override func(widget.Settings) widget.Settings
}

// hit records what a rendered screen row belongs to.
type hit struct {
	target inputbus.Target
	entry  int
}

// Model implements the Bubble Tea model for the multiselect picker.
type Model struct {
	el       *element.Select
	widget   *widget.Widget
	registry *widget.Registry
	bus      *command.Bus
	clicks   *inputbus.Bus
	host     *termHost
	level    *level

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	backend        *backend.Watcher
	backendLastErr string
	dispatcher     *dispatcher.Dispatcher

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	filterCursor      cursor.Model
	filterCursorDirty bool

	hits     map[int]hit
	handlers map[reflect.Type]msgHandler

	finished bool
	aborted  bool
}

// NewModel binds a widget configured with cfg to el and wraps it in a
// Bubble Tea model.
func NewModel(el *element.Select, cfg widget.Config, opts Options) *Model {
	m := &Model{
		el:         el,
		host:       newTermHost(),
		clicks:     inputbus.New(),
		backend:    opts.Watcher,
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	cfg.Settings = CellSettings(cfg.Settings)
	m.host.resize(m.width, m.height)
	m.placeAnchor(cfg.Settings)

	m.registry = widget.NewRegistry(widget.WithHost(m.host), widget.WithBus(m.clicks))
	m.widget = m.registry.Bind(el, cfg)
	m.bus = command.New(m.registry, el)
	m.dispatcher = dispatcher.New(el, m.widget, func(s widget.Settings) widget.Settings {
		if opts.Override != nil {
			s = opts.Override(s)
		}
		return CellSettings(s)
	})
	m.level = uistate.NewLevel(el.Name, m.entries())
	m.widget.Focus()

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Widget returns the widget the model drives.
func (m *Model) Widget() *widget.Widget {
	return m.widget
}

// Aborted reports whether the user left without confirming.
func (m *Model) Aborted() bool {
	return m.aborted
}

// Finished reports whether the user confirmed the selection.
func (m *Model) Finished() bool {
	return m.finished
}

// entries mirrors the widget's visible popup rows.
func (m *Model) entries() []uistate.Entry {
	p := m.widget.Popup()
	if p == nil {
		return nil
	}
	out := make([]uistate.Entry, 0, len(p.List.Rows)+3)
	if p.SelectAll != nil && !p.SelectAll.Hidden {
		out = append(out, uistate.Entry{
			Kind:    uistate.EntrySelectAll,
			Key:     "selectAll",
			Label:   p.SelectAll.Text,
			Checked: p.SelectAll.Checked,
		})
	}
	for _, r := range p.List.Rows {
		if r.Hidden {
			continue
		}
		switch r.Kind {
		case widget.RowGroup:
			out = append(out, uistate.Entry{
				Kind:     uistate.EntryGroup,
				Key:      "group:" + r.Group,
				Value:    r.Group,
				Label:    widget.PlainText(r.Text),
				Checked:  r.Checked,
				Disabled: r.Disabled,
				Inert:    !r.HasCheckbox,
			})
		case widget.RowItem:
			out = append(out, uistate.Entry{
				Kind:     uistate.EntryItem,
				Key:      "item:" + r.Value,
				Value:    r.Value,
				Label:    widget.PlainText(r.Text),
				Indent:   r.Group != "",
				Checked:  r.Checked,
				Disabled: r.Disabled,
				Radio:    r.Radio,
			})
		}
	}
	if !p.List.NoResults.Hidden {
		out = append(out, uistate.Entry{Kind: uistate.EntryNotice, Key: "noResults", Label: p.List.NoResults.Text, Inert: true})
	}
	if p.OK != nil {
		out = append(out, uistate.Entry{Kind: uistate.EntryOK, Key: "ok", Label: p.OK.Text})
	}
	return out
}

// sync refreshes the cursor entries and the anchor after the widget changed.
func (m *Model) sync() {
	if m.widget.Destroyed() {
		return
	}
	m.placeAnchor(m.widget.GetOptions().Settings)
	m.level.UpdateEntries(m.entries())
	m.level.EnsureCursorVisible(m.maxVisibleEntries())
}

func (m *Model) headerRows() int {
	if m.el.Title != "" {
		return 1
	}
	return 0
}

func (m *Model) bottomRows() int {
	rows := 1
	if m.showFooter {
		rows++
	}
	return rows
}

// placeAnchor puts the trigger at the top of the screen, or at the bottom
// when the popup is configured to open upwards.
func (m *Model) placeAnchor(s widget.Settings) {
	top := m.headerRows()
	if layout.ParsePosition(s.Position) == layout.PositionTop && m.height > 0 {
		if bottom := m.height - m.bottomRows() - 1; bottom > top {
			top = bottom
		}
	}
	m.host.place(top, m.triggerWidth(s))
}

func (m *Model) triggerWidth(s widget.Settings) int {
	width := s.Width
	if width <= 0 {
		width = defaultTriggerWidth
	}
	if m.width > 0 && width > m.width {
		width = m.width
	}
	return width
}

func (m *Model) popupWidth() int {
	if p := m.widget.Popup(); p != nil && p.Width > 0 {
		if m.width > 0 && p.Width > m.width {
			return m.width
		}
		return p.Width
	}
	return m.host.Trigger.Width
}

// maxVisibleEntries returns how many entries fit in the popup, or -1 when
// there is no limit.
func (m *Model) maxVisibleEntries() int {
	p := m.widget.Popup()
	if p == nil {
		return -1
	}
	controls := 0
	if p.SelectAll != nil && !p.SelectAll.Hidden {
		controls++
	}
	if p.OK != nil {
		controls++
	}
	limit := -1
	if p.ListMaxHeight > 0 {
		limit = p.ListMaxHeight + controls
	}
	if m.height <= 0 {
		return limit
	}
	room := m.height - m.headerRows() - m.bottomRows() - 1 - popupBorder
	if p.Search != nil {
		room--
	}
	if limit < 0 || room < limit {
		limit = room
	}
	if limit < 1 {
		return 1
	}
	return limit
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
