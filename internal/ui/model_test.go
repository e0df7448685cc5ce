package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/multiselect/internal/element"
	"github.com/atomicstack/multiselect/internal/ui/command"
	uistate "github.com/atomicstack/multiselect/internal/ui/state"
	"github.com/atomicstack/multiselect/internal/widget"
)

func fruitSelect() *element.Select {
	return element.New("fruit",
		element.OptionChild(element.Option{Value: "a", Text: "Apple"}),
		element.OptionChild(element.Option{Value: "b", Text: "Banana", Disabled: true}),
		element.OptionChild(element.Option{Value: "c", Text: "Cherry", Selected: true}),
		element.OptionChild(element.Option{Value: "d", Text: "Date"}),
	)
}

func newTestModel(t *testing.T, mutate func(*widget.Config)) *Model {
	t.Helper()
	cfg := widget.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewModel(fruitSelect(), cfg, Options{Width: 60, Height: 20})
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(KeyMsg(k))
	}
}

func sameValues(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestNewModelMirrorsRows(t *testing.T) {
	m := newTestModel(t, nil)
	entries := m.level.Entries
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Kind != uistate.EntrySelectAll {
		t.Fatalf("expected select-all first, got %v", entries[0].Kind)
	}
	if !entries[2].Disabled {
		t.Fatalf("expected Banana to be disabled")
	}
	if !entries[3].Checked || entries[3].Value != "c" {
		t.Fatalf("expected Cherry checked, got %+v", entries[3])
	}
	if m.Widget().IsOpen() {
		t.Fatalf("expected popup closed on start")
	}
	if !m.Widget().Choice().Focused {
		t.Fatalf("expected trigger to be focused")
	}
}

func TestKeysOpenToggleAndConfirm(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "space")
	if !m.Widget().IsOpen() {
		t.Fatalf("expected space to open the popup")
	}
	press(m, "down", "space")
	if got := m.Widget().GetSelects(widget.SelectValue); !sameValues(got, []string{"a", "c"}) {
		t.Fatalf("expected a and c selected, got %v", got)
	}
	press(m, "enter")
	if m.Widget().IsOpen() {
		t.Fatalf("expected enter to close the popup")
	}
	if m.Finished() {
		t.Fatalf("expected first enter to only close")
	}
	press(m, "enter")
	if !m.Finished() || m.Aborted() {
		t.Fatalf("expected second enter to confirm, finished=%v aborted=%v", m.Finished(), m.Aborted())
	}
}

func TestEscClosesThenAborts(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "space", "esc")
	if m.Widget().IsOpen() {
		t.Fatalf("expected esc to close the popup")
	}
	if m.Aborted() {
		t.Fatalf("expected esc on open popup not to abort")
	}
	press(m, "esc")
	if !m.Aborted() {
		t.Fatalf("expected esc on closed trigger to abort")
	}
}

func TestCtrlCAborts(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "space", "ctrl+c")
	if !m.Aborted() {
		t.Fatalf("expected ctrl+c to abort")
	}
}

func TestCheckAllGoesThroughCommandBus(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(KeyMsg("alt+a"))
	if cmd == nil {
		t.Fatalf("expected a command result")
	}
	if got := m.Widget().GetSelects(widget.SelectValue); !sameValues(got, []string{"a", "c", "d"}) {
		t.Fatalf("expected every enabled value, got %v", got)
	}
	if !m.level.Entries[0].Checked {
		t.Fatalf("expected select-all entry to be checked")
	}

	m.Update(command.Result{Method: "checkAll", Err: errors.New("boom")})
	if m.errMsg != "boom" {
		t.Fatalf("expected error message, got %q", m.errMsg)
	}
	m.Update(command.Result{Method: "uncheckAll"})
	if m.errMsg != "" {
		t.Fatalf("expected error cleared, got %q", m.errMsg)
	}

	press(m, "alt+d")
	if got := m.Widget().GetSelects(widget.SelectValue); len(got) != 0 {
		t.Fatalf("expected nothing selected, got %v", got)
	}
}

func TestSingleModeEnterPicksItem(t *testing.T) {
	m := newTestModel(t, func(cfg *widget.Config) { cfg.Single = true })
	press(m, "space")
	first := m.level.Entries[0]
	if first.Kind != uistate.EntryItem || !first.Radio {
		t.Fatalf("expected radio item first in single mode, got %+v", first)
	}
	press(m, "enter")
	if got := m.Widget().GetSelects(widget.SelectValue); !sameValues(got, []string{"a"}) {
		t.Fatalf("expected only a selected, got %v", got)
	}
}

func TestAnchorFollowsPosition(t *testing.T) {
	m := newTestModel(t, nil)
	if m.host.Trigger.Top != 0 {
		t.Fatalf("expected trigger on the first row, got %d", m.host.Trigger.Top)
	}
	top := newTestModel(t, func(cfg *widget.Config) { cfg.Position = "top" })
	if top.host.Trigger.Top != 18 {
		t.Fatalf("expected trigger above the status line, got %d", top.host.Trigger.Top)
	}
}

func TestMaxVisibleEntriesFitsScreen(t *testing.T) {
	m := NewModel(fruitSelect(), widget.DefaultConfig(), Options{Width: 60, Height: 8})
	if got := m.maxVisibleEntries(); got != 4 {
		t.Fatalf("expected 4 visible entries, got %d", got)
	}
	filtered := NewModel(fruitSelect(), func() widget.Config {
		cfg := widget.DefaultConfig()
		cfg.Filter = true
		return cfg
	}(), Options{Width: 60, Height: 8})
	if got := filtered.maxVisibleEntries(); got != 3 {
		t.Fatalf("expected search row to take one entry, got %d", got)
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	fixed := newTestModel(t, nil)
	fixed.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if fixed.width != 60 || fixed.height != 20 {
		t.Fatalf("expected fixed 60x20, got %dx%d", fixed.width, fixed.height)
	}

	free := NewModel(fruitSelect(), widget.DefaultConfig(), Options{})
	free.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if free.width != 100 || free.height != 40 {
		t.Fatalf("expected 100x40, got %dx%d", free.width, free.height)
	}
	if free.host.Viewport().Height != 40 {
		t.Fatalf("expected host viewport to follow resize, got %+v", free.host.Viewport())
	}
}

func TestCellSettingsKeepsExplicitPadding(t *testing.T) {
	s := widget.DefaultSettings()
	got := CellSettings(s)
	if got.AdjustHeightPadding != 1 || got.FilterHeight != 1 || got.SidePadding != rowChrome+popupBorder {
		t.Fatalf("unexpected cell settings %+v", got)
	}
	s.AdjustHeightPadding = 3
	if got := CellSettings(s); got.AdjustHeightPadding != 3 {
		t.Fatalf("expected explicit padding to survive, got %d", got.AdjustHeightPadding)
	}
}
