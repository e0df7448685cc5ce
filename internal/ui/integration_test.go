package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/multiselect/internal/backend"
	"github.com/atomicstack/multiselect/internal/element"
	"github.com/atomicstack/multiselect/internal/widget"
)

func TestPaginationRespectsViewport(t *testing.T) {
	children := make([]element.Child, 10)
	for i := range children {
		label := fmt.Sprintf("opt-%02d", i+1)
		children[i] = element.OptionChild(element.Option{Value: label, Text: label})
	}
	cfg := widget.DefaultConfig()
	cfg.SelectAll = false
	model := NewModel(element.New("many", children...), cfg, Options{Width: 40, Height: 8})
	harness := NewHarness(model)
	harness.Send(tea.WindowSizeMsg{Width: 40, Height: 8})
	harness.Press("space")

	view := harness.View()
	if !strings.Contains(view, "opt-01") {
		t.Fatalf("expected opt-01 in the first page, view =\n%s", view)
	}
	if strings.Contains(view, "opt-07") {
		t.Fatalf("expected opt-07 to be outside initial viewport, view =\n%s", view)
	}

	for i := 0; i < 7; i++ {
		harness.Press("down")
	}
	view = harness.View()
	if !strings.Contains(view, "opt-08") {
		t.Fatalf("expected opt-08 to be visible after scrolling, view =\n%s", view)
	}
	if strings.Contains(view, "opt-01") {
		t.Fatalf("expected opt-01 scrolled away, view =\n%s", view)
	}
}

func TestBackendOptionsReloadRebuildsList(t *testing.T) {
	harness := NewHarness(newTestModel(t, nil))
	harness.Press("space")

	src := element.Source{Children: []element.Child{
		element.OptionChild(element.Option{Value: "k", Text: "Kiwi", Selected: true}),
		element.OptionChild(element.Option{Value: "m", Text: "Mango"}),
	}}
	harness.Send(backendEventMsg{event: backend.Event{Kind: backend.KindOptions, Path: "opts.yaml", Data: src}})

	m := harness.Model()
	if !m.Widget().IsOpen() {
		t.Fatalf("expected popup to stay open across a reload")
	}
	if got := m.Widget().GetSelects(widget.SelectValue); !sameValues(got, []string{"k"}) {
		t.Fatalf("expected selection from the reloaded file, got %v", got)
	}
	view := harness.View()
	if !strings.Contains(view, "Mango") || strings.Contains(view, "Apple") {
		t.Fatalf("expected reloaded options, view =\n%s", view)
	}
	if !strings.Contains(view, "options reloaded") {
		t.Fatalf("expected reload notice, view =\n%s", view)
	}
}

func TestBackendSettingsReloadKeepsOverrides(t *testing.T) {
	cfg := widget.DefaultConfig()
	model := NewModel(fruitSelect(), cfg, Options{
		Width:  60,
		Height: 20,
		Override: func(s widget.Settings) widget.Settings {
			s.Single = false
			return s
		},
	})
	harness := NewHarness(model)

	s := widget.DefaultSettings()
	s.Single = true
	s.Placeholder = "pick fruit"
	s.SelectAllText = "Everything"
	harness.Send(backendEventMsg{event: backend.Event{Kind: backend.KindSettings, Path: "settings.yaml", Data: s}})

	got := harness.Model().Widget().GetOptions()
	if got.Single {
		t.Fatalf("expected override to keep multi-select")
	}
	if got.SelectAllText != "Everything" {
		t.Fatalf("expected reloaded select-all text, got %q", got.SelectAllText)
	}
	if got.FilterHeight != 1 {
		t.Fatalf("expected cell metrics on reloaded settings, got %d", got.FilterHeight)
	}
	harness.Press("space")
	if view := harness.View(); !strings.Contains(view, "[Everything]") {
		t.Fatalf("expected rebuilt select-all row, view =\n%s", view)
	}
}

func TestBackendErrorShowsStatus(t *testing.T) {
	harness := NewHarness(newTestModel(t, nil))
	harness.Send(backendEventMsg{event: backend.Event{Kind: backend.KindSettings, Err: errors.New("bad yaml")}})
	view := harness.View()
	if !strings.Contains(view, "reload settings: bad yaml") {
		t.Fatalf("expected reload error, view =\n%s", view)
	}
	if got := harness.Model().Widget().GetSelects(widget.SelectValue); !sameValues(got, []string{"c"}) {
		t.Fatalf("expected selection untouched, got %v", got)
	}
}

func TestBackendDoneStopsListening(t *testing.T) {
	m := newTestModel(t, nil)
	if cmd := m.handleBackendDoneMsg(backendDoneMsg{}); cmd != nil {
		t.Fatalf("expected no follow-up command")
	}
	if m.backend != nil {
		t.Fatalf("expected watcher to be dropped")
	}
}
