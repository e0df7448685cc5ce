package dispatcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atomicstack/multiselect/internal/backend"
	"github.com/atomicstack/multiselect/internal/element"
	"github.com/atomicstack/multiselect/internal/widget"
)

func newWidget(t *testing.T) (*element.Select, *widget.Widget) {
	t.Helper()
	el := element.New("fruit",
		element.OptionChild(element.Option{Value: "apple", Text: "Apple"}),
		element.OptionChild(element.Option{Value: "pear", Text: "Pear", Selected: true}),
	)
	return el, widget.New(el, widget.DefaultConfig())
}

func TestHandleOptionsReload(t *testing.T) {
	el, w := newWidget(t)
	d := New(el, w, nil)

	src := element.Source{Children: []element.Child{
		element.OptionChild(element.Option{Value: "kiwi", Text: "Kiwi", Selected: true}),
		element.OptionChild(element.Option{Value: "plum", Text: "Plum"}),
		element.OptionChild(element.Option{Value: "fig", Text: "Fig"}),
	}}
	res := d.Handle(backend.Event{Kind: backend.KindOptions, Data: src})

	assert.True(t, res.OptionsUpdated)
	assert.NoError(t, res.Err)
	assert.Equal(t, []string{"kiwi"}, w.GetSelects(widget.SelectValue))
	assert.Len(t, w.List().Rows, 3)
}

func TestHandleSettingsReloadAppliesOverride(t *testing.T) {
	el, w := newWidget(t)
	d := New(el, w, func(s widget.Settings) widget.Settings {
		s.Single = true
		return s
	})

	s := widget.DefaultSettings()
	s.Placeholder = "Pick"
	res := d.Handle(backend.Event{Kind: backend.KindSettings, Data: s})

	assert.True(t, res.SettingsUpdated)
	assert.True(t, res.Rebuilt)
	got := w.GetOptions()
	assert.True(t, got.Single)
	assert.Equal(t, "Pick", got.Placeholder)

	// the same settings again leave the widget alone
	res = d.Handle(backend.Event{Kind: backend.KindSettings, Data: s})
	assert.False(t, res.Rebuilt)
}

func TestHandleErrorLeavesWidget(t *testing.T) {
	el, w := newWidget(t)
	d := New(el, w, nil)

	boom := errors.New("boom")
	res := d.Handle(backend.Event{Kind: backend.KindOptions, Err: boom})
	assert.ErrorIs(t, res.Err, boom)
	assert.False(t, res.OptionsUpdated)
	assert.Equal(t, []string{"pear"}, w.GetSelects(widget.SelectValue))
}

func TestHandleIgnoresUnexpectedData(t *testing.T) {
	el, w := newWidget(t)
	d := New(el, w, nil)
	res := d.Handle(backend.Event{Kind: backend.KindOptions, Data: "nope"})
	assert.False(t, res.OptionsUpdated)
}
