package widget

import (
	"github.com/atomicstack/multiselect/internal/element"
	"github.com/atomicstack/multiselect/internal/inputbus"
	"github.com/atomicstack/multiselect/internal/layout"
	"github.com/atomicstack/multiselect/internal/logging/events"
)

// Widget is a dropdown bound to one element.Select.
type Widget struct {
	el        *element.Select
	cfg       Config
	host      layout.Host
	bus       *inputbus.Bus
	unsub     func()
	onDestroy func()

	choice    Choice
	popup     *Popup
	isOpen    bool
	destroyed bool
}

// Option configures a Widget at construction.
type Option func(*Widget)

// WithHost sets the geometry host. Without one the widget measures against
// a zero sized layout.StaticHost.
func WithHost(h layout.Host) Option {
	return func(w *Widget) {
		if h != nil {
			w.host = h
		}
	}
}

// WithBus subscribes the widget to document clicks while its popup is open.
func WithBus(b *inputbus.Bus) Option {
	return func(w *Widget) {
		w.bus = b
	}
}

// New binds a widget to el, hides el and builds the popup.
func New(el *element.Select, cfg Config, opts ...Option) *Widget {
	w := &Widget{
		el:   el,
		cfg:  cfg,
		host: layout.NewStaticHost(layout.Viewport{}, layout.Box{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	el.Hide()
	w.choice = Choice{
		Text:        cfg.Placeholder,
		Placeholder: true,
		Title:       el.Title,
		Disabled:    el.Disabled(),
	}
	call(w.cfg.Hooks.OnAfterCreate)
	w.Init()
	return w
}

// Init rebuilds the popup from the bound element's current children.
func (w *Widget) Init() {
	if w.destroyed {
		return
	}
	open := w.isOpen
	w.unsubscribe()
	w.isOpen = false
	w.choice.Open = false
	w.build()
	events.Widget.Build(w.name(), len(w.popup.List.Rows))

	w.updateSelectAll(true)
	w.update(true)
	if w.cfg.IsOpen || open {
		w.Open()
	}
}

// Refresh re-renders the popup from the bound element.
func (w *Widget) Refresh() {
	w.Init()
}

// RefreshOptions replaces the configuration and rebuilds. A cfg without Data
// keeps the current Data, so passing back GetOptions is a no-op. It reports
// false and leaves the widget untouched when cfg equals the current
// configuration.
func (w *Widget) RefreshOptions(cfg Config) bool {
	if w.destroyed {
		return false
	}
	if cfg.Data == nil {
		cfg.Data = w.cfg.Data
	}
	if w.cfg.Equal(cfg) {
		events.Widget.RefreshSkipped(w.name())
		return false
	}
	w.cfg = cfg
	w.Init()
	return true
}

// GetOptions returns a copy of the configuration without its Data blob.
func (w *Widget) GetOptions() Config {
	cfg := w.cfg
	cfg.Data = nil
	return cfg
}

// Enable allows the popup to open.
func (w *Widget) Enable() {
	if w.destroyed {
		return
	}
	w.choice.Disabled = false
}

// Disable prevents the popup from opening.
func (w *Widget) Disable() {
	if w.destroyed {
		return
	}
	w.choice.Disabled = true
}

// CheckAll checks every enabled item. In single mode it does nothing.
func (w *Widget) CheckAll() {
	if w.destroyed || w.cfg.Single {
		return
	}
	w.setAll(true)
	call(w.cfg.Hooks.OnCheckAll)
}

// UncheckAll clears every enabled item.
func (w *Widget) UncheckAll() {
	if w.destroyed {
		return
	}
	w.setAll(false)
	call(w.cfg.Hooks.OnUncheckAll)
}

func (w *Widget) setAll(checked bool) {
	setChecked(w.enabledItems(), checked)
	setChecked(w.groupCheckboxes(), checked)
	if w.popup.SelectAll != nil {
		w.popup.SelectAll.Checked = checked
	}
	w.update(false)
}

// Focus moves focus to the trigger.
func (w *Widget) Focus() {
	w.FocusChoice()
}

// Blur removes focus from the trigger.
func (w *Widget) Blur() {
	w.BlurChoice()
}

// Destroy detaches the widget, restores the bound element's visibility and
// drops every reference. Later calls on the widget do nothing.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	name := w.name()
	w.unsubscribe()
	w.el.Show()
	if w.onDestroy != nil {
		w.onDestroy()
	}
	w.destroyed = true
	w.isOpen = false
	w.popup = nil
	w.el = nil
	w.bus = nil
	w.host = nil
	w.cfg = Config{}
	w.choice = Choice{}
	events.Widget.Destroy(name)
}

// Destroyed reports whether Destroy has run.
func (w *Widget) Destroyed() bool {
	return w.destroyed
}

// Choice returns a snapshot of the trigger.
func (w *Widget) Choice() Choice {
	return w.choice
}

// Popup returns the live popup model. It is nil after Destroy.
func (w *Widget) Popup() *Popup {
	return w.popup
}

// List returns the current list. Every rebuild produces a new one.
func (w *Widget) List() *List {
	if w.popup == nil {
		return nil
	}
	return w.popup.List
}

// Element returns the bound element.
func (w *Widget) Element() *element.Select {
	return w.el
}
