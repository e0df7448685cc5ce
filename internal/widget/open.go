package widget

import (
	"github.com/atomicstack/multiselect/internal/inputbus"
	"github.com/atomicstack/multiselect/internal/layout"
	"github.com/atomicstack/multiselect/internal/logging/events"
)

// IsOpen reports whether the popup is shown.
func (w *Widget) IsOpen() bool {
	return !w.destroyed && w.isOpen
}

// Open shows the popup. It does nothing while the trigger is disabled.
func (w *Widget) Open() {
	if w.destroyed || w.choice.Disabled {
		return
	}
	s := w.cfg.Settings
	p := w.popup
	w.isOpen = true
	w.choice.Open = true
	p.Visible = true
	p.Animation = animation(s.Animate, false)

	if p.SelectAll != nil {
		p.SelectAll.Hidden = false
	}
	p.List.NoResults.Hidden = true
	if w.el.Len() == 0 {
		if p.SelectAll != nil {
			p.SelectAll.Hidden = true
		}
		p.List.NoResults.Hidden = false
	}

	if s.OffsetLeft != 0 || s.Container != "" {
		box := w.host.Popup(w.content())
		p.Top = box.Top
		p.Left = box.Left - s.OffsetLeft
		p.Positioned = true
	}
	if s.Container != "" {
		p.Mounted = true
	}

	if p.Search != nil {
		p.Search.Value = ""
		p.Search.Focused = true
		w.filter()
	}

	if s.AutoAdjustDropWidthByTextSize {
		w.adjustWidthByText()
	} else if s.Width == 0 && s.AutoDropWidth {
		p.Width = w.host.Anchor().Width
	}

	position := layout.ParsePosition(s.Position)
	if s.AutoAdjustDropHeight {
		if s.AutoAdjustDropPosition {
			below, above := w.space()
			position = layout.PredictPosition(below, above, w.host.Popup(w.content()).Height)
		}
		w.adjustHeight(position)
	}
	if s.AutoAdjustDropPosition {
		w.adjustPosition(s.AutoAdjustDropHeight)
	}

	w.subscribe()
	events.Widget.Open(w.name(), string(p.Position), p.ListMaxHeight)
	call(w.cfg.Hooks.OnOpen)
}

// Close hides the popup and returns it to its natural parent.
func (w *Widget) Close() {
	if w.destroyed {
		return
	}
	p := w.popup
	w.isOpen = false
	w.choice.Open = false
	p.Visible = false
	p.Animation = animation(w.cfg.Animate, true)
	if p.Search != nil {
		p.Search.Focused = false
	}
	p.Mounted = false
	p.Positioned = false
	p.Top, p.Left = 0, 0
	w.unsubscribe()
	events.Widget.Close(w.name())
	call(w.cfg.Hooks.OnClose)
}

func (w *Widget) toggleOpen() {
	if w.isOpen {
		w.Close()
		return
	}
	w.Open()
}

func (w *Widget) content() layout.Content {
	p := w.popup
	c := layout.Content{
		HasFilter:     p.Search != nil,
		HasSelectAll:  p.SelectAll != nil && !p.SelectAll.Hidden,
		HasOKButton:   p.OK != nil,
		ListMaxHeight: p.ListMaxHeight,
		Width:         p.Width,
		Top:           p.Top,
		Left:          p.Left,
		Positioned:    p.Positioned,
		Position:      p.Position,
		Container:     p.Container,
	}
	if p.SelectAll != nil {
		c.SelectAllText = p.SelectAll.Text
	}
	for _, r := range p.List.Rows {
		if !r.Hidden {
			c.Rows = append(c.Rows, textContent(r.Text))
		}
	}
	if !p.List.NoResults.Hidden {
		c.Rows = append(c.Rows, p.List.NoResults.Text)
	}
	return c
}

func (w *Widget) space() (below, above int) {
	vp := w.host.Viewport()
	popup := w.host.Popup(w.content())
	below = layout.SpaceBelow(vp, popup.Top, w.cfg.MaxHeight)
	above = layout.SpaceAbove(vp, w.host.Anchor().Top)
	return below, above
}

func (w *Widget) reserve() layout.Reserve {
	s := w.cfg.Settings
	var r layout.Reserve
	if s.Filter {
		r.Filter = s.FilterHeight
	}
	if s.OKButton && !s.Single {
		r.OKButton = s.OKButtonHeight
	}
	if w.popup.SelectAll != nil && !w.popup.SelectAll.Hidden {
		r.SelectAll = s.SelectAllHeight
	}
	return r
}

func (w *Widget) adjustHeight(position layout.Position) bool {
	below, above := w.space()
	space := below
	if position == layout.PositionTop {
		space = above
	}
	height, ok := layout.AdjustHeight(space, w.reserve(), w.cfg.AdjustHeightPadding, w.cfg.MaxHeight)
	if ok {
		w.popup.ListMaxHeight = height
	}
	return ok
}

func (w *Widget) adjustPosition(force bool) layout.Position {
	p := w.popup
	box := w.host.Popup(w.content())
	below, above := w.space()
	placement := layout.Place(layout.PlacementInput{
		Viewport:  w.host.Viewport(),
		Anchor:    w.host.Anchor(),
		Popup:     box,
		Below:     below,
		Above:     above,
		Container: w.cfg.Container != "",
		Force:     force,
	})
	p.Position = placement.Position
	if placement.SetTop || placement.SetLeft {
		if !p.Positioned {
			p.Top, p.Left = box.Top, box.Left
		}
		p.Positioned = true
		if placement.SetTop {
			p.Top = placement.Top
		}
		if placement.SetLeft {
			p.Left = placement.Left
		}
	}
	return placement.Position
}

func (w *Widget) adjustWidthByText() {
	s := w.cfg.Settings
	p := w.popup
	anchor := w.host.Anchor()
	defined := anchor.Width
	if s.DropWidth > 0 {
		defined = s.DropWidth
	} else if s.Width > 0 {
		defined = s.Width
	}

	content := w.content()
	var widths []int
	firstSpan := -1
	if p.SelectAll != nil {
		firstSpan = w.host.TextWidth(p.SelectAll.Text)
	}
	for _, r := range p.List.Rows {
		if r.Kind != RowItem || r.Hidden {
			continue
		}
		tw := w.host.TextWidth(textContent(r.Text))
		if firstSpan < 0 {
			firstSpan = tw
		}
		widths = append(widths, tw)
	}
	current := p.Width
	if current == 0 {
		current = w.host.Popup(content).Width
	}
	width, apply := layout.WidthByText(layout.WidthInput{
		RowWidths:      widths,
		SelectAllWidth: max(firstSpan, 0),
		SidePadding:    s.SidePadding,
		Scrollbar:      w.host.ScrollbarWidth(content),
		MinWidth:       s.MinWidth,
		MaxWidth:       s.MaxWidth,
		AnchorWidth:    anchor.Width,
		DefinedWidth:   defined,
		CurrentWidth:   current,
	})
	if apply {
		p.Width = width
		p.MaxWidth = width
	}
}

func (w *Widget) subscribe() {
	if w.bus == nil || w.cfg.KeepOpen || w.unsub != nil {
		return
	}
	w.unsub = w.bus.Subscribe(w.handleDocumentClick)
}

func (w *Widget) unsubscribe() {
	if w.unsub != nil {
		w.unsub()
		w.unsub = nil
	}
}

// handleDocumentClick closes the popup when a click lands outside the
// widget's choice button, popup and bound element.
func (w *Widget) handleDocumentClick(c inputbus.Click) {
	if c.Owner == w && c.Target != inputbus.TargetOutside {
		return
	}
	if w.IsOpen() {
		w.Close()
	}
}
