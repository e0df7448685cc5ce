package layout

import "unicode/utf8"

// StaticHost is a Host with fixed geometry. Rows are RowHeight tall and
// text is CharWidth per rune. It backs widgets that are not attached to a
// real document.
type StaticHost struct {
	View           Viewport
	Trigger        Box
	RowHeight      int
	CharWidth      int
	Scrollbar      int
	FilterHeight   int
	SelectAllRow   int
	OKButtonHeight int
}

// NewStaticHost returns a StaticHost with unit row and character sizes.
func NewStaticHost(view Viewport, trigger Box) *StaticHost {
	return &StaticHost{View: view, Trigger: trigger, RowHeight: 1, CharWidth: 1}
}

func (h *StaticHost) Viewport() Viewport { return h.View }

func (h *StaticHost) Anchor() Box { return h.Trigger }

func (h *StaticHost) Popup(c Content) Box {
	list := len(c.Rows) * h.rowHeight()
	if c.ListMaxHeight > 0 && list > c.ListMaxHeight {
		list = c.ListMaxHeight
	}
	height := list
	if c.HasFilter {
		height += h.FilterHeight
	}
	if c.HasSelectAll {
		height += h.SelectAllRow
	}
	if c.HasOKButton {
		height += h.OKButtonHeight
	}
	width := c.Width
	if width <= 0 {
		width = h.Trigger.Width
	}
	top := h.Trigger.Top + h.Trigger.Height
	if c.Positioned {
		top = c.Top
	} else if c.Position == PositionTop {
		top = h.Trigger.Top - height
	}
	left := h.Trigger.Left
	if c.Positioned {
		left = c.Left
	}
	return Box{Top: top, Left: left, Width: width, Height: height}
}

func (h *StaticHost) TextWidth(text string) int {
	w := h.CharWidth
	if w <= 0 {
		w = 1
	}
	return utf8.RuneCountInString(text) * w
}

func (h *StaticHost) ScrollbarWidth(c Content) int {
	if c.ListMaxHeight > 0 && len(c.Rows)*h.rowHeight() > c.ListMaxHeight {
		return h.Scrollbar
	}
	return 0
}

func (h *StaticHost) rowHeight() int {
	if h.RowHeight <= 0 {
		return 1
	}
	return h.RowHeight
}
