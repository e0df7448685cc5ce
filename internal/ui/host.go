package ui

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/multiselect/internal/layout"
	"github.com/atomicstack/multiselect/internal/widget"
)

// popupBorder is the number of rows and columns the popup border adds.
const popupBorder = 2

// defaultTriggerWidth is used when no width is configured.
const defaultTriggerWidth = 40

// rowChrome is the width of the cursor indicator, indent and checkbox in
// front of a row label.
const rowChrome = 8

// termHost measures the widget in terminal cells.
type termHost struct {
	*layout.StaticHost
}

func newTermHost() *termHost {
	h := layout.NewStaticHost(layout.Viewport{}, layout.Box{Height: 1})
	h.FilterHeight = 1
	h.SelectAllRow = 1
	h.OKButtonHeight = 1
	h.Scrollbar = 1
	return &termHost{StaticHost: h}
}

func (h *termHost) Popup(c layout.Content) layout.Box {
	box := h.StaticHost.Popup(c)
	box.Height += popupBorder
	if !c.Positioned && c.Position == layout.PositionTop {
		box.Top -= popupBorder
	}
	return box
}

func (h *termHost) TextWidth(text string) int {
	return ansi.StringWidth(text)
}

func (h *termHost) resize(width, height int) {
	h.View = layout.Viewport{Width: width, Height: height}
}

func (h *termHost) place(top, width int) {
	h.Trigger = layout.Box{Top: top, Width: width, Height: 1}
}

// CellSettings converts the element metrics in s to terminal cells: one row
// per fixed control and room for the cursor, checkbox and border around each
// row.
func CellSettings(s widget.Settings) widget.Settings {
	defaults := widget.DefaultSettings()
	s.FilterHeight = 1
	s.OKButtonHeight = 1
	s.SelectAllHeight = 1
	s.SidePadding = rowChrome + popupBorder
	if s.AdjustHeightPadding == defaults.AdjustHeightPadding {
		s.AdjustHeightPadding = 1
	}
	return s
}
