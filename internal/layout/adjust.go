package layout

// MinimalPadding is added to the reserved popup height on top of the fixed
// rows.
const MinimalPadding = 5

// SpaceBelow returns the room between the popup's top edge and the bottom of
// the viewport. A viewport without a height falls back to fallback.
func SpaceBelow(vp Viewport, popupTop, fallback int) int {
	height := vp.Height
	if height <= 0 {
		height = fallback
	}
	return height - (popupTop - vp.ScrollTop)
}

// SpaceAbove returns the room between the top of the viewport and the
// anchor.
func SpaceAbove(vp Viewport, anchorTop int) int {
	return anchorTop - vp.ScrollTop
}

// Reserve lists the heights of the fixed popup rows that surround the list.
// Disabled features contribute zero.
type Reserve struct {
	Filter    int
	OKButton  int
	SelectAll int
}

// Total returns the reserved height including MinimalPadding.
func (r Reserve) Total() int {
	return r.Filter + r.OKButton + r.SelectAll + MinimalPadding
}

// AdjustHeight computes the list height that fits into space. The second
// result is false when the configured maximum is already the smaller of the
// two, in which case the maximum stays in effect.
func AdjustHeight(space int, reserve Reserve, padding, maxHeight int) (int, bool) {
	height := space - reserve.Total() - padding
	if maxHeight <= 0 || height < maxHeight {
		return height, true
	}
	return maxHeight, false
}

// PredictPosition picks the side a popup of the given height will open on,
// before anything is moved.
func PredictPosition(below, above, popupHeight int) Position {
	if below < popupHeight && above > below {
		return PositionTop
	}
	return PositionBottom
}

// PlacementInput carries the measurements Place works from.
type PlacementInput struct {
	Viewport  Viewport
	Anchor    Box
	Popup     Box
	Below     int
	Above     int
	Container bool
	Force     bool
}

// Placement is the outcome of Place. Top and Left only apply when their Set
// flags are true.
type Placement struct {
	Position Position
	Top      int
	SetTop   bool
	Left     int
	SetLeft  bool
}

// Place chooses the popup side with the most room and shifts it left when it
// would overflow the viewport's right edge.
func Place(in PlacementInput) Placement {
	p := Placement{Position: PositionBottom}
	switch {
	case in.Below > in.Popup.Height:
	case in.Popup.Height > in.Below && in.Above > in.Below:
		if !in.Container {
			p.Position = PositionTop
			break
		}
		// a mounted popup is offset explicitly
		top := in.Anchor.Top - in.Popup.Height
		if top < 0 {
			top = 0
		}
		if top > 0 || in.Force {
			p.Position = PositionTop
			p.Top = top
			p.SetTop = true
		}
	}
	if in.Viewport.Width-in.Popup.Width < in.Anchor.Left {
		p.Left = in.Anchor.Left - (in.Popup.Width - in.Anchor.Width)
		p.SetLeft = true
	}
	return p
}

// WidthInput carries the measurements WidthByText works from.
type WidthInput struct {
	RowWidths      []int
	SelectAllWidth int
	SidePadding    int
	Scrollbar      int
	MinWidth       int
	MaxWidth       int
	AnchorWidth    int
	DefinedWidth   int
	CurrentWidth   int
}

// WidthByText sizes the popup to its widest row. The second result reports
// whether the width should be applied: only when it narrows the defined or
// current width.
func WidthByText(in WidthInput) (int, bool) {
	width := 0
	for _, w := range in.RowWidths {
		if w > width {
			width = w
		}
	}
	width += in.SidePadding + in.Scrollbar
	if selectAll := in.SelectAllWidth + in.SidePadding; width < selectAll {
		width = selectAll
	}
	if in.MaxWidth > 0 && width > in.MaxWidth {
		width = in.MaxWidth
	}
	if in.MinWidth > 0 && width < in.MinWidth {
		width = in.MinWidth
	}
	if width < in.AnchorWidth {
		width = in.AnchorWidth
	}
	return width, in.DefinedWidth > width || in.CurrentWidth > width
}
