// Package layout computes where a dropdown popup goes and how large it may
// be. The functions are pure: geometry comes in through a Host and results
// go back to the caller, which decides whether to apply them.
package layout

//go:generate mockgen -source=layout.go -destination=mocks/mock_host.go -package=mocks

// Position is the vertical side of the anchor the popup opens on.
type Position string

const (
	PositionBottom Position = "bottom"
	PositionTop    Position = "top"
)

// ParsePosition maps a configured position onto a Position, defaulting to
// bottom.
func ParsePosition(s string) Position {
	if Position(s) == PositionTop {
		return PositionTop
	}
	return PositionBottom
}

// Viewport describes the visible area of the host document.
type Viewport struct {
	Width     int
	Height    int
	ScrollTop int
}

// Box is an element's offset from the document origin plus its outer size.
type Box struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Content is the popup state a Host needs to measure it.
type Content struct {
	Rows          []string
	SelectAllText string
	HasFilter     bool
	HasSelectAll  bool
	HasOKButton   bool
	ListMaxHeight int
	Width         int
	Top           int
	Left          int
	Positioned    bool
	Position      Position
	Container     string
}

// Host answers geometry queries on behalf of the document the widget lives
// in.
type Host interface {
	// Viewport returns the visible area and current scroll offset.
	Viewport() Viewport
	// Anchor returns the box of the always-visible trigger.
	Anchor() Box
	// Popup returns the popup's box for the given content.
	Popup(c Content) Box
	// TextWidth measures the rendered width of a row label.
	TextWidth(text string) int
	// ScrollbarWidth returns the scrollbar width when the list scrolls, 0
	// otherwise.
	ScrollbarWidth(c Content) int
}
