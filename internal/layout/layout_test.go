package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpace(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600, ScrollTop: 100}
	assert.Equal(t, 600-(400-100), SpaceBelow(vp, 400, 250))
	assert.Equal(t, 300-100, SpaceAbove(vp, 300))

	// zero viewport height falls back to the configured maximum
	assert.Equal(t, 250-(50-0), SpaceBelow(Viewport{}, 50, 250))
}

func TestReserveTotal(t *testing.T) {
	r := Reserve{Filter: 32, OKButton: 26, SelectAll: 39}
	assert.Equal(t, 32+26+39+MinimalPadding, r.Total())
	assert.Equal(t, MinimalPadding, Reserve{}.Total())
}

func TestAdjustHeight(t *testing.T) {
	r := Reserve{Filter: 32}
	height, ok := AdjustHeight(200, r, 10, 250)
	assert.True(t, ok)
	assert.Equal(t, 200-32-MinimalPadding-10, height)

	height, ok = AdjustHeight(900, r, 10, 250)
	assert.False(t, ok)
	assert.Equal(t, 250, height)

	height, ok = AdjustHeight(900, r, 10, 0)
	assert.True(t, ok)
	assert.Equal(t, 900-32-MinimalPadding-10, height)

	// negative results are only bounded by the maximum comparison
	height, ok = AdjustHeight(10, r, 10, 250)
	assert.True(t, ok)
	assert.Less(t, height, 0)
}

func TestPredictPosition(t *testing.T) {
	assert.Equal(t, PositionBottom, PredictPosition(300, 100, 200))
	assert.Equal(t, PositionTop, PredictPosition(100, 300, 200))
	assert.Equal(t, PositionBottom, PredictPosition(100, 50, 200))
}

func TestPlaceBottomWhenRoomBelow(t *testing.T) {
	p := Place(PlacementInput{
		Viewport: Viewport{Width: 800, Height: 600},
		Anchor:   Box{Top: 100, Left: 10, Width: 200},
		Popup:    Box{Width: 200, Height: 150},
		Below:    400,
		Above:    100,
	})
	assert.Equal(t, PositionBottom, p.Position)
	assert.False(t, p.SetTop)
	assert.False(t, p.SetLeft)
}

func TestPlaceTopWithoutContainer(t *testing.T) {
	p := Place(PlacementInput{
		Viewport: Viewport{Width: 800, Height: 600},
		Anchor:   Box{Top: 500, Left: 10, Width: 200},
		Popup:    Box{Width: 200, Height: 150},
		Below:    80,
		Above:    500,
	})
	assert.Equal(t, PositionTop, p.Position)
	assert.False(t, p.SetTop)
}

func TestPlaceTopWithContainerOffsets(t *testing.T) {
	in := PlacementInput{
		Viewport:  Viewport{Width: 800, Height: 600},
		Anchor:    Box{Top: 500, Left: 10, Width: 200},
		Popup:     Box{Width: 200, Height: 150},
		Below:     80,
		Above:     500,
		Container: true,
	}
	p := Place(in)
	assert.Equal(t, PositionTop, p.Position)
	assert.True(t, p.SetTop)
	assert.Equal(t, 350, p.Top)

	// clamped to zero and only applied when forced
	in.Anchor.Top = 100
	in.Above = 120
	in.Below = 90
	p = Place(in)
	assert.Equal(t, PositionBottom, p.Position)
	in.Force = true
	p = Place(in)
	assert.Equal(t, PositionTop, p.Position)
	assert.Equal(t, 0, p.Top)
}

func TestPlaceShiftsLeftOnOverflow(t *testing.T) {
	p := Place(PlacementInput{
		Viewport: Viewport{Width: 400, Height: 600},
		Anchor:   Box{Top: 10, Left: 300, Width: 80},
		Popup:    Box{Width: 200, Height: 100},
		Below:    500,
	})
	assert.True(t, p.SetLeft)
	assert.Equal(t, 300-(200-80), p.Left)
}

func TestWidthByText(t *testing.T) {
	in := WidthInput{
		RowWidths:      []int{40, 120, 80},
		SelectAllWidth: 60,
		SidePadding:    26,
		Scrollbar:      17,
		MaxWidth:       500,
		AnchorWidth:    100,
		DefinedWidth:   300,
	}
	width, apply := WidthByText(in)
	assert.Equal(t, 120+26+17, width)
	assert.True(t, apply)

	in.MaxWidth = 150
	width, _ = WidthByText(in)
	assert.Equal(t, 150, width)

	in.MaxWidth = 0
	in.MinWidth = 250
	width, _ = WidthByText(in)
	assert.Equal(t, 250, width)

	in.MinWidth = 0
	in.AnchorWidth = 400
	width, apply = WidthByText(in)
	assert.Equal(t, 400, width)
	assert.False(t, apply)
}

func TestWidthByTextSelectAllFloor(t *testing.T) {
	width, _ := WidthByText(WidthInput{RowWidths: []int{10}, SelectAllWidth: 90, SidePadding: 10})
	assert.Equal(t, 100, width)
}

func TestParsePosition(t *testing.T) {
	assert.Equal(t, PositionTop, ParsePosition("top"))
	assert.Equal(t, PositionBottom, ParsePosition("bottom"))
	assert.Equal(t, PositionBottom, ParsePosition(""))
}

func TestStaticHostPopup(t *testing.T) {
	h := NewStaticHost(Viewport{Width: 80, Height: 24}, Box{Top: 2, Left: 4, Width: 30, Height: 1})
	h.FilterHeight = 1
	h.Scrollbar = 1

	c := Content{Rows: []string{"a", "b", "c", "d"}, HasFilter: true, ListMaxHeight: 3}
	box := h.Popup(c)
	assert.Equal(t, Box{Top: 3, Left: 4, Width: 30, Height: 4}, box)
	assert.Equal(t, 1, h.ScrollbarWidth(c))

	c.Position = PositionTop
	box = h.Popup(c)
	assert.Equal(t, 2-4, box.Top)

	c.ListMaxHeight = 0
	assert.Equal(t, 0, h.ScrollbarWidth(c))
	assert.Equal(t, 5, h.TextWidth("héllo"))
}
