package screen

import "fmt"

// Rect is a rectangle in terminal cells. Origin (0,0) is top-left.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a Rect, clamping negative sizes to zero.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Bottom is the first row below the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Size is the viewport the host terminal gives the screen.
type Size struct {
	Width  int
	Height int
}

// Frame is the resolved geometry of one render pass.
type Frame struct {
	Viewport Rect
	Header   Rect
	Scroll   Rect
	Nav      Rect
	Backing  Rect
	Button   Rect
	// Offset is the scroll offset after clamping to [0, MaxOffset].
	Offset    int
	MaxOffset int
}

// Layout places the header at the top, pins the nav overlay to the bottom
// edge and gives the scroll region whatever remains. The centre backing and
// button are lifted above the nav's top edge by the theme's fixed lift
// constants; none of the overlay geometry depends on offset.
func (s Screen) Layout(size Size, headerHeight, contentHeight, offset int) Frame {
	m := s.Theme.Metrics
	viewport := NewRect(0, 0, size.Width, size.Height)

	navHeight := min(m.NavBarHeight, size.Height)
	nav := NewRect(0, size.Height-navHeight, size.Width, navHeight)

	headerHeight = max(0, min(headerHeight, nav.Y))
	header := NewRect(0, 0, size.Width, headerHeight)
	scroll := NewRect(0, header.Bottom(), size.Width, nav.Y-header.Bottom())

	button := s.Theme.Nav.CenterButton
	backing := s.Theme.Nav.CenterBacking
	buttonRect := NewRect((size.Width-button.Width)/2, nav.Y-m.ButtonLift, button.Width, button.Height)
	backingRect := NewRect((size.Width-backing.Width)/2, nav.Y-m.BackingLift, backing.Width, button.Height)

	maxOffset := max(0, contentHeight-scroll.Height)
	offset = max(0, min(offset, maxOffset))

	return Frame{
		Viewport:  viewport,
		Header:    header,
		Scroll:    scroll,
		Nav:       nav,
		Backing:   backingRect,
		Button:    buttonRect,
		Offset:    offset,
		MaxOffset: maxOffset,
	}
}
