package stillcount

import "fmt"

// Rect is an axis-aligned integer rectangle. Zero-area rects are legal and
// still carry a position: two zero-by-zero rects at different positions are
// not the same Rect.
type Rect struct {
	LeftX  int32
	TopY   int32
	Width  int32
	Height int32
}

// NewRect builds a Rect, clamping a negative width/height to an empty 0x0
// rect at the given position.
func NewRect(leftX, topY, width, height int32) Rect {
	if width < 0 || height < 0 {
		width = 0
		height = 0
	}
	return Rect{LeftX: leftX, TopY: topY, Width: width, Height: height}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)+%dx%d", r.LeftX, r.TopY, r.Width, r.Height)
}

// Within reports whether (x, y) lies inside r.
func (r Rect) Within(x, y int32) bool {
	return x >= r.LeftX && x < r.LeftX+r.Width && y >= r.TopY && y < r.TopY+r.Height
}

// IsSubsetOf reports whether r is fully contained within ref.
func (r Rect) IsSubsetOf(ref Rect) bool {
	return r.LeftX >= ref.LeftX && r.LeftX+r.Width <= ref.LeftX+ref.Width &&
		r.TopY >= ref.TopY && r.TopY+r.Height <= ref.TopY+ref.Height
}

// Include returns the smallest Rect containing r and the point (x, y). If r
// has zero area its position is ignored and the result is a 1x1 Rect at
// (x, y).
func (r Rect) Include(x, y int32) Rect {
	if r.Width <= 0 || r.Height <= 0 {
		return Rect{LeftX: x, TopY: y, Width: 1, Height: 1}
	}

	leftX := min32(r.LeftX, x)
	xOff := max32(r.LeftX+r.Width, x+1)
	topY := min32(r.TopY, y)
	yOff := max32(r.TopY+r.Height, y+1)

	return Rect{LeftX: leftX, TopY: topY, Width: xOff - leftX, Height: yOff - topY}
}

// Union returns the smallest Rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	leftX := min32(r.LeftX, other.LeftX)
	xOff := max32(r.LeftX+r.Width, other.LeftX+other.Width)
	topY := min32(r.TopY, other.TopY)
	yOff := max32(r.TopY+r.Height, other.TopY+other.Height)

	return Rect{LeftX: leftX, TopY: topY, Width: xOff - leftX, Height: yOff - topY}
}

// Intersection returns the intersection of r and other, and whether that
// intersection has a non-empty area.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	leftX := max32(r.LeftX, other.LeftX)
	xOff := min32(r.LeftX+r.Width, other.LeftX+other.Width)
	topY := max32(r.TopY, other.TopY)
	yOff := min32(r.TopY+r.Height, other.TopY+other.Height)

	if xOff < leftX || yOff < topY {
		return Rect{LeftX: leftX, TopY: topY}, false
	}

	result := Rect{LeftX: leftX, TopY: topY, Width: xOff - leftX, Height: yOff - topY}
	return result, xOff > leftX && yOff > topY
}

// WithBorders returns r expanded by borderSize on every side.
func (r Rect) WithBorders(borderSize int32) Rect {
	return Rect{
		LeftX:  r.LeftX - borderSize,
		TopY:   r.TopY - borderSize,
		Width:  r.Width + 2*borderSize,
		Height: r.Height + 2*borderSize,
	}
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
