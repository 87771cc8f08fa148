package entity

// Point is an integer position or velocity in screen pixels
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	Position Point
	Width    int
	Height   int
}

// NewRect creates a rectangle from its top-left corner and size
func NewRect(x, y, width, height int) Rect {
	return Rect{
		Position: Point{X: x, Y: y},
		Width:    width,
		Height:   height,
	}
}

// X returns the left edge
func (r Rect) X() int {
	return r.Position.X
}

// Y returns the top edge
func (r Rect) Y() int {
	return r.Position.Y
}

// SetX moves the rectangle so its left edge is at x
func (r *Rect) SetX(x int) {
	r.Position.X = x
}

// SetY moves the rectangle so its top edge is at y
func (r *Rect) SetY(y int) {
	r.Position.Y = y
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() int {
	return r.X() + r.Width
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() int {
	return r.Y() + r.Height
}

// Intersects reports whether the two rectangles overlap.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X() < other.Right() &&
		r.Right() > other.X() &&
		r.Y() < other.Bottom() &&
		r.Bottom() > other.Y()
}
