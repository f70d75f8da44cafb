package scene

// Rect is an axis-aligned rectangle in stage pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges
// are exclusive so adjacent rectangles never share a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Right returns the exclusive right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Measurer reports the rendered size of text at a font size and family.
type Measurer interface {
	MeasureText(text string, fontSize float64, family string) (width, height float64)
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(text string, fontSize float64, family string) (float64, float64)

// MeasureText calls f.
func (f MeasureFunc) MeasureText(text string, fontSize float64, family string) (float64, float64) {
	return f(text, fontSize, family)
}
