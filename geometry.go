package sash

import "math"

// Coordinates is a point on the drawing surface in pixels.
type Coordinates struct {
	X, Y float64
}

// Bounds is a width/height pair in pixels.
type Bounds struct {
	Width, Height float64
}

// Rectangle is a resolved, pixel-space widget rectangle. The rectangle spans
// the widget's full extent including its border.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Inside reports whether the point lies within the rectangle, inclusive of
// all four edges.
func (r Rectangle) Inside(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Contains reports whether other lies entirely within r, inclusive.
func (r Rectangle) Contains(other Rectangle) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// Upper returns the upper-left corner.
func (r Rectangle) Upper() Coordinates { return Coordinates{r.X, r.Y} }

// Lower returns the lower-right corner.
func (r Rectangle) Lower() Coordinates { return Coordinates{r.X + r.Width, r.Y + r.Height} }

// TextMetrics carries the natural extent of a string at a candidate
// character size, as answered by the draw adapter during layout.
type TextMetrics struct {
	Width    float64
	Height   float64
	CharSize float64
}

// pixelRound snaps a coordinate to the pixel grid. Half values round away
// from zero so abutting widgets stay gap-free.
func pixelRound(v float64) float64 {
	return math.Round(v)
}
