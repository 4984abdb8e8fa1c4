package fbview

import (
	"image"
)

// Point is a point with float32 coordinates, typically a cursor position.
//
type Point struct {
	X float32
	Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point { return Point{x, y} }

// Sub returns the vector p-pt.
func (p Point) Sub(pt Point) Point { return Point{p.X - pt.X, p.Y - pt.Y} }

// In reports whether p is in r, using the same half-open bounds as image.Point.In.
//
func (p Point) In(r image.Rectangle) bool {
	return float32(r.Min.X) <= p.X && p.X < float32(r.Max.X) &&
		float32(r.Min.Y) <= p.Y && p.Y < float32(r.Max.Y)
}
