// Package geom holds the plain 2D value types the diagram is built from and
// returns: points, rectangles, segments, polygons and circles.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a 2D coordinate. It is r2.Point so the usual vector helpers
// (Add, Sub, Mul, Dot, Cross, Norm) come for free.
type Point = r2.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Dist returns the euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return a.Sub(b).Norm()
}

// DistSquared returns the squared euclidean distance between a and b.
func DistSquared(a, b Point) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func IsFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// CloseEnough reports whether a and b are closer than eps.
func CloseEnough(a, b Point, eps float64) bool {
	return Dist(a, b) < eps
}

// CompareYThenX orders points by y, then by x. It returns -1, 0 or 1.
func CompareYThenX(a, b Point) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}
