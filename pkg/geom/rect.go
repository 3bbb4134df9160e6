package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Rect is an axis aligned rectangle given by its top-left corner and size.
// Y grows towards Bottom.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromPoints returns the smallest rectangle containing all pts.
// It returns the zero Rect when pts is empty.
func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := r2.RectFromPoints(pts...)
	return Rect{X: r.X.Lo, Y: r.Y.Lo, Width: r.X.Length(), Height: r.Y.Length()}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) TopLeft() Point     { return Point{X: r.Left(), Y: r.Top()} }
func (r Rect) BottomRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Area returns Width*Height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Corners returns the four corners starting at the top-left one. The order
// has a positive signed area, see Polygon.Winding.
func (r Rect) Corners() []Point {
	return []Point{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left(), Y: r.Bottom()},
	}
}

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p Point) bool {
	return r.R2().ContainsPoint(p)
}

// R2 converts r to an r2.Rect.
func (r Rect) R2() r2.Rect {
	return r2.RectFromPoints(r.TopLeft(), r.BottomRight())
}

// IsValid reports whether all fields are finite and the size is not negative.
func (r Rect) IsValid() bool {
	for _, v := range [...]float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Width >= 0 && r.Height >= 0
}
