package geom

// Winding is the rotational direction of a polygon's vertex sequence.
type Winding int

const (
	WindingNone Winding = iota
	Clockwise
	CounterClockwise
)

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "none"
	}
}

// Polygon is a closed ring of vertices. The last vertex is implicitly joined
// to the first one.
type Polygon []Point

// SignedDoubleArea returns twice the signed area (shoelace formula).
func (p Polygon) SignedDoubleArea() float64 {
	var sum float64
	n := len(p)
	for i := 0; i < n; i++ {
		next := p[(i+1)%n]
		sum += p[i].X*next.Y - next.X*p[i].Y
	}
	return sum
}

// Area returns the unsigned area.
func (p Polygon) Area() float64 {
	a := p.SignedDoubleArea() * 0.5
	if a < 0 {
		return -a
	}
	return a
}

// Winding classifies the ring by the sign of its area. A positive signed
// area is CounterClockwise.
func (p Polygon) Winding() Winding {
	a := p.SignedDoubleArea()
	switch {
	case a < 0:
		return Clockwise
	case a > 0:
		return CounterClockwise
	}
	return WindingNone
}

// Reverse reverses the vertex order in place.
func (p Polygon) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// Centroid returns the area centroid. ok is false for rings with zero area.
func (p Polygon) Centroid() (c Point, ok bool) {
	var area float64
	n := len(p)
	for i := 0; i < n; i++ {
		p0, p1 := p[i], p[(i+1)%n]
		a := p0.X*p1.Y - p1.X*p0.Y
		area += a
		c.X += (p0.X + p1.X) * a
		c.Y += (p0.Y + p1.Y) * a
	}
	if area == 0 {
		return Point{}, false
	}
	area *= 0.5
	c.X /= 6 * area
	c.Y /= 6 * area
	return c, true
}
