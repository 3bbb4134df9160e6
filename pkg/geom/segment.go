package geom

// Segment is a line segment between two points.
type Segment struct {
	P0, P1 Point
}

// Length returns the distance between the two endpoints.
func (s Segment) Length() float64 {
	return Dist(s.P0, s.P1)
}

// Circle is a circle given by center and radius.
type Circle struct {
	Center Point
	Radius float64
}
