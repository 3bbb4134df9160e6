package voronoi

import (
	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// closeEnoughEpsilon decides when two clipped endpoints are the same
// polygon point. It is tuned together with parallelEpsilon.
const closeEnoughEpsilon = 0.005

// border flags the sides of the bounds a point lies on.
type border uint8

const (
	borderTop border = 1 << iota
	borderBottom
	borderLeft
	borderRight
)

func borderOf(p geom.Point, b geom.Rect) border {
	var f border
	if p.X == b.Left() {
		f |= borderLeft
	}
	if p.X == b.Right() {
		f |= borderRight
	}
	if p.Y == b.Top() {
		f |= borderTop
	}
	if p.Y == b.Bottom() {
		f |= borderBottom
	}
	return f
}

// prepareSite puts the edges of site i in rotational order and assembles
// its clipped region.
func (d *Diagram) prepareSite(i int) {
	site := &d.sites[i]
	site.edges, site.orientations = d.reorderEdges(site.edges, byVertex)

	if len(site.edges) == 0 {
		if len(d.sites) == 1 {
			site.region = geom.Polygon(d.bounds.Corners())
		}
		return
	}

	region := d.clipToBounds(site)
	// A region that only touches the bounds along a line or at a point
	// is empty.
	if closedRing(region) == nil || region.Area() < closeEnoughEpsilon*closeEnoughEpsilon {
		return
	}
	if region.Winding() == geom.Clockwise {
		region.Reverse()
	}
	site.region = region
}

func (d *Diagram) clipToBounds(site *Site) geom.Polygon {
	n := len(site.edges)
	i := 0
	for i < n && !d.edges[site.edges[i]].Visible {
		i++
	}
	if i == n {
		return nil
	}

	e := &d.edges[site.edges[i]]
	side := site.orientations[i]
	points := geom.Polygon{e.Clipped[side], e.Clipped[side.Other()]}

	for j := i + 1; j < n; j++ {
		if !d.edges[site.edges[j]].Visible {
			continue
		}
		points = d.connect(points, site, j, false)
	}
	// Close the ring, adding bound corners if needed.
	return d.connect(points, site, i, true)
}

// connect appends the j-th edge of site to points, inserting bound corners
// when the gap between the last point and the edge runs along the bounds.
//
// When the gap joins opposite borders the corners are taken on the side that
// keeps the enclosed area smaller. This is wrong for a region covering more
// than half of the bounds.
func (d *Diagram) connect(points geom.Polygon, site *Site, j int, closingUp bool) geom.Polygon {
	b := d.bounds
	rightPoint := points[len(points)-1]
	e := &d.edges[site.edges[j]]
	side := site.orientations[j]

	newPoint := e.Clipped[side]
	if !geom.CloseEnough(rightPoint, newPoint, closeEnoughEpsilon) {
		rightCheck, newCheck := borderOf(rightPoint, b), borderOf(newPoint, b)
		if rightCheck != 0 && newCheck != 0 && rightCheck&newCheck == 0 {
			points = append(points, boundsCorners(rightPoint, newPoint, rightCheck, newCheck, b)...)
		}
		if closingUp {
			return points
		}
		points = append(points, newPoint)
	}
	if closingUp {
		return points
	}

	newRightPoint := e.Clipped[side.Other()]
	if !geom.CloseEnough(points[0], newRightPoint, closeEnoughEpsilon) &&
		!geom.CloseEnough(points[len(points)-1], newRightPoint, closeEnoughEpsilon) {
		points = append(points, newRightPoint)
	}
	return points
}

// boundsCorners returns the corners walked when going from from (on the
// from border) to to (on a different border).
func boundsCorners(from, to geom.Point, fromBorder, toBorder border, b geom.Rect) []geom.Point {
	switch {
	case fromBorder&borderRight != 0:
		px := b.Right()
		switch {
		case toBorder&borderBottom != 0:
			return []geom.Point{geom.Pt(px, b.Bottom())}
		case toBorder&borderTop != 0:
			return []geom.Point{geom.Pt(px, b.Top())}
		case toBorder&borderLeft != 0:
			py := b.Bottom()
			if from.Y-b.Y+to.Y-b.Y < b.Height {
				py = b.Top()
			}
			return []geom.Point{geom.Pt(px, py), geom.Pt(b.Left(), py)}
		}
	case fromBorder&borderLeft != 0:
		px := b.Left()
		switch {
		case toBorder&borderBottom != 0:
			return []geom.Point{geom.Pt(px, b.Bottom())}
		case toBorder&borderTop != 0:
			return []geom.Point{geom.Pt(px, b.Top())}
		case toBorder&borderRight != 0:
			py := b.Bottom()
			if from.Y-b.Y+to.Y-b.Y < b.Height {
				py = b.Top()
			}
			return []geom.Point{geom.Pt(px, py), geom.Pt(b.Right(), py)}
		}
	case fromBorder&borderTop != 0:
		py := b.Top()
		switch {
		case toBorder&borderRight != 0:
			return []geom.Point{geom.Pt(b.Right(), py)}
		case toBorder&borderLeft != 0:
			return []geom.Point{geom.Pt(b.Left(), py)}
		case toBorder&borderBottom != 0:
			px := b.Right()
			if from.X-b.X+to.X-b.X < b.Width {
				px = b.Left()
			}
			return []geom.Point{geom.Pt(px, py), geom.Pt(px, b.Bottom())}
		}
	case fromBorder&borderBottom != 0:
		py := b.Bottom()
		switch {
		case toBorder&borderRight != 0:
			return []geom.Point{geom.Pt(b.Right(), py)}
		case toBorder&borderLeft != 0:
			return []geom.Point{geom.Pt(b.Left(), py)}
		case toBorder&borderTop != 0:
			px := b.Right()
			if from.X-b.X+to.X-b.X < b.Width {
				px = b.Left()
			}
			return []geom.Point{geom.Pt(px, py), geom.Pt(px, b.Top())}
		}
	}
	return nil
}
