package voronoi

import (
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Side tags one of the two ends of an edge, or one of the two sites it
// separates.
type Side int

const (
	Left Side = iota
	Right
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// NoVertex marks an edge end that extends to infinity.
const NoVertex = -1

// parallelEpsilon is the determinant magnitude below which two bisectors
// are treated as parallel. It is tuned together with closeEnoughEpsilon.
const parallelEpsilon = 1e-10

// Site is an input point. Index is the position in the input slice and is
// the site's identity everywhere in the API.
type Site struct {
	Index int
	Coord geom.Point

	// edges are handles into Diagram.edges. After the sweep they are
	// reordered so that consecutive edges share an endpoint, and
	// orientations tells which end of each edge hooks up with the
	// previous one.
	edges        []int
	orientations []Side
	region       geom.Polygon
}

// Vertex is a finalized Voronoi vertex. Index is assigned in the order the
// circle events fire.
type Vertex struct {
	Index int
	Coord geom.Point
}

// Edge is the bisector A*x + B*y = C between LeftSite and RightSite.
//
// LeftVertex and RightVertex are vertex indices or NoVertex when the edge
// runs to infinity on that side. Clipped holds both ends cut to the diagram
// bounds and is only meaningful when Visible is set.
type Edge struct {
	Index   int
	A, B, C float64

	LeftSite, RightSite     int
	LeftVertex, RightVertex int

	Clipped [2]geom.Point
	Visible bool
}

// Site returns the site on the given side.
func (e *Edge) Site(side Side) int {
	if side == Left {
		return e.LeftSite
	}
	return e.RightSite
}

// Vertex returns the vertex index on the given side.
func (e *Edge) Vertex(side Side) int {
	if side == Left {
		return e.LeftVertex
	}
	return e.RightVertex
}

func (e *Edge) setVertex(side Side, v int) {
	if side == Left {
		e.LeftVertex = v
	} else {
		e.RightVertex = v
	}
}

// IsPartOfConvexHull reports whether the edge is a ray or a full line, that
// is, whether its two sites are neighbors on the convex hull.
func (e *Edge) IsPartOfConvexHull() bool {
	return e.LeftVertex == NoVertex || e.RightVertex == NoVertex
}

// Neighbor returns the site across the edge from site, or -1 when site is
// not one of its two sites.
func (e *Edge) Neighbor(site int) int {
	switch site {
	case e.LeftSite:
		return e.RightSite
	case e.RightSite:
		return e.LeftSite
	}
	return -1
}

// VoronoiEdge returns the clipped segment. Check Visible first.
func (e *Edge) VoronoiEdge() geom.Segment {
	return geom.Segment{P0: e.Clipped[Left], P1: e.Clipped[Right]}
}

// createBisector appends the perpendicular bisector of s0 and s1 and
// registers it on both sites. The dominant axis coefficient is normalized to
// 1 so that vertical lines need no special case. s0 and s1 must not share
// coordinates.
func (d *Diagram) createBisector(s0, s1 int) int {
	p0, p1 := d.sites[s0].Coord, d.sites[s1].Coord

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	c := p0.X*dx + p0.Y*dy + (dx*dx+dy*dy)*0.5

	var a, b float64
	if math.Abs(dx) > math.Abs(dy) {
		a = 1
		b = dy / dx
		c /= dx
	} else {
		b = 1
		a = dx / dy
		c /= dy
	}

	idx := len(d.edges)
	d.edges = append(d.edges, Edge{
		Index:       idx,
		A:           a,
		B:           b,
		C:           c,
		LeftSite:    s0,
		RightSite:   s1,
		LeftVertex:  NoVertex,
		RightVertex: NoVertex,
	})
	d.sites[s0].edges = append(d.sites[s0].edges, idx)
	d.sites[s1].edges = append(d.sites[s1].edges, idx)
	return idx
}

// finalizeVertex stores p as the next vertex and returns its index.
func (d *Diagram) finalizeVertex(p geom.Point) int {
	idx := len(d.vertices)
	d.vertices = append(d.vertices, Vertex{Index: idx, Coord: p})
	return idx
}

type intersection int

const (
	noIntersection intersection = iota
	// intersectionAtInfinity is a solution of the bisector system that is
	// not a finite point. It is never scheduled nor finalized.
	intersectionAtInfinity
	intersectionFinite
)

// intersect computes the point where the edges of two beach line arcs meet.
// The result is rejected when the point lies behind the arc whose right site
// comes first in sweep order, since the breakpoints can never converge there.
func (s *sweep) intersect(h0, h1 int) (geom.Point, intersection) {
	e0i, e1i := s.arcs[h0].edge, s.arcs[h1].edge
	if e0i < 0 || e1i < 0 {
		return geom.Point{}, noIntersection
	}
	e0, e1 := &s.d.edges[e0i], &s.d.edges[e1i]
	if e0.RightSite == e1.RightSite {
		return geom.Point{}, noIntersection
	}

	det := e0.A*e1.B - e0.B*e1.A
	if math.Abs(det) < parallelEpsilon {
		return geom.Point{}, noIntersection
	}

	x := (e0.C*e1.B - e1.C*e0.B) / det
	y := (e1.C*e0.A - e0.C*e1.A) / det

	he, e := h0, e0
	if geom.CompareYThenX(s.d.sites[e0.RightSite].Coord, s.d.sites[e1.RightSite].Coord) >= 0 {
		he, e = h1, e1
	}
	rightOfSite := x >= s.d.sites[e.RightSite].Coord.X
	side := s.arcs[he].side
	if (rightOfSite && side == Left) || (!rightOfSite && side == Right) {
		return geom.Point{}, noIntersection
	}

	p := geom.Pt(x, y)
	if !geom.IsFinite(p) {
		return p, intersectionAtInfinity
	}
	return p, intersectionFinite
}
