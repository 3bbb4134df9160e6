package voronoi

import (
	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// clipEdge cuts the edge line to bounds, using the finite vertices where
// they lie inside. The ends are stored by the side of the vertex they come
// from so regions can walk edges in rotational order. Edges entirely outside
// are left invisible. Clipping only reads the line and the vertices, so
// doing it twice gives the same result.
func (d *Diagram) clipEdge(e *Edge, bounds geom.Rect) {
	xmin, ymin := bounds.Left(), bounds.Top()
	xmax, ymax := bounds.Right(), bounds.Bottom()

	e.Visible = false
	e.Clipped = [2]geom.Point{}

	var vertex0, vertex1 int
	if e.A == 1 && e.B >= 0 {
		vertex0, vertex1 = e.RightVertex, e.LeftVertex
	} else {
		vertex0, vertex1 = e.LeftVertex, e.RightVertex
	}

	var x0, y0, x1, y1 float64
	if e.A == 1 {
		y0 = ymin
		if vertex0 != NoVertex && d.vertices[vertex0].Coord.Y > ymin {
			y0 = d.vertices[vertex0].Coord.Y
		}
		if y0 > ymax {
			return
		}
		x0 = e.C - e.B*y0

		y1 = ymax
		if vertex1 != NoVertex && d.vertices[vertex1].Coord.Y < ymax {
			y1 = d.vertices[vertex1].Coord.Y
		}
		if y1 < ymin {
			return
		}
		x1 = e.C - e.B*y1

		if (x0 > xmax && x1 > xmax) || (x0 < xmin && x1 < xmin) {
			return
		}

		if x0 > xmax {
			x0 = xmax
			y0 = (e.C - x0) / e.B
		} else if x0 < xmin {
			x0 = xmin
			y0 = (e.C - x0) / e.B
		}

		if x1 > xmax {
			x1 = xmax
			y1 = (e.C - x1) / e.B
		} else if x1 < xmin {
			x1 = xmin
			y1 = (e.C - x1) / e.B
		}
	} else {
		x0 = xmin
		if vertex0 != NoVertex && d.vertices[vertex0].Coord.X > xmin {
			x0 = d.vertices[vertex0].Coord.X
		}
		if x0 > xmax {
			return
		}
		y0 = e.C - e.A*x0

		x1 = xmax
		if vertex1 != NoVertex && d.vertices[vertex1].Coord.X < xmax {
			x1 = d.vertices[vertex1].Coord.X
		}
		if x1 < xmin {
			return
		}
		y1 = e.C - e.A*x1

		if (y0 > ymax && y1 > ymax) || (y0 < ymin && y1 < ymin) {
			return
		}

		if y0 > ymax {
			y0 = ymax
			x0 = (e.C - y0) / e.A
		} else if y0 < ymin {
			y0 = ymin
			x0 = (e.C - y0) / e.A
		}

		if y1 > ymax {
			y1 = ymax
			x1 = (e.C - y1) / e.A
		} else if y1 < ymin {
			y1 = ymin
			x1 = (e.C - y1) / e.A
		}
	}

	// Handles compare like the vertex references they stand for: two
	// missing vertices are the same end.
	if vertex0 == e.LeftVertex {
		e.Clipped[Left] = geom.Pt(x0, y0)
		e.Clipped[Right] = geom.Pt(x1, y1)
	} else {
		e.Clipped[Right] = geom.Pt(x0, y0)
		e.Clipped[Left] = geom.Pt(x1, y1)
	}
	e.Visible = true
}

// clipEdges clips every edge to the diagram bounds.
func (d *Diagram) clipEdges() {
	for i := range d.edges {
		d.clipEdge(&d.edges[i], d.bounds)
	}
}
