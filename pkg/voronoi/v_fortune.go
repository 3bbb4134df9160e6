// Package voronoi builds Voronoi diagrams and their dual Delaunay
// triangulations with Fortune's sweep line, clipped to a rectangle.
package voronoi

import (
	"math"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/peterstace/simplefeatures/rtree"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
)

// Diagram is a finished Voronoi diagram. All derived data is computed by New,
// so a Diagram is read-only and safe for concurrent use.
type Diagram struct {
	bounds   geom.Rect
	sites    []Site
	edges    []Edge
	vertices []Vertex

	index rtree.RTree
	log   *logger.ZapLogger
	built bool
}

// New computes the diagram of points clipped to bounds. Sites are
// identified by their index in points.
//
// Points must be finite and pairwise distinct, otherwise an error wrapping
// ErrInvalidInput is returned. Zero points give an empty diagram; a single
// point owns the whole bounds.
func New(points []geom.Point, bounds geom.Rect, opts ...Option) (*Diagram, error) {
	o := buildOptions(opts)
	if o.relax < 0 {
		return nil, invalidInputf("negative relaxation iteration count %d", o.relax)
	}

	d, err := build(points, bounds, o.log)
	if err != nil {
		return nil, err
	}
	if o.relax > 0 {
		return d.Relax(o.relax)
	}
	return d, nil
}

func build(points []geom.Point, bounds geom.Rect, log *logger.ZapLogger) (*Diagram, error) {
	if !bounds.IsValid() {
		return nil, invalidInputf("bounds %+v", bounds)
	}

	d := &Diagram{
		bounds: bounds,
		sites:  make([]Site, len(points)),
		log:    log,
	}
	for i, p := range points {
		if !geom.IsFinite(p) {
			return nil, invalidInputf("site %d has non-finite coordinates (%v, %v)", i, p.X, p.Y)
		}
		d.sites[i] = Site{Index: i, Coord: p}
	}

	order := make([]int, len(d.sites))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return geom.CompareYThenX(d.sites[order[i]].Coord, d.sites[order[j]].Coord) < 0
	})
	for k := 1; k < len(order); k++ {
		a, b := order[k-1], order[k]
		if d.sites[a].Coord == d.sites[b].Coord {
			return nil, invalidInputf("sites %d and %d share coordinates (%v, %v)",
				a, b, d.sites[a].Coord.X, d.sites[a].Coord.Y)
		}
	}

	start := time.Now()
	log.Info("[fortune] sweep started", zap.Int("sites", len(d.sites)))

	s := newSweep(d, order, log)
	s.run()

	log.Info("[fortune] sweep finished",
		zap.Int("siteEvents", s.siteEvents),
		zap.Int("circleEvents", s.circleEvents),
		zap.Int("edges", len(d.edges)),
		zap.Int("vertices", len(d.vertices)))

	d.clipEdges()
	for i := range d.sites {
		d.prepareSite(i)
		d.index.Insert(pointBox(d.sites[i].Coord), i)
	}
	d.built = true

	log.Info("[fortune] diagram ready",
		zap.Int("visibleEdges", d.visibleEdgeCount()),
		zap.Duration("took", time.Since(start)))
	return d, nil
}

func pointBox(p geom.Point) rtree.Box {
	return rtree.Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

func (d *Diagram) mustBeBuilt() {
	if d == nil || !d.built {
		panic(errors.AssertionFailedf("voronoi: diagram queried before the sweep completed"))
	}
}

func (d *Diagram) visibleEdgeCount() int {
	n := 0
	for i := range d.edges {
		if d.edges[i].Visible {
			n++
		}
	}
	return n
}

// Bounds returns the clipping rectangle.
func (d *Diagram) Bounds() geom.Rect {
	d.mustBeBuilt()
	return d.bounds
}

// Sites returns the sites in input order.
func (d *Diagram) Sites() []Site {
	d.mustBeBuilt()
	out := make([]Site, len(d.sites))
	for i, s := range d.sites {
		out[i] = Site{Index: s.Index, Coord: s.Coord}
	}
	return out
}

// SiteCoords returns the site coordinates in input order.
func (d *Diagram) SiteCoords() []geom.Point {
	d.mustBeBuilt()
	out := make([]geom.Point, len(d.sites))
	for i := range d.sites {
		out[i] = d.sites[i].Coord
	}
	return out
}

// Edges returns every bisector built by the sweep, visible or not.
func (d *Diagram) Edges() []Edge {
	d.mustBeBuilt()
	return append([]Edge(nil), d.edges...)
}

// Vertices returns the finalized Voronoi vertices in index order.
func (d *Diagram) Vertices() []Vertex {
	d.mustBeBuilt()
	return append([]Vertex(nil), d.vertices...)
}

// Region returns the counter-clockwise polygon of site i clipped to the
// bounds. It is empty when no part of the region is visible.
func (d *Diagram) Region(i int) geom.Polygon {
	d.mustBeBuilt()
	return append(geom.Polygon(nil), d.sites[i].region...)
}

// Regions returns the regions of all sites in input order.
func (d *Diagram) Regions() []geom.Polygon {
	d.mustBeBuilt()
	out := make([]geom.Polygon, len(d.sites))
	for i := range d.sites {
		out[i] = d.Region(i)
	}
	return out
}

// VoronoiDiagram returns all visible clipped Voronoi edges.
func (d *Diagram) VoronoiDiagram() []geom.Segment {
	d.mustBeBuilt()
	var out []geom.Segment
	for i := range d.edges {
		if d.edges[i].Visible {
			out = append(out, d.edges[i].VoronoiEdge())
		}
	}
	return out
}

// VoronoiBoundaryForSite returns the visible edges around site i in
// rotational order.
func (d *Diagram) VoronoiBoundaryForSite(i int) []geom.Segment {
	d.mustBeBuilt()
	var out []geom.Segment
	for _, e := range d.sites[i].edges {
		if d.edges[e].Visible {
			out = append(out, d.edges[e].VoronoiEdge())
		}
	}
	return out
}

// DelaunayLine returns the segment between the two sites of e.
func (d *Diagram) DelaunayLine(e Edge) geom.Segment {
	return geom.Segment{P0: d.sites[e.LeftSite].Coord, P1: d.sites[e.RightSite].Coord}
}

// DelaunayLines returns every Delaunay edge.
func (d *Diagram) DelaunayLines() []geom.Segment {
	d.mustBeBuilt()
	out := make([]geom.Segment, len(d.edges))
	for i := range d.edges {
		out[i] = d.DelaunayLine(d.edges[i])
	}
	return out
}

// DelaunayLinesForSite returns the Delaunay edges incident to site i.
func (d *Diagram) DelaunayLinesForSite(i int) []geom.Segment {
	d.mustBeBuilt()
	out := make([]geom.Segment, 0, len(d.sites[i].edges))
	for _, e := range d.sites[i].edges {
		out = append(out, d.DelaunayLine(d.edges[e]))
	}
	return out
}

// HullEdges returns the edges whose two sites are convex hull neighbors.
func (d *Diagram) HullEdges() []Edge {
	d.mustBeBuilt()
	var out []Edge
	for i := range d.edges {
		if d.edges[i].IsPartOfConvexHull() {
			out = append(out, d.edges[i])
		}
	}
	return out
}

// Hull returns the convex hull as Delaunay segments, unordered.
func (d *Diagram) Hull() []geom.Segment {
	d.mustBeBuilt()
	var out []geom.Segment
	for _, e := range d.HullEdges() {
		out = append(out, d.DelaunayLine(e))
	}
	return out
}

// HullPointsInOrder returns the hull sites walking around the hull.
func (d *Diagram) HullPointsInOrder() []geom.Point {
	d.mustBeBuilt()
	var hull []int
	for i := range d.edges {
		if d.edges[i].IsPartOfConvexHull() {
			hull = append(hull, i)
		}
	}
	edges, sides := d.reorderEdges(hull, bySite)
	out := make([]geom.Point, len(edges))
	for i, e := range edges {
		out[i] = d.sites[d.edges[e].Site(sides[i])].Coord
	}
	return out
}

// NeighborSites returns the sites sharing an edge with site i, in
// rotational order.
func (d *Diagram) NeighborSites(i int) []int {
	d.mustBeBuilt()
	out := make([]int, 0, len(d.sites[i].edges))
	for _, e := range d.sites[i].edges {
		out = append(out, d.edges[e].Neighbor(i))
	}
	return out
}

// NeighborSiteEdges maps each neighbor of site i to the edge between them.
func (d *Diagram) NeighborSiteEdges(i int) map[int]Edge {
	d.mustBeBuilt()
	out := make(map[int]Edge, len(d.sites[i].edges))
	for _, e := range d.sites[i].edges {
		out[d.edges[e].Neighbor(i)] = d.edges[e]
	}
	return out
}

// Circles returns, for every site, the circle centered on it with half the
// distance to its nearest neighbor as radius. Sites whose nearest edge is a
// hull edge, and sites without edges, get radius 0.
func (d *Diagram) Circles() []geom.Circle {
	d.mustBeBuilt()
	out := make([]geom.Circle, len(d.sites))
	for i := range d.sites {
		site := &d.sites[i]
		out[i].Center = site.Coord

		nearest, best := -1, math.Inf(1)
		for _, e := range site.edges {
			if dist := d.sitesDistance(e); dist < best {
				nearest, best = e, dist
			}
		}
		if nearest >= 0 && !d.edges[nearest].IsPartOfConvexHull() {
			out[i].Radius = best * 0.5
		}
	}
	return out
}

func (d *Diagram) sitesDistance(e int) float64 {
	return geom.Dist(d.sites[d.edges[e].LeftSite].Coord, d.sites[d.edges[e].RightSite].Coord)
}

// SiteAt returns the site nearest to p if it is within tolerance.
func (d *Diagram) SiteAt(p geom.Point, tolerance float64) (int, bool) {
	d.mustBeBuilt()
	found := -1
	err := d.index.PrioritySearch(pointBox(p), func(id int) error {
		found = id
		return rtree.Stop
	})
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "voronoi: site index search"))
	}
	if found < 0 || geom.Dist(d.sites[found].Coord, p) > tolerance {
		return -1, false
	}
	return found, true
}
