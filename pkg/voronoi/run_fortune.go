package voronoi

import (
	"math"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
)

const noSite = -1

// sweep is the state of one run of Fortune's algorithm. It owns the arc
// arena, the beach line and the event queue and writes edges and vertices
// into its Diagram.
type sweep struct {
	d      *Diagram
	order  []int
	cursor int

	arcs  []halfedge
	beach beachLine
	queue eventQueue

	log   *logger.ZapLogger
	debug bool

	siteEvents, circleEvents int
}

// newSweep prepares a sweep over the sites of d visited in order, which
// must be sorted by (y, then x).
func newSweep(d *Diagram, order []int, log *logger.ZapLogger) *sweep {
	s := &sweep{
		d:     d,
		order: order,
		log:   log,
		debug: log.Enabled(zapcore.DebugLevel),
	}

	coords := make([]geom.Point, len(order))
	for i, h := range order {
		coords[i] = d.sites[h].Coord
	}
	dataBounds := geom.RectFromPoints(coords...)

	sqrtSites := int(math.Sqrt(float64(len(order) + 4)))
	s.arcs = make([]halfedge, 0, 4*len(order)+2)
	s.beach = newBeachLine(s, dataBounds.X, dataBounds.Width, sqrtSites)
	s.queue = newEventQueue(s, dataBounds.Y, dataBounds.Height, sqrtSites)
	return s
}

func (s *sweep) nextSite() int {
	if s.cursor >= len(s.order) {
		return noSite
	}
	h := s.order[s.cursor]
	s.cursor++
	return h
}

// run interleaves site events and circle events until both are exhausted.
func (s *sweep) run() {
	bottomMost := s.nextSite()
	newSite := s.nextSite()

	var newIntStar geom.Point
	for {
		if !s.queue.empty() {
			newIntStar = s.queue.min()
		}

		switch {
		case newSite != noSite && (s.queue.empty() || geom.CompareYThenX(s.d.sites[newSite].Coord, newIntStar) < 0):
			s.siteEvent(newSite, bottomMost)
			newSite = s.nextSite()
		case !s.queue.empty():
			s.circleEvent(bottomMost)
		default:
			return
		}
	}
}

func (s *sweep) siteEvent(site, bottomMost int) {
	s.siteEvents++
	p := s.d.sites[site].Coord

	lbnd := s.beach.leftNeighbor(p)
	rbnd := s.arcs[lbnd].right
	bottom := s.rightRegion(lbnd, bottomMost)

	edge := s.d.createBisector(bottom, site)
	if s.debug {
		s.log.Debug("[sweep] site event",
			zap.Int("site", site), zap.Float64("x", p.X), zap.Float64("y", p.Y),
			zap.Int("bottom", bottom), zap.Int("edge", edge))
	}

	bisector := s.newArc(edge, Left)
	s.beach.insert(lbnd, bisector)
	if v, kind := s.intersect(lbnd, bisector); kind == intersectionFinite {
		s.queue.remove(lbnd)
		s.schedule(lbnd, v, p)
	}

	lbnd = bisector
	bisector = s.newArc(edge, Right)
	s.beach.insert(lbnd, bisector)
	if v, kind := s.intersect(bisector, rbnd); kind == intersectionFinite {
		s.schedule(bisector, v, p)
	}
}

func (s *sweep) circleEvent(bottomMost int) {
	s.circleEvents++
	d := s.d

	lbnd := s.queue.extractMin()
	llbnd := s.arcs[lbnd].left
	rbnd := s.arcs[lbnd].right
	rrbnd := s.arcs[rbnd].right

	bottom := s.leftRegion(lbnd, bottomMost)
	top := s.rightRegion(rbnd, bottomMost)

	v := d.finalizeVertex(s.arcs[lbnd].vertex)
	d.edges[s.arcs[lbnd].edge].setVertex(s.arcs[lbnd].side, v)
	d.edges[s.arcs[rbnd].edge].setVertex(s.arcs[rbnd].side, v)

	s.beach.remove(lbnd)
	s.queue.remove(rbnd)
	s.beach.remove(rbnd)

	side := Left
	if geom.CompareYThenX(d.sites[bottom].Coord, d.sites[top].Coord) > 0 {
		bottom, top = top, bottom
		side = Right
	}

	edge := d.createBisector(bottom, top)
	if s.debug {
		c := d.vertices[v].Coord
		s.log.Debug("[sweep] circle event",
			zap.Int("vertex", v), zap.Float64("x", c.X), zap.Float64("y", c.Y),
			zap.Int("bottom", bottom), zap.Int("top", top), zap.Int("edge", edge))
	}

	bisector := s.newArc(edge, side)
	s.beach.insert(llbnd, bisector)
	d.edges[edge].setVertex(side.Other(), v)

	bp := d.sites[bottom].Coord
	if p, kind := s.intersect(llbnd, bisector); kind == intersectionFinite {
		s.queue.remove(llbnd)
		s.schedule(llbnd, p, bp)
	}
	if p, kind := s.intersect(bisector, rrbnd); kind == intersectionFinite {
		s.schedule(bisector, p, bp)
	}
}

// schedule queues the circle event of arc h at vertex v. site is the site
// whose distance to v turns v.Y into the sweep position of the event.
func (s *sweep) schedule(h int, v, site geom.Point) {
	he := &s.arcs[h]
	he.vertex = v
	he.ystar = v.Y + geom.Dist(site, v)
	he.scheduled = true
	s.queue.insert(h)
}

// leftRegion is the site left of arc h; the sentinels face bottomMost.
func (s *sweep) leftRegion(h, bottomMost int) int {
	he := &s.arcs[h]
	if he.edge < 0 {
		return bottomMost
	}
	return s.d.edges[he.edge].Site(he.side)
}

func (s *sweep) rightRegion(h, bottomMost int) int {
	he := &s.arcs[h]
	if he.edge < 0 {
		return bottomMost
	}
	return s.d.edges[he.edge].Site(he.side.Other())
}
