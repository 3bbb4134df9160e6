package voronoi

import (
	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

const (
	nilArc = -1

	// noEdge marks the two beach line sentinels.
	noEdge = -1
	// deletedEdge tombstones an arc that left the beach line so stale hash
	// entries pointing at it can be recognized.
	deletedEdge = -2
)

// halfedge is one arc of the beach line: the left or right half of an edge.
// Arcs live in sweep.arcs and refer to each other by index.
type halfedge struct {
	left, right int
	// next links arcs sharing a queue bucket.
	next int

	edge int
	side Side

	// vertex is the scheduled circle event; ystar is the sweep position at
	// which it fires.
	vertex    geom.Point
	ystar     float64
	scheduled bool
}

func (s *sweep) newArc(edge int, side Side) int {
	s.arcs = append(s.arcs, halfedge{
		left:  nilArc,
		right: nilArc,
		next:  nilArc,
		edge:  edge,
		side:  side,
	})
	return len(s.arcs) - 1
}

// isLeftOf reports whether point p lies left of the arc at the sweep
// position p.Y.
func (s *sweep) isLeftOf(h int, p geom.Point) bool {
	he := &s.arcs[h]
	e := &s.d.edges[he.edge]
	topSite := s.d.sites[e.RightSite].Coord

	rightOfSite := p.X > topSite.X
	if rightOfSite && he.side == Left {
		return true
	}
	if !rightOfSite && he.side == Right {
		return false
	}

	var above bool
	if e.A == 1 {
		dyp := p.Y - topSite.Y
		dxp := p.X - topSite.X
		fast := false
		if (!rightOfSite && e.B < 0) || (rightOfSite && e.B >= 0) {
			above = dyp >= e.B*dxp
			fast = above
		} else {
			above = p.X+p.Y*e.B > e.C
			if e.B < 0 {
				above = !above
			}
			if !above {
				fast = true
			}
		}
		if !fast {
			dxs := topSite.X - s.d.sites[e.LeftSite].Coord.X
			above = e.B*(dxp*dxp-dyp*dyp) < dxs*dyp*(1+2*dxp/dxs+e.B*e.B)
			if e.B < 0 {
				above = !above
			}
		}
	} else {
		y1 := e.C - e.A*p.X
		t1 := p.Y - y1
		t2 := p.X - topSite.X
		t3 := y1 - topSite.Y
		above = t1*t1 > t2*t2+t3*t3
	}

	if he.side == Left {
		return above
	}
	return !above
}

// beachLine keeps the arcs ordered left to right between two permanent
// sentinels. The hash buckets the x axis and caches an arc near each bucket
// so lookups start close to the answer.
type beachLine struct {
	s *sweep

	xmin, deltaX float64
	hash         []int

	leftEnd, rightEnd int
}

func newBeachLine(s *sweep, xmin, deltaX float64, sqrtSites int) beachLine {
	b := beachLine{
		s:      s,
		xmin:   xmin,
		deltaX: deltaX,
		hash:   make([]int, 2*sqrtSites),
	}
	for i := range b.hash {
		b.hash[i] = nilArc
	}

	b.leftEnd = s.newArc(noEdge, Left)
	b.rightEnd = s.newArc(noEdge, Left)
	s.arcs[b.leftEnd].right = b.rightEnd
	s.arcs[b.rightEnd].left = b.leftEnd

	b.hash[0] = b.leftEnd
	b.hash[len(b.hash)-1] = b.rightEnd
	return b
}

// insert splices h in right of pivot.
func (b *beachLine) insert(pivot, h int) {
	arcs := b.s.arcs
	next := arcs[pivot].right
	arcs[h].left = pivot
	arcs[h].right = next
	arcs[next].left = h
	arcs[pivot].right = h
}

// remove unlinks h and tombstones it. The arc itself stays in the arena
// because the hash or the queue may still mention it.
func (b *beachLine) remove(h int) {
	arcs := b.s.arcs
	l, r := arcs[h].left, arcs[h].right
	arcs[l].right = r
	arcs[r].left = l
	arcs[h].edge = deletedEdge
	arcs[h].left = nilArc
	arcs[h].right = nilArc
}

// leftNeighbor returns the rightmost arc that is still left of p.
func (b *beachLine) leftNeighbor(p geom.Point) int {
	s := b.s
	bucket := bucketIndex(p.X, b.xmin, b.deltaX, len(b.hash))

	h := b.getHash(bucket)
	if h == nilArc {
		for i := 1; ; i++ {
			if h = b.getHash(bucket - i); h != nilArc {
				break
			}
			if h = b.getHash(bucket + i); h != nilArc {
				break
			}
		}
	}

	if h == b.leftEnd || (h != b.rightEnd && s.isLeftOf(h, p)) {
		for {
			h = s.arcs[h].right
			if h == b.rightEnd || !s.isLeftOf(h, p) {
				break
			}
		}
		h = s.arcs[h].left
	} else {
		for {
			h = s.arcs[h].left
			if h == b.leftEnd || s.isLeftOf(h, p) {
				break
			}
		}
	}

	if bucket > 0 && bucket < len(b.hash)-1 {
		b.hash[bucket] = h
	}
	return h
}

// getHash returns the cached arc for bucket i, dropping entries that point
// at removed arcs.
func (b *beachLine) getHash(i int) int {
	if i < 0 || i >= len(b.hash) {
		return nilArc
	}
	h := b.hash[i]
	if h != nilArc && b.s.arcs[h].edge == deletedEdge {
		b.hash[i] = nilArc
		return nilArc
	}
	return h
}

// bucketIndex maps v in [min, min+delta] onto [0, size). Values outside the
// range, and the NaN produced by a zero delta, are clamped.
func bucketIndex(v, min, delta float64, size int) int {
	f := (v - min) / delta * float64(size)
	if !(f > 0) {
		return 0
	}
	if f >= float64(size) {
		return size - 1
	}
	return int(f)
}
