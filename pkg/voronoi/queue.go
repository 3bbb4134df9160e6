package voronoi

import (
	"github.com/cockroachdb/errors"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// eventQueue holds scheduled circle events. Buckets split the y range of the
// sites; each bucket is a chain sorted by (ystar, vertex x). Since the sweep
// only moves down, the minimum bucket cursor mostly moves forward.
type eventQueue struct {
	s *sweep

	ymin, deltaY float64
	heads        []int
	count        int
	minBucket    int
}

func newEventQueue(s *sweep, ymin, deltaY float64, sqrtSites int) eventQueue {
	q := eventQueue{
		s:      s,
		ymin:   ymin,
		deltaY: deltaY,
		heads:  make([]int, 4*sqrtSites),
	}
	for i := range q.heads {
		q.heads[i] = nilArc
	}
	return q
}

func (q *eventQueue) empty() bool {
	return q.count == 0
}

func (q *eventQueue) len() int {
	return q.count
}

func (q *eventQueue) bucket(h int) int {
	return bucketIndex(q.s.arcs[h].ystar, q.ymin, q.deltaY, len(q.heads))
}

// insert adds a scheduled arc.
func (q *eventQueue) insert(h int) {
	arcs := q.s.arcs
	b := q.bucket(h)
	if b < q.minBucket {
		q.minBucket = b
	}

	he := &arcs[h]
	prev, next := nilArc, q.heads[b]
	for next != nilArc {
		n := &arcs[next]
		if he.ystar < n.ystar || (he.ystar == n.ystar && he.vertex.X <= n.vertex.X) {
			break
		}
		prev, next = next, n.next
	}

	he.next = next
	if prev == nilArc {
		q.heads[b] = h
	} else {
		arcs[prev].next = h
	}
	q.count++
}

// remove unschedules h. Arcs without a scheduled event are ignored.
func (q *eventQueue) remove(h int) {
	arcs := q.s.arcs
	he := &arcs[h]
	if !he.scheduled {
		return
	}

	b := q.bucket(h)
	if q.heads[b] == h {
		q.heads[b] = he.next
	} else {
		prev := q.heads[b]
		for arcs[prev].next != h {
			prev = arcs[prev].next
		}
		arcs[prev].next = he.next
	}
	q.count--
	he.scheduled = false
	he.next = nilArc
}

func (q *eventQueue) adjustMinBucket() {
	for q.minBucket < len(q.heads)-1 && q.heads[q.minBucket] == nilArc {
		q.minBucket++
	}
}

// min returns the event position in transformed space: the vertex x and
// the ystar at which it fires.
func (q *eventQueue) min() geom.Point {
	if q.empty() {
		panic(errors.AssertionFailedf("voronoi: min of empty event queue"))
	}
	q.adjustMinBucket()
	he := &q.s.arcs[q.heads[q.minBucket]]
	return geom.Pt(he.vertex.X, he.ystar)
}

// extractMin removes and returns the earliest arc. Its vertex stays readable.
func (q *eventQueue) extractMin() int {
	if q.empty() {
		panic(errors.AssertionFailedf("voronoi: extractMin of empty event queue"))
	}
	q.adjustMinBucket()
	h := q.heads[q.minBucket]
	he := &q.s.arcs[h]
	q.heads[q.minBucket] = he.next
	q.count--
	he.next = nilArc
	he.scheduled = false
	return h
}
