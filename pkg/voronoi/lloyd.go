package voronoi

import (
	"go.uber.org/zap"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Relax runs iterations of Lloyd's algorithm: every site moves to the
// centroid of its region and the diagram is rebuilt. A site whose region is
// empty or degenerate keeps its position. The receiver is left untouched.
func (d *Diagram) Relax(iterations int) (*Diagram, error) {
	d.mustBeBuilt()
	if iterations < 0 {
		return nil, invalidInputf("negative relaxation iteration count %d", iterations)
	}

	cur := d
	for it := 0; it < iterations; it++ {
		points := make([]geom.Point, len(cur.sites))
		moved := 0
		for i := range cur.sites {
			points[i] = cur.sites[i].Coord
			if c, ok := cur.sites[i].region.Centroid(); ok {
				points[i] = c
				moved++
			}
		}

		cur.log.Debug("[lloyd] iteration",
			zap.Int("iteration", it+1),
			zap.Int("moved", moved),
			zap.Int("kept", len(points)-moved))

		next, err := build(points, cur.bounds, cur.log)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
