package voronoi

import (
	"github.com/cockroachdb/errors"
	sf "github.com/peterstace/simplefeatures/geom"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// RegionPolygon converts the region of site i into a validated simple
// features polygon. An empty region gives an empty polygon.
func (d *Diagram) RegionPolygon(i int) (sf.Polygon, error) {
	d.mustBeBuilt()
	ring := closedRing(d.sites[i].region)
	if len(ring) < 4 {
		return sf.Polygon{}, nil
	}

	coords := make([]float64, 0, 2*len(ring))
	for _, p := range ring {
		coords = append(coords, p.X, p.Y)
	}
	ls, err := sf.NewLineString(sf.NewSequence(coords, sf.DimXY))
	if err != nil {
		return sf.Polygon{}, errors.Wrapf(err, "region of site %d", i)
	}
	poly, err := sf.NewPolygonFromRings([]sf.LineString{ls})
	if err != nil {
		return sf.Polygon{}, errors.Wrapf(err, "region of site %d", i)
	}
	return poly, nil
}

// RegionsWKT renders every region as WKT, in site order.
func (d *Diagram) RegionsWKT() ([]string, error) {
	d.mustBeBuilt()
	out := make([]string, len(d.sites))
	for i := range d.sites {
		poly, err := d.RegionPolygon(i)
		if err != nil {
			return nil, err
		}
		out[i] = poly.AsText()
	}
	return out, nil
}

// closedRing drops consecutive points closer than closeEnoughEpsilon and
// repeats the first point at the end.
func closedRing(region geom.Polygon) []geom.Point {
	ring := make([]geom.Point, 0, len(region)+1)
	for _, p := range region {
		if len(ring) > 0 && geom.CloseEnough(ring[len(ring)-1], p, closeEnoughEpsilon) {
			continue
		}
		ring = append(ring, p)
	}
	for len(ring) > 1 && geom.CloseEnough(ring[len(ring)-1], ring[0], closeEnoughEpsilon) {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return nil
	}
	return append(ring, ring[0])
}
