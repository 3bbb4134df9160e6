package voronoi

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

var propertyBounds = geom.NewRect(0, 0, 100, 100)

func randomSites(seed int64, n int) []geom.Point {
	rnd := rand.New(rand.NewSource(seed))
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Pt(rnd.Float64()*propertyBounds.Width, rnd.Float64()*propertyBounds.Height)
	}
	return points
}

func diagramProperties(minSuccessful int) *gopter.Properties {
	params := gopter.DefaultTestParametersWithSeed(1234)
	params.MinSuccessfulTests = minSuccessful
	return gopter.NewProperties(params)
}

func randomDiagram(seed int64, n int) (*Diagram, error) {
	return New(randomSites(seed, n), propertyBounds)
}

func TestDiagramProperties(t *testing.T) {
	properties := diagramProperties(50)
	seeds := gen.Int64Range(1, math.MaxInt32)
	sizes := gen.IntRange(20, 100)

	properties.Property("edges separate two distinct sites that list each other as neighbors", prop.ForAll(
		func(seed int64, n int) bool {
			d, err := randomDiagram(seed, n)
			if err != nil {
				return false
			}
			for _, e := range d.edges {
				if e.LeftSite == e.RightSite {
					return false
				}
				if !containsInt(d.NeighborSites(e.LeftSite), e.RightSite) ||
					!containsInt(d.NeighborSites(e.RightSite), e.LeftSite) {
					return false
				}
			}
			return true
		},
		seeds, sizes,
	))

	properties.Property("every circle event adds one vertex and one edge", prop.ForAll(
		func(seed int64, n int) bool {
			d, err := randomDiagram(seed, n)
			if err != nil {
				return false
			}
			// n-1 site events each add an edge.
			return len(d.edges) == len(d.vertices)+n-1
		},
		seeds, sizes,
	))

	properties.Property("regions tile the bounds", prop.ForAll(
		func(seed int64, n int) bool {
			d, err := randomDiagram(seed, n)
			if err != nil {
				return false
			}
			var sum float64
			for i := range d.sites {
				region := d.Region(i)
				if region.Winding() != geom.CounterClockwise {
					return false
				}
				sum += region.Area()
			}
			return math.Abs(sum-propertyBounds.Area()) < 1
		},
		seeds, sizes,
	))

	properties.Property("clipped graph satisfies Euler's formula", prop.ForAll(
		func(seed int64, n int) bool {
			d, err := randomDiagram(seed, n)
			if err != nil {
				return false
			}
			v, e := clippedGraph(d)
			return v-e+len(d.sites)+1 == 2
		},
		seeds, sizes,
	))

	properties.Property("clipping twice gives the same ends", prop.ForAll(
		func(seed int64, n int) bool {
			d, err := randomDiagram(seed, n)
			if err != nil {
				return false
			}
			for _, e := range d.edges {
				again := e
				d.clipEdge(&again, d.bounds)
				if again != e {
					return false
				}
			}
			return true
		},
		seeds, sizes,
	))

	properties.TestingRun(t)
}

func TestRelaxationProperties(t *testing.T) {
	properties := diagramProperties(20)

	properties.Property("relaxation reduces the distance between sites and centroids", prop.ForAll(
		func(seed int64, n int) bool {
			d, err := randomDiagram(seed, n)
			if err != nil {
				return false
			}
			relaxed, err := d.Relax(5)
			if err != nil {
				return false
			}
			return centroidDistance(relaxed) <= centroidDistance(d)
		},
		gen.Int64Range(1, math.MaxInt32), gen.IntRange(20, 60),
	))

	properties.TestingRun(t)
}

// rowSites spaces n sites evenly between from and to, each in the middle
// of its share of the segment.
func rowSites(n int, from, to geom.Point) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		t := (float64(i) + 0.5) / float64(n)
		points[i] = geom.Pt(from.X+t*(to.X-from.X), from.Y+t*(to.Y-from.Y))
	}
	return points
}

// gridSites puts cols*rows sites on a square lattice starting at origin.
func gridSites(cols, rows int, origin geom.Point, step float64) []geom.Point {
	var points []geom.Point
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			points = append(points, geom.Pt(origin.X+float64(i)*step, origin.Y+float64(j)*step))
		}
	}
	return points
}

func TestDegenerateLayouts(t *testing.T) {
	b := propertyBounds
	cases := map[string][]geom.Point{
		// Several grids lie partly outside the bounds; their cell borders
		// never run along the bounds.
		"grid outside bounds": gridSites(6, 6, geom.Pt(-10, -10), 25),
		"grid 3x4 offset":     gridSites(3, 4, geom.Pt(-20, 5), 30),
	}
	for _, n := range []int{3, 4, 5, 8} {
		cases[fmt.Sprintf("row %d", n)] = rowSites(n, geom.Pt(0, 30), geom.Pt(b.Width, 30))
		cases[fmt.Sprintf("column %d", n)] = rowSites(n, geom.Pt(70, 0), geom.Pt(70, b.Height))
	}
	// Even counts would put a bisector through the bounds corners.
	for _, n := range []int{3, 5, 7} {
		cases[fmt.Sprintf("diagonal %d", n)] = rowSites(n, geom.Pt(0, 0), geom.Pt(b.Width, b.Height))
	}
	for k := 2; k <= 5; k++ {
		step := b.Width / float64(k)
		cases[fmt.Sprintf("grid %dx%d", k, k)] = gridSites(k, k, geom.Pt(step/2, step/2), step)
	}

	for name, sites := range cases {
		t.Run(name, func(t *testing.T) {
			d, err := New(sites, b)
			require.NoError(t, err)
			assert.Len(t, d.edges, len(d.vertices)+len(sites)-1)

			faces := 0
			var sum float64
			for i := range d.sites {
				region := d.Region(i)
				if len(region) == 0 {
					continue
				}
				faces++
				assert.Equal(t, geom.CounterClockwise, region.Winding(), "site %d", i)
				sum += region.Area()
			}
			assert.InDelta(t, b.Area(), sum, 1e-6, "regions must tile the bounds")

			v, e := clippedGraph(d)
			assert.Equal(t, 2, v-e+faces+1, "Euler's formula for %d vertices and %d edges", v, e)

			for _, edge := range d.edges {
				assert.Contains(t, d.NeighborSites(edge.LeftSite), edge.RightSite)
				assert.Contains(t, d.NeighborSites(edge.RightSite), edge.LeftSite)
			}
		})
	}
}

func containsInt(ids []int, id int) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func centroidDistance(d *Diagram) float64 {
	var sum float64
	for i := range d.sites {
		if c, ok := d.sites[i].region.Centroid(); ok {
			sum += geom.Dist(d.sites[i].Coord, c)
		}
	}
	return sum
}

type pointKey [2]int64

func keyOf(p geom.Point) pointKey {
	return pointKey{int64(math.Round(p.X * 1e6)), int64(math.Round(p.Y * 1e6))}
}

// clippedGraph counts the vertices and edges of the planar graph made of the
// visible clipped edges and the pieces of the bounds they cut off.
func clippedGraph(d *Diagram) (int, int) {
	b := d.bounds
	vertices := make(map[pointKey]struct{})
	edges := make(map[[2]pointKey]struct{})
	borders := make(map[border][]float64)

	addEdge := func(p, q geom.Point) {
		kp, kq := keyOf(p), keyOf(q)
		vertices[kp] = struct{}{}
		vertices[kq] = struct{}{}
		if kp == kq {
			return
		}
		if kq[0] < kp[0] || (kq[0] == kp[0] && kq[1] < kp[1]) {
			kp, kq = kq, kp
		}
		edges[[2]pointKey{kp, kq}] = struct{}{}
	}
	onBorder := func(p geom.Point) {
		f := borderOf(p, b)
		if f&(borderTop|borderBottom) != 0 {
			borders[f&(borderTop|borderBottom)] = append(borders[f&(borderTop|borderBottom)], p.X)
		}
		if f&(borderLeft|borderRight) != 0 {
			borders[f&(borderLeft|borderRight)] = append(borders[f&(borderLeft|borderRight)], p.Y)
		}
	}

	for _, e := range d.edges {
		if !e.Visible {
			continue
		}
		addEdge(e.Clipped[Left], e.Clipped[Right])
		onBorder(e.Clipped[Left])
		onBorder(e.Clipped[Right])
	}
	for _, c := range b.Corners() {
		onBorder(c)
	}

	for f, coords := range borders {
		sort.Float64s(coords)
		for i := 1; i < len(coords); i++ {
			var p, q geom.Point
			switch f {
			case borderTop, borderBottom:
				y := b.Top()
				if f == borderBottom {
					y = b.Bottom()
				}
				p, q = geom.Pt(coords[i-1], y), geom.Pt(coords[i], y)
			default:
				x := b.Left()
				if f == borderRight {
					x = b.Right()
				}
				p, q = geom.Pt(x, coords[i-1]), geom.Pt(x, coords[i])
			}
			addEdge(p, q)
		}
	}
	return len(vertices), len(edges)
}
