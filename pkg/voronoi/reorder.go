package voronoi

// reorderCriterion selects what two consecutive edges must share.
type reorderCriterion int

const (
	// byVertex chains the edges around one site through their vertices.
	byVertex reorderCriterion = iota
	// bySite chains hull edges through their sites.
	bySite
)

func (d *Diagram) edgeEnds(e int, criterion reorderCriterion) (int, int) {
	edge := &d.edges[e]
	if criterion == byVertex {
		return edge.LeftVertex, edge.RightVertex
	}
	return edge.LeftSite, edge.RightSite
}

// reorderEdges orders edges so that each one shares an end with the next.
// The returned sides tell which end of each edge meets the previous edge.
// A pass that attaches nothing stops the reordering; edges that could not
// be chained are dropped.
func (d *Diagram) reorderEdges(edges []int, criterion reorderCriterion) ([]int, []Side) {
	n := len(edges)
	if n == 0 {
		return nil, nil
	}

	// head grows leftwards and is stored reversed.
	var headEdges []int
	var headSides []Side
	tailEdges := []int{edges[0]}
	tailSides := []Side{Left}

	first, last := d.edgeEnds(edges[0], criterion)
	done := make([]bool, n)
	done[0] = true

	for nDone := 1; nDone < n; {
		attached := false
		for i := 1; i < n; i++ {
			if done[i] {
				continue
			}
			l, r := d.edgeEnds(edges[i], criterion)
			switch {
			case criterion == byVertex && l == NoVertex && r == NoVertex:
				// A full line only meets the chain at infinity, so its
				// ends say nothing about its direction.
				prev := len(tailEdges) - 1
				tailEdges = append(tailEdges, edges[i])
				tailSides = append(tailSides, d.antiparallelSide(tailEdges[prev], tailSides[prev], edges[i]))
			case l == last:
				last = r
				tailEdges = append(tailEdges, edges[i])
				tailSides = append(tailSides, Left)
			case r == first:
				first = l
				headEdges = append(headEdges, edges[i])
				headSides = append(headSides, Left)
			case l == first:
				first = r
				headEdges = append(headEdges, edges[i])
				headSides = append(headSides, Right)
			case r == last:
				last = l
				tailEdges = append(tailEdges, edges[i])
				tailSides = append(tailSides, Right)
			default:
				continue
			}
			done[i] = true
			nDone++
			attached = true
		}
		if !attached {
			break
		}
	}

	ordered := make([]int, 0, len(headEdges)+len(tailEdges))
	sides := make([]Side, 0, cap(ordered))
	for i := len(headEdges) - 1; i >= 0; i-- {
		ordered = append(ordered, headEdges[i])
		sides = append(sides, headSides[i])
	}
	ordered = append(ordered, tailEdges...)
	sides = append(sides, tailSides...)
	return ordered, sides
}

// antiparallelSide returns the side edge e starts from so that it is walked
// against ref walked from refSide. Two full lines around one site are
// parallel and the region ring goes up one and down the other.
func (d *Diagram) antiparallelSide(ref int, refSide Side, e int) Side {
	a, b := &d.edges[ref], &d.edges[e]
	if !a.Visible || !b.Visible {
		return Left
	}
	refDir := a.Clipped[refSide.Other()].Sub(a.Clipped[refSide])
	dir := b.Clipped[Right].Sub(b.Clipped[Left])
	if refDir.Dot(dir) > 0 {
		return Right
	}
	return Left
}
