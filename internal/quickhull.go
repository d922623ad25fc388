package internal

// QuickHull. The baseline runs between the lexicographic extremes, which are
// always hull vertices. Points strictly left of minX->maxX form the upper
// chain and points strictly left of maxX->minX the lower one. Each side is
// split recursively at its farthest point.
//
// Chains are assembled in order (left part, farthest point, right part), so
// the boundary is contiguous: min-x, upper chain, max-x, lower chain. That is
// clockwise; normalization flips it.
func quickHull(vertices []Vertex, rec *Recorder) []Vertex {
	minX, maxX := vertices[0], vertices[0]
	for _, v := range vertices {
		if v.Point.Less(minX.Point) {
			minX = v
		}
		if maxX.Point.Less(v.Point) {
			maxX = v
		}
	}
	rec.Accept(minX, maxX)

	upper := leftOf(minX, maxX, vertices)
	lower := leftOf(maxX, minX, vertices)

	boundary := []Vertex{minX}
	boundary = append(boundary, quickHullChain(minX, maxX, upper, rec)...)
	boundary = append(boundary, maxX)
	boundary = append(boundary, quickHullChain(maxX, minX, lower, rec)...)
	return boundary
}

// The hull vertices strictly left of p->q, in order from p to q.
func quickHullChain(p, q Vertex, candidates []Vertex, rec *Recorder) []Vertex {
	if len(candidates) == 0 {
		return nil
	}

	// Distance from the line is proportional to the cross product, since the
	// baseline is fixed here. Candidates stay in input order, so a strict
	// comparison keeps the lowest index on ties.
	farthest := candidates[0]
	maxDistance := Cross(p.Point, q.Point, farthest.Point)
	for _, v := range candidates[1:] {
		rec.Examine(v)
		if distance := Cross(p.Point, q.Point, v.Point); distance > maxDistance {
			farthest = v
			maxDistance = distance
		}
	}
	rec.Accept(p, farthest)

	chain := quickHullChain(p, farthest, leftOf(p, farthest, candidates), rec)
	chain = append(chain, farthest)
	return append(chain, quickHullChain(farthest, q, leftOf(farthest, q, candidates), rec)...)
}

func leftOf(p, q Vertex, vertices []Vertex) []Vertex {
	var result []Vertex
	for _, v := range vertices {
		if Orient(p.Point, q.Point, v.Point) == CounterClockwise {
			result = append(result, v)
		}
	}
	return result
}
