package internal

import "sort"

// Graham scan. The pivot is the lowest point (leftmost among ties), so every
// other point sits at a polar angle in [0, π) around it. That half plane is
// what makes the orientation comparator below a strict weak order; no atan2
// is involved, so angle ties are exact.
func grahamScan(vertices []Vertex, rec *Recorder) []Vertex {
	pivotIndex := 0
	for i, v := range vertices {
		pivot := vertices[pivotIndex]
		if v.Y < pivot.Y || (v.Y == pivot.Y && v.X < pivot.X) {
			pivotIndex = i
		}
	}
	pivot := vertices[pivotIndex]

	sorted := make([]Vertex, 0, len(vertices)-1)
	for i, v := range vertices {
		if i != pivotIndex {
			sorted = append(sorted, v)
		}
	}
	sortByPolarAngle(pivot.Point, sorted)

	stack := make(VertexStack, 0, len(vertices))
	stack.Push(pivot)
	stack.Push(sorted[0])
	rec.Examine(sorted[0])
	rec.Accept(pivot, sorted[0])

	for _, candidate := range sorted[1:] {
		rec.Examine(candidate)
		// Collinear pops too, so that only extreme points survive
		for stack.Len() >= 2 {
			top, _ := stack.Peek()
			below, _ := stack.PeekSecond()
			if Orient(below.Point, top.Point, candidate.Point) == CounterClockwise {
				break
			}
			stack.Pop()
			rec.Reject(below, top)
		}
		top, _ := stack.Peek()
		stack.Push(candidate)
		rec.Accept(top, candidate)
	}

	return []Vertex(stack)
}

// Sort counterclockwise by polar angle around the pivot. Points at the same
// angle go nearer first, and points that coincide with the pivot come before
// everything. Remaining ties keep input order.
func sortByPolarAngle(pivot Point, vertices []Vertex) {
	sort.SliceStable(vertices, func(a, b int) bool {
		pa, pb := vertices[a].Point, vertices[b].Point
		aAtPivot, bAtPivot := pa.Equal(pivot), pb.Equal(pivot)
		if aAtPivot || bAtPivot {
			return aAtPivot && !bAtPivot
		}

		switch Orient(pivot, pa, pb) {
		case CounterClockwise:
			return true
		case Clockwise:
			return false
		}
		return SquaredDistance(pivot, pa) < SquaredDistance(pivot, pb)
	})
}
