package internal

// Brute force hull in O(n³). Every ordered pair (i, j) is a candidate edge,
// and it is a hull edge when no other point lies strictly to its left, i.e.
// every other point turns clockwise or is collinear. Accepted edges therefore
// run clockwise around the hull; normalization flips them afterwards.
//
// Collinear runs along a hull side produce several accepted edges out of the
// same vertex. Following the farthest one skips the points in the middle of
// the run, the same tie break Jarvis march uses.
func bruteForce(vertices []Vertex, rec *Recorder) []Vertex {
	n := len(vertices)

	// successor[i] is the accepted edge out of i, or -1
	successor := make([]int, n)
	for i := range successor {
		successor[i] = -1
	}
	accepted := make(map[[2]int]struct{})

	for i, from := range vertices {
		for j, to := range vertices {
			if i == j {
				continue
			}

			var rightTurns, collinear int
			pointOnSegment := false
			for k, other := range vertices {
				if k == i || k == j {
					continue
				}
				rec.Examine(other)
				switch Orient(from.Point, to.Point, other.Point) {
				case Clockwise:
					rightTurns++
				case Collinear:
					collinear++
					if IsOnSegment(from.Point, other.Point, to.Point) {
						pointOnSegment = true
					}
				}
			}

			if rightTurns+collinear != n-2 {
				rec.Reject(from, to)
				continue
			}
			// Overlapping edges on a collinear chain: the reverse edge already
			// covers this one.
			if _, ok := accepted[[2]int{j, i}]; ok && pointOnSegment {
				rec.Reject(from, to)
				continue
			}

			accepted[[2]int{i, j}] = struct{}{}
			rec.Accept(from, to)
			if successor[i] == -1 ||
				SquaredDistance(from.Point, to.Point) > SquaredDistance(from.Point, vertices[successor[i]].Point) {
				successor[i] = j
			}
		}
	}

	// The lexicographically smallest point is always an extreme vertex. Among
	// coincident copies, the first one in input order represents it.
	start := 0
	for i, v := range vertices {
		if v.Point.Less(vertices[start].Point) {
			start = i
		}
	}

	boundary := []Vertex{vertices[start]}
	current := start
	for {
		next := successor[current]
		if next == -1 {
			fatalf("brute force: no accepted edge leaves %s", vertices[current])
		}
		if vertices[next].Point.Equal(vertices[start].Point) {
			break
		}
		if len(boundary) >= n {
			fatalf("brute force: successor walk from %s does not close", vertices[start])
		}
		boundary = append(boundary, vertices[next])
		current = next
	}
	return boundary
}
