package internal

// Gift wrapping. Starting from the leftmost point (lowest y among ties), pick
// the next vertex q such that no point lies strictly clockwise of current->q.
// The boundary comes out counterclockwise.
//
// When a candidate is collinear with the current edge, the farther one wins.
// Without that, a run of collinear points on a hull side would be walked one
// point at a time, and a collinear point near the start could close the loop
// early.
func jarvisMarch(vertices []Vertex, rec *Recorder) []Vertex {
	n := len(vertices)

	start := 0
	for i, v := range vertices {
		if v.X < vertices[start].X || (v.X == vertices[start].X && v.Y < vertices[start].Y) {
			start = i
		}
	}

	boundary := []Vertex{vertices[start]}
	current := vertices[start]
	for {
		var candidate Vertex
		found := false
		for _, v := range vertices {
			// Copies of the current point are not edges
			if v.Point.Equal(current.Point) {
				continue
			}
			if !found {
				candidate = v
				found = true
				continue
			}

			rec.Examine(v)
			switch Orient(current.Point, candidate.Point, v.Point) {
			case Clockwise:
				candidate = v
			case Collinear:
				if SquaredDistance(current.Point, v.Point) > SquaredDistance(current.Point, candidate.Point) {
					candidate = v
				}
			}
		}
		if !found {
			fatalf("jarvis march: no candidate leaves %s", current)
		}

		rec.Accept(current, candidate)
		if candidate.Point.Equal(vertices[start].Point) {
			break
		}
		if len(boundary) >= n {
			fatalf("jarvis march: wrapping from %s does not return to the start", vertices[start])
		}
		boundary = append(boundary, candidate)
		current = candidate
	}
	return boundary
}
