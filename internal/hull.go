package internal

import (
	"fmt"
	"math"
	"strings"
)

// The final boundary, counterclockwise, starting at the lexicographically
// smallest vertex. The polygon is implicitly closed; the first vertex is not
// repeated at the end. A degenerate hull has two vertices (collinear input) or
// one (every input point coincides).
type Hull []Vertex

func (h Hull) clone() Hull {
	return append(Hull(nil), h...)
}

func (h Hull) Points() []Point {
	points := make([]Point, len(h))
	for i, v := range h {
		points[i] = v.Point
	}
	return points
}

func (h Hull) Indexes() []int {
	indexes := make([]int, len(h))
	for i, v := range h {
		indexes[i] = v.Index
	}
	return indexes
}

// Shoelace area. Positive for counterclockwise hulls.
func (h Hull) SignedArea() float64 {
	var sum float64
	for i, v := range h {
		next := h[CircularIndex(i+1, len(h))]
		sum += v.X*next.Y - next.X*v.Y
	}
	return sum / 2
}

func (h Hull) Perimeter() float64 {
	if len(h) < 2 {
		return 0
	}
	var sum float64
	for i, v := range h {
		next := h[CircularIndex(i+1, len(h))]
		sum += math.Sqrt(SquaredDistance(v.Point, next.Point))
	}
	return sum
}

// No consecutive triple, wrapping around, turns clockwise.
func (h Hull) IsConvex() bool {
	if len(h) < 3 {
		return true
	}
	for i, v := range h {
		next := h[CircularIndex(i+1, len(h))]
		nextNext := h[CircularIndex(i+2, len(h))]
		if Orient(v.Point, next.Point, nextNext.Point) == Clockwise {
			return false
		}
	}
	return true
}

// Is p inside the hull or on its boundary? For degenerate hulls this is
// membership of the segment or the single point.
func (h Hull) Contains(p Point) bool {
	switch len(h) {
	case 0:
		return false
	case 1:
		return h[0].Point.Equal(p)
	case 2:
		return IsOnSegment(h[0].Point, p, h[1].Point)
	}
	for i, v := range h {
		next := h[CircularIndex(i+1, len(h))]
		if Orient(v.Point, next.Point, p) == Clockwise {
			return false
		}
	}
	return true
}

func (h Hull) String() string {
	parts := make([]string, len(h))
	for i, v := range h {
		parts[i] = v.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}

// Bring a raw boundary from any of the algorithms into canonical form:
// coincident neighbors collapsed, counterclockwise, lexicographic start.
func normalizeHull(boundary []Vertex) Hull {
	hull := make(Hull, 0, len(boundary))
	for _, v := range boundary {
		if len(hull) > 0 && hull[len(hull)-1].Point.Equal(v.Point) {
			continue
		}
		hull = append(hull, v)
	}
	for len(hull) > 1 && hull[0].Point.Equal(hull[len(hull)-1].Point) {
		hull = hull[:len(hull)-1]
	}

	// A vertex in the middle of a straight run is not a corner. QuickHull can
	// emit one when several points tie for farthest from a baseline.
	for removed := true; removed && len(hull) > 2; {
		removed = false
		for i := range hull {
			prev := hull[CircularIndex(i-1, len(hull))]
			next := hull[CircularIndex(i+1, len(hull))]
			if Orient(prev.Point, hull[i].Point, next.Point) == Collinear {
				hull = append(hull[:i], hull[i+1:]...)
				removed = true
				break
			}
		}
	}

	if hull.SignedArea() < 0 {
		for left, right := 0, len(hull)-1; left < right; left, right = left+1, right-1 {
			hull[left], hull[right] = hull[right], hull[left]
		}
	}

	start := 0
	for i, v := range hull {
		if v.Point.Less(hull[start].Point) {
			start = i
		}
	}
	result := make(Hull, len(hull))
	for i := range hull {
		result[i] = hull[CircularIndex(start+i, len(hull))]
	}
	return result
}
