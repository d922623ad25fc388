package internal

import (
	"fmt"
	"math"
)

// Orientation of the ordered triple (p, q, r). This is the sign of the cross
// product of (q-p) and (r-q), with the sign flipped so that a positive value
// is a clockwise (right) turn. Every algorithm goes through this one function,
// so a left turn always means CounterClockwise.
//
// There is no tolerance. Coordinates are compared exactly, and callers that
// need robustness against float noise must snap their input first.
func Orient(p, q, r Point) Orientation {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val > 0:
		return Clockwise
	case val < 0:
		return CounterClockwise
	}
	return Collinear
}

// Twice the area of the triangle (p, q, r), positive when the turn is
// counterclockwise. QuickHull uses the magnitude as a distance proxy, since
// the baseline length is fixed within one recursive call.
func Cross(p, q, r Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// Is q on the closed segment pr?
func IsOnSegment(p, q, r Point) bool {
	if Orient(p, q, r) != Collinear {
		return false
	}
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

func SquaredDistance(p, q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx + dy*dy
}

// Lexicographic order by x, then y. This is the order that decides which
// vertex a hull starts at.
func (p Point) Less(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (v Vertex) String() string {
	return fmt.Sprintf("#%d%s", v.Index, v.Point.String())
}

// Pair every point with its input index.
func (ps PointSet) Vertices() []Vertex {
	vertices := make([]Vertex, len(ps))
	for i, p := range ps {
		vertices[i] = Vertex{Index: i, Point: p}
	}
	return vertices
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *VertexStack) Push(v Vertex) {
	*s = append(*s, v)
}

func (s *VertexStack) Pop() (Vertex, bool) {
	if len(*s) == 0 {
		return Vertex{}, false
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v, true
}

func (s *VertexStack) Peek() (Vertex, bool) {
	if len(*s) == 0 {
		return Vertex{}, false
	}
	return (*s)[len(*s)-1], true
}

// The element just under the top. Graham scan needs the top two to decide
// whether the next point turns left.
func (s *VertexStack) PeekSecond() (Vertex, bool) {
	if len(*s) < 2 {
		return Vertex{}, false
	}
	return (*s)[len(*s)-2], true
}

func (s *VertexStack) Len() int {
	return len(*s)
}

func (s *VertexStack) Empty() bool {
	return len(*s) == 0
}
