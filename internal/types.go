package internal

type Point struct {
	X float64
	Y float64
}

// Points are values, but every point handed to an algorithm keeps the position
// it had in the caller's input. The index is what breaks ties between
// coincident points, and it lets a renderer map trace events back onto the
// original input.
type Vertex struct {
	Index int
	Point
}

// The caller's input. Algorithms only ever read from it.
type PointSet []Point

type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

type VertexStack []Vertex
