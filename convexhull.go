// Planar convex hulls, with a replayable trace of how each hull was found.
//
// Four algorithms are offered: brute force, Jarvis march (gift wrapping),
// Graham scan and QuickHull. They share the same geometric predicates and the
// same result contract, so their hulls agree on any input. Each run also
// records an ordered trace of the points it examined and the edges it accepted
// or rejected, intended for animating the algorithm elsewhere.
//
// Predicates are exact. No epsilon is applied to float coordinates; snap your
// input first if near-collinear noise matters to you.
package convexhull

import "github.com/osuushi/convexhull/internal"

type Point = internal.Point
type Vertex = internal.Vertex
type PointSet = internal.PointSet
type Hull = internal.Hull
type Orientation = internal.Orientation

type Trace = internal.Trace
type Step = internal.Step
type StepKind = internal.StepKind
type PointExamined = internal.PointExamined
type EdgeAccepted = internal.EdgeAccepted
type EdgeRejected = internal.EdgeRejected
type HullFinalized = internal.HullFinalized

type Algorithm = internal.Algorithm

const (
	BruteForceAlgorithm  = internal.BruteForce
	JarvisMarchAlgorithm = internal.JarvisMarch
	GrahamScanAlgorithm  = internal.GrahamScan
	QuickHullAlgorithm   = internal.QuickHull
)

const (
	Collinear        = internal.Collinear
	Clockwise        = internal.Clockwise
	CounterClockwise = internal.CounterClockwise
)

const (
	KindPointExamined = internal.KindPointExamined
	KindEdgeAccepted  = internal.KindEdgeAccepted
	KindEdgeRejected  = internal.KindEdgeRejected
	KindHullFinalized = internal.KindHullFinalized
)

var (
	ErrInsufficientPoints = internal.ErrInsufficientPoints
	ErrNonFinitePoint     = internal.ErrNonFinitePoint
	ErrUnknownAlgorithm   = internal.ErrUnknownAlgorithm
)

// Compute the hull of points with the given algorithm.
//
// The hull is counterclockwise and starts at its lexicographically smallest
// vertex. Collinear input yields the two extreme points, and input where
// every point coincides yields that single point. Fewer than three points is
// ErrInsufficientPoints. On error, neither a hull nor a trace is returned.
func Compute(algorithm Algorithm, points PointSet) (hull Hull, trace Trace, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			hull = nil
			trace = Trace{}
			err = recoveredErr
		}
	}()
	return internal.Compute(algorithm, points)
}

func BruteForce(points PointSet) (Hull, Trace, error) {
	return Compute(BruteForceAlgorithm, points)
}

func JarvisMarch(points PointSet) (Hull, Trace, error) {
	return Compute(JarvisMarchAlgorithm, points)
}

func GrahamScan(points PointSet) (Hull, Trace, error) {
	return Compute(GrahamScanAlgorithm, points)
}

func QuickHull(points PointSet) (Hull, Trace, error) {
	return Compute(QuickHullAlgorithm, points)
}

type Result struct {
	Algorithm Algorithm
	Hull      Hull
	Trace     Trace
}

// Run every algorithm over the same points, in the order of Algorithms(). The
// first error stops the comparison.
func CompareAll(points PointSet) ([]Result, error) {
	var results []Result
	for _, algorithm := range internal.Algorithms() {
		hull, trace, err := Compute(algorithm, points)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{algorithm, hull, trace})
	}
	return results, nil
}

func Algorithms() []Algorithm {
	return internal.Algorithms()
}

func ParseAlgorithm(name string) (Algorithm, error) {
	return internal.ParseAlgorithm(name)
}

// Orientation of the ordered triple (p, q, r): the turn direction going from
// p through q to r.
func Orient(p, q, r Point) Orientation {
	return internal.Orient(p, q, r)
}

// A step colored by kind, for terminals.
func ColorString(step Step) string {
	return internal.ColorString(step)
}
