package internal

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// The closed set of hull algorithms.
type Algorithm int

const (
	BruteForce Algorithm = iota
	JarvisMarch
	GrahamScan
	QuickHull
)

// All algorithms, in a fixed order.
func Algorithms() []Algorithm {
	return []Algorithm{BruteForce, JarvisMarch, GrahamScan, QuickHull}
}

func (a Algorithm) String() string {
	switch a {
	case BruteForce:
		return "brute-force"
	case JarvisMarch:
		return "jarvis-march"
	case GrahamScan:
		return "graham-scan"
	case QuickHull:
		return "quickhull"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "brute-force", "bruteforce", "brute":
		return BruteForce, nil
	case "jarvis-march", "jarvismarch", "jarvis", "gift-wrapping":
		return JarvisMarch, nil
	case "graham-scan", "grahamscan", "graham":
		return GrahamScan, nil
	case "quickhull", "quick-hull":
		return QuickHull, nil
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// The body of an algorithm. It gets a non-degenerate point set (at least three
// points, not all collinear) and returns the hull boundary in either winding.
// The shared lifecycle around it takes care of validation and the canonical
// form.
type hullFunc func(vertices []Vertex, rec *Recorder) []Vertex

func (a Algorithm) hullFunc() (hullFunc, error) {
	switch a {
	case BruteForce:
		return bruteForce, nil
	case JarvisMarch:
		return jarvisMarch, nil
	case GrahamScan:
		return grahamScan, nil
	case QuickHull:
		return quickHull, nil
	}
	return nil, errors.Wrapf(ErrUnknownAlgorithm, "%d", int(a))
}

// Compute runs one algorithm over the point set, from start to finish, and
// returns the hull and the trace of that run. Nothing is shared between calls.
func Compute(algorithm Algorithm, points PointSet) (Hull, Trace, error) {
	fn, err := algorithm.hullFunc()
	if err != nil {
		return nil, Trace{}, err
	}
	if err := validate(points); err != nil {
		return nil, Trace{}, err
	}

	vertices := points.Vertices()
	rec := &Recorder{}

	var hull Hull
	if degenerate, ok := degenerateHull(vertices, rec); ok {
		hull = degenerate
	} else {
		hull = normalizeHull(fn(vertices, rec))
	}
	rec.Finalize(hull)
	return hull, rec.Trace(), nil
}

func validate(points PointSet) error {
	if len(points) < 3 {
		return errors.Wrapf(ErrInsufficientPoints, "got %d", len(points))
	}
	for i, p := range points {
		if !p.IsFinite() {
			return errors.Wrapf(ErrNonFinitePoint, "point %d %s", i, p)
		}
	}
	return nil
}

// If every point lies on one line, no algorithm can produce a proper polygon.
// All of them answer the same way: the two extreme points, or the single point
// when every input coincides.
func degenerateHull(vertices []Vertex, rec *Recorder) (Hull, bool) {
	lowest, highest := vertices[0], vertices[0]
	for _, v := range vertices {
		if v.Point.Less(lowest.Point) {
			lowest = v
		}
		if highest.Point.Less(v.Point) {
			highest = v
		}
	}

	for _, v := range vertices {
		if Orient(lowest.Point, highest.Point, v.Point) != Collinear {
			return nil, false
		}
	}

	for _, v := range vertices {
		rec.Examine(v)
	}
	if lowest.Point.Equal(highest.Point) {
		return Hull{lowest}, true
	}
	rec.Accept(lowest, highest)
	return Hull{lowest, highest}, true
}
