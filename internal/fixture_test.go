package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point sets. This is not a full
// (or even correct) svg parser. It collects every <circle> in document order
// and uses its center as a point. If anything goes wrong, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) PointSet {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make(PointSet, 0, len(circles))
	for _, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circleEl.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circleEl.Attributes["cy"], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc point sets

func SquareWithCenter() PointSet {
	return PointSet{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}
}

// Points on a circle, plus the center. The radius is a power of two so that
// exact predicates aren't fighting rounding on the axes.
func Circle(n int) PointSet {
	points := PointSet{{0, 0}}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{X: 16 * math.Cos(angle), Y: 16 * math.Sin(angle)})
	}
	return points
}

// Random integer points. Small ranges force plenty of duplicates and collinear
// triples, which is where the algorithms are most likely to disagree.
func RandomPoints(seed int64, n, maxX, maxY int) PointSet {
	r := rand.New(rand.NewSource(seed))
	points := make(PointSet, n)
	for i := range points {
		points[i] = Point{X: float64(r.Intn(maxX + 1)), Y: float64(r.Intn(maxY + 1))}
	}
	return points
}

// Independent of degenerateHull, so the tests don't grade it with itself.
func allCollinear(points PointSet) bool {
	for _, other := range points {
		if other.Equal(points[0]) {
			continue
		}
		for _, p := range points {
			if Orient(points[0], other, p) != Collinear {
				return false
			}
		}
		return true
	}
	return true
}
