package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convexhull"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

var (
	app = kingpin.New("convexhull", "Compute the convex hull of a set of points, with a trace of how each algorithm got there.")

	algorithmName = app.Flag("algorithm", "brute-force, jarvis-march, graham-scan, quickhull or all.").Short('a').Default("all").String()
	randomCount   = app.Flag("random", "Generate this many random points instead of reading stdin.").Short('n').Int()
	seed          = app.Flag("seed", "Seed for random points.").Default("1").Int64()
	maxX          = app.Flag("max-x", "Largest x coordinate of random points.").Default("100").Int()
	maxY          = app.Flag("max-y", "Largest y coordinate of random points.").Default("100").Int()
	showTrace     = app.Flag("trace", "Include the trace of every step.").Short('t').Bool()
	format        = app.Flag("format", "Output format.").Default("text").Enum("text", "yaml")
)

// Demo of the hull algorithms. Input on stdin should be newline separated
// points in the form "x y". Blank lines are ignored.
func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	var points convexhull.PointSet
	var err error
	if *randomCount > 0 {
		points, err = generatePoints(rand.New(rand.NewSource(*seed)), *randomCount, *maxX, *maxY)
	} else {
		points, err = readPoints(os.Stdin)
	}
	if err != nil {
		log.Fatalf("Could not read points: %v", err)
	}

	algorithms, err := selectAlgorithms(*algorithmName)
	if err != nil {
		log.Fatalf("Invalid algorithm: %v", err)
	}

	var reports []report
	for _, algorithm := range algorithms {
		hull, trace, err := convexhull.Compute(algorithm, points)
		if err != nil {
			log.Fatalf("%s failed: %v", algorithm, err)
		}
		if *format == "text" {
			printText(os.Stdout, algorithm, hull, trace, *showTrace)
			continue
		}
		reports = append(reports, newReport(algorithm, hull, trace, *showTrace))
	}

	if *format == "yaml" {
		if err := writeYAML(os.Stdout, reports); err != nil {
			log.Fatalf("Could not write report: %v", err)
		}
	}
}

func writeYAML(w io.Writer, reports []report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(reports); err != nil {
		return errors.Wrap(err, "encode")
	}
	return errors.Wrap(encoder.Close(), "flush")
}

func selectAlgorithms(name string) ([]convexhull.Algorithm, error) {
	if strings.EqualFold(name, "all") {
		return convexhull.Algorithms(), nil
	}
	algorithm, err := convexhull.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []convexhull.Algorithm{algorithm}, nil
}

func readPoints(in io.Reader) (convexhull.PointSet, error) {
	var points convexhull.PointSet
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (convexhull.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return convexhull.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return convexhull.Point{}, errors.Wrap(err, "invalid x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return convexhull.Point{}, errors.Wrap(err, "invalid y")
	}
	return convexhull.Point{X: x, Y: y}, nil
}

// Random integer points in [0, maxX] x [0, maxY].
func generatePoints(r *rand.Rand, n, maxX, maxY int) (convexhull.PointSet, error) {
	if n < 3 {
		return nil, errors.Wrapf(convexhull.ErrInsufficientPoints, "cannot generate %d points", n)
	}
	if maxX < 0 || maxY < 0 {
		return nil, errors.Errorf("coordinate range must not be negative, got %d x %d", maxX, maxY)
	}
	points := make(convexhull.PointSet, n)
	for i := range points {
		points[i] = convexhull.Point{X: float64(r.Intn(maxX + 1)), Y: float64(r.Intn(maxY + 1))}
	}
	return points, nil
}

func printText(w io.Writer, algorithm convexhull.Algorithm, hull convexhull.Hull, trace convexhull.Trace, withTrace bool) {
	fmt.Fprintf(w, "%s: %d vertices, area %g\n", aurora.Bold(algorithm), len(hull), hull.SignedArea())
	for _, v := range hull {
		fmt.Fprintf(w, "  %s\n", v)
	}
	if !withTrace {
		fmt.Fprintf(w, "  (%d steps)\n", trace.Len())
		return
	}
	for _, step := range trace.Steps() {
		fmt.Fprintf(w, "  %s\n", convexhull.ColorString(step))
	}
}
