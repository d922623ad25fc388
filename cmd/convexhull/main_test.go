package main

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/osuushi/convexhull"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReadPoints(t *testing.T) {
	points, err := readPoints(strings.NewReader("0 0\n1 0\n\n  1 1  \n0.5 2.5\n"))
	require.NoError(t, err)
	assert.Equal(t, convexhull.PointSet{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 2.5}}, points)

	_, err = readPoints(strings.NewReader("0 0\n1\n"))
	assert.EqualError(t, err, `line 2: expected "x y", got "1"`)

	_, err = readPoints(strings.NewReader("0 zero\n"))
	assert.Error(t, err)
}

func TestGeneratePoints(t *testing.T) {
	points, err := generatePoints(rand.New(rand.NewSource(5)), 50, 10, 3)
	require.NoError(t, err)
	require.Len(t, points, 50)
	for _, p := range points {
		assert.True(t, p.X >= 0 && p.X <= 10, "x out of range: %s", p)
		assert.True(t, p.Y >= 0 && p.Y <= 3, "y out of range: %s", p)
		assert.Equal(t, float64(int(p.X)), p.X)
	}

	again, _ := generatePoints(rand.New(rand.NewSource(5)), 50, 10, 3)
	assert.Equal(t, points, again, "same seed, same points")

	_, err = generatePoints(rand.New(rand.NewSource(5)), 2, 10, 10)
	assert.True(t, errors.Is(err, convexhull.ErrInsufficientPoints))
}

func TestSelectAlgorithms(t *testing.T) {
	all, err := selectAlgorithms("ALL")
	require.NoError(t, err)
	assert.Equal(t, convexhull.Algorithms(), all)

	one, err := selectAlgorithms("quickhull")
	require.NoError(t, err)
	assert.Equal(t, []convexhull.Algorithm{convexhull.QuickHullAlgorithm}, one)

	_, err = selectAlgorithms("nope")
	assert.True(t, errors.Is(err, convexhull.ErrUnknownAlgorithm))
}

func TestReport(t *testing.T) {
	points := convexhull.PointSet{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}}
	hull, trace, err := convexhull.GrahamScan(points)
	require.NoError(t, err)

	r := newReport(convexhull.GrahamScanAlgorithm, hull, trace, true)
	assert.Equal(t, "graham-scan", r.Algorithm)
	assert.Equal(t, 1.0, r.Area)
	assert.Equal(t, []vertexReport{{0, 0, 0}, {1, 2, 0}, {2, 1, 1}}, r.Hull)
	require.Len(t, r.Trace, trace.Len())
	assert.Equal(t, "point-examined", r.Trace[0].Kind)
	assert.Equal(t, &vertexReport{1, 2, 0}, r.Trace[0].Point)
	assert.Equal(t, "hull-finalized", r.Trace[len(r.Trace)-1].Kind)

	out, err := yaml.Marshal(r)
	require.NoError(t, err)
	var decoded report
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, r, decoded)

	brief := newReport(convexhull.GrahamScanAlgorithm, hull, trace, false)
	assert.Empty(t, brief.Trace)
	assert.Equal(t, trace.Len(), brief.Steps)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteYAML(t *testing.T) {
	hull, trace, err := convexhull.QuickHull(convexhull.PointSet{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	reports := []report{newReport(convexhull.QuickHullAlgorithm, hull, trace, true)}

	var buf bytes.Buffer
	require.NoError(t, writeYAML(&buf, reports))
	var decoded []report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, reports, decoded)

	err = writeYAML(brokenWriter{}, reports)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestPrintText(t *testing.T) {
	hull, trace, err := convexhull.JarvisMarch(convexhull.PointSet{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)

	var buf bytes.Buffer
	printText(&buf, convexhull.JarvisMarchAlgorithm, hull, trace, false)
	assert.Contains(t, buf.String(), "3 vertices, area 1")
	assert.Contains(t, buf.String(), "#2(1, 1)")
	assert.Contains(t, buf.String(), "(7 steps)")

	buf.Reset()
	printText(&buf, convexhull.JarvisMarchAlgorithm, hull, trace, true)
	assert.Contains(t, buf.String(), "edge-accepted #2(1, 1) -> #0(0, 0)")
}
