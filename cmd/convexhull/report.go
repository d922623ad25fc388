package main

import "github.com/osuushi/convexhull"

type report struct {
	Algorithm string         `yaml:"algorithm"`
	Area      float64        `yaml:"area"`
	Hull      []vertexReport `yaml:"hull"`
	Steps     int            `yaml:"steps"`
	Trace     []stepReport   `yaml:"trace,omitempty"`
}

type vertexReport struct {
	Index int     `yaml:"index"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

type stepReport struct {
	Kind  string         `yaml:"kind"`
	Point *vertexReport  `yaml:"point,omitempty"`
	From  *vertexReport  `yaml:"from,omitempty"`
	To    *vertexReport  `yaml:"to,omitempty"`
	Hull  []vertexReport `yaml:"hull,omitempty"`
}

func newReport(algorithm convexhull.Algorithm, hull convexhull.Hull, trace convexhull.Trace, withTrace bool) report {
	r := report{
		Algorithm: algorithm.String(),
		Area:      hull.SignedArea(),
		Hull:      vertexReports(hull),
		Steps:     trace.Len(),
	}
	if !withTrace {
		return r
	}

	for _, step := range trace.Steps() {
		sr := stepReport{Kind: step.Kind().String()}
		switch s := step.(type) {
		case convexhull.PointExamined:
			sr.Point = newVertexReport(s.Point)
		case convexhull.EdgeAccepted:
			sr.From, sr.To = newVertexReport(s.From), newVertexReport(s.To)
		case convexhull.EdgeRejected:
			sr.From, sr.To = newVertexReport(s.From), newVertexReport(s.To)
		case convexhull.HullFinalized:
			sr.Hull = vertexReports(s.Hull)
		}
		r.Trace = append(r.Trace, sr)
	}
	return r
}

func newVertexReport(v convexhull.Vertex) *vertexReport {
	return &vertexReport{Index: v.Index, X: v.X, Y: v.Y}
}

func vertexReports(hull convexhull.Hull) []vertexReport {
	reports := make([]vertexReport, len(hull))
	for i, v := range hull {
		reports[i] = *newVertexReport(v)
	}
	return reports
}
