package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

// A step is one unit of algorithm progress, recorded for replay. Steps are a
// closed union; the unexported method keeps other packages from adding
// variants.
type Step interface {
	Kind() StepKind
	String() string

	stepTypeHint()
}

type StepKind int

const (
	KindPointExamined StepKind = iota
	KindEdgeAccepted
	KindEdgeRejected
	KindHullFinalized
)

func (k StepKind) String() string {
	switch k {
	case KindPointExamined:
		return "point-examined"
	case KindEdgeAccepted:
		return "edge-accepted"
	case KindEdgeRejected:
		return "edge-rejected"
	case KindHullFinalized:
		return "hull-finalized"
	}
	return fmt.Sprintf("StepKind(%d)", int(k))
}

type PointExamined struct {
	Point Vertex
}

type EdgeAccepted struct {
	From, To Vertex
}

type EdgeRejected struct {
	From, To Vertex
}

type HullFinalized struct {
	Hull Hull
}

func (PointExamined) stepTypeHint() {}
func (EdgeAccepted) stepTypeHint()  {}
func (EdgeRejected) stepTypeHint()  {}
func (HullFinalized) stepTypeHint() {}

func (PointExamined) Kind() StepKind { return KindPointExamined }
func (EdgeAccepted) Kind() StepKind  { return KindEdgeAccepted }
func (EdgeRejected) Kind() StepKind  { return KindEdgeRejected }
func (HullFinalized) Kind() StepKind { return KindHullFinalized }

func (s PointExamined) String() string {
	return fmt.Sprintf("%s %s", s.Kind(), s.Point)
}

func (s EdgeAccepted) String() string {
	return fmt.Sprintf("%s %s -> %s", s.Kind(), s.From, s.To)
}

func (s EdgeRejected) String() string {
	return fmt.Sprintf("%s %s -> %s", s.Kind(), s.From, s.To)
}

func (s HullFinalized) String() string {
	return fmt.Sprintf("%s %s", s.Kind(), s.Hull)
}

// Colored form of a step for terminals.
func ColorString(s Step) string {
	switch s.Kind() {
	case KindPointExamined:
		return aurora.Cyan(s.String()).String()
	case KindEdgeAccepted:
		return aurora.Green(s.String()).String()
	case KindEdgeRejected:
		return aurora.Red(s.String()).String()
	case KindHullFinalized:
		return aurora.Bold(s.String()).String()
	}
	return s.String()
}

// The ordered steps of one run. A trace is built by a Recorder and never
// changes after the run returns.
type Trace struct {
	steps []Step
}

func (t Trace) Len() int {
	return len(t.steps)
}

func (t Trace) At(i int) Step {
	return detach(t.steps[i])
}

// Copy of the steps, so callers can't reach into the recorded slice.
func (t Trace) Steps() []Step {
	steps := make([]Step, len(t.steps))
	for i, step := range t.steps {
		steps[i] = detach(step)
	}
	return steps
}

// HullFinalized is the only step that holds a slice. Hand out its own copy.
func detach(step Step) Step {
	if final, ok := step.(HullFinalized); ok {
		return HullFinalized{Hull: final.Hull.clone()}
	}
	return step
}

func (t Trace) Count(kind StepKind) int {
	count := 0
	for _, step := range t.steps {
		if step.Kind() == kind {
			count++
		}
	}
	return count
}

// The hull recorded by the final step, if the run got that far.
func (t Trace) Final() (Hull, bool) {
	if len(t.steps) == 0 {
		return nil, false
	}
	if final, ok := t.steps[len(t.steps)-1].(HullFinalized); ok {
		return final.Hull.clone(), true
	}
	return nil, false
}

func (t Trace) String() string {
	lines := make([]string, len(t.steps))
	for i, step := range t.steps {
		lines[i] = step.String()
	}
	return strings.Join(lines, "\n")
}

// Recorder accumulates steps during a single run. It is owned by that run and
// handed over as a Trace when the run completes.
type Recorder struct {
	steps     []Step
	finalized bool
}

func (r *Recorder) record(step Step) {
	if r.finalized {
		fatalf("step recorded after the hull was finalized: %s", step)
	}
	r.steps = append(r.steps, step)
}

func (r *Recorder) Examine(v Vertex) {
	r.record(PointExamined{Point: v})
}

func (r *Recorder) Accept(from, to Vertex) {
	r.record(EdgeAccepted{From: from, To: to})
}

func (r *Recorder) Reject(from, to Vertex) {
	r.record(EdgeRejected{From: from, To: to})
}

func (r *Recorder) Finalize(hull Hull) {
	r.record(HullFinalized{Hull: hull.clone()})
	r.finalized = true
}

func (r *Recorder) Trace() Trace {
	if !r.finalized {
		fatalf("trace requested before the hull was finalized")
	}
	return Trace{steps: r.steps}
}
