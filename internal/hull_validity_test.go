package internal

// This contains no actual tests. It is just a helper for testing hull validity.

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid for its input. The rules are:
// 1. Every hull vertex is one of the input points, with its input index.
// 2. No coordinate appears twice in the hull.
// 3. The hull starts at its lexicographically smallest vertex.
// 4. No consecutive triple turns clockwise, and no triple is collinear (only
//    extreme points are vertices).
// 5. The winding is counterclockwise.
// 6. Every input point is inside the hull or on its boundary.
// 7. Degenerate input gives the degenerate hull.
func AssertValidHull(t *testing.T, points PointSet, hull Hull) {
	t.Helper()
	require.NotEmpty(t, hull)

	seen := make(map[Point]struct{})
	for _, v := range hull {
		require.True(t, v.Index >= 0 && v.Index < len(points), "vertex %s has an out of range index", v)
		require.Equal(t, points[v.Index], v.Point, "vertex %s does not match its input point", v)
		_, duplicate := seen[v.Point]
		require.False(t, duplicate, "coordinate %s repeats in hull %s", v.Point, hull)
		seen[v.Point] = struct{}{}
	}

	for _, v := range hull[1:] {
		require.True(t, hull[0].Point.Less(v.Point), "hull %s does not start at its smallest vertex", hull)
	}

	for _, p := range points {
		assert.True(t, hull.Contains(p), "point %s is outside hull %s", p, hull)
	}

	if allCollinear(points) {
		require.LessOrEqual(t, len(hull), 2, "collinear input must give a degenerate hull, got %s", hull)
		return
	}

	require.GreaterOrEqual(t, len(hull), 3, "hull %s is degenerate for non-collinear input", hull)
	require.True(t, hull.IsConvex(), "hull is not convex: %s", spew.Sdump(hull.Points()))
	for i, v := range hull {
		next := hull[CircularIndex(i+1, len(hull))]
		nextNext := hull[CircularIndex(i+2, len(hull))]
		require.Equal(t, CounterClockwise, Orient(v.Point, next.Point, nextNext.Point),
			"vertex %s is not a strict corner of %s", next, hull)
	}
	require.Greater(t, hull.SignedArea(), 0.0, "hull %s is not counterclockwise", hull)
}
