package internal

// This contains no actual tests. It is just a helper for testing hull validity.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validityEpsilon = 1e-6

// Helper to check that a hull is valid for its point set. The rules are:
// 1. Every hull vertex is a site of the point set, and appears only once.
// 2. The leftmost and rightmost sites are hull vertices.
// 3. The hull starts at the leftmost site and turns counterclockwise throughout.
// 4. No site lies strictly outside any hull edge.
func AssertValidHull(t *testing.T, points PointSet, hull Hull) {
	t.Helper()
	require.NotEmpty(t, hull, "hull of a non-empty set must not be empty")

	sites := make(map[int]Site, len(points))
	for _, s := range points {
		sites[s.ID] = s
	}
	seen := make(IDSet)
	for _, v := range hull {
		site, ok := sites[v.ID]
		require.True(t, ok, "hull vertex %v is not in the point set", v)
		require.Equal(t, site.Position, v.Position, "hull vertex %v moved", v)
		require.False(t, seen.Contains(v.ID), "hull vertex %v appears twice", v)
		seen.Add(v.ID)
	}

	leftmost, rightmost := points.extremes()
	assert.Equal(t, leftmost.ID, hull[0].ID, "hull must start at the leftmost site")
	assert.True(t, hull.Contains(rightmost.ID), "hull must contain the rightmost site")

	if len(hull) < 3 {
		return
	}
	n := len(hull)
	for i := range hull {
		a := hull[i].Position
		b := hull[CircularIndex(i+1, n)].Position
		c := hull[CircularIndex(i+2, n)].Position
		assert.GreaterOrEqual(t, SignedDistance(a, b, c), -validityEpsilon, "hull turns clockwise at %v", hull[CircularIndex(i+1, n)])
		for _, s := range points {
			assert.GreaterOrEqual(t, SignedDistance(a, b, s.Position), -validityEpsilon, "site %v lies outside edge %v-%v", s, hull[i], hull[CircularIndex(i+1, n)])
		}
	}
}

func hullIDs(hull Hull) []int {
	ids := make([]int, len(hull))
	for i, s := range hull {
		ids[i] = s.ID
	}
	return ids
}
