package internal

// A common convention in the even-odd test is that if two points have the same
// Y value, the one with the smaller X value is "lower". This simulates a
// slightly rotated coordinate system, so no edge is ever horizontal with
// respect to the test ray.
func (p Point) Below(otherPoint Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

// Even-odd point in polygon. Unlike IsInside this works on an existing hull,
// without recomputing anything, so it is the one to use when testing many
// points against the same hull. Points exactly on the boundary may land on
// either side.
func (h Hull) ContainsPointByEvenOdd(p Point) bool {
	return h.CrossingCount(p)%2 == 1
}

// Number of hull edges crossed by a ray from p towards +X.
func (h Hull) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range h {
		nextVertex := h[CircularIndex(i+1, len(h))]
		a, b := vertex.Position, nextVertex.Position
		if a.Below(p) == b.Below(p) {
			continue
		}
		// Orient the edge upward; the ray crosses it iff p is left of it.
		if b.Below(a) {
			a, b = b, a
		}
		if FindSide(a, b, p) == Left {
			crossingCount++
		}
	}
	return crossingCount
}

// Is p strictly inside the hull, left of every edge? Points on the boundary
// are not. Hulls with fewer than three distinct vertices contain nothing.
func (h Hull) ContainsStrictly(p Point) bool {
	edges := 0
	for i, vertex := range h {
		nextVertex := h[CircularIndex(i+1, len(h))]
		a, b := vertex.Position, nextVertex.Position
		if a == b {
			continue
		}
		if FindSide(a, b, p) != Left {
			return false
		}
		edges++
	}
	return edges >= 3
}
