package internal

type Op int

const (
	Sum Op = iota
	Difference
)

func (op Op) String() string {
	switch op {
	case Sum:
		return "sum"
	case Difference:
		return "difference"
	}
	return "invalid"
}

func (op Op) apply(p, q Point) Point {
	switch op {
	case Sum:
		return p.Add(q)
	case Difference:
		return p.Sub(q)
	}
	fatalf("unknown Minkowski op: %d", int(op))
	return Point{}
}

// Pairwise combination of two hulls' vertices: every vertex of a plus (or
// minus) every vertex of b, in row-major order, duplicates and all. The result
// is a raw point set with IDs 0..n-1. Its boundary is ComputeHull of the result;
// that step is left to the caller.
func Combine(a, b Hull, op Op) PointSet {
	if len(a) == 0 || len(b) == 0 {
		invalidInputf("cannot combine empty hulls (%d and %d vertices)", len(a), len(b))
	}

	result := make(PointSet, 0, len(a)*len(b))
	for _, p := range a {
		for _, q := range b {
			result = append(result, Site{ID: len(result), Position: op.apply(p.Position, q.Position)})
		}
	}
	return result
}

// Hull each shape, combine the hulls and hull the result.
func MinkowskiHull(a, b PointSet, op Op) Hull {
	return ComputeHull(Combine(ComputeHull(a), ComputeHull(b), op))
}

// Two convex shapes overlap iff the origin is strictly inside their Minkowski
// difference. Shapes that only touch do not overlap, wherever they touch.
func Overlaps(a, b PointSet) bool {
	return MinkowskiHull(a, b, Difference).ContainsStrictly(Point{})
}
