// Convex hulls of 2D point sets, with the operations built on them: testing
// whether a point is inside a hull, and Minkowski sums and differences.
//
// Hulls are computed with QuickHull. Every input point is a Site carrying an ID,
// and hull membership is decided by ID, so sites with identical coordinates
// stay distinguishable. Everything here is a pure function of its arguments;
// hulls are recomputed from scratch on every call and nothing is cached.
package quickhull

import "github.com/osuushi/quickhull/internal"

type Point = internal.Point
type Site = internal.Site
type PointSet = internal.PointSet
type Hull = internal.Hull
type Side = internal.Side
type Op = internal.Op

const (
	Left  = internal.Left
	Right = internal.Right
	On    = internal.On

	Sum        = internal.Sum
	Difference = internal.Difference
)

// Returned (possibly wrapped) for an empty point set or hull. Test for it with
// errors.Is or errors.Cause.
var ErrInvalidInput = internal.ErrInvalidInput

// Number the points 0..n-1 in order.
func NewPointSet(points ...Point) PointSet {
	return internal.NewPointSet(points...)
}

func SignedDistance(a, b, p Point) float64 {
	return internal.SignedDistance(a, b, p)
}

func FindSide(a, b, p Point) Side {
	return internal.FindSide(a, b, p)
}

// Compute the hull of a point set. The result starts at the leftmost site
// (first one found, on ties) and continues counterclockwise. Degenerate sets
// give degenerate hulls: one vertex for coincident or vertical points, two for
// collinear ones.
//
// The point set must be non-empty and must not be modified during the call.
func ComputeHull(points PointSet) (result Hull, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.ComputeHull(points), nil
}

// Is the point inside the hull of source? The point is added to a copy of
// source, and it is inside iff the recomputed hull does not select it as a
// vertex. Anything outside is selected, and so is a point at a vertex.
//
// Points on an edge are only selected when they tie with a vertex in one of
// the hull scans. On the triangle (0,0) (4,0) (0,4), the edge point (0,2) ties
// with (0,0) for leftmost and is not inside, but (2,2) is collinear with the
// edge being searched, is never picked, and is reported inside. Use
// Hull.ContainsStrictly for a test that puts every boundary point outside.
func IsInside(source PointSet, candidate Point) bool {
	return internal.IsInside(source, candidate)
}

// Like IsInside, but for a specific site. A site of source with the same ID is
// replaced by the candidate for the test.
func IsSiteInside(source PointSet, candidate Site) bool {
	return internal.IsSiteInside(source, candidate)
}

// Add or subtract every vertex of b to or from every vertex of a. The result is
// a raw point set of len(a)*len(b) sites; pass it to ComputeHull for the
// boundary.
func Combine(a, b Hull, op Op) (result PointSet, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Combine(a, b, op), nil
}

// Boundary of the Minkowski sum of two point sets.
func MinkowskiSum(a, b PointSet) (Hull, error) {
	return minkowski(a, b, Sum)
}

// Boundary of the Minkowski difference a - b.
func MinkowskiDifference(a, b PointSet) (Hull, error) {
	return minkowski(a, b, Difference)
}

func minkowski(a, b PointSet, op Op) (result Hull, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.MinkowskiHull(a, b, op), nil
}

// Do the convex hulls of a and b overlap? Shapes that only touch do not.
func Overlaps(a, b PointSet) (result bool, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = false
			err = recoveredErr
		}
	}()
	return internal.Overlaps(a, b), nil
}

// Even-odd test of p against an already computed hull. Cheaper than IsInside
// when many points are tested against one hull. Boundary points may land on
// either side.
func ContainsPoint(hull Hull, p Point) bool {
	return hull.ContainsPointByEvenOdd(p)
}
