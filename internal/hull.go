package internal

import (
	"math"
	"sort"

	"github.com/osuushi/quickhull/internal/logger"
)

// QuickHull. The point set is split by the line through its leftmost and
// rightmost sites, and each half is searched for the site farthest from the
// line. That site is a hull vertex, and the two new edges it forms are searched
// the same way, outward. When a search comes up empty, both ends of its line
// are hull vertices.
//
// The searches are kept on an explicit stack rather than the call stack, since
// nearly collinear inputs can make the partitioning arbitrarily deep.
//
// The point set must not be mutated while a hull is being computed. The hull is
// rebuilt from scratch on every call; nothing is cached between calls.

var log = logger.GetLogger("hull")

type hullBuilder struct {
	points   PointSet
	vertices IDSet
	// Vertices in the order they were confirmed. The final sort is stable, so
	// this decides ties.
	order []Site
}

func ComputeHull(points PointSet) Hull {
	if len(points) == 0 {
		invalidInputf("cannot compute hull of empty point set")
	}

	leftmost, rightmost := points.extremes()
	builder := &hullBuilder{
		points:   points,
		vertices: make(IDSet),
	}
	builder.confirm(leftmost)
	builder.confirm(rightmost)

	var stack hullTaskStack
	// Pushed in reverse so the left half is searched first.
	stack.Push(hullTask{leftmost, rightmost, Right})
	stack.Push(hullTask{leftmost, rightmost, Left})
	for !stack.Empty() {
		task, _ := stack.Pop()
		farthest, ok := builder.farthest(task.a, task.b, task.side)
		if !ok {
			builder.confirm(task.a)
			builder.confirm(task.b)
			continue
		}
		p := farthest.Position
		// Search outward from each new edge: away from the side the remaining
		// endpoint is on. (p, a) is searched before (p, b).
		stack.Push(hullTask{farthest, task.b, FindSide(p, task.b.Position, task.a.Position).Opposite()})
		stack.Push(hullTask{farthest, task.a, FindSide(p, task.a.Position, task.b.Position).Opposite()})
	}

	hull := builder.sorted(leftmost)
	log.Debug("computed hull", "sites", len(points), "vertices", len(hull))
	return hull
}

// Leftmost and rightmost sites by X. Ties go to whichever came first.
func (ps PointSet) extremes() (leftmost, rightmost Site) {
	leftmost, rightmost = ps[0], ps[0]
	for _, s := range ps[1:] {
		if s.Position.X < leftmost.Position.X {
			leftmost = s
		}
		if s.Position.X > rightmost.Position.X {
			rightmost = s
		}
	}
	return leftmost, rightmost
}

// Find the site strictly on the given side of a->b that is farthest from the
// line. Ties go to whichever came first. Returns false if no site is strictly
// on that side.
func (b *hullBuilder) farthest(a, c Site, side Side) (Site, bool) {
	var result Site
	found := false
	maxDistance := 0.0
	for _, s := range b.points {
		d := SignedDistance(a.Position, c.Position, s.Position)
		if FindSide(a.Position, c.Position, s.Position) == side && math.Abs(d) > maxDistance {
			result = s
			maxDistance = math.Abs(d)
			found = true
		}
	}
	return result, found
}

// Confirming a vertex twice is a no-op. Sibling searches share endpoints, so
// this happens routinely.
func (b *hullBuilder) confirm(s Site) {
	if b.vertices.Contains(s.ID) {
		return
	}
	b.vertices.Add(s.ID)
	b.order = append(b.order, s)
}

// Order the vertices by slope from the leftmost site. The leftmost site itself
// comes first, since its own slope would be 0/0. Sites directly below or above
// it have slopes of -Inf and +Inf, which sort to either end on their own.
func (b *hullBuilder) sorted(leftmost Site) Hull {
	hull := make(Hull, 0, len(b.order))
	hull = append(hull, leftmost)
	rest := make([]Site, 0, len(b.order))
	for _, s := range b.order {
		if s.ID != leftmost.ID {
			rest = append(rest, s)
		}
	}

	slope := func(s Site) float64 {
		return (s.Position.Y - leftmost.Position.Y) / (s.Position.X - leftmost.Position.X)
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return slope(rest[i]) < slope(rest[j])
	})
	return append(hull, rest...)
}
