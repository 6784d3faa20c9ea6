package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/quickhull/internal/dbg"
)

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// A site is a point with a stable identity. Two sites may share coordinates,
// so anything that asks "is this site a hull vertex" must compare IDs, never
// positions.
type Site struct {
	ID       int   `yaml:"id"`
	Position Point `yaml:"position"`
}

func (s Site) String() string {
	return fmt.Sprintf("%s(%g, %g)", aurora.Green(dbg.Name(s.ID)), s.Position.X, s.Position.Y)
}

// Input sites for a hull computation. The hull builder only ever reads it.
type PointSet []Site

// Boundary of a convex polygon, starting at the leftmost site. The closing edge
// from the last vertex back to the first is implicit.
type Hull []Site

type IDSet map[int]struct{}

func NewPointSet(points ...Point) PointSet {
	set := make(PointSet, len(points))
	for i, p := range points {
		set[i] = Site{ID: i, Position: p}
	}
	return set
}

// One past the largest ID in the set, so it can tag a site that is guaranteed
// not to collide with any existing one.
func (ps PointSet) NextID() int {
	next := 0
	for _, s := range ps {
		if s.ID >= next {
			next = s.ID + 1
		}
	}
	return next
}

func (ps PointSet) Clone() PointSet {
	return append(PointSet(nil), ps...)
}

func (ps PointSet) Positions() []Point {
	return positions(ps)
}

func (h Hull) Len() int {
	return len(h)
}

func (h Hull) Contains(id int) bool {
	for _, s := range h {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (h Hull) Positions() []Point {
	return positions(h)
}

func (h Hull) IDs() IDSet {
	ids := make(IDSet, len(h))
	for _, s := range h {
		ids.Add(s.ID)
	}
	return ids
}

func positions(sites []Site) []Point {
	result := make([]Point, len(sites))
	for i, s := range sites {
		result[i] = s.Position
	}
	return result
}

func (set IDSet) Add(id int) {
	set[id] = struct{}{}
}

func (set IDSet) Contains(id int) bool {
	_, ok := set[id]
	return ok
}

func (set IDSet) Equals(other IDSet) bool {
	if len(set) != len(other) {
		return false
	}
	for id := range set {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}
