package internal

import "math"

const Tolerance = 1e-9

// Tolerance based equality, for tests and callers comparing computed
// coordinates. The hull predicates themselves use exact signs.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func PointsEqual(a, b Point) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Work stack for the hull partitioning. Each entry is one half-plane search
// that would otherwise be a recursive call.
type hullTask struct {
	a, b Site
	side Side
}

type hullTaskStack []hullTask

func (s *hullTaskStack) Push(task hullTask) {
	*s = append(*s, task)
}

func (s *hullTaskStack) Pop() (hullTask, bool) {
	if len(*s) == 0 {
		return hullTask{}, false
	}
	task := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return task, true
}

func (s *hullTaskStack) Empty() bool {
	return len(*s) == 0
}
