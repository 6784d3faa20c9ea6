package scene

import (
	. "github.com/osuushi/quickhull/internal"
	"github.com/pkg/errors"
)

type OutlineKind int

const (
	// A hull of user-placed sites
	Input OutlineKind = iota
	// A hull derived from other hulls
	Result
)

type Outline struct {
	Kind  OutlineKind
	Sites PointSet
	Hull  Hull
}

// Everything there is to draw for one mode, computed from scratch.
type Frame struct {
	Mode     Mode
	Width    float64
	Height   float64
	Outlines []Outline

	// Only set in PointConvexHull mode
	Probe       *Point
	ProbeInside bool

	// Only meaningful in GJK mode
	Overlapping bool
}

func (s *Scene) Evaluate(mode Mode) (frame Frame, err error) {
	defer func() {
		recoveredErr := HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			frame = Frame{}
			err = errors.Wrapf(recoveredErr, "could not evaluate %s", mode)
		}
	}()

	frame = Frame{Mode: mode, Width: s.Width, Height: s.Height}
	input := func(sites PointSet) Hull {
		hull := ComputeHull(sites)
		frame.Outlines = append(frame.Outlines, Outline{Input, sites, hull})
		return hull
	}
	result := func(sites PointSet) Hull {
		hull := ComputeHull(sites)
		frame.Outlines = append(frame.Outlines, Outline{Result, sites, hull})
		return hull
	}

	switch mode {
	case QuickHull:
		input(s.Hull)
	case PointConvexHull:
		input(s.Hull)
		probe := s.Probe
		frame.Probe = &probe
		frame.ProbeInside = IsInside(s.Hull, probe)
	case GJK:
		a, b := input(s.Sum.A), input(s.Sum.B)
		diff := result(Combine(a, b, Difference))
		frame.Overlapping = diff.ContainsStrictly(Point{})
	case MinkowskiSum:
		a, b := input(s.Sum.A), input(s.Sum.B)
		result(Combine(a, b, Sum))
	case MinkowskiDifference:
		a, b := input(s.Difference.A), input(s.Difference.B)
		result(Combine(a, b, Difference))
	case None:
	default:
		return Frame{}, errors.Errorf("unknown mode %d", int(mode))
	}
	log.Debug("evaluated frame", "mode", mode, "outlines", len(frame.Outlines))
	return frame, nil
}
