package scene

// A scene is the demo's set of interactive shapes: one point set to hull, a
// probe point to classify against it, and two pairs of point sets for the
// Minkowski sum and difference. Which of them is active is a Mode, passed in
// by the caller on every evaluation.

import (
	"io"
	"math/rand"
	"os"

	. "github.com/osuushi/quickhull/internal"
	"github.com/osuushi/quickhull/internal/logger"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var log = logger.GetLogger("scene")

type Mode int

const (
	QuickHull Mode = iota
	PointConvexHull
	GJK
	MinkowskiSum
	MinkowskiDifference
	None
)

var modeNames = []string{"quickhull", "point", "gjk", "sum", "diff", "none"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "invalid"
	}
	return modeNames[m]
}

func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return None, errors.Errorf("unknown mode %q", name)
}

// Modes that produce something to look at.
func Modes() []Mode {
	return []Mode{QuickHull, PointConvexHull, GJK, MinkowskiSum, MinkowskiDifference}
}

type Pair struct {
	A PointSet `yaml:"a"`
	B PointSet `yaml:"b"`
}

type Scene struct {
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Hull   PointSet `yaml:"hull"`
	Probe  Point    `yaml:"probe"`
	// The GJK mode tests the sum pair for overlap.
	Sum        Pair `yaml:"sum"`
	Difference Pair `yaml:"difference"`
}

const (
	hullSites = 10
	pairSites = 5
)

// Random scene: ten sites to hull, the probe in the middle, and five sites for
// each shape of each pair. Coordinates are whole numbers in [0, width] x
// [0, height].
func Random(width, height int, rng *rand.Rand) *Scene {
	randomSet := func(n int) PointSet {
		points := make([]Point, n)
		for i := range points {
			points[i] = Point{
				X: float64(rng.Intn(width + 1)),
				Y: float64(rng.Intn(height + 1)),
			}
		}
		return NewPointSet(points...)
	}

	return &Scene{
		Width:      float64(width),
		Height:     float64(height),
		Hull:       randomSet(hullSites),
		Probe:      Point{X: float64(width) / 2, Y: float64(height) / 2},
		Sum:        Pair{randomSet(pairSites), randomSet(pairSites)},
		Difference: Pair{randomSet(pairSites), randomSet(pairSites)},
	}
}

func Load(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open scene")
	}
	defer file.Close()
	s, err := Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load scene %q", path)
	}
	log.Debug("loaded scene", "path", path, "sites", len(s.Hull))
	return s, nil
}

func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(err, "invalid scene")
	}
	return &s, nil
}

func (s *Scene) Encode(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(s); err != nil {
		return errors.Wrap(err, "could not encode scene")
	}
	return encoder.Close()
}

func (s *Scene) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create scene file")
	}
	if err := s.Encode(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// The point sets a mode lets the user drag, in order.
func (s *Scene) shapes(mode Mode) []*PointSet {
	switch mode {
	case QuickHull, PointConvexHull:
		return []*PointSet{&s.Hull}
	case GJK, MinkowskiSum:
		return []*PointSet{&s.Sum.A, &s.Sum.B}
	case MinkowskiDifference:
		return []*PointSet{&s.Difference.A, &s.Difference.B}
	}
	return nil
}

// Drag a site to a new position. Shapes are searched in order, so with two
// shapes holding the same ID, the first one wins. In PointConvexHull mode, the
// probe is addressed with ProbeID.
func (s *Scene) Move(mode Mode, id int, p Point) error {
	if mode == PointConvexHull && id == ProbeID {
		s.Probe = p
		return nil
	}
	for _, shape := range s.shapes(mode) {
		for i := range *shape {
			if (*shape)[i].ID == id {
				(*shape)[i].Position = p
				log.Debug("moved site", "mode", mode, "site", id, "x", p.X, "y", p.Y)
				return nil
			}
		}
	}
	return errors.Errorf("no site %d in mode %s", id, mode)
}

// Addresses the probe in Move.
const ProbeID = -1
