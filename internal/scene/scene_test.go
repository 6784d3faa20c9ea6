package scene

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/osuushi/quickhull/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	for _, mode := range append(Modes(), None) {
		parsed, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	_, err := ParseMode("graham")
	assert.EqualError(t, err, `unknown mode "graham"`)
	assert.Equal(t, "invalid", Mode(42).String())
}

func TestRandom(t *testing.T) {
	s := Random(800, 600, rand.New(rand.NewSource(7)))

	assert.Len(t, s.Hull, 10)
	assert.Len(t, s.Sum.A, 5)
	assert.Len(t, s.Sum.B, 5)
	assert.Len(t, s.Difference.A, 5)
	assert.Len(t, s.Difference.B, 5)
	assert.Equal(t, Point{X: 400, Y: 300}, s.Probe)

	for _, set := range []PointSet{s.Hull, s.Sum.A, s.Sum.B, s.Difference.A, s.Difference.B} {
		for _, site := range set {
			assert.True(t, site.Position.X >= 0 && site.Position.X <= 800, "x out of range: %v", site)
			assert.True(t, site.Position.Y >= 0 && site.Position.Y <= 600, "y out of range: %v", site)
		}
	}

	t.Run("deterministic for a seed", func(t *testing.T) {
		again := Random(800, 600, rand.New(rand.NewSource(7)))
		assert.Equal(t, s, again)
	})
}

func TestEncodeDecode(t *testing.T) {
	s := Random(400, 400, rand.New(rand.NewSource(3)))

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))
	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestDecode(t *testing.T) {
	const doc = `
width: 100
height: 100
hull:
  - {id: 0, position: {x: 10, y: 10}}
  - {id: 1, position: {x: 90, y: 10}}
  - {id: 2, position: {x: 50, y: 90}}
probe: {x: 50, y: 40}
`
	s, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.Width)
	require.Len(t, s.Hull, 3)
	assert.Equal(t, Site{ID: 2, Position: Point{X: 50, Y: 90}}, s.Hull[2])

	frame, err := s.Evaluate(PointConvexHull)
	require.NoError(t, err)
	assert.True(t, frame.ProbeInside)

	_, err = Decode(strings.NewReader("width: [oops"))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	s := Random(300, 200, rand.New(rand.NewSource(11)))
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMove(t *testing.T) {
	s := Random(800, 600, rand.New(rand.NewSource(5)))

	require.NoError(t, s.Move(QuickHull, 3, Point{X: 1, Y: 2}))
	assert.Equal(t, Point{X: 1, Y: 2}, s.Hull[3].Position)

	require.NoError(t, s.Move(PointConvexHull, ProbeID, Point{X: 7, Y: 7}))
	assert.Equal(t, Point{X: 7, Y: 7}, s.Probe)

	// The first shape of the pair wins
	require.NoError(t, s.Move(MinkowskiDifference, 0, Point{X: 3, Y: 3}))
	assert.Equal(t, Point{X: 3, Y: 3}, s.Difference.A[0].Position)
	assert.NotEqual(t, Point{X: 3, Y: 3}, s.Difference.B[0].Position)

	assert.EqualError(t, s.Move(MinkowskiSum, 99, Point{}), "no site 99 in mode sum")
	assert.Error(t, s.Move(None, 0, Point{}))
	assert.Error(t, s.Move(QuickHull, ProbeID, Point{}), "the probe only exists in point mode")
}

func TestEvaluate(t *testing.T) {
	s := &Scene{
		Width:  200,
		Height: 200,
		Hull:   NewPointSet(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, Point{X: 0, Y: 2}, Point{X: 0.5, Y: 0.5}),
		Probe:  Point{X: 0.5, Y: 0.5},
		Sum: Pair{
			A: NewPointSet(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, Point{X: 0, Y: 2}),
			B: NewPointSet(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}),
		},
		Difference: Pair{
			A: NewPointSet(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, Point{X: 0, Y: 2}),
			B: NewPointSet(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}),
		},
	}

	t.Run("quickhull", func(t *testing.T) {
		frame, err := s.Evaluate(QuickHull)
		require.NoError(t, err)
		require.Len(t, frame.Outlines, 1)
		assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}, frame.Outlines[0].Hull.Positions())
		assert.Nil(t, frame.Probe)
	})

	t.Run("point", func(t *testing.T) {
		frame, err := s.Evaluate(PointConvexHull)
		require.NoError(t, err)
		require.NotNil(t, frame.Probe)
		assert.True(t, frame.ProbeInside)

		moved := *s
		moved.Probe = Point{X: 5, Y: 5}
		frame, err = moved.Evaluate(PointConvexHull)
		require.NoError(t, err)
		assert.False(t, frame.ProbeInside)
	})

	t.Run("sum", func(t *testing.T) {
		frame, err := s.Evaluate(MinkowskiSum)
		require.NoError(t, err)
		require.Len(t, frame.Outlines, 3)
		assert.Equal(t, Result, frame.Outlines[2].Kind)
		assert.Len(t, frame.Outlines[2].Sites, 9)
		assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}}, frame.Outlines[2].Hull.Positions())
	})

	t.Run("diff", func(t *testing.T) {
		frame, err := s.Evaluate(MinkowskiDifference)
		require.NoError(t, err)
		require.Len(t, frame.Outlines, 3)
		assert.Len(t, frame.Outlines[2].Hull, 6)
	})

	t.Run("gjk", func(t *testing.T) {
		frame, err := s.Evaluate(GJK)
		require.NoError(t, err)
		assert.True(t, frame.Overlapping)
		assert.Equal(t, Overlaps(s.Sum.A, s.Sum.B), frame.Overlapping)
	})

	t.Run("gjk with touching shapes", func(t *testing.T) {
		touching := *s
		touching.Sum = Pair{
			A: NewPointSet(Point{X: 0, Y: 0}, Point{X: 4, Y: 0}, Point{X: 0, Y: 4}),
			B: NewPointSet(Point{X: 2, Y: 2}, Point{X: 4, Y: 3}, Point{X: 3, Y: 4}),
		}
		frame, err := touching.Evaluate(GJK)
		require.NoError(t, err)
		assert.False(t, frame.Overlapping)
	})

	t.Run("none", func(t *testing.T) {
		frame, err := s.Evaluate(None)
		require.NoError(t, err)
		assert.Empty(t, frame.Outlines)
	})

	t.Run("empty shape", func(t *testing.T) {
		empty := &Scene{Width: 10, Height: 10}
		_, err := empty.Evaluate(QuickHull)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := s.Evaluate(Mode(17))
		assert.Error(t, err)
	})
}

func TestDraw(t *testing.T) {
	s := Random(320, 240, rand.New(rand.NewSource(2)))
	for _, mode := range Modes() {
		frame, err := s.Evaluate(mode)
		require.NoError(t, err)

		img := frame.Image()
		assert.Equal(t, 320, img.Bounds().Dx())
		assert.Equal(t, 240, img.Bounds().Dy())

		path := filepath.Join(t.TempDir(), mode.String()+".png")
		assert.NoError(t, frame.Draw(path))
		assert.FileExists(t, path)
	}
}
