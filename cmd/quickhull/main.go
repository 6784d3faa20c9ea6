package main

import (
	"io"
	"math/rand"
	"os"
	"time"

	. "github.com/osuushi/quickhull"
	"github.com/osuushi/quickhull/internal/logger"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the hull operations. Point sets are read from stdin as newline
// separated points in the form "x y", with each set separated by an extra
// newline. Scenes (the interactive demo's shapes) are YAML files and can be
// rendered to PNG.

var log = logger.GetLogger("quickhull")

var (
	app    = kingpin.New("quickhull", "Convex hulls, point classification and Minkowski sums.")
	debug  = app.Flag("debug", "Enable debug logging.").Envar(logger.EnvDebug).Bool()
	format = app.Flag("format", "Output format.").Default(formatText).Enum(formatText, formatYAML)

	hullCmd = app.Command("hull", "Print the hull of a point set, counterclockwise from the leftmost point.")

	insideCmd = app.Command("inside", "Is a point strictly inside the hull of a point set?")
	insideX   = insideCmd.Arg("x", "X coordinate.").Required().Float64()
	insideY   = insideCmd.Arg("y", "Y coordinate.").Required().Float64()
	insideOdd = insideCmd.Flag("even-odd", "Test against the computed hull with the even-odd rule. Boundary points may land either way.").Bool()

	sumCmd = app.Command("sum", "Minkowski sum of two point sets.")
	sumRaw = sumCmd.Flag("raw", "Print the pairwise sums instead of their hull.").Bool()

	diffCmd = app.Command("diff", "Minkowski difference of two point sets.")
	diffRaw = diffCmd.Flag("raw", "Print the pairwise differences instead of their hull.").Bool()

	overlapCmd = app.Command("overlap", "Do the hulls of two point sets overlap?")

	randomCmd    = app.Command("random", "Write a random scene as YAML.")
	randomSeed   = randomCmd.Flag("seed", "Random seed. Defaults to the current time.").Int64()
	randomWidth  = randomCmd.Flag("width", "Scene width.").Default("800").Int()
	randomHeight = randomCmd.Flag("height", "Scene height.").Default("600").Int()

	sceneCmd    = app.Command("scene", "Evaluate a scene and render it to PNG.")
	sceneFile   = sceneCmd.Flag("file", "Scene YAML file. A random scene is used if omitted.").String()
	sceneSeed   = sceneCmd.Flag("seed", "Random seed when no file is given.").Int64()
	sceneMode   = sceneCmd.Flag("mode", "Mode to evaluate: quickhull, point, gjk, sum, diff.").Default("quickhull").String()
	sceneAll    = sceneCmd.Flag("all", "Render every mode, to <out>-<mode>.png.").Bool()
	sceneOut    = sceneCmd.Flag("out", "PNG output path.").Default("scene.png").String()
	sceneImgcat = sceneCmd.Flag("imgcat", "Also print the image to the terminal (iTerm only).").Bool()
	sceneWatch  = sceneCmd.Flag("watch", "Re-render whenever the scene file changes.").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	logger.SetDebug(*debug)

	if err := run(command, os.Stdin, os.Stdout); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(command string, in io.Reader, out io.Writer) error {
	p := printer{w: out, format: *format}

	switch command {
	case hullCmd.FullCommand():
		sets, err := readExactly(in, 1)
		if err != nil {
			return err
		}
		hull, err := ComputeHull(sets[0])
		if err != nil {
			return err
		}
		return p.sites(hull)

	case insideCmd.FullCommand():
		sets, err := readExactly(in, 1)
		if err != nil {
			return err
		}
		probe := Point{X: *insideX, Y: *insideY}
		if !*insideOdd {
			return p.flag("inside", IsInside(sets[0], probe))
		}
		hull, err := ComputeHull(sets[0])
		if err != nil {
			return err
		}
		return p.flag("inside", ContainsPoint(hull, probe))

	case sumCmd.FullCommand():
		return minkowski(in, p, Sum, *sumRaw)

	case diffCmd.FullCommand():
		return minkowski(in, p, Difference, *diffRaw)

	case overlapCmd.FullCommand():
		sets, err := readExactly(in, 2)
		if err != nil {
			return err
		}
		overlaps, err := Overlaps(sets[0], sets[1])
		if err != nil {
			return err
		}
		return p.flag("overlaps", overlaps)

	case randomCmd.FullCommand():
		return randomScene(*randomWidth, *randomHeight, seedOrNow(*randomSeed)).Encode(out)

	case sceneCmd.FullCommand():
		return renderScene(sceneOptions{
			file:   *sceneFile,
			seed:   seedOrNow(*sceneSeed),
			mode:   *sceneMode,
			all:    *sceneAll,
			out:    *sceneOut,
			imgcat: *sceneImgcat,
			watch:  *sceneWatch,
		})
	}
	return errors.Errorf("unknown command %q", command)
}

func minkowski(in io.Reader, p printer, op Op, raw bool) error {
	sets, err := readExactly(in, 2)
	if err != nil {
		return err
	}
	a, err := ComputeHull(sets[0])
	if err != nil {
		return err
	}
	b, err := ComputeHull(sets[1])
	if err != nil {
		return err
	}
	combined, err := Combine(a, b, op)
	if err != nil {
		return err
	}
	log.Debug("combined hulls", "op", op, "a", len(a), "b", len(b), "points", len(combined))
	if raw {
		return p.sites(combined)
	}
	hull, err := ComputeHull(combined)
	if err != nil {
		return err
	}
	return p.sites(hull)
}

func seedOrNow(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
