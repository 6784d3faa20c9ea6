package internal

import (
	"embed"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This file parses the svg fixtures and outputs point sets. This is not a full
// (or even correct) svg parser. It finds whatever the single polygon is, and
// turns its points into sites, numbered in document order. If anything goes
// wrong, it bails.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) PointSet {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		panic(errors.Errorf("Could not load fixture %q: %v", name, err))
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		panic(errors.Errorf("Failed to parse fixture %q: %v", name, err))
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		panic(errors.Errorf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons)))
	}

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			panic(errors.Errorf("Invalid point string %q", pointString))
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			panic(errors.Errorf("Invalid x value %q: %v", coords[0], err))
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			panic(errors.Errorf("Invalid y value %q: %v", coords[1], err))
		}
		points = append(points, Point{x, y})
	}
	return NewPointSet(points...)
}

// Some ad hoc fixtures

func RegularPolygon(cx, cy, radius float64, n int) PointSet {
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.1
		points[i] = Point{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)}
	}
	return NewPointSet(points...)
}

// Regular polygon with a ring of smaller points inside it. The outer ring comes
// first, so the hull should be exactly sites 0..n-1.
func PolygonWithInterior(n int) PointSet {
	outer := RegularPolygon(0, 0, 10, n)
	inner := RegularPolygon(1, -1, 4, n*2)
	points := outer.Positions()
	points = append(points, inner.Positions()...)
	points = append(points, Point{0, 0}, Point{1, 1})
	return NewPointSet(points...)
}

// Points along a line, with a few coincident sites.
func Collinear() PointSet {
	return NewPointSet(
		Point{0, 0},
		Point{3, 3},
		Point{1, 1},
		Point{2, 2},
		Point{1, 1},
		Point{-2, -2},
	)
}
