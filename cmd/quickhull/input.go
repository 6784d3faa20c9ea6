package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	. "github.com/osuushi/quickhull"
	"github.com/pkg/errors"
)

// Input on stdin is newline separated points in the form "x y", with each
// point set separated by an extra newline. Lines starting with # are ignored.
func readPointSets(in io.Reader) ([]PointSet, error) {
	sets := []PointSet{}
	scanner := bufio.NewScanner(in)
	points := []Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the set
		if line == "" {
			if len(points) > 0 {
				sets = append(sets, NewPointSet(points...))
				points = []Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read input")
	}

	// Handle trailing set if any
	if len(points) > 0 {
		sets = append(sets, NewPointSet(points...))
	}
	return sets, nil
}

func parsePoint(line string) (Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return Point{X: x, Y: y}, nil
}

// Read exactly n point sets.
func readExactly(in io.Reader, n int) ([]PointSet, error) {
	sets, err := readPointSets(in)
	if err != nil {
		return nil, err
	}
	if len(sets) != n {
		return nil, errors.Errorf("expected %d point sets separated by a blank line, got %d", n, len(sets))
	}
	return sets, nil
}
