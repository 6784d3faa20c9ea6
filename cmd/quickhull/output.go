package main

import (
	"fmt"
	"io"
	"strconv"

	. "github.com/osuushi/quickhull"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type printer struct {
	w      io.Writer
	format string
}

func (p printer) sites(sites []Site) error {
	if p.format == formatYAML {
		return p.yaml(sites)
	}
	for _, s := range sites {
		if _, err := fmt.Fprintf(p.w, "%s %s\n", formatFloat(s.Position.X), formatFloat(s.Position.Y)); err != nil {
			return errors.Wrap(err, "could not write output")
		}
	}
	return nil
}

func (p printer) flag(name string, value bool) error {
	if p.format == formatYAML {
		return p.yaml(map[string]bool{name: value})
	}
	_, err := fmt.Fprintln(p.w, value)
	return errors.Wrap(err, "could not write output")
}

func (p printer) yaml(v interface{}) error {
	encoder := yaml.NewEncoder(p.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, "could not encode output")
	}
	return encoder.Close()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
