package scene

import (
	"image"

	"github.com/fogleman/gg"
	. "github.com/osuushi/quickhull/internal"
	"github.com/pkg/errors"
)

// Screen coordinates, as in the demo: origin at the top left, y down.

const (
	gridSpacing = 50
	siteRadius  = 5
	probeRadius = 10
)

func (f Frame) Image() image.Image {
	width, height := int(f.Width), int(f.Height)
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.Clear()

	drawGrid(c)
	for _, outline := range f.Outlines {
		drawOutline(c, outline)
	}

	if f.Probe != nil {
		if f.ProbeInside {
			c.SetRGB(1, 0, 0)
		} else {
			c.SetRGB(0, 0, 1)
		}
		c.DrawCircle(f.Probe.X, f.Probe.Y, probeRadius)
		c.Fill()
	}
	return c.Image()
}

func (f Frame) Draw(path string) error {
	if err := gg.SavePNG(path, f.Image()); err != nil {
		return errors.Wrapf(err, "could not save frame to %q", path)
	}
	return nil
}

// Grid lines every gridSpacing pixels out from the centre, and the two axes
// through it.
func drawGrid(c *gg.Context) {
	width, height := float64(c.Width()), float64(c.Height())
	centerX, centerY := width/2, height/2

	c.SetRGB(0.5, 0.5, 0.5)
	c.SetLineWidth(1)
	for x := centerX; x < width; x += gridSpacing {
		c.DrawLine(x, 0, x, height)
	}
	for x := centerX; x > 0; x -= gridSpacing {
		c.DrawLine(x, 0, x, height)
	}
	for y := centerY; y < height; y += gridSpacing {
		c.DrawLine(0, y, width, y)
	}
	for y := centerY; y > 0; y -= gridSpacing {
		c.DrawLine(0, y, width, y)
	}
	c.Stroke()

	c.SetRGB(1, 1, 1)
	c.SetLineWidth(2)
	c.DrawLine(centerX, 0, centerX, height)
	c.DrawLine(0, centerY, width, centerY)
	c.Stroke()
}

func drawOutline(c *gg.Context, outline Outline) {
	radius := float64(siteRadius)
	if outline.Kind == Result {
		c.SetRGB(1, 0, 0)
		radius = 1
	} else {
		c.SetRGB(0, 0.5, 1)
	}
	for _, s := range outline.Sites {
		c.DrawCircle(s.Position.X, s.Position.Y, radius)
		c.Fill()
	}

	c.SetLineWidth(2)
	n := len(outline.Hull)
	for i, v := range outline.Hull {
		next := outline.Hull[CircularIndex(i+1, n)]
		c.DrawLine(v.Position.X, v.Position.Y, next.Position.X, next.Position.Y)
	}
	c.Stroke()
}
