package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/convexhull/dbg"
)

// This is for debugging purposes only

// Padding around the points so hull edges on the bounding box stay visible
const dbgDrawPadding = 40

// Draw the input points, every edge the trace accepted, and the final hull,
// then print the image in the terminal (iTerm only).
func (h Hull) dbgDraw(points PointSet, trace Trace, scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Candidate edges, faint
	c.SetLineWidth(1)
	c.SetRGBA(1, 1, 0, 0.3)
	for _, step := range trace.steps {
		if edge, ok := step.(EdgeAccepted); ok {
			c.MoveTo(edge.From.X, edge.From.Y)
			c.LineTo(edge.To.X, edge.To.Y)
			c.Stroke()
		}
	}

	if len(h) > 0 {
		c.SetLineWidth(3)
		c.MoveTo(h[0].X, h[0].Y)
		for _, v := range h[1:] {
			c.LineTo(v.X, v.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	// Label the hull vertices. Text has to be drawn in native coordinates, or
	// it comes out upside down.
	for _, v := range h {
		x, y := c.TransformPoint(v.X, v.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(dbg.Name(v), x, y-8, 0.5, 0.5)
		c.Pop()
	}

	c.SavePNG("/tmp/convexhull.png")
	imgcat.CatFile("/tmp/convexhull.png", os.Stdout)
}
