package viz

import (
	"math"

	"github.com/san-kum/atomviz/internal/scene"
)

// Dashes shorter than this many dots blur into a solid line.
const (
	minDash = 3.0
	minGap  = 2.0
)

// Rasterize paints a display list onto the canvas. Cell backgrounds carry the
// filled shapes, braille dots carry outlines and markers.
func Rasterize(l *scene.DisplayList, c *Canvas, theme Theme) {
	c.Clear(theme.Paper)

	// Braille dots are roughly square, so the dot grid keeps the aspect.
	vp := scene.NewViewport(l.View(), float64(c.SubWidth()), float64(c.SubHeight()))

	fillCells(l, c, vp, theme)
	for _, ci := range l.Circles {
		drawCircle(c, vp, ci, theme)
	}
	for _, m := range l.Markers {
		drawMarker(c, vp, m, theme)
	}
}

func fillCells(l *scene.DisplayList, c *Canvas, vp scene.Viewport, theme Theme) {
	if len(l.Contours) == 0 && len(l.Disks) == 0 {
		return
	}
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			// cell centre in dot coordinates
			x, y := vp.Unproject(float64(col*2)+1, float64(row*4)+2)
			c.Fill(col, row, l.Fill(x, y, theme.Paper))
		}
	}
}

func drawCircle(c *Canvas, vp scene.Viewport, ci scene.Circle, theme Theme) {
	r := ci.R * vp.Scale()
	if r <= 0 {
		return
	}
	arcs := []scene.Arc{{Start: 0, End: 2 * math.Pi}}
	if ci.Dashed {
		dash := math.Max(vp.PointsToPixels(scene.DashOn), minDash)
		gap := math.Max(vp.PointsToPixels(scene.DashOff), minGap)
		arcs = scene.DashArcs(r, dash, gap)
	}
	cx, cy := vp.Project(ci.X, ci.Y)
	fg := theme.Color(ci.Color)

	// one dot per step along the arc
	step := 1 / r
	for _, a := range arcs {
		for t := a.Start; t <= a.End; t += step {
			c.Set(int(math.Round(cx+r*math.Cos(t))), int(math.Round(cy-r*math.Sin(t))), fg)
		}
	}
}

func drawMarker(c *Canvas, vp scene.Viewport, m scene.Marker, theme Theme) {
	r := math.Max(vp.PointsToPixels(m.Size)/2, 0.75)
	cx, cy := vp.Project(m.X, m.Y)
	fg := theme.Color(m.Color)

	x0, x1 := int(math.Floor(cx-r)), int(math.Ceil(cx+r))
	y0, y1 := int(math.Floor(cy-r)), int(math.Ceil(cy+r))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				c.Set(x, y, fg)
			}
		}
	}
}
