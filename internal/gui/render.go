package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/atomviz/internal/scene"
)

// Outline widths in points.
const (
	orbitWidth = 1.5
	frameWidth = 0.8
)

// Paint replays a display list into the current raylib frame. Shapes are
// drawn in z-order: contours, disks, circles, markers. Axis ticks are never
// painted, only the plot frame.
func Paint(l *scene.DisplayList, vp scene.Viewport) {
	for _, c := range l.Contours {
		paintContour(c, vp)
	}
	for _, d := range l.Disks {
		cx, cy := vp.Project(d.X, d.Y)
		rl.DrawCircleV(vec(cx, cy), float32(d.R*vp.Scale()), toRL(d.Color, d.Alpha))
	}
	for _, c := range l.Circles {
		paintCircle(c, vp)
	}
	for _, m := range l.Markers {
		cx, cy := vp.Project(m.X, m.Y)
		rl.DrawCircleV(vec(cx, cy), float32(vp.PointsToPixels(m.Size)/2), toRL(m.Color, 1))
	}

	frame := rl.NewRectangle(float32(vp.Left), float32(vp.Top), float32(vp.Size), float32(vp.Size))
	rl.DrawRectangleLinesEx(frame, float32(math.Max(1, vp.PointsToPixels(frameWidth))), rl.Black)
}

// paintContour fills one rectangle per grid node, clipped to the grid.
func paintContour(c scene.Contour, vp scene.Viewport) {
	f := c.Field
	nx, ny := len(f.X), len(f.Y)
	if nx < 2 || ny < 2 {
		return
	}
	hx := (f.X[nx-1] - f.X[0]) / float64(nx-1) / 2
	hy := (f.Y[ny-1] - f.Y[0]) / float64(ny-1) / 2
	b := f.Bounds()

	for j, y := range f.Y {
		for i, x := range f.X {
			band := scene.BandOf(c.Levels, f.Z[j][i])
			if band < 0 {
				continue
			}
			x0, y0 := vp.Project(math.Max(x-hx, b.XMin), math.Min(y+hy, b.YMax))
			x1, y1 := vp.Project(math.Min(x+hx, b.XMax), math.Max(y-hy, b.YMin))
			left, top := int32(math.Round(x0)), int32(math.Round(y0))
			right, bottom := int32(math.Round(x1)), int32(math.Round(y1))
			if right <= left || bottom <= top {
				continue
			}
			rl.DrawRectangle(left, top, right-left, bottom-top, toRL(c.Color(band), c.Alpha))
		}
	}
}

func paintCircle(c scene.Circle, vp scene.Viewport) {
	r := c.R * vp.Scale()
	if r <= 0 {
		return
	}
	w := vp.PointsToPixels(orbitWidth)
	inner, outer := float32(r-w/2), float32(r+w/2)
	cx, cy := vp.Project(c.X, c.Y)
	col := toRL(c.Color, 1)

	if !c.Dashed {
		rl.DrawRing(vec(cx, cy), inner, outer, 0, 360, 96, col)
		return
	}
	for _, a := range scene.DashArcs(r, vp.PointsToPixels(scene.DashOn), vp.PointsToPixels(scene.DashOff)) {
		start, end := float32(a.Start*180/math.Pi), float32(a.End*180/math.Pi)
		rl.DrawRing(vec(cx, cy), inner, outer, start, end, 4, col)
	}
}

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

func toRL(c colorful.Color, alpha float64) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, uint8(math.Round(math.Max(0, math.Min(1, alpha))*255)))
}
