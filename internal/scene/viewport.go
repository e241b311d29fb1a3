package scene

import "math"

// AxesPoints is the side of the plot area in typographic points: a 6 inch
// figure with the default axes inset.
const AxesPoints = 335.0

// Dash pattern of a dashed outline, in points.
const (
	DashOn  = 5.55
	DashOff = 2.4
)

// Viewport maps world coordinates onto a square pixel area with y pointing down.
type Viewport struct {
	View      Bounds
	Left, Top float64
	Size      float64
}

// NewViewport centres the largest square that fits in width by height.
func NewViewport(view Bounds, width, height float64) Viewport {
	size := math.Min(width, height)
	return Viewport{
		View: view,
		Left: (width - size) / 2,
		Top:  (height - size) / 2,
		Size: size,
	}
}

// Scale returns pixels per world unit.
func (v Viewport) Scale() float64 {
	span := math.Max(v.View.Width(), v.View.Height())
	if span <= 0 {
		return 0
	}
	return v.Size / span
}

func (v Viewport) Project(x, y float64) (px, py float64) {
	s := v.Scale()
	return v.Left + (x-v.View.XMin)*s, v.Top + (v.View.YMax-y)*s
}

func (v Viewport) Unproject(px, py float64) (x, y float64) {
	s := v.Scale()
	if s == 0 {
		return v.View.XMin, v.View.YMax
	}
	return v.View.XMin + (px-v.Left)/s, v.View.YMax - (py-v.Top)/s
}

// PointsToPixels converts a size in points to pixels.
func (v Viewport) PointsToPixels(pt float64) float64 {
	return pt * v.Size / AxesPoints
}

// Arc is an angular interval in radians.
type Arc struct {
	Start, End float64
}

// DashArcs splits a circle of pixel radius r into evenly spaced dashes.
func DashArcs(r, dash, gap float64) []Arc {
	circ := 2 * math.Pi * r
	n := int(circ / (dash + gap))
	if n < 1 {
		return []Arc{{Start: 0, End: 2 * math.Pi}}
	}
	period := 2 * math.Pi / float64(n)
	on := period * dash / (dash + gap)
	arcs := make([]Arc, n)
	for i := range arcs {
		start := float64(i) * period
		arcs[i] = Arc{Start: start, End: start + on}
	}
	return arcs
}
