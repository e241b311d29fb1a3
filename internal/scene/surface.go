package scene

import "github.com/lucasb-eyer/go-colorful"

// Bounds is an axis-aligned view extent in world units.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Square returns bounds spanning [-half, half] on both axes.
func Square(half float64) Bounds {
	return Bounds{XMin: -half, XMax: half, YMin: -half, YMax: half}
}

func (b Bounds) Width() float64  { return b.XMax - b.XMin }
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Empty reports whether the bounds enclose no area.
func (b Bounds) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

func (b Bounds) Contains(x, y float64) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// Surface is the plotting capability a model draws with. Sizes of point
// markers are in typographic points, everything else is in world units.
type Surface interface {
	Clear()
	HideTicks()
	SetTitle(title string)
	SetLimits(b Bounds)
	Disk(x, y, r float64, c colorful.Color, alpha float64)
	Marker(x, y float64, c colorful.Color, size float64)
	DashedCircle(x, y, r float64, c colorful.Color)
	FilledContour(f *Field, bands int, cmap Colormap, alpha float64)
}
