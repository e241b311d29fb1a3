package scene

import "github.com/lucasb-eyer/go-colorful"

type Disk struct {
	X, Y, R float64
	Color   colorful.Color
	Alpha   float64
}

type Marker struct {
	X, Y  float64
	Color colorful.Color
	Size  float64
}

type Circle struct {
	X, Y, R float64
	Color   colorful.Color
	Dashed  bool
}

// Contour is a field drawn as filled bands between Levels.
type Contour struct {
	Field  *Field
	Levels []float64
	Cmap   Colormap
	Alpha  float64
}

// Color returns the fill colour of band i.
func (c Contour) Color(i int) colorful.Color {
	return c.Cmap.Band(i, len(c.Levels)-1)
}

// DisplayList is a retained Surface. Models draw into it once per frame and
// display backends replay it every time they paint.
type DisplayList struct {
	Title       string
	Bounds      Bounds
	TicksHidden bool

	Contours []Contour
	Disks    []Disk
	Circles  []Circle
	Markers  []Marker

	// Generation increments on every Clear so backends can tell frames apart.
	Generation int
}

func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

func (l *DisplayList) Clear() {
	l.Title = ""
	l.Bounds = Bounds{}
	l.TicksHidden = false
	l.Contours = l.Contours[:0]
	l.Disks = l.Disks[:0]
	l.Circles = l.Circles[:0]
	l.Markers = l.Markers[:0]
	l.Generation++
}

func (l *DisplayList) HideTicks()            { l.TicksHidden = true }
func (l *DisplayList) SetTitle(title string) { l.Title = title }
func (l *DisplayList) SetLimits(b Bounds)    { l.Bounds = b }

func (l *DisplayList) Disk(x, y, r float64, c colorful.Color, alpha float64) {
	l.Disks = append(l.Disks, Disk{X: x, Y: y, R: r, Color: c, Alpha: alpha})
}

func (l *DisplayList) Marker(x, y float64, c colorful.Color, size float64) {
	l.Markers = append(l.Markers, Marker{X: x, Y: y, Color: c, Size: size})
}

func (l *DisplayList) DashedCircle(x, y, r float64, c colorful.Color) {
	l.Circles = append(l.Circles, Circle{X: x, Y: y, R: r, Color: c, Dashed: true})
}

func (l *DisplayList) FilledContour(f *Field, bands int, cmap Colormap, alpha float64) {
	lo, hi := f.Range()
	l.Contours = append(l.Contours, Contour{
		Field:  f,
		Levels: Levels(lo, hi, bands),
		Cmap:   cmap,
		Alpha:  alpha,
	})
}

// View returns the bounds backends should display, falling back to the unit
// square when no limits were set.
func (l *DisplayList) View() Bounds {
	if l.Bounds.Empty() {
		return Square(1)
	}
	return l.Bounds
}

// MarkersColored returns the markers drawn with colour c.
func (l *DisplayList) MarkersColored(c colorful.Color) []Marker {
	var out []Marker
	for _, m := range l.Markers {
		if m.Color == c {
			out = append(out, m)
		}
	}
	return out
}

// Fill returns the colour of the background at (x, y) after compositing
// contours and disks over bg.
func (l *DisplayList) Fill(x, y float64, bg colorful.Color) colorful.Color {
	c := bg
	for _, ct := range l.Contours {
		v, ok := ct.Field.At(x, y)
		if !ok {
			continue
		}
		if band := BandOf(ct.Levels, v); band >= 0 {
			c = Over(ct.Color(band), c, ct.Alpha)
		}
	}
	for _, d := range l.Disks {
		dx, dy := x-d.X, y-d.Y
		if dx*dx+dy*dy <= d.R*d.R {
			c = Over(d.Color, c, d.Alpha)
		}
	}
	return c
}
