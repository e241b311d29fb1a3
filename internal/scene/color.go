package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette used by every model.
var (
	Positive   = mustHex("#ff0000")
	Negative   = mustHex("#000000")
	Neutron    = mustHex("#008000")
	Orbit      = mustHex("#808080")
	Background = mustHex("#ffffff")
)

// Colormap is a two-stop gradient blended in Lab space.
type Colormap struct {
	Name      string
	Low, High colorful.Color
}

// Blues runs from near-white to deep navy.
var Blues = Colormap{
	Name: "Blues",
	Low:  mustHex("#f7fbff"),
	High: mustHex("#08306b"),
}

// At returns the colour at t, clamped to [0, 1].
func (c Colormap) At(t float64) colorful.Color {
	t = math.Max(0, math.Min(1, t))
	return c.Low.BlendLab(c.High, t).Clamped()
}

// Band returns the colour of band i out of n.
func (c Colormap) Band(i, n int) colorful.Color {
	if n <= 1 {
		return c.At(0.5)
	}
	return c.At(float64(i) / float64(n-1))
}

// Over composites fg with the given alpha on top of bg.
func Over(fg, bg colorful.Color, alpha float64) colorful.Color {
	alpha = math.Max(0, math.Min(1, alpha))
	return bg.BlendRgb(fg, alpha)
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
