package atom

import "github.com/san-kum/atomviz/internal/scene"

// NeutronOffset is where the neutron sits relative to the proton.
var NeutronOffset = struct{ X, Y float64 }{0.1, 0.1}

// Bohr puts one electron on each of three fixed circular orbits.
type Bohr struct {
	Orbits []float64
}

func NewBohr() *Bohr {
	return &Bohr{Orbits: []float64{0.5, 1.0, 1.5}}
}

func (b *Bohr) Name() string         { return "bohr" }
func (b *Bohr) Title() string        { return "Bohr Model (Planetary Model)" }
func (b *Bohr) Year() int            { return 1913 }
func (b *Bohr) Bounds() scene.Bounds { return scene.Square(2) }

func (b *Bohr) Caption() string {
	return "electrons restricted to orbits of fixed energy"
}

func (b *Bohr) Draw(s scene.Surface) {
	s.SetTitle(b.Title())
	s.Marker(0, 0, scene.Positive, NucleusSize)
	drawOrbits(s, b.Orbits)
	s.SetLimits(b.Bounds())
}

// RutherfordBohr is the Bohr model with a neutron next to the proton.
type RutherfordBohr struct {
	Orbits []float64
}

func NewRutherfordBohr() *RutherfordBohr {
	return &RutherfordBohr{Orbits: []float64{0.5, 1.0, 1.5}}
}

func (rb *RutherfordBohr) Name() string         { return "rutherford-bohr" }
func (rb *RutherfordBohr) Title() string        { return "Rutherford-Bohr Model" }
func (rb *RutherfordBohr) Year() int            { return 1913 }
func (rb *RutherfordBohr) Bounds() scene.Bounds { return scene.Square(2) }

func (rb *RutherfordBohr) Caption() string {
	return "protons and neutrons in the nucleus, electrons on shells"
}

func (rb *RutherfordBohr) Draw(s scene.Surface) {
	s.SetTitle(rb.Title())
	drawNucleus(s)
	drawOrbits(s, rb.Orbits)
	s.SetLimits(rb.Bounds())
}

// drawNucleus draws a proton at the origin with a neutron beside it.
func drawNucleus(s scene.Surface) {
	s.Marker(0, 0, scene.Positive, NucleusSize)
	s.Marker(NeutronOffset.X, NeutronOffset.Y, scene.Neutron, NeutronSize)
}

func drawOrbits(s scene.Surface, orbits []float64) {
	for _, r := range orbits {
		s.DashedCircle(0, 0, r, scene.Orbit)
		s.Marker(r, 0, scene.Negative, ElectronSize)
	}
}
