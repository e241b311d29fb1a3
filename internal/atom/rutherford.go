package atom

import (
	"math"

	"github.com/san-kum/atomviz/internal/scene"
)

// Rutherford places all positive charge in a point nucleus with the electrons
// spaced evenly on a ring around it.
type Rutherford struct {
	Electrons int
	Radius    float64
}

func NewRutherford() *Rutherford {
	return &Rutherford{Electrons: 6, Radius: 1.0}
}

func (r *Rutherford) Name() string         { return "rutherford" }
func (r *Rutherford) Title() string        { return "Rutherford Model (Nuclear Model)" }
func (r *Rutherford) Year() int            { return 1911 }
func (r *Rutherford) Bounds() scene.Bounds { return scene.Square(1.5) }

func (r *Rutherford) Caption() string {
	return "a dense positive nucleus with electrons around it"
}

func (r *Rutherford) Draw(s scene.Surface) {
	s.SetTitle(r.Title())
	s.Marker(0, 0, scene.Positive, NucleusSize)
	for i := 0; i < r.Electrons; i++ {
		angle := 2 * math.Pi * float64(i) / float64(r.Electrons)
		s.Marker(r.Radius*math.Cos(angle), r.Radius*math.Sin(angle), scene.Negative, ElectronSize)
	}
	s.SetLimits(r.Bounds())
}
