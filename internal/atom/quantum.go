package atom

import (
	"math"

	"github.com/san-kum/atomviz/internal/scene"
)

const (
	cloudSamples = 100
	cloudBands   = 50
	cloudAlpha   = 0.5
)

// Density is the electron cloud intensity exp(-(x²+y²)). It peaks at 1 on the
// nucleus and falls off with radius.
func Density(x, y float64) float64 {
	return math.Exp(-(x*x + y*y))
}

// Quantum shows the nucleus inside a probability cloud.
type Quantum struct {
	cloud *scene.Field
}

// NewQuantum samples the cloud once; the field is shared by every Draw.
func NewQuantum() *Quantum {
	return &Quantum{cloud: scene.SampleField(Density, scene.Square(2), cloudSamples)}
}

func (q *Quantum) Name() string         { return "quantum" }
func (q *Quantum) Title() string        { return "Quantum Mechanical Model" }
func (q *Quantum) Year() int            { return 1926 }
func (q *Quantum) Bounds() scene.Bounds { return scene.Square(2) }

func (q *Quantum) Caption() string {
	return "electron position as a cloud of probability"
}

func (q *Quantum) Draw(s scene.Surface) {
	s.SetTitle(q.Title())
	drawNucleus(s)
	s.FilledContour(q.cloud, cloudBands, scene.Blues, cloudAlpha)
	s.SetLimits(q.Bounds())
}

// RadialProfile samples Density along the positive x axis from 0 to maxR.
func RadialProfile(maxR float64, n int) []float64 {
	rs := scene.Linspace(0, maxR, n)
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = Density(r, 0)
	}
	return out
}
