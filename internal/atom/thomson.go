package atom

import (
	"math"
	"math/rand"

	"github.com/san-kum/atomviz/internal/scene"
)

// Thomson is the plum pudding model: a diffuse positive sphere with electrons
// embedded in it. Electron positions are drawn again on every Draw.
type Thomson struct {
	Electrons int
	Radius    float64
	rng       *rand.Rand
}

func NewThomson(rng *rand.Rand) *Thomson {
	return &Thomson{
		Electrons: 6,
		Radius:    1.0,
		rng:       newRand(rng),
	}
}

func (t *Thomson) Name() string         { return "thomson" }
func (t *Thomson) Title() string        { return "Thomson Model (Plum Pudding)" }
func (t *Thomson) Year() int            { return 1904 }
func (t *Thomson) Bounds() scene.Bounds { return scene.Square(1.5) }

func (t *Thomson) Caption() string {
	return "electrons embedded in a uniform sphere of positive charge"
}

func (t *Thomson) Draw(s scene.Surface) {
	s.SetTitle(t.Title())
	s.Disk(0, 0, t.Radius, scene.Positive, 0.3)
	for i := 0; i < t.Electrons; i++ {
		angle := t.rng.Float64() * 2 * math.Pi
		s.Marker(t.Radius*math.Cos(angle), t.Radius*math.Sin(angle), scene.Negative, ElectronSize)
	}
	s.SetLimits(t.Bounds())
}
