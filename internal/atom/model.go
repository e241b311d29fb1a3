package atom

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/san-kum/atomviz/internal/scene"
)

// Marker sizes in points.
const (
	NucleusSize  = 20.0
	ElectronSize = 10.0
	NeutronSize  = 10.0
)

// Model is one illustration in the sequence.
type Model interface {
	// Name is a stable lowercase slug.
	Name() string
	Title() string
	Year() int
	Caption() string
	Bounds() scene.Bounds
	// Draw emits the model's shapes, title and limits onto s.
	Draw(s scene.Surface)
}

// Render clears s, hides its ticks and draws m.
func Render(s scene.Surface, m Model) {
	s.Clear()
	s.HideTicks()
	m.Draw(s)
}

// Sequence returns the five models in historical order. rng drives the
// Thomson electron placement; a nil rng is seeded from the clock.
func Sequence(rng *rand.Rand) []Model {
	return []Model{
		NewThomson(rng),
		NewRutherford(),
		NewBohr(),
		NewRutherfordBohr(),
		NewQuantum(),
	}
}

// Lookup finds a model by slug or by zero-based index.
func Lookup(models []Model, key string) (int, Model, error) {
	if i, err := strconv.Atoi(key); err == nil {
		if i < 0 || i >= len(models) {
			return 0, nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrUnknownModel, i, len(models))
		}
		return i, models[i], nil
	}
	for i, m := range models {
		if m.Name() == key {
			return i, m, nil
		}
	}
	return 0, nil, fmt.Errorf("%w: %s", ErrUnknownModel, key)
}

func newRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
