package atom

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/atomviz/internal/scene"
)

const tol = 1e-9

func render(m Model) *scene.DisplayList {
	l := scene.NewDisplayList()
	Render(l, m)
	return l
}

func TestSequenceOrder(t *testing.T) {
	models := Sequence(rand.New(rand.NewSource(1)))

	expected := []struct {
		name   string
		title  string
		bounds scene.Bounds
	}{
		{"thomson", "Thomson Model (Plum Pudding)", scene.Square(1.5)},
		{"rutherford", "Rutherford Model (Nuclear Model)", scene.Square(1.5)},
		{"bohr", "Bohr Model (Planetary Model)", scene.Square(2)},
		{"rutherford-bohr", "Rutherford-Bohr Model", scene.Square(2)},
		{"quantum", "Quantum Mechanical Model", scene.Square(2)},
	}

	if len(models) != len(expected) {
		t.Fatalf("expected %d models, got %d", len(expected), len(models))
	}

	years := 0
	for i, tt := range expected {
		m := models[i]
		if m.Name() != tt.name {
			t.Errorf("index %d: expected %s, got %s", i, tt.name, m.Name())
		}

		l := render(m)
		if l.Title == "" || l.Title != tt.title {
			t.Errorf("%s: expected title %q, got %q", tt.name, tt.title, l.Title)
		}
		if l.Bounds != tt.bounds {
			t.Errorf("%s: expected bounds %+v, got %+v", tt.name, tt.bounds, l.Bounds)
		}
		if !l.TicksHidden {
			t.Errorf("%s: ticks should be hidden", tt.name)
		}
		if m.Caption() == "" {
			t.Errorf("%s: missing caption", tt.name)
		}
		if m.Year() < years {
			t.Errorf("%s: sequence is not chronological", tt.name)
		}
		years = m.Year()
	}
}

func TestThomsonMarkersOnUnitCircle(t *testing.T) {
	m := NewThomson(rand.New(rand.NewSource(7)))
	l := render(m)

	if len(l.Disks) != 1 {
		t.Fatalf("expected one positive disk, got %d", len(l.Disks))
	}
	d := l.Disks[0]
	if d.X != 0 || d.Y != 0 || d.R != 1 || d.Color != scene.Positive || d.Alpha != 0.3 {
		t.Errorf("unexpected disk %+v", d)
	}

	electrons := l.MarkersColored(scene.Negative)
	if len(electrons) != 6 {
		t.Fatalf("expected 6 electrons, got %d", len(electrons))
	}
	for _, e := range electrons {
		if r2 := e.X*e.X + e.Y*e.Y; math.Abs(r2-1) > tol {
			t.Errorf("electron (%f, %f) is off the unit circle: r²=%f", e.X, e.Y, r2)
		}
	}
}

func TestThomsonRerandomizes(t *testing.T) {
	m := NewThomson(rand.New(rand.NewSource(3)))
	first := render(m).MarkersColored(scene.Negative)
	second := render(m).MarkersColored(scene.Negative)

	same := true
	for i := range first {
		if math.Abs(first[i].X-second[i].X) > tol || math.Abs(first[i].Y-second[i].Y) > tol {
			same = false
		}
	}
	if same {
		t.Error("expected new electron positions on every draw")
	}
}

func TestThomsonAnglesUniform(t *testing.T) {
	m := NewThomson(rand.New(rand.NewSource(42)))
	l := scene.NewDisplayList()

	const bins = 12
	counts := make([]int, bins)
	total := 0
	for i := 0; i < 2000; i++ {
		Render(l, m)
		for _, e := range l.MarkersColored(scene.Negative) {
			angle := math.Atan2(e.Y, e.X)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			if angle < 0 || angle >= 2*math.Pi {
				t.Fatalf("angle %f outside [0, 2π)", angle)
			}
			counts[int(angle/(2*math.Pi)*bins)%bins]++
			total++
		}
	}

	expected := float64(total) / bins
	for i, c := range counts {
		if math.Abs(float64(c)-expected) > 0.15*expected {
			t.Errorf("bin %d holds %d samples, expected about %.0f", i, c, expected)
		}
	}
}

func TestRutherfordEquallySpaced(t *testing.T) {
	l := render(NewRutherford())

	nuclei := l.MarkersColored(scene.Positive)
	if len(nuclei) != 1 || nuclei[0].X != 0 || nuclei[0].Y != 0 || nuclei[0].Size != NucleusSize {
		t.Fatalf("expected one nucleus at the origin, got %+v", nuclei)
	}

	electrons := l.MarkersColored(scene.Negative)
	if len(electrons) != 6 {
		t.Fatalf("expected 6 electrons, got %d", len(electrons))
	}
	for i, e := range electrons {
		angle := float64(i) * math.Pi / 3
		if math.Abs(e.X-math.Cos(angle)) > tol || math.Abs(e.Y-math.Sin(angle)) > tol {
			t.Errorf("electron %d: expected angle %.0f°, got (%f, %f)", i, angle*180/math.Pi, e.X, e.Y)
		}
	}
}

func TestDeterministicModels(t *testing.T) {
	tests := []Model{NewRutherford(), NewBohr(), NewRutherfordBohr()}

	for _, m := range tests {
		a := render(m).Markers
		b := render(m).Markers
		if len(a) != len(b) {
			t.Fatalf("%s: marker count changed between draws", m.Name())
		}
		for i := range a {
			if math.Abs(a[i].X-b[i].X) > tol || math.Abs(a[i].Y-b[i].Y) > tol {
				t.Errorf("%s: marker %d moved between draws", m.Name(), i)
			}
		}
	}
}

func TestBohrOrbits(t *testing.T) {
	tests := []struct {
		model    Model
		neutrons int
	}{
		{NewBohr(), 0},
		{NewRutherfordBohr(), 1},
	}

	for _, tt := range tests {
		l := render(tt.model)

		if len(l.Circles) != 3 {
			t.Fatalf("%s: expected 3 orbits, got %d", tt.model.Name(), len(l.Circles))
		}
		electrons := l.MarkersColored(scene.Negative)
		for i, r := range []float64{0.5, 1.0, 1.5} {
			c := l.Circles[i]
			if c.R != r || !c.Dashed || c.Color != scene.Orbit {
				t.Errorf("%s: orbit %d: unexpected %+v", tt.model.Name(), i, c)
			}
			if electrons[i].X != r || electrons[i].Y != 0 {
				t.Errorf("%s: electron %d: expected (%f, 0), got (%f, %f)", tt.model.Name(), i, r, electrons[i].X, electrons[i].Y)
			}
		}

		neutrons := l.MarkersColored(scene.Neutron)
		if len(neutrons) != tt.neutrons {
			t.Errorf("%s: expected %d neutrons, got %d", tt.model.Name(), tt.neutrons, len(neutrons))
		}
		for _, n := range neutrons {
			if n.X != 0.1 || n.Y != 0.1 {
				t.Errorf("%s: neutron at (%f, %f)", tt.model.Name(), n.X, n.Y)
			}
		}
	}
}

func TestQuantumCloud(t *testing.T) {
	l := render(NewQuantum())

	if len(l.Contours) != 1 {
		t.Fatalf("expected one contour field, got %d", len(l.Contours))
	}
	c := l.Contours[0]
	if len(c.Levels) != 51 {
		t.Errorf("expected 50 bands, got %d", len(c.Levels)-1)
	}
	if c.Alpha != 0.5 || c.Cmap.Name != "Blues" {
		t.Errorf("unexpected contour styling %+v", c)
	}
	if len(c.Field.X) != 100 || len(c.Field.Y) != 100 {
		t.Errorf("expected 100x100 grid, got %dx%d", len(c.Field.X), len(c.Field.Y))
	}
	if c.Field.Bounds() != scene.Square(2) {
		t.Errorf("expected grid over [-2, 2]², got %+v", c.Field.Bounds())
	}

	if len(l.MarkersColored(scene.Positive)) != 1 || len(l.MarkersColored(scene.Neutron)) != 1 {
		t.Error("expected proton and neutron markers")
	}
}

func TestDensityMonotonic(t *testing.T) {
	if Density(0, 0) != 1 {
		t.Errorf("expected density 1 at the origin, got %f", Density(0, 0))
	}

	profile := RadialProfile(2.8, 200)
	for i := 1; i < len(profile); i++ {
		if profile[i] >= profile[i-1] {
			t.Fatalf("density not strictly decreasing at sample %d", i)
		}
	}

	// isotropic
	if math.Abs(Density(0.6, 0.8)-Density(1, 0)) > tol {
		t.Error("density should depend on radius only")
	}
}

func TestLookup(t *testing.T) {
	models := Sequence(nil)

	tests := []struct {
		key   string
		index int
	}{
		{"thomson", 0},
		{"2", 2},
		{"rutherford-bohr", 3},
		{"4", 4},
	}
	for _, tt := range tests {
		i, m, err := Lookup(models, tt.key)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.key, err)
			continue
		}
		if i != tt.index || m != models[tt.index] {
			t.Errorf("%s: expected index %d, got %d", tt.key, tt.index, i)
		}
	}

	for _, key := range []string{"dalton", "5", "-1"} {
		if _, _, err := Lookup(models, key); !errors.Is(err, ErrUnknownModel) {
			t.Errorf("%s: expected ErrUnknownModel, got %v", key, err)
		}
	}
}
