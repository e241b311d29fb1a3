package scene

import "math"

// Field is a scalar function sampled on a regular grid.
// Z[j][i] holds the value at (X[i], Y[j]).
type Field struct {
	X, Y []float64
	Z    [][]float64
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// SampleField evaluates fn on an n by n grid covering b.
func SampleField(fn func(x, y float64) float64, b Bounds, n int) *Field {
	f := &Field{
		X: Linspace(b.XMin, b.XMax, n),
		Y: Linspace(b.YMin, b.YMax, n),
		Z: make([][]float64, n),
	}
	for j, y := range f.Y {
		f.Z[j] = make([]float64, len(f.X))
		for i, x := range f.X {
			f.Z[j][i] = fn(x, y)
		}
	}
	return f
}

func (f *Field) Bounds() Bounds {
	if len(f.X) == 0 || len(f.Y) == 0 {
		return Bounds{}
	}
	return Bounds{XMin: f.X[0], XMax: f.X[len(f.X)-1], YMin: f.Y[0], YMax: f.Y[len(f.Y)-1]}
}

// Range returns the smallest and largest sampled values.
func (f *Field) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range f.Z {
		for _, v := range row {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// At bilinearly interpolates the field at (x, y). ok is false outside the grid.
func (f *Field) At(x, y float64) (v float64, ok bool) {
	nx, ny := len(f.X), len(f.Y)
	if nx < 2 || ny < 2 || !f.Bounds().Contains(x, y) {
		return 0, false
	}
	fx := (x - f.X[0]) / (f.X[nx-1] - f.X[0]) * float64(nx-1)
	fy := (y - f.Y[0]) / (f.Y[ny-1] - f.Y[0]) * float64(ny-1)
	i := min(int(fx), nx-2)
	j := min(int(fy), ny-2)
	tx, ty := fx-float64(i), fy-float64(j)

	top := f.Z[j][i]*(1-tx) + f.Z[j][i+1]*tx
	bot := f.Z[j+1][i]*(1-tx) + f.Z[j+1][i+1]*tx
	return top*(1-ty) + bot*ty, true
}

// Levels returns the n+1 boundaries of n equal bands spanning [lo, hi].
func Levels(lo, hi float64, n int) []float64 {
	return Linspace(lo, hi, n+1)
}

// BandOf returns the band index of v, or -1 when v lies outside the levels.
func BandOf(levels []float64, v float64) int {
	n := len(levels) - 1
	if n < 1 || v < levels[0] || v > levels[n] {
		return -1
	}
	for i := 1; i <= n; i++ {
		if v <= levels[i] {
			return i - 1
		}
	}
	return n - 1
}
