package noise

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestFractalClamped(t *testing.T) {
	f := NewFractal(NewPerlin(NewTable(rand.New(rand.NewPCG(8, 8)), ShuffleUniform)))
	// Exaggerated persistence pushes raw sums well past 1.
	f.Persistence = 1.5
	r := rand.New(rand.NewPCG(3, 3))
	for i := 0; i < 5000; i++ {
		x := r.Float64() * 2000
		y := r.Float64() * 2000
		for _, octaves := range []int{1, 4, 8, 12} {
			v := f.Eval(x, y, octaves)
			if v < -1 || v > 1 {
				t.Fatalf("Eval(%v, %v, %d) = %v outside [-1, 1]", x, y, octaves, v)
			}
		}
	}
}

func TestFractalZeroOctaves(t *testing.T) {
	f := NewFractal(NewPerlin(NewTable(rand.New(rand.NewPCG(1, 1)), ShuffleUniform)))
	for _, octaves := range []int{0, -1, -8} {
		for _, pt := range [][2]float64{{0, 0}, {123.4, 56.7}, {-9, 800}} {
			if v := f.Eval(pt[0], pt[1], octaves); v != 0 {
				t.Fatalf("Eval(%v, %v, %d) = %v, want 0", pt[0], pt[1], octaves, v)
			}
		}
	}
}

func TestFractalSingleOctaveMatchesKernel(t *testing.T) {
	p := NewPerlin(IdentityTable())
	f := NewFractal(p)
	if f.Eval(0, 0, 1) != p.Noise2D(0, 0) {
		t.Fatalf("Eval(0, 0, 1) = %v, Noise2D(0, 0) = %v", f.Eval(0, 0, 1), p.Noise2D(0, 0))
	}
	for _, pt := range [][2]float64{{37, 91}, {400, 300}, {799, 599}} {
		want := p.Noise2D(pt[0]*DefaultFrequency, pt[1]*DefaultFrequency)
		if got := f.Eval(pt[0], pt[1], 1); math.Abs(got-want) > 1e-12 {
			t.Fatalf("Eval(%v, %v, 1) = %v, want %v", pt[0], pt[1], got, want)
		}
	}
}

func TestFractalOctaveSum(t *testing.T) {
	p := NewPerlin(NewTable(rand.New(rand.NewPCG(21, 0)), ShuffleUniform))
	f := NewFractal(p)
	x, y := 313.0, 171.0
	want := p.Noise2D(x*0.005, y*0.005) + 0.5*p.Noise2D(x*0.01, y*0.01) + 0.25*p.Noise2D(x*0.02, y*0.02)
	want = clamp(want, -1, 1)
	if got := f.Eval(x, y, 3); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Eval(%v, %v, 3) = %v, want %v", x, y, got, want)
	}
}

func TestFractalDeterministic(t *testing.T) {
	f := NewFractal(NewPerlin(NewTable(rand.New(rand.NewPCG(77, 0)), ShuffleLegacy)))
	for i := 0; i < 100; i++ {
		x, y := float64(i*7), float64(i*13)
		if f.Eval(x, y, 8) != f.Eval(x, y, 8) {
			t.Fatalf("Eval(%v, %v, 8) not deterministic", x, y)
		}
	}
}

func TestFractalUsesConfiguredFrequency(t *testing.T) {
	p := NewPerlin(IdentityTable())
	f := NewFractal(p)
	f.Frequency = 0.01
	x, y := 130.0, 70.0
	if got, want := f.Eval(x, y, 1), p.Noise2D(x*0.01, y*0.01); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Eval = %v, want %v", got, want)
	}
}

func TestFractalNonFiniteParametersStayInRange(t *testing.T) {
	cases := map[string]func(*Fractal){
		"frequency":   func(f *Fractal) { f.Frequency = math.Inf(1) },
		"persistence": func(f *Fractal) { f.Persistence = math.NaN() },
		"lacunarity":  func(f *Fractal) { f.Lacunarity = math.Inf(1) },
	}
	for name, mutate := range cases {
		f := NewFractal(NewPerlin(NewTable(rand.New(rand.NewPCG(6, 6)), ShuffleUniform)))
		mutate(f)
		v := f.Eval(1, 1, 8)
		if math.IsNaN(v) || v < -1 || v > 1 {
			t.Errorf("%s: Eval(1, 1, 8) = %v, want a value in [-1, 1]", name, v)
		}
	}
}
