package noise

import "math"

const (
	// DefaultFrequency is the sampling frequency of the first octave.
	DefaultFrequency = 0.005
	// DefaultPersistence is the amplitude decay applied after each octave.
	DefaultPersistence = 0.5
	// DefaultLacunarity is the frequency multiplier applied after each octave.
	DefaultLacunarity = 2.0
)

// Fractal accumulates octaves of Perlin noise (fractal Brownian motion).
type Fractal struct {
	Noise       *Perlin
	Frequency   float64
	Persistence float64
	Lacunarity  float64
}

// NewFractal returns an accumulator over p using the default frequency,
// persistence and lacunarity.
func NewFractal(p *Perlin) *Fractal {
	return &Fractal{
		Noise:       p,
		Frequency:   DefaultFrequency,
		Persistence: DefaultPersistence,
		Lacunarity:  DefaultLacunarity,
	}
}

// Eval sums octaves of noise at (x, y) and clamps the total to [-1, 1].
// Zero or negative octave counts yield 0, as does a NaN total.
func (f *Fractal) Eval(x, y float64, octaves int) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := f.Frequency
	for o := 0; o < octaves; o++ {
		sum += amplitude * f.Noise.Noise2D(x*frequency, y*frequency)
		amplitude *= f.Persistence
		frequency *= f.Lacunarity
	}
	return clamp(sum, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
