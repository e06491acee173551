package raster

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"fbm-noise/internal/core"
	"fbm-noise/internal/noise"
)

// Config controls the raster dimensions and the fractal parameters.
type Config struct {
	Width       int
	Height      int
	Octaves     int
	Frequency   float64
	Persistence float64
	Lacunarity  float64
}

// DefaultConfig returns the standard 800x600, 8 octave configuration.
func DefaultConfig() Config {
	return Config{
		Width:       800,
		Height:      600,
		Octaves:     8,
		Frequency:   noise.DefaultFrequency,
		Persistence: noise.DefaultPersistence,
		Lacunarity:  noise.DefaultLacunarity,
	}
}

// Generator renders fractal noise into a grayscale buffer.
type Generator struct {
	cfg     Config
	fractal *noise.Fractal
	shuffle string
	seed    int64
	stats   Stats
	values  []float64
}

// New returns a generator sampling noise from table with the given config.
func New(table *noise.Table, cfg Config) *Generator {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	f := noise.NewFractal(noise.NewPerlin(table))
	f.Frequency = cfg.Frequency
	f.Persistence = cfg.Persistence
	f.Lacunarity = cfg.Lacunarity
	return &Generator{cfg: cfg, fractal: f}
}

// WithSource records the seed and shuffle mode the table was built from so
// they show up in Parameters.
func (g *Generator) WithSource(seed int64, mode noise.ShuffleMode) *Generator {
	g.seed = seed
	g.shuffle = mode.String()
	return g
}

// Size returns the raster dimensions.
func (g *Generator) Size() core.Size { return core.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Generate allocates a buffer and fills it.
func (g *Generator) Generate() *core.Gray {
	dst := core.NewGray(g.cfg.Width, g.cfg.Height)
	g.fill(dst)
	return dst
}

// GenerateInto overwrites every pixel of dst with normalized fractal noise.
func (g *Generator) GenerateInto(dst *core.Gray) error {
	if dst.W != g.cfg.Width || dst.H != g.cfg.Height {
		return fmt.Errorf("raster: buffer is %dx%d, generator is %dx%d", dst.W, dst.H, g.cfg.Width, g.cfg.Height)
	}
	g.fill(dst)
	return nil
}

// fill writes every pixel of dst; dst must match the generator size.
func (g *Generator) fill(dst *core.Gray) {
	start := time.Now()
	total := dst.W * dst.H
	if cap(g.values) < total {
		g.values = make([]float64, total)
	}
	g.values = g.values[:total]

	for y := 0; y < dst.H; y++ {
		for x := 0; x < dst.W; x++ {
			v := g.Sample(x, y)
			g.values[dst.Index(x, y)] = v
			dst.Set(x, y, Intensity(v))
		}
	}
	g.stats = computeStats(g.values)

	Logger().Debug("raster generated",
		"width", dst.W,
		"height", dst.H,
		"octaves", g.cfg.Octaves,
		"elapsed", time.Since(start),
	)
}

// Sample returns the normalized [0, 1] noise value for pixel (x, y).
func (g *Generator) Sample(x, y int) float64 {
	v := g.fractal.Eval(float64(x), float64(y), g.cfg.Octaves)
	return (v + 1) / 2
}

// Intensity scales a normalized value to an 8-bit gray level, truncating.
func Intensity(n float64) uint8 {
	if n <= 0 || math.IsNaN(n) {
		return 0
	}
	if n >= 1 {
		return 255
	}
	return uint8(255 * n)
}

// Stats returns statistics for the most recent generation.
func (g *Generator) Stats() Stats { return g.stats }

// Parameters describes the generator for the caption panel.
func (g *Generator) Parameters() core.ParameterSnapshot {
	noiseGroup := core.ParameterGroup{
		Name: "Noise",
		Params: []core.Parameter{
			{Key: "octaves", Label: "Octaves", Type: core.ParamTypeInt, Value: strconv.Itoa(g.cfg.Octaves)},
			{Key: "frequency", Label: "Frequency", Type: core.ParamTypeFloat, Value: formatFloat(g.cfg.Frequency)},
			{Key: "persistence", Label: "Persistence", Type: core.ParamTypeFloat, Value: formatFloat(g.cfg.Persistence)},
			{Key: "lacunarity", Label: "Lacunarity", Type: core.ParamTypeFloat, Value: formatFloat(g.cfg.Lacunarity)},
		},
	}
	if g.shuffle != "" {
		noiseGroup.Params = append(noiseGroup.Params,
			core.Parameter{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(g.seed, 10)},
			core.Parameter{Key: "shuffle", Label: "Shuffle", Type: core.ParamTypeString, Value: g.shuffle},
		)
	}
	statsGroup := core.ParameterGroup{
		Name: "Field",
		Params: []core.Parameter{
			{Key: "min", Label: "Min", Type: core.ParamTypeFloat, Value: formatFloat(g.stats.Min)},
			{Key: "max", Label: "Max", Type: core.ParamTypeFloat, Value: formatFloat(g.stats.Max)},
			{Key: "mean", Label: "Mean", Type: core.ParamTypeFloat, Value: formatFloat(g.stats.Mean)},
			{Key: "stddev", Label: "StdDev", Type: core.ParamTypeFloat, Value: formatFloat(g.stats.StdDev)},
		},
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{noiseGroup, statsGroup}}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
