// Package config loads startup settings from embedded defaults, an optional
// YAML file and command-line flags.
package config

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"fbm-noise/internal/noise"
	"fbm-noise/internal/raster"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all startup settings.
type Config struct {
	Raster RasterConfig `yaml:"raster"`
	Noise  NoiseConfig  `yaml:"noise"`
	Window WindowConfig `yaml:"window"`
	Log    LogConfig    `yaml:"log"`
}

// RasterConfig holds the generated image dimensions.
type RasterConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NoiseConfig holds the fractal noise parameters.
type NoiseConfig struct {
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Seed        int64   `yaml:"seed"`
	Shuffle     string  `yaml:"shuffle"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title        string `yaml:"title"`
	Scale        int    `yaml:"scale"`
	TPS          int    `yaml:"tps"`
	Caption      bool   `yaml:"caption"`
	CaptionWidth int    `yaml:"caption_width"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: parsing embedded defaults: %v", err))
	}
	return cfg
}

// Load reads a YAML file over the embedded defaults. Fields absent from the
// file keep their default values. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet. Flags parsed after
// Load override file values.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Raster.Width, "width", c.Raster.Width, "raster width in pixels")
	fs.IntVar(&c.Raster.Height, "height", c.Raster.Height, "raster height in pixels")
	fs.IntVar(&c.Noise.Octaves, "octaves", c.Noise.Octaves, "number of fractal octaves")
	fs.Float64Var(&c.Noise.Frequency, "frequency", c.Noise.Frequency, "base sampling frequency")
	fs.Float64Var(&c.Noise.Persistence, "persistence", c.Noise.Persistence, "amplitude decay per octave")
	fs.Float64Var(&c.Noise.Lacunarity, "lacunarity", c.Noise.Lacunarity, "frequency multiplier per octave")
	fs.Int64Var(&c.Noise.Seed, "seed", c.Noise.Seed, "permutation seed (0 = time-based)")
	fs.StringVar(&c.Noise.Shuffle, "shuffle", c.Noise.Shuffle, "permutation shuffle: uniform or legacy")
	fs.StringVar(&c.Window.Title, "title", c.Window.Title, "window title")
	fs.IntVar(&c.Window.Scale, "scale", c.Window.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Window.TPS, "tps", c.Window.TPS, "ticks per second")
	fs.BoolVar(&c.Window.Caption, "caption", c.Window.Caption, "show the parameter panel")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level: debug, info, warn, error")
	fs.StringVar(&c.Log.Format, "log-format", c.Log.Format, "log format: text or json")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Raster.Width <= 0 || c.Raster.Height <= 0 {
		return fmt.Errorf("%w: raster size %dx%d must be positive", ErrInvalid, c.Raster.Width, c.Raster.Height)
	}
	if c.Noise.Octaves < 0 {
		return fmt.Errorf("%w: octaves %d must not be negative", ErrInvalid, c.Noise.Octaves)
	}
	if c.Noise.Frequency <= 0 || !finite(c.Noise.Frequency) {
		return fmt.Errorf("%w: frequency %v must be positive and finite", ErrInvalid, c.Noise.Frequency)
	}
	if !finite(c.Noise.Persistence) {
		return fmt.Errorf("%w: persistence %v must be finite", ErrInvalid, c.Noise.Persistence)
	}
	if !finite(c.Noise.Lacunarity) {
		return fmt.Errorf("%w: lacunarity %v must be finite", ErrInvalid, c.Noise.Lacunarity)
	}
	if _, err := noise.ParseShuffleMode(c.Noise.Shuffle); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: scale %d must be positive", ErrInvalid, c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalid, c.Window.TPS)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// RasterConfig converts the settings into a raster generator config.
func (c *Config) RasterConfig() raster.Config {
	return raster.Config{
		Width:       c.Raster.Width,
		Height:      c.Raster.Height,
		Octaves:     c.Noise.Octaves,
		Frequency:   c.Noise.Frequency,
		Persistence: c.Noise.Persistence,
		Lacunarity:  c.Noise.Lacunarity,
	}
}

// ShuffleMode returns the parsed shuffle mode, falling back to uniform.
func (c *Config) ShuffleMode() noise.ShuffleMode {
	mode, err := noise.ParseShuffleMode(c.Noise.Shuffle)
	if err != nil {
		return noise.ShuffleUniform
	}
	return mode
}

// NewLogger builds a slog logger writing to w per the log settings.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
