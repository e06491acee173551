package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fbm-noise/internal/app"
	"fbm-noise/internal/config"
	"fbm-noise/internal/core"
	"fbm-noise/internal/noise"
	"fbm-noise/internal/raster"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("noise failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	printConfig bool
}

// parseFlags binds cfg to a fresh FlagSet and parses args into it.
func parseFlags(cfg *config.Config, args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("noise", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file (empty = use defaults)")
	fs.BoolVar(&opts.printConfig, "print-config", false, "print the effective config as YAML and exit")
	cfg.Bind(fs)
	err := fs.Parse(args)
	return opts, err
}

func run(args []string) error {
	cfg := config.Default()
	opts, err := parseFlags(cfg, args)
	if err != nil {
		return err
	}
	if opts.configPath != "" {
		// Reparse so flags override file values.
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
		if opts, err = parseFlags(cfg, args); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	raster.SetLogger(logger)

	seed := core.ResolveSeed(cfg.Noise.Seed)
	mode := cfg.ShuffleMode()
	table := noise.NewTable(core.NewRNG(seed).Source(), mode)
	slog.Debug("permutation table built", "seed", seed, "shuffle", mode)

	gen := raster.New(table, cfg.RasterConfig()).WithSource(seed, mode)
	start := time.Now()
	frame := gen.Generate()
	stats := gen.Stats()
	size := gen.Size()
	slog.Info("noise generated",
		"width", size.W,
		"height", size.H,
		"octaves", cfg.Noise.Octaves,
		"seed", seed,
		"elapsed", time.Since(start),
		"min", stats.Min,
		"max", stats.Max,
		"mean", stats.Mean,
		"stddev", stats.StdDev,
	)

	winOpts := app.Options{
		Title: cfg.Window.Title,
		Scale: cfg.Window.Scale,
		TPS:   cfg.Window.TPS,
	}
	if cfg.Window.Caption {
		winOpts.Caption = gen
		winOpts.CaptionWidth = cfg.Window.CaptionWidth
	}
	var display core.Display = app.NewWindow(winOpts)
	if err := display.Show(frame); err != nil {
		if errors.Is(err, app.ErrHeadless) {
			fmt.Fprintln(os.Stderr, "Displaying the texture requires the ebiten build tag.")
			fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/noise` or build with `-tags ebiten`.")
			return nil
		}
		return err
	}
	return nil
}
