//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"log/slog"

	"fbm-noise/internal/core"
	"fbm-noise/internal/render"
	"fbm-noise/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Options controls how the window presents a frame.
type Options struct {
	Title string
	Scale int
	TPS   int
	// Caption, when non-nil, is drawn in a side panel of CaptionWidth pixels.
	Caption      core.ParameterProvider
	CaptionWidth int
}

// Window displays a single grayscale frame with ebiten.
type Window struct {
	opts Options
}

// NewWindow returns a display backed by an ebiten window.
func NewWindow(opts Options) *Window {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	return &Window{opts: opts}
}

// Show opens the window and blocks until it is closed.
func (w *Window) Show(f core.Frame) error {
	g := newGame(f, w.opts)
	size := f.Size()

	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetTPS(w.opts.TPS)
	ebiten.SetWindowSize(size.W*w.opts.Scale+g.hud.Width(), size.H*w.opts.Scale)

	slog.Info("window opened", "width", size.W, "height", size.H, "scale", w.opts.Scale)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	slog.Info("window closed")
	return nil
}

// game adapts a static frame to the ebiten.Game interface.
type game struct {
	frame    core.Frame
	painter  *render.GrayPainter
	hud      *ui.HUD
	scale    int
	uploaded bool
}

func newGame(f core.Frame, opts Options) *game {
	size := f.Size()
	g := &game{
		frame:   f,
		painter: render.NewGrayPainter(size.W, size.H),
		scale:   opts.Scale,
	}
	if opts.Caption != nil {
		g.hud = ui.NewHUD(opts.Caption, opts.Title, opts.CaptionWidth)
		g.hud.Update()
	}
	return g
}

// Update polls for close requests.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the frame, uploading it on first use.
func (g *game) Draw(screen *ebiten.Image) {
	if !g.uploaded {
		g.painter.Upload(g.frame)
		g.uploaded = true
	}
	g.painter.Draw(screen, g.scale)
	size := g.frame.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.frame.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
