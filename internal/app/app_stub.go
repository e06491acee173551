//go:build !ebiten

package app

import "fbm-noise/internal/core"

// Options mirrors the GUI build options.
type Options struct {
	Title        string
	Scale        int
	TPS          int
	Caption      core.ParameterProvider
	CaptionWidth int
}

// Window is a placeholder that satisfies core.Display in headless builds.
type Window struct{}

// NewWindow returns a headless placeholder.
func NewWindow(Options) *Window { return &Window{} }

// Show always reports that the GUI build tag is missing.
func (w *Window) Show(core.Frame) error { return ErrHeadless }
