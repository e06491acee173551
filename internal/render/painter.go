//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"fbm-noise/internal/core"
)

// GrayPainter uploads a grayscale frame into a single RGBA image.
type GrayPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGrayPainter allocates a painter for a frame of size w*h.
func NewGrayPainter(w, h int) *GrayPainter {
	gp := &GrayPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Upload converts the frame to RGBA and writes it into the image. Frames of
// the wrong size are ignored.
func (gp *GrayPainter) Upload(f core.Frame) {
	pix := f.Pixels()
	if len(pix) != gp.w*gp.h {
		return
	}
	fillGrayRGBA(gp.buf, pix)
	gp.img.WritePixels(gp.buf)
}

// Draw blits the uploaded image onto dst at the given scale.
func (gp *GrayPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
