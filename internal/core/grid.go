package core

// Gray stores an 8-bit grayscale image in row-major order.
type Gray struct {
	W, H int
	pix  []uint8
}

// NewGray allocates a grayscale buffer with the given dimensions. Non-positive
// dimensions are clamped to 1.
func NewGray(w, h int) *Gray {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Gray{W: w, H: h, pix: make([]uint8, w*h)}
}

// Size returns the buffer dimensions.
func (g *Gray) Size() Size { return Size{W: g.W, H: g.H} }

// Pixels exposes the backing slice so callers can read/write values directly.
func (g *Gray) Pixels() []uint8 { return g.pix }

// Index returns the linear slice index for coordinates (x, y).
func (g *Gray) Index(x, y int) int { return y*g.W + x }

// At returns the intensity at (x, y).
func (g *Gray) At(x, y int) uint8 { return g.pix[g.Index(x, y)] }

// Set writes the intensity at (x, y).
func (g *Gray) Set(x, y int, v uint8) { g.pix[g.Index(x, y)] = v }
