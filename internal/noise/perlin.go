package noise

import "math"

// Perlin evaluates classic 2D gradient noise against a permutation table.
type Perlin struct {
	table *Table
}

// NewPerlin returns a noise kernel reading from t. A nil table falls back to
// the identity permutation.
func NewPerlin(t *Table) *Perlin {
	if t == nil {
		t = IdentityTable()
	}
	return &Perlin{table: t}
}

// Noise2D returns the noise value at (x, y), roughly in [-1, 1].
func (p *Perlin) Noise2D(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	X := int(fx) & 255
	Y := int(fy) & 255
	xf := x - fx
	yf := y - fy

	t := p.table
	hBL := t.At(t.At(X) + Y)
	hBR := t.At(t.At(X+1) + Y)
	hTL := t.At(t.At(X) + Y + 1)
	hTR := t.At(t.At(X+1) + Y + 1)

	dBL := Vec2{X: xf, Y: yf}.Dot(Gradient(hBL))
	dBR := Vec2{X: xf - 1, Y: yf}.Dot(Gradient(hBR))
	dTL := Vec2{X: xf, Y: yf - 1}.Dot(Gradient(hTL))
	dTR := Vec2{X: xf - 1, Y: yf - 1}.Dot(Gradient(hTR))

	u := Fade(xf)
	v := Fade(yf)
	return Lerp(v, Lerp(u, dBL, dBR), Lerp(u, dTL, dTR))
}
