package noise

var gradients = [4]Vec2{
	{X: 1, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
	{X: 1, Y: -1},
}

// Gradient maps a corner hash to one of four diagonal gradient vectors. Only
// the low two bits of h are used.
func Gradient(h int) Vec2 {
	return gradients[h&3]
}

// Fade is the quintic ease curve 6t^5 - 15t^4 + 10t^3.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Lerp linearly interpolates between a and b.
func Lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}
