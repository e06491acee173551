package core

// Size describes the dimensions of a raster.
type Size struct {
	W int
	H int
}

// Frame is a grayscale raster ready to be shown.
type Frame interface {
	Size() Size
	Pixels() []uint8
}

// Display shows a frame until the user closes it.
type Display interface {
	Show(f Frame) error
}
