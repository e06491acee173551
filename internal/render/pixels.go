package render

// fillGrayRGBA expands 8-bit intensities into opaque RGBA pixels in buf with
// equal R, G and B channels.
func fillGrayRGBA(buf []byte, pix []uint8) {
	for i, v := range pix {
		base := i * 4
		buf[base+0] = v
		buf[base+1] = v
		buf[base+2] = v
		buf[base+3] = 0xff
	}
}
