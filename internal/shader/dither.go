package shader

// ditherHash is an inexpensive ordered-dither replacement: a
// coordinate-derived fractional offset in [-0.5/255, 0.5/255] that
// breaks up banding when quantizing to 8 bits per channel (spec.md
// §4.2 step 16, "Dither").
func ditherHash(x, y int) float64 {
	v := float64((x*374761393+y*668265263)&0xffff) / 65536
	return (v - 0.5) / 255
}

// ApplyDither adds a small per-pixel offset ahead of 8-bit quantization
// so flat gradients don't band (spec.md §4.2 step 16).
func ApplyDither(pixel RGB, absX, absY int) RGB {
	d := ditherHash(absX, absY)
	return RGB{R: pixel.R + d, G: pixel.G + d, B: pixel.B + d}
}

// QuantizeTo8Bit converts a clamped [0,1] triple plus alpha to
// straight, non-premultiplied 8-bit rgba8unorm output.
func QuantizeTo8Bit(c RGB, alpha float64) (r, g, b, a uint8) {
	c = clampRGB01(c)
	return uint8(c.R*255 + 0.5), uint8(c.G*255 + 0.5), uint8(c.B*255 + 0.5), uint8(clamp01(alpha)*255 + 0.5)
}
