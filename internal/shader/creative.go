package shader

import "github.com/gogpu/rawshade/internal/color"

// ApplySaturation scales chroma uniformly around luma. amount is in
// [-100, 100] (spec.md §3 "Saturation").
func ApplySaturation(pixel RGB, amount float64) RGB {
	if amount == 0 {
		return pixel
	}
	factor := 1 + amount/100
	l := luma709(pixel)
	return RGB{
		R: l + (pixel.R-l)*factor,
		G: l + (pixel.G-l)*factor,
		B: l + (pixel.B-l)*factor,
	}
}

// ApplyVibrance scales chroma like saturation but weights the effect
// down on pixels that are already highly saturated, protecting skin
// tones from oversaturation (spec.md §3 "Vibrance").
func ApplyVibrance(pixel RGB, amount float64) RGB {
	if amount == 0 {
		return pixel
	}
	_, s, _ := color.RGBToHSV(float32(pixel.R), float32(pixel.G), float32(pixel.B))
	protection := 1 - float64(s)
	factor := 1 + (amount/100)*protection
	l := luma709(pixel)
	return RGB{
		R: l + (pixel.R-l)*factor,
		G: l + (pixel.G-l)*factor,
		B: l + (pixel.B-l)*factor,
	}
}
