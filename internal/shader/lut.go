package shader

import "github.com/gogpu/rawshade/internal/color"

// ApplyLUT samples the optional 3D LUT at pixel's sRGB coordinate and
// blends the result in by intensity in [0, 100] (spec.md §4.2 step 12).
// A nil lut is a no-op.
func ApplyLUT(pixel RGB, lut *color.LUT3D, intensity float64) RGB {
	if lut == nil || intensity == 0 {
		return pixel
	}
	sampled := lut.SampleTetrahedral(float32(pixel.R), float32(pixel.G), float32(pixel.B))
	blended := color.LerpColorF32(
		color.ColorF32{R: float32(pixel.R), G: float32(pixel.G), B: float32(pixel.B), A: 1},
		sampled,
		float32(clamp01(intensity/100)),
	)
	return RGB{R: float64(blended.R), G: float64(blended.G), B: float64(blended.B)}
}
