package shader

import "math"

// ApplyVignette darkens (amount > 0) or brightens (amount < 0) the
// frame edges based on normalized distance from center, with roundness
// blending between an elliptical and rectangular falloff shape and
// feather controlling the transition softness (spec.md §4.2 step 14).
func ApplyVignette(pixel RGB, absX, absY float64, imgW, imgH int, amount, midpoint, roundness, feather float64) RGB {
	if amount == 0 {
		return pixel
	}

	cx, cy := float64(imgW)/2, float64(imgH)/2
	halfW, halfH := guard(cx), guard(cy)
	nx, ny := (absX-cx)/halfW, (absY-cy)/halfH

	elliptical := math.Sqrt(nx*nx + ny*ny)
	rectangular := maxf(absf(nx), absf(ny))
	r := lerp(rectangular, elliptical, clamp01(roundness/100))

	mid := clamp(midpoint/100, 0, 1)
	featherSpan := guard(feather/100) + 1e-3
	falloff := smoothstep(mid, mid+featherSpan, r)

	factor := 1 - (amount/100)*falloff
	return pixel.scale(maxf(factor, 0))
}
