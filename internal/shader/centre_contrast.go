package shader

import "math"

// centreMidpoint and centreFeather set where the centre operator's
// radial weight transitions from "center of frame" to "edge of frame"
// (spec.md §4.2 step 4, "Centre local contrast": midpoint 0.4, feather
// 0.375, aspect-corrected).
const (
	centreMidpoint = 0.4
	centreFeather  = 0.375
)

// ApplyCentre applies a radial-mask clarity-like local contrast boost
// using the clarity blur: positive at the center of the frame, negative
// at the edges, weighted by an aspect-corrected smoothstep on
// normalized radial distance from frame center (spec.md §4.2 step 4).
// amount is in [-100, 100]; 0 is a no-op.
func ApplyCentre(pixel, clarityBlur RGB, absX, absY, imgW, imgH int, amount float64) RGB {
	if amount == 0 {
		return pixel
	}

	cx, cy := float64(imgW)/2, float64(imgH)/2
	halfW, halfH := guard(cx), guard(cy)
	nx := (float64(absX) + 0.5 - cx) / halfW
	ny := (float64(absY) + 0.5 - cy) / halfH
	r := math.Sqrt(nx*nx + ny*ny)

	edgeWeight := smoothstep(centreMidpoint-centreFeather, centreMidpoint+centreFeather, r)
	radial := 1 - 2*edgeWeight // +1 at the center, -1 at the edge

	l := guard(luma709(pixel))
	lb := guard(luma709(clarityBlur))
	ratio := log2(l / lb)
	factor := exp2(ratio * (amount / 100) * radial)
	return pixel.scale(factor)
}
