package shader

import "math"

// grainHash produces a deterministic pseudo-random value in [-0.5, 0.5]
// from a pixel coordinate, so the CPU and GPU kernels agree on the grain
// pattern without sharing a noise texture (spec.md §4.2 step 13,
// "Grain").
func grainHash(x, y int, size float64) float64 {
	sx := float64(x) / guard(size)
	sy := float64(y) / guard(size)
	n := math.Sin(sx*12.9898+sy*78.233) * 43758.5453
	frac := n - math.Floor(n)
	return frac - 0.5
}

// ApplyGrain overlays luminance-only film grain, softened toward the
// highlights, roughness in [0,100] widening the noise's tonal variance
// (spec.md §4.2 step 13).
func ApplyGrain(pixel RGB, absX, absY int, amount, size, roughness float64) RGB {
	if amount == 0 {
		return pixel
	}
	n := grainHash(absX, absY, maxf(size, 1))
	if roughness > 0 {
		n2 := grainHash(absX+31, absY+17, maxf(size, 1)*0.5)
		n = lerp(n, n2, roughness/100)
	}

	l := luma709(pixel)
	highlightRolloff := 1 - smoothstep(0.6, 1, l)
	strength := (amount / 100) * 0.2 * highlightRolloff

	delta := n * strength
	return RGB{R: pixel.R + delta, G: pixel.G + delta, B: pixel.B + delta}
}
