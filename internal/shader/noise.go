package shader

// NoiseSample is a single tap from the 3x3 neighborhood around a pixel,
// supplied by the caller so this package never reads a Sampler at
// fractional offsets.
type NoiseSample struct {
	Color  RGB
	Weight float64 // spatial weight, already including the Gaussian falloff
}

// bilateralRange returns the range-domain weight for a neighbor sample,
// favoring neighbors whose luma is close to the center pixel's so edges
// are preserved (spec.md §4.2 step 8, "noise reduction").
func bilateralRange(centerLuma, sampleLuma, sigma float64) float64 {
	d := centerLuma - sampleLuma
	return exp2(-(d * d) / (2 * sigma * sigma) * 1.4427) // 1/ln2 to keep exp2 base
}

// ApplyLumaNR denoises luminance only, reprojecting each neighbor's
// contribution onto the center pixel's luma while leaving chroma
// untouched.
func ApplyLumaNR(pixel RGB, neighbors []NoiseSample, amount float64) RGB {
	if amount <= 0 || len(neighbors) == 0 {
		return pixel
	}
	sigma := guard(0.3 * (1 - amount/100))
	centerLuma := luma709(pixel)

	var sumW, sumL float64
	for _, n := range neighbors {
		nl := luma709(n.Color)
		w := n.Weight * bilateralRange(centerLuma, nl, sigma)
		sumW += w
		sumL += w * nl
	}
	if sumW < eps {
		return pixel
	}
	denoisedLuma := sumL / sumW
	blended := lerp(centerLuma, denoisedLuma, clamp01(amount/100))
	return projectLuma(pixel, blended)
}

// ApplyColorNR denoises chroma by blending the pixel toward a
// bilateral-weighted average of its neighbors' color while holding luma
// fixed (spec.md §4.2 step 8, "noise reduction").
func ApplyColorNR(pixel RGB, neighbors []NoiseSample, amount float64) RGB {
	if amount <= 0 || len(neighbors) == 0 {
		return pixel
	}
	sigma := guard(0.3 * (1 - amount/100))
	centerLuma := luma709(pixel)

	var sumW float64
	var sum RGB
	for _, n := range neighbors {
		nl := luma709(n.Color)
		w := n.Weight * bilateralRange(centerLuma, nl, sigma)
		sumW += w
		sum = sum.add(n.Color.scale(w))
	}
	if sumW < eps {
		return pixel
	}
	avg := sum.scale(1 / sumW)
	blended := lerpRGB(pixel, avg, clamp01(amount/100))
	return projectLuma(blended, centerLuma)
}
