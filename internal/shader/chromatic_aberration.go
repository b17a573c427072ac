package shader

import "math"

// ChromaticAberration resamples the three channels independently along
// the radial direction from the image center, with per-channel radial
// displacements proportional to distance x parameter (spec.md §4.2
// step 1). If both parameters are zero, it samples the pixel directly.
func ChromaticAberration(src Sampler, absX, absY float64, imgW, imgH int, redCyan, blueYellow float64) RGB {
	if redCyan == 0 && blueYellow == 0 {
		return src.Sample(absX, absY)
	}

	cx, cy := float64(imgW)/2, float64(imgH)/2
	dx, dy := absX-cx, absY-cy
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < eps {
		return src.Sample(absX, absY)
	}
	ux, uy := dx/dist, dy/dist

	rOff := redCyan * dist * 0.01
	bOff := blueYellow * dist * 0.01

	rSample := src.Sample(absX+ux*rOff, absY+uy*rOff)
	gSample := src.Sample(absX, absY)
	bSample := src.Sample(absX-ux*bOff, absY-uy*bOff)

	return RGB{R: rSample.R, G: gSample.G, B: bSample.B}
}
