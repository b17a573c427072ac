package shader

// ApplyGlow adds a soft, additive bloom sourced from a bright-pass blur
// of the image, scaled by amount in [0, 100] (spec.md §4.2 step 7).
func ApplyGlow(pixel, brightBlur RGB, amount float64) RGB {
	if amount == 0 {
		return pixel
	}
	return pixel.add(brightBlur.scale(amount / 100))
}

// halationTint biases the bright-pass blur toward red, approximating
// light scattering back through a film base.
var halationTint = RGB{R: 1.0, G: 0.55, B: 0.35}

// ApplyHalation adds a red-shifted glow around the brightest regions of
// the frame, the way light re-emerges after bouncing off a film
// emulsion's backing layer (spec.md §4.2 step 7).
func ApplyHalation(pixel, brightBlur RGB, amount float64) RGB {
	if amount == 0 {
		return pixel
	}
	tinted := brightBlur.mulRGB(halationTint)
	return pixel.add(tinted.scale(amount / 100))
}

// ApplyFlare adds veiling glare sampled from a precomputed flare
// texture, uniform across the frame rather than image-derived
// (spec.md §4.2 step 7).
func ApplyFlare(pixel, flareSample RGB, amount float64) RGB {
	if amount == 0 {
		return pixel
	}
	return pixel.add(flareSample.scale(amount / 100))
}
