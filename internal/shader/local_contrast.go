package shader

// LocalContrastSlot identifies which of the three local-contrast
// operators is being evaluated; sharpness gets extra halo damping and a
// halved softening blend (spec.md §4.2 step 3).
type LocalContrastSlot int

const (
	SlotSharpness LocalContrastSlot = iota
	SlotClarity
	SlotStructure
)

// protectionThreshold returns t_s for the shadow/highlight protection
// mask: 0.1 for RAW (linear) input, 0.03 for sRGB-encoded input.
func protectionThreshold(isRaw bool) float64 {
	if isRaw {
		return 0.1
	}
	return 0.03
}

// ApplyLocalContrast applies one local-contrast operator (sharpness,
// clarity, or structure) to pixel, using its dedicated blur buffer
// sample (spec.md §4.2 step 3).
func ApplyLocalContrast(pixel, blur RGB, amount float64, slot LocalContrastSlot, isRaw bool) RGB {
	if amount == 0 {
		return pixel
	}

	l := guard(luma709(pixel))
	lb := guard(luma709(blur))

	ts := protectionThreshold(isRaw)
	protection := smoothstep(0, ts, l) * (1 - smoothstep(0.9, 1, l))

	var result RGB
	if amount > 0 {
		ratio := log2(l / lb)
		ampEff := amount
		if slot == SlotSharpness {
			edgeMag := clamp01(absf(l - lb) * 4)
			ampEff *= 1 - 0.5*edgeMag // dampen by edge magnitude to reduce haloing
		}
		factor := exp2(ratio * ampEff)
		result = pixel.scale(factor)
	} else {
		mixT := -amount
		if slot == SlotSharpness {
			mixT *= 0.5
		}
		target := projectLuma(blur, l)
		result = lerpRGB(pixel, target, mixT)
	}

	return lerpRGB(pixel, result, protection)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
