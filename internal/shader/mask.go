package shader

// MaskAux bundles the per-pixel auxiliary samples a single mask's
// adjustment stack needs: its own local-contrast blur samples, its own
// bright-pass blur for glow/halation, and a flare-texture sample.
type MaskAux struct {
	SharpnessBlur, ClarityBlur, StructureBlur RGB
	BrightBlur                                RGB
	FlareSample                               RGB
	DarkChannel                               float32
}

// ApplyMaskStack runs one mask's self-contained adjustment stack and
// blends the result against the unmodified pixel by the mask's sampled
// influence (spec.md §4.2 step 9, "per-mask stacks"): the local-contrast
// trio, then glow/halation/flare, then `apply_all_mask_adjustments` in
// its normative order (NR, dehaze, linear exposure, white balance,
// filmic brightness, highlights, tonal, HSL, grading, creative color),
// then the mask's own curves.
//
// MaskParams carries no NR fields even though step 9 lists NR first in
// apply_all_mask_adjustments (see DESIGN.md's open questions); this mask
// stack has nothing to apply there and skips straight to dehaze.
func ApplyMaskStack(pixel RGB, p MaskParams, aux MaskAux, curves PreparedCurves, influence float64, isRaw bool) RGB {
	if influence <= 0 {
		return pixel
	}

	out := pixel
	out = ApplyLocalContrast(out, aux.SharpnessBlur, p.Sharpness, SlotSharpness, isRaw)
	out = ApplyLocalContrast(out, aux.ClarityBlur, p.Clarity, SlotClarity, isRaw)
	out = ApplyLocalContrast(out, aux.StructureBlur, p.Structure, SlotStructure, isRaw)
	out = ApplyGlow(out, aux.BrightBlur, p.Glow)
	out = ApplyHalation(out, aux.BrightBlur, p.Halation)
	out = ApplyFlare(out, aux.FlareSample, p.Flare)

	// apply_all_mask_adjustments:
	out = ApplyDehaze(out, aux.DarkChannel, p.Dehaze)
	out = ApplyExposure(out, p.Exposure)
	out = ApplyWhiteBalance(out, p.Temperature, p.Tint)
	out = ApplyFilmicBrightness(out, p.Brightness)
	out = ApplyHighlightRecovery(out, p.Highlights)
	out = ApplyTonalAdjustments(out, p.Contrast, p.Shadows, p.Highlights, p.Whites, p.Blacks)
	out = ApplyHSL(out, p.HSL)
	out = ApplyColorGrading(out, p.Grading)
	out = ApplySaturation(out, p.Saturation)
	out = ApplyVibrance(out, p.Vibrance)

	out = ApplyCurves(out, curves)

	return lerpRGB(pixel, out, clamp01(influence))
}

// ApplyMaskStacks runs up to MaxMasks nested mask stacks in order, each
// one sampling its own influence texture at the pixel's absolute
// coordinate and layering its result onto the previous stage's output
// (spec.md §4.2 step 9). auxes and curves must be parallel to masks.
func ApplyMaskStacks(pixel RGB, absX, absY int, masks []MaskEntry, auxes []MaskAux, curves []PreparedCurves, isRaw bool) RGB {
	out := pixel
	for i, m := range masks {
		influence := float64(m.Influence(absX, absY))
		if influence <= 0 {
			continue
		}
		out = ApplyMaskStack(out, m.Params, auxes[i], curves[i], influence, isRaw)
	}
	return out
}
