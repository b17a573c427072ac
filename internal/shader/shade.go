package shader

// Shade renders one output texel by running the full ordered pipeline
// of spec.md §4.2: chromatic aberration, color-space ingress, the local
// contrast trio, centre contrast, linear exposure, the RAW sRGB
// pre-warp, glow/halation/flare, the global adjustment stack, the
// nested per-mask stacks, tone-mapping, curves, the optional 3D LUT,
// grain, vignette, the clipping indicator, and dither, returning
// straight rgba8unorm bytes.
func Shade(in Inputs) (r, g, b, a uint8) {
	// Step 1: chromatic aberration.
	c := ChromaticAberration(in.Source, float64(in.AbsX), float64(in.AbsY), in.ImgW, in.ImgH,
		in.Global.CARedCyan, in.Global.CABlueYellow)

	// Step 2: color space ingress.
	lin := toLinear(c)

	// Step 3: local contrast trio.
	lin = ApplyLocalContrast(lin, in.SharpnessBlur, in.Global.Sharpness, SlotSharpness, in.Global.IsRaw)
	lin = ApplyLocalContrast(lin, in.ClarityBlur, in.Global.Clarity, SlotClarity, in.Global.IsRaw)
	lin = ApplyLocalContrast(lin, in.StructureBlur, in.Global.Structure, SlotStructure, in.Global.IsRaw)

	// Step 4: centre contrast.
	lin = ApplyCentre(lin, in.ClarityBlur, in.AbsX, in.AbsY, in.ImgW, in.ImgH, in.Global.Centre)

	// Step 5: linear exposure.
	lin = ApplyExposure(lin, in.Global.Exposure)

	// Step 6: RAW sRGB pre-warp.
	lin = ApplyRawPrewarp(lin, in.Global.IsRaw)

	// Step 7: glow, halation, flare.
	lin = ApplyGlow(lin, in.BrightBlur, in.Global.Glow)
	lin = ApplyHalation(lin, in.BrightBlur, in.Global.Halation)
	lin = ApplyFlare(lin, in.FlareSample, in.Global.Flare)

	// Step 8: global adjustment stack.
	lin = ApplyGlobalStack(lin, in.Global, Aux{DarkChannel: in.DarkChannel, NRNeighbors: in.NRNeighbors})

	// Step 9: per-mask stacks, nested.
	lin = ApplyMaskStacks(lin, in.AbsX, in.AbsY, in.Masks, in.MaskAuxes, in.MaskCurves, in.Global.IsRaw)

	// Step 10: tone-mapping to display-referred sRGB.
	disp := ApplyTonemap(lin, in.Global.TonemapperFilmic, in.Global.AgXMatrix, in.Global.AgXMatrixInverse)

	// Step 11: curves.
	disp = ApplyCurves(disp, in.Curves)

	// Step 12: optional 3D LUT.
	if in.Global.HasLUT {
		disp = ApplyLUT(disp, in.LUT, in.Global.LUTIntensity)
	}

	// Step 13: grain.
	disp = ApplyGrain(disp, in.AbsX, in.AbsY, in.Global.GrainAmount, in.Global.GrainSize, in.Global.GrainRoughness)

	// Step 14: vignette.
	disp = ApplyVignette(disp, float64(in.AbsX), float64(in.AbsY), in.ImgW, in.ImgH,
		in.Global.VignetteAmount, in.Global.VignetteMidpoint, in.Global.VignetteRoundness, in.Global.VignetteFeather)

	// Step 15: clipping indication.
	disp = ApplyClippingIndicator(disp, in.Global.ShowClipping)

	// Step 16: dither and quantize.
	disp = ApplyDither(disp, in.AbsX, in.AbsY)
	return QuantizeTo8Bit(disp, in.Alpha)
}
