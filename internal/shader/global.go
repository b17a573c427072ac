package shader

// Aux bundles the per-pixel auxiliary samples the global stack needs
// beyond the center pixel: a locally-stable dark-channel estimate for
// dehaze and the 3x3 neighborhood for noise reduction.
type Aux struct {
	DarkChannel float32
	NRNeighbors []NoiseSample
}

// ApplyGlobalStack runs the global adjustment stack (spec.md §4.2 step
// 8, "apply_all_adjustments") in its normative order: luma/color noise
// reduction, dehaze, white balance, filmic brightness, the tonal zone
// sliders (including the contrast S-curve), highlight recovery, color
// calibration, the HSL panel, color grading, and finally creative color
// (saturation/vibrance).
func ApplyGlobalStack(pixel RGB, p GlobalParams, aux Aux) RGB {
	out := pixel
	out = ApplyLumaNR(out, aux.NRNeighbors, p.LumaNR)
	out = ApplyColorNR(out, aux.NRNeighbors, p.ColorNR)
	out = ApplyDehaze(out, aux.DarkChannel, p.Dehaze)
	out = ApplyWhiteBalance(out, p.Temperature, p.Tint)
	out = ApplyFilmicBrightness(out, p.Brightness)
	out = ApplyTonalAdjustments(out, p.Contrast, p.Shadows, p.Highlights, p.Whites, p.Blacks)
	out = ApplyHighlightRecovery(out, p.Highlights)
	out = ApplyCalibration(out, p.Calibration)
	out = ApplyHSL(out, p.HSL)
	out = ApplyColorGrading(out, p.Grading)
	out = ApplySaturation(out, p.Saturation)
	out = ApplyVibrance(out, p.Vibrance)
	return out
}
