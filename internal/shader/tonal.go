package shader

import "math"

// ApplyWhiteBalance applies a simple RGB channel gain pair approximating
// a temperature/tint correlated-color-temperature shift: temperature
// pushes blue against yellow, tint pushes green against magenta. Both
// parameters are in [-100, 100] (spec.md §3 "Temperature, Tint").
func ApplyWhiteBalance(pixel RGB, temperature, tint float64) RGB {
	if temperature == 0 && tint == 0 {
		return pixel
	}
	t := temperature / 100
	g := tint / 100
	return RGB{
		R: pixel.R * (1 + 0.2*t + 0.25*g),
		G: pixel.G * (1 + 0.05*t - 0.25*g),
		B: pixel.B * (1 - 0.2*t + 0.25*g),
	}
}

// ApplyFilmicBrightness nudges overall brightness with a soft highlight
// shoulder so lifting brightness cannot blow out values the way a
// linear exposure stop would (spec.md §3 "Brightness").
func ApplyFilmicBrightness(pixel RGB, brightness float64) RGB {
	if brightness == 0 {
		return pixel
	}
	b := brightness / 100
	return RGB{
		R: filmicBrightnessChannel(pixel.R, b),
		G: filmicBrightnessChannel(pixel.G, b),
		B: filmicBrightnessChannel(pixel.B, b),
	}
}

func filmicBrightnessChannel(x, b float64) float64 {
	if b >= 0 {
		return x + (1-x)*b*x
	}
	return x + x*b*x
}

// zoneWeights returns the four tonal-zone weights (shadows, highlights,
// whites, blacks) for a given luma, each in [0, 1] (spec.md §3
// "Highlights, Shadows, Whites, Blacks").
func zoneWeights(l float64) (shadows, highlights, whites, blacks float64) {
	shadows = 1 - smoothstep(0, 0.5, l)
	highlights = smoothstep(0.3, 1, l)
	whites = smoothstep(0.7, 1, l)
	blacks = 1 - smoothstep(0, 0.2, l)
	return
}

// ApplyTonalAdjustments applies the shadows/highlights/whites/blacks
// sliders as additive, luma-zone-weighted lifts, then the contrast
// slider as a gamma-warped S-curve (spec.md §4.2 step 8,
// "apply_tonal_adjustments"). Each parameter is in [-100, 100].
func ApplyTonalAdjustments(pixel RGB, contrastAmt, shadowsAmt, highlightsAmt, whitesAmt, blacksAmt float64) RGB {
	out := pixel
	if shadowsAmt != 0 || highlightsAmt != 0 || whitesAmt != 0 || blacksAmt != 0 {
		l := luma709(out)
		ws, wh, ww, wb := zoneWeights(l)

		lift := ws*(shadowsAmt/100) + wh*(highlightsAmt/100) + ww*(whitesAmt/100) + wb*(blacksAmt/100)
		lift *= 0.35

		out = RGB{R: out.R + lift, G: out.G + lift, B: out.B + lift}
	}
	return ApplyContrast(out, contrastAmt)
}

// ApplyContrast applies the contrast slider as a gamma-warped S-curve of
// strength 2^(1.25*contrast), pivoting at mid-gray 0.5, with a soft
// shoulder above 1.0 that fades back to the unwarped input so
// scene-linear superwhites survive the curve intact (spec.md §4.2
// sub-operator contracts, "Tonal (apply_tonal_adjustments)"). amount is
// in [-100, 100]; 0 is a no-op.
func ApplyContrast(pixel RGB, amount float64) RGB {
	if amount == 0 {
		return pixel
	}
	strength := exp2(1.25 * (amount / 100))
	return RGB{
		R: contrastChannel(pixel.R, strength),
		G: contrastChannel(pixel.G, strength),
		B: contrastChannel(pixel.B, strength),
	}
}

// contrastShoulderWidth is how far above 1.0 the contrast curve takes to
// fully relax back to the identity function.
const contrastShoulderWidth = 1.0

func contrastChannel(x, strength float64) float64 {
	c := clamp01(x)
	var y float64
	if c < 0.5 {
		y = 0.5 * math.Pow(2*c, strength)
	} else {
		y = 1 - 0.5*math.Pow(2*(1-c), strength)
	}
	if x <= 1 {
		return y
	}
	t := clamp01((x - 1) / contrastShoulderWidth)
	return lerp(y, x, t)
}

// ApplyHighlightRecovery compresses values above the knee back toward
// it, the dedicated highlight-recovery pass distinct from the
// highlights tonal-zone slider (spec.md §3 "Highlights").
func ApplyHighlightRecovery(pixel RGB, amount float64) RGB {
	if amount <= 0 {
		return pixel
	}
	knee := 1 - 0.3*(amount/100)
	return RGB{
		R: recoverChannel(pixel.R, knee),
		G: recoverChannel(pixel.G, knee),
		B: recoverChannel(pixel.B, knee),
	}
}

func recoverChannel(x, knee float64) float64 {
	if x <= knee {
		return x
	}
	over := x - knee
	span := guard(1 - knee)
	return knee + span*(1-exp2(-over/span))
}
