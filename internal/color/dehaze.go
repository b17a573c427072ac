package color

import "math"

// AtmosphericLight is the fixed atmospheric-light estimate used by the
// dehaze recovery model (spec.md §4.2, "Dehaze" sub-operator contract).
var AtmosphericLight = ColorF32{R: 0.95, G: 0.97, B: 1.0, A: 1}

// DarkChannel estimates the per-pixel dark channel: the minimum of the
// three color channels, which for haze-free natural images is close to
// zero and rises with haze density.
func DarkChannel(c ColorF32) float32 {
	return min3(c.R, c.G, c.B)
}

// Dehaze applies the dehaze operator of spec.md §4.2/"Dehaze" to a single
// pixel given its own dark-channel estimate (computed by the caller,
// typically from a downsampled or blurred neighborhood so the estimate
// is locally stable).
//
// For positive amount: invert and attenuate the dark channel to get a
// transmission estimate, then recover color by (C-A)/t + A, plus a small
// contrast/vibrance pop proportional to amount.
// For negative amount: blend toward the atmospheric light.
func Dehaze(c ColorF32, darkChannel, amount float32) ColorF32 {
	if amount == 0 {
		return c
	}
	a := AtmosphericLight
	if amount > 0 {
		t := 1 - amount*(1-darkChannel)
		t = maxf(t, 0.1) // ε guard: avoid blow-up as transmission -> 0
		rec := ColorF32{
			R: (c.R-a.R)/t + a.R,
			G: (c.G-a.G)/t + a.G,
			B: (c.B-a.B)/t + a.B,
			A: c.A,
		}
		// Small contrast/vibrance pop proportional to amount.
		luma := Luma709(rec.R, rec.G, rec.B)
		pop := amount * 0.15
		rec.R = luma + (rec.R-luma)*(1+pop)
		rec.G = luma + (rec.G-luma)*(1+pop)
		rec.B = luma + (rec.B-luma)*(1+pop)
		return rec
	}
	t := float32(-amount)
	return LerpColorF32(c, a, t)
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// DarkChannelWindow computes the dark channel of a pixel neighborhood
// read from a blurred buffer, used as the locally-stable dark-channel
// estimate the Dehaze recovery model expects. samples are channel
// triples already in [0,1]; the minimum across all three channels of all
// samples approximates the windowed dark-channel prior.
func DarkChannelWindow(samples []ColorF32) float32 {
	if len(samples) == 0 {
		return 0
	}
	dc := float32(math.MaxFloat32)
	for _, s := range samples {
		d := DarkChannel(s)
		if d < dc {
			dc = d
		}
	}
	return dc
}
