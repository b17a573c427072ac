package shader

import "github.com/gogpu/rawshade/internal/color"

// gradingZoneWeights splits luma into shadow/midtone/highlight weights
// that sum to 1, shifted by balance in [-100, 100] (spec.md §3 "Color
// grading", "Balance").
func gradingZoneWeights(l, balance float64) (shadow, mid, highlight float64) {
	shift := balance / 200 // [-0.5, 0.5]
	loPivot := clamp01(0.33 + shift)
	hiPivot := clamp01(0.66 + shift)
	if hiPivot < loPivot {
		hiPivot = loPivot
	}

	shadow = 1 - smoothstep(0, loPivot, l)
	highlight = smoothstep(hiPivot, 1, l)
	mid = maxf(0, 1-shadow-highlight)
	return
}

func zoneTint(z GradingZone) RGB {
	if z.Saturation == 0 {
		return RGB{}
	}
	r, g, b := color.HSVToRGB(float32(z.Hue), float32(clamp01(z.Saturation/100)), 1)
	return RGB{R: float64(r), G: float64(g), B: float64(b)}.sub(RGB{R: 0.5, G: 0.5, B: 0.5})
}

// ApplyColorGrading applies the three-way shadows/midtones/highlights
// color wheel grade, each zone contributing a hue/saturation tint and a
// luminance trim weighted by its luma-zone membership, then blended
// against the original by Blending (spec.md §4.2 step 8, "Color
// grading").
func ApplyColorGrading(pixel RGB, g Grading) RGB {
	if g.Blending == 0 {
		return pixel
	}
	l := luma709(pixel)
	ws, wm, wh := gradingZoneWeights(l, g.Balance)

	tint := zoneTint(g.Shadows).scale(ws).
		add(zoneTint(g.Midtones).scale(wm)).
		add(zoneTint(g.Highlights).scale(wh))

	lumTrim := ws*g.Shadows.Luminance + wm*g.Midtones.Luminance + wh*g.Highlights.Luminance

	graded := pixel.add(tint.scale(0.5))
	if lumTrim != 0 {
		graded = graded.scale(1 + lumTrim/200)
	}

	return lerpRGB(pixel, graded, clamp01(g.Blending/100))
}
