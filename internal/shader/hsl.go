package shader

import (
	"math"

	"github.com/gogpu/rawshade/internal/color"
)

// hueDistance returns the shortest distance between two hues on the
// 360-degree hue circle.
func hueDistance(a, b float64) float64 {
	d := math.Mod(a-b+540, 360) - 180
	if d < 0 {
		return -d
	}
	return d
}

// bandWeight returns how strongly a pixel at hue falls under the given
// HSL band, a raised-cosine falloff over the band's half-width (spec.md
// §3 "HSL panel").
func bandWeight(hue float64, band int) float64 {
	d := hueDistance(hue, HSLBandCenter[band])
	half := HSLBandWidth[band] / 2
	if d >= half {
		return 0
	}
	t := d / half
	return 0.5 * (1 + math.Cos(t*math.Pi))
}

// ApplyHSL applies the 8-band hue/saturation/luminance panel, each band
// contributing in proportion to its raised-cosine hue weight (spec.md
// §4.2 step 8, "HSL panel").
func ApplyHSL(pixel RGB, bands [8]HSLBand) RGB {
	h, s, v := color.RGBToHSV(float32(pixel.R), float32(pixel.G), float32(pixel.B))
	hue := float64(h)

	var hueShift, satShift, lumShift float64
	for i := 0; i < 8; i++ {
		w := bandWeight(hue, i)
		if w == 0 {
			continue
		}
		hueShift += w * bands[i].Hue
		satShift += w * bands[i].Saturation
		lumShift += w * bands[i].Luminance
	}
	if hueShift == 0 && satShift == 0 && lumShift == 0 {
		return pixel
	}

	newHue := math.Mod(hue+hueShift+360, 360)
	newSat := clamp01(float64(s) * (1 + satShift/100))
	r, g, b := color.HSVToRGB(float32(newHue), float32(newSat), v)

	out := RGB{R: float64(r), G: float64(g), B: float64(b)}
	if lumShift != 0 {
		l := luma709(out)
		newL := clamp01(l + lumShift/200)
		out = projectLuma(out, newL)
	}
	return out
}
