package shader

import (
	"github.com/gogpu/rawshade/internal/color"
	"github.com/gogpu/rawshade/internal/filter"
)

// ApplyCalibration applies the camera color-calibration matrix plus its
// shadows-only tint (spec.md §4.2 step 8, "Color calibration").
func ApplyCalibration(pixel RGB, c Calibration) RGB {
	m := filter.CalibrationMatrix(filter.CalibrationInput{
		ShadowTint: c.ShadowTint,
		RedHue:     c.Red.Hue, RedSat: c.Red.Saturation,
		GreenHue: c.Green.Hue, GreenSat: c.Green.Saturation,
		BlueHue: c.Blue.Hue, BlueSat: c.Blue.Saturation,
	})
	r, g, b := m.Apply(float32(pixel.R), float32(pixel.G), float32(pixel.B))
	tinted := filter.ApplyShadowTint(color.ColorF32{R: r, G: g, B: b, A: 1}, c.ShadowTint)
	return RGB{R: float64(tinted.R), G: float64(tinted.G), B: float64(tinted.B)}
}
