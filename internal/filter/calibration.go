package filter

import (
	"math"

	"github.com/gogpu/rawshade/internal/color"
)

// Rec709 luminance weights, used to derive each primary's channel
// fraction for the per-channel saturation pass.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// CalibrationInput carries the subset of rawshade.ColorCalibration the
// matrix builder needs, avoiding an import cycle with the root package
// (the root package imports this one to apply the matrix it builds).
type CalibrationInput struct {
	ShadowTint float64
	RedHue, RedSat       float64
	GreenHue, GreenSat   float64
	BlueHue, BlueSat     float64
}

// Matrix3 mirrors rawshade.Matrix3's shape locally so this package has no
// dependency on the root package.
type Matrix3 [3][3]float64

// CalibrationMatrix builds the 3x3 primary-rotation matrix from the
// per-primary hue parameters (spec.md §4.2, "Color calibration"
// sub-operator contract): each primary's row is rotated toward its
// neighboring channels by its hue parameter, then scaled by its
// saturation delta weighted by that primary's Rec.709 luminance
// fraction.
func CalibrationMatrix(in CalibrationInput) Matrix3 {
	m := Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	rotateRow(&m[0], in.RedHue, 1, 2)   // red rotates toward green/blue
	rotateRow(&m[1], in.GreenHue, 2, 0) // green rotates toward blue/red
	rotateRow(&m[2], in.BlueHue, 0, 1)  // blue rotates toward red/green

	scaleRowSaturation(&m[0], in.RedSat, lumR)
	scaleRowSaturation(&m[1], in.GreenSat, lumG)
	scaleRowSaturation(&m[2], in.BlueSat, lumB)

	return m
}

// rotateRow rotates a primary's row within the plane spanned by the two
// neighboring channel indices, by an angle proportional to hue in
// [-1,1] mapped to +-30 degrees.
func rotateRow(row *[3]float64, hue float64, a, b int) {
	const maxDeg = 30.0
	rad := hue * maxDeg * math.Pi / 180
	cosT, sinT := math.Cos(rad), math.Sin(rad)
	va, vb := row[a], row[b]
	row[a] = va*cosT - vb*sinT
	row[b] = va*sinT + vb*cosT
}

// scaleRowSaturation scales a row's off-diagonal spread by sat,
// weighted by the primary's luminance fraction, pushing the row toward
// (more saturated) or away from (desaturated) its pure primary.
func scaleRowSaturation(row *[3]float64, sat, lumaFraction float64) {
	weight := 1 + sat*lumaFraction
	for i := range row {
		row[i] *= weight
	}
}

// Apply applies the 3x3 matrix to a linear RGB triple.
func (m Matrix3) Apply(r, g, b float32) (float32, float32, float32) {
	return float32(m[0][0])*r + float32(m[0][1])*g + float32(m[0][2])*b,
		float32(m[1][0])*r + float32(m[1][1])*g + float32(m[1][2])*b,
		float32(m[2][0])*r + float32(m[2][1])*g + float32(m[2][2])*b
}

// ApplyShadowTint mixes a temperature-like tint into shadow tones only,
// gated by a luma-dependent weight that fades out above mid-gray
// (spec.md §4.2, "Color calibration": "finally a shadows-only tint
// along the temperature-like axis").
func ApplyShadowTint(c color.ColorF32, tint float64) color.ColorF32 {
	if tint == 0 {
		return c
	}
	luma := color.Luma709(c.R, c.G, c.B)
	gate := 1 - smoothstep(0, 0.5, luma)
	t := float32(tint) * gate
	return color.ColorF32{
		R: c.R + t*0.1,
		G: c.G,
		B: c.B - t*0.1,
		A: c.A,
	}
}

func smoothstep(edge0, edge1, x float32) float32 {
	t := clamp01(( x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
