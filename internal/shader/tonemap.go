package shader

import "github.com/gogpu/rawshade/internal/color"

// ApplyTonemap maps scene-linear data to display-referred sRGB (spec.md
// §4.2 step 10). With the filmic tonemapper selected, it runs the AgX
// pipeline: gamut compression, the forward primaries matrix, per-channel
// log2 working-space encode, the toe/shoulder sigmoid, and the inverse
// primaries matrix. Otherwise it's a direct linear-to-sRGB OETF.
func ApplyTonemap(pixel RGB, filmic bool, agxMatrix, agxMatrixInverse Matrix3) RGB {
	if !filmic {
		return toSRGB(pixel)
	}

	r, g, b := color.GamutCompress(pixel.R, pixel.G, pixel.B)
	r, g, b = agxMatrix.mul(r, g, b)

	p := color.DefaultAgXParams()
	r = color.ApplyAgXCurve(color.EncodeAgXWorkingSpace(r, p), p)
	g = color.ApplyAgXCurve(color.EncodeAgXWorkingSpace(g, p), p)
	b = color.ApplyAgXCurve(color.EncodeAgXWorkingSpace(b, p), p)

	r, g, b = agxMatrixInverse.mul(r, g, b)
	return clampRGB01(RGB{R: r, G: g, B: b})
}
