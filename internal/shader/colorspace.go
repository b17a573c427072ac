package shader

import "github.com/gogpu/rawshade/internal/color"

// toLinear converts an sRGB-encoded triple to scene-linear (spec.md
// §4.2 step 2).
func toLinear(c RGB) RGB {
	return RGB{
		R: float64(color.SRGBToLinear(float32(c.R))),
		G: float64(color.SRGBToLinear(float32(c.G))),
		B: float64(color.SRGBToLinear(float32(c.B))),
	}
}

// toSRGB converts a scene-linear triple to sRGB-encoded (spec.md §4.2
// step 10, "Otherwise: linear -> sRGB").
func toSRGB(c RGB) RGB {
	return RGB{
		R: float64(color.LinearToSRGB(float32(c.R))),
		G: float64(color.LinearToSRGB(float32(c.G))),
		B: float64(color.LinearToSRGB(float32(c.B))),
	}
}
