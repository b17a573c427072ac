package shader

import "github.com/gogpu/rawshade/internal/tonecurve"

// PreparedCurves holds the four monotone-cubic splines (luma, red,
// green, blue) built once per dispatch from the 16-point control
// curves, so Shade never reconstructs tangents per pixel (spec.md §4.2
// step 11, "Curves").
type PreparedCurves struct {
	Luma, Red, Green, Blue *tonecurve.Curve
}

// PrepareCurve builds a monotone-cubic spline from a 16-point control
// curve in [0, 255] coordinates, normalized to [0, 1], or nil if the
// curve is the identity (spec.md §3 "curve_luma/red/green/blue").
func PrepareCurve(c Curve) *tonecurve.Curve {
	if c.IsIdentity() {
		return nil
	}
	points := make([]tonecurve.Point, c.Count)
	for i := 0; i < c.Count; i++ {
		points[i] = tonecurve.Point{X: c.PointsX[i] / 255, Y: c.PointsY[i] / 255}
	}
	return tonecurve.Prepare(points)
}

func evalCurve(curve *tonecurve.Curve, x float64) float64 {
	if curve == nil {
		return x
	}
	return curve.Eval(clamp01(x))
}

// ApplyCurves applies the per-channel R/G/B curves (if any is
// non-identity), then reprojects the result's luma onto the
// curve-adjusted luma target computed from the original luma through
// the luma curve, clamping the max component to 1. If all of R/G/B are
// identity, it applies only the luma curve per channel instead (spec.md
// §4.2 step 11, "Curves").
func ApplyCurves(pixel RGB, curves PreparedCurves) RGB {
	if curves.Red != nil || curves.Green != nil || curves.Blue != nil {
		out := pixel
		if curves.Red != nil {
			out.R = evalCurve(curves.Red, out.R)
		}
		if curves.Green != nil {
			out.G = evalCurve(curves.Green, out.G)
		}
		if curves.Blue != nil {
			out.B = evalCurve(curves.Blue, out.B)
		}
		targetLuma := evalCurve(curves.Luma, luma709(pixel))
		return clampMaxComponentTo1(projectLuma(out, targetLuma))
	}

	if curves.Luma != nil {
		return clampRGB01(RGB{
			R: evalCurve(curves.Luma, pixel.R),
			G: evalCurve(curves.Luma, pixel.G),
			B: evalCurve(curves.Luma, pixel.B),
		})
	}

	return pixel
}

// clampMaxComponentTo1 scales c down uniformly, preserving hue and
// ratio between channels, so its largest component is at most 1 (spec.md
// §4.2 step 11: "clamp max-component to 1"). Negative components are
// floored at 0 first.
func clampMaxComponentTo1(c RGB) RGB {
	c = RGB{R: maxf(c.R, 0), G: maxf(c.G, 0), B: maxf(c.B, 0)}
	m := maxf(c.R, maxf(c.G, c.B))
	if m > 1 {
		return c.scale(1 / m)
	}
	return c
}
