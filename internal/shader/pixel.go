package shader

import "math"

// RGB is a working-precision linear or sRGB-encoded color triple,
// tracked without alpha; alpha is carried separately and reattached by
// the dither stage (spec.md §4.2 step 16).
type RGB struct {
	R, G, B float64
}

func (c RGB) add(o RGB) RGB    { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c RGB) sub(o RGB) RGB    { return RGB{c.R - o.R, c.G - o.G, c.B - o.B} }
func (c RGB) scale(s float64) RGB { return RGB{c.R * s, c.G * s, c.B * s} }
func (c RGB) mulRGB(o RGB) RGB { return RGB{c.R * o.R, c.G * o.G, c.B * o.B} }

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// luma709 computes Rec.709 relative luminance.
func luma709(c RGB) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// projectLuma rescales c so its luma709 equals targetLuma, preserving
// chroma (spec.md §4.2 step 11: "reproject the result's luma").
func projectLuma(c RGB, targetLuma float64) RGB {
	l := luma709(c)
	if l < eps {
		return RGB{targetLuma, targetLuma, targetLuma}
	}
	return c.scale(targetLuma / l)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clamp01(x float64) float64 { return clamp(x, 0, 1) }

func clampRGB01(c RGB) RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// eps is the minimum divisor guard required everywhere the kernel
// divides (spec.md §4.2 "Failure semantics": "explicit max(x, eps)
// guards on all divisors, with eps >= 1e-6").
const eps = 1e-6

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func guard(x float64) float64 {
	return maxf(x, eps)
}

func exp2(x float64) float64 { return math.Exp2(x) }
func log2(x float64) float64 { return math.Log2(guard(x)) }
func powf(x, y float64) float64 {
	if x < 0 {
		return -math.Pow(-x, y)
	}
	return math.Pow(x, y)
}
