package color

import "math"

// RGBToHSV converts a linear or sRGB-encoded RGB triple (same color space
// in and out) to hue [0,360), saturation [0,1], value [0,1].
func RGBToHSV(r, g, b float32) (h, s, v float32) {
	maxC := max3(r, g, b)
	minC := min3(r, g, b)
	v = maxC
	delta := maxC - minC
	if maxC <= 0 {
		return 0, 0, v
	}
	s = delta / maxC
	if delta <= 1e-8 {
		return 0, s, v
	}
	switch {
	case maxC == r:
		h = 60 * modf32((g-b)/delta, 6)
	case maxC == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// HSVToRGB converts hue [0,360), saturation [0,1], value [0,1] back to RGB.
func HSVToRGB(h, s, v float32) (r, g, b float32) {
	if s <= 0 {
		return v, v, v
	}
	h = float32(math.Mod(float64(h), 360))
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - absf(modf32(h/60, 2)-1))
	m := v - c

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

// Luma709 computes Rec.709 relative luminance.
func Luma709(r, g, b float32) float32 {
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func modf32(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
