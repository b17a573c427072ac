package color

// LUT3D is a cubic color lookup table of side Size, storing sRGB-encoded
// output colors indexed by sRGB-encoded input coordinates (spec.md §4.2
// step 12, §6 "Optional 3D LUT: floating cube, any size >= 2 per axis").
// Data is laid out with r varying fastest, then g, then b: index(r,g,b) = (b*Size+g)*Size+r,
// one ColorF32 per cell (alpha unused).
type LUT3D struct {
	Size int
	Data []ColorF32
}

// NewIdentityLUT3D builds an identity LUT of the given side length: each
// cell maps to its own normalized coordinate, so sampling it is a no-op.
func NewIdentityLUT3D(size int) *LUT3D {
	lut := &LUT3D{Size: size, Data: make([]ColorF32, size*size*size)}
	if size < 2 {
		return lut
	}
	step := 1.0 / float32(size-1)
	for b := 0; b < size; b++ {
		for g := 0; g < size; g++ {
			for r := 0; r < size; r++ {
				lut.Data[(b*size+g)*size+r] = ColorF32{
					R: float32(r) * step,
					G: float32(g) * step,
					B: float32(b) * step,
					A: 1,
				}
			}
		}
	}
	return lut
}

func (l *LUT3D) at(r, g, b int) ColorF32 {
	n := l.Size
	clampIdx := func(i int) int {
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
	r, g, b = clampIdx(r), clampIdx(g), clampIdx(b)
	return l.Data[(b*n+g)*n+r]
}

// SampleTetrahedral samples the LUT at normalized coordinate (r,g,b) in
// [0,1] using tetrahedral interpolation, which follows the diagonal of
// the enclosing cube rather than blending all eight corners and better
// preserves hue near saturated colors (spec.md §4.2 step 12).
func (l *LUT3D) SampleTetrahedral(r, g, b float32) ColorF32 {
	if l.Size < 2 {
		return ColorF32{R: r, G: g, B: b, A: 1}
	}
	n := float32(l.Size - 1)
	fr, fg, fb := clamp01f(r)*n, clamp01f(g)*n, clamp01f(b)*n

	r0, g0, b0 := int(fr), int(fg), int(fb)
	dr, dg, db := fr-float32(r0), fg-float32(g0), fb-float32(b0)

	c000 := l.at(r0, g0, b0)
	c111 := l.at(r0+1, g0+1, b0+1)

	var c1, c2 ColorF32
	switch {
	case dr >= dg && dg >= db:
		c1, c2 = l.at(r0+1, g0, b0), l.at(r0+1, g0+1, b0)
	case dr >= db && db >= dg:
		c1, c2 = l.at(r0+1, g0, b0), l.at(r0+1, g0, b0+1)
	case dg >= dr && dr >= db:
		c1, c2 = l.at(r0, g0+1, b0), l.at(r0+1, g0+1, b0)
	case dg >= db && db >= dr:
		c1, c2 = l.at(r0, g0+1, b0), l.at(r0, g0+1, b0+1)
	case db >= dr && dr >= dg:
		c1, c2 = l.at(r0, g0, b0+1), l.at(r0+1, g0, b0+1)
	default: // db >= dg >= dr
		c1, c2 = l.at(r0, g0, b0+1), l.at(r0, g0+1, b0+1)
	}

	// Barycentric weights along the diagonal c000 -> c1 -> c2 -> c111.
	s := []float32{dr, dg, db}
	sort3Desc(s)
	w0 := 1 - s[0]
	w1 := s[0] - s[1]
	w2 := s[1] - s[2]
	w3 := s[2]

	return ColorF32{
		R: w0*c000.R + w1*c1.R + w2*c2.R + w3*c111.R,
		G: w0*c000.G + w1*c1.G + w2*c2.G + w3*c111.G,
		B: w0*c000.B + w1*c1.B + w2*c2.B + w3*c111.B,
		A: 1,
	}
}

func sort3Desc(s []float32) {
	if s[0] < s[1] {
		s[0], s[1] = s[1], s[0]
	}
	if s[1] < s[2] {
		s[1], s[2] = s[2], s[1]
	}
	if s[0] < s[1] {
		s[0], s[1] = s[1], s[0]
	}
}

func clamp01f(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// LerpColorF32 linearly interpolates two colors, used to blend a LUT
// sample with the unmodified color by lut_intensity (spec.md §4.2 step 12).
func LerpColorF32(a, b ColorF32, t float32) ColorF32 {
	return ColorF32{
		R: a.R + t*(b.R-a.R),
		G: a.G + t*(b.G-a.G),
		B: a.B + t*(b.B-a.B),
		A: a.A + t*(b.A-a.A),
	}
}
