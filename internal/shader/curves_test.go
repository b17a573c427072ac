package shader

import "testing"

func flatCurve(y0, y1 float64) Curve {
	c := Curve{Count: 2}
	c.PointsX[0], c.PointsY[0] = 0, y0*255
	c.PointsX[1], c.PointsY[1] = 255, y1*255
	return c
}

func TestApplyCurves_IdentityIsNoop(t *testing.T) {
	curves := PreparedCurves{}
	in := RGB{R: 0.2, G: 0.4, B: 0.6}
	out := ApplyCurves(in, curves)
	if out != in {
		t.Errorf("ApplyCurves with all-identity curves = %+v, want %+v", out, in)
	}
}

func TestApplyCurves_LumaOnlyAppliesPerChannel(t *testing.T) {
	// A curve that halves every input should scale a
	// gray pixel's luma without needing any R/G/B curve set.
	curves := PreparedCurves{Luma: PrepareCurve(flatCurve(0, 0.5))}
	out := ApplyCurves(RGB{R: 0.5, G: 0.5, B: 0.5}, curves)
	if diff(out.R, 0.25) > 0.01 {
		t.Errorf("luma-only curve: R = %v, want ~0.25", out.R)
	}
}

func TestApplyCurves_RGBPathReprojectsLumaAndClampsMaxComponent(t *testing.T) {
	// A red curve that pushes red to a large out-of-range control point
	// must come back with its max component clamped to 1, not
	// independently clamped per channel (which would also have clipped
	// the rescaled green/blue instead of preserving their ratio).
	redCurve := flatCurve(20.0, 20.0)
	curves := PreparedCurves{Red: PrepareCurve(redCurve)}
	out := ApplyCurves(RGB{R: 0.5, G: 0.25, B: 0.1}, curves)
	m := out.R
	if out.G > m {
		m = out.G
	}
	if out.B > m {
		m = out.B
	}
	if diff(m, 1.0) > 1e-9 {
		t.Errorf("max component after RGB-path curve = %v, want 1.0", m)
	}
}
