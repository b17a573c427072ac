package shader

import "testing"

func TestApplyContrast_ZeroIsNoop(t *testing.T) {
	in := RGB{R: 0.3, G: 0.5, B: 0.7}
	out := ApplyContrast(in, 0)
	if out != in {
		t.Errorf("ApplyContrast(_, 0) = %+v, want %+v", out, in)
	}
}

func TestApplyContrast_MidGrayPivotIsStable(t *testing.T) {
	out := ApplyContrast(RGB{R: 0.5, G: 0.5, B: 0.5}, 50)
	const tol = 2.0 / 255
	if diff(out.R, 0.5) > tol || diff(out.G, 0.5) > tol || diff(out.B, 0.5) > tol {
		t.Errorf("ApplyContrast(0.5, +50) = %+v, want within %v of 0.5", out, tol)
	}
}

func TestApplyContrast_PositiveDarkensBelowLightensAbove(t *testing.T) {
	dark := ApplyContrast(RGB{R: 0.3, G: 0.3, B: 0.3}, 50)
	if dark.R >= 0.3 {
		t.Errorf("below-pivot channel did not darken: got %v, want < 0.3", dark.R)
	}
	bright := ApplyContrast(RGB{R: 0.7, G: 0.7, B: 0.7}, 50)
	if bright.R <= 0.7 {
		t.Errorf("above-pivot channel did not lighten: got %v, want > 0.7", bright.R)
	}
}

func TestApplyContrast_SuperwhiteShoulderFadesToIdentity(t *testing.T) {
	// Well above the 1.0 + shoulder width, the curve must relax fully to
	// the unwarped input so scene-linear highlights aren't crushed.
	x := 1.0 + contrastShoulderWidth*2
	out := ApplyContrast(RGB{R: x, G: x, B: x}, 80)
	if diff(out.R, x) > 1e-9 {
		t.Errorf("ApplyContrast(%v, +80) = %v, want == %v (identity past the shoulder)", x, out.R, x)
	}
}

func TestApplyTonalAdjustments_ContrastWired(t *testing.T) {
	in := RGB{R: 0.3, G: 0.3, B: 0.3}
	out := ApplyTonalAdjustments(in, 50, 0, 0, 0, 0)
	if out == in {
		t.Error("ApplyTonalAdjustments with nonzero contrast and all other sliders at 0 returned its input unchanged")
	}
}

func diff(a, b float64) float64 {
	if a < b {
		return b - a
	}
	return a - b
}
