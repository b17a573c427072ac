package rawshade

// CurvePoint is a single control point of a ToneCurve, with both axes in
// [0,255].
type CurvePoint struct {
	X, Y float64
}

// MaxCurvePoints is the maximum number of control points a ToneCurve may
// hold (spec.md §3).
const MaxCurvePoints = 16

// ToneCurve is a tone curve with up to 16 control points, applied after
// tone-mapping (spec.md §4.2 step 11) via monotone cubic interpolation
// (internal/tonecurve).
//
// A curve with exactly two points (0,0),(255,255) is the identity curve.
type ToneCurve struct {
	Points [MaxCurvePoints]CurvePoint
	Count  int
}

// IdentityCurve returns the two-point identity curve (0,0)-(255,255).
func IdentityCurve() ToneCurve {
	return ToneCurve{
		Points: [MaxCurvePoints]CurvePoint{
			{X: 0, Y: 0},
			{X: 255, Y: 255},
		},
		Count: 2,
	}
}

// IsIdentity reports whether the curve is exactly the two-point identity.
func (c ToneCurve) IsIdentity() bool {
	if c.Count != 2 {
		return false
	}
	return c.Points[0].X == 0 && c.Points[0].Y == 0 &&
		c.Points[1].X == 255 && c.Points[1].Y == 255
}

// Validate checks the invariants of spec.md §3/§7: a valid point count in
// {2..16}, strictly ascending x values, and endpoints pinned to 0 and 255.
// Returns an *PipelineError with Kind ErrInvalidCurve on violation.
func (c ToneCurve) Validate(op string) error {
	if c.Count < 2 || c.Count > MaxCurvePoints {
		return newPipelineError(ErrInvalidCurve, op, nil)
	}
	if c.Points[0].X != 0 || c.Points[c.Count-1].X != 255 {
		return newPipelineError(ErrInvalidCurve, op, nil)
	}
	for i := 1; i < c.Count; i++ {
		if c.Points[i].X <= c.Points[i-1].X {
			return newPipelineError(ErrInvalidCurve, op, nil)
		}
	}
	return nil
}
