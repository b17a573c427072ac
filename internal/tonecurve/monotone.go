// Package tonecurve implements monotone cubic interpolation over the
// control points of a tone curve (spec.md §4.2 step 11, "Monotone
// curve" sub-operator contract): Fritsch-Carlson tangents with the
// Hyman monotonicity correction. The curve has no fixed domain; the
// shader passes control points normalized to [0,1].
package tonecurve

import "math"

// Point is a single control point, matching rawshade.CurvePoint's shape
// without importing the root package (which imports internal/shader,
// which imports this package).
type Point struct {
	X, Y float64
}

// Curve is a prepared monotone cubic spline over a fixed set of control
// points, ready for repeated evaluation.
type Curve struct {
	points []Point
	tans   []float64 // tangent (slope) at each point
}

// Prepare builds a Curve from control points sorted strictly ascending
// by X (the caller, rawshade.ToneCurve.Validate, already enforces this).
// Tangents use Fritsch-Carlson with the Hyman correction: when a
// tangent's secant-relative magnitude would overshoot monotonicity
// (alpha^2+beta^2 > 9), it is rescaled back onto the monotonicity circle.
func Prepare(points []Point) *Curve {
	n := len(points)
	c := &Curve{points: points, tans: make([]float64, n)}
	if n < 2 {
		return c
	}

	secants := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		dx := points[i+1].X - points[i].X
		if dx <= 0 {
			secants[i] = 0
			continue
		}
		secants[i] = (points[i+1].Y - points[i].Y) / dx
	}

	tans := c.tans
	tans[0] = secants[0]
	tans[n-1] = secants[n-2]
	for i := 1; i < n-1; i++ {
		if secants[i-1]*secants[i] <= 0 {
			tans[i] = 0
			continue
		}
		tans[i] = (secants[i-1] + secants[i]) / 2
	}

	// Hyman monotonicity correction.
	for i := 0; i < n-1; i++ {
		if secants[i] == 0 {
			tans[i] = 0
			tans[i+1] = 0
			continue
		}
		alpha := tans[i] / secants[i]
		beta := tans[i+1] / secants[i]
		if alpha < 0 {
			tans[i] = 0
			alpha = 0
		}
		if beta < 0 {
			tans[i+1] = 0
			beta = 0
		}
		s := alpha*alpha + beta*beta
		if s > 9 {
			scale := 3 / math.Sqrt(s)
			tans[i] = scale * alpha * secants[i]
			tans[i+1] = scale * beta * secants[i]
		}
	}

	return c
}

// Eval evaluates the curve at x, clamping to the first/last control
// point's Y outside the control points' X range.
func (c *Curve) Eval(x float64) float64 {
	n := len(c.points)
	if n == 0 {
		return x
	}
	if n == 1 {
		return c.points[0].Y
	}
	if x <= c.points[0].X {
		return c.points[0].Y
	}
	if x >= c.points[n-1].X {
		return c.points[n-1].Y
	}

	i := 0
	for i < n-2 && x > c.points[i+1].X {
		i++
	}

	x0, x1 := c.points[i].X, c.points[i+1].X
	y0, y1 := c.points[i].Y, c.points[i+1].Y
	h := x1 - x0
	t := (x - x0) / h

	m0, m1 := c.tans[i]*h, c.tans[i+1]*h

	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*y0 + h10*m0 + h01*y1 + h11*m1
}
