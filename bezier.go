package ease

import "math"

// Solver tuning. Newton-Raphson usually converges in at most four
// iterations; the bisection fallback only engages near flat regions of the
// curve, where the derivative drops below newtonEpsilon.
const (
	bezierSamples = 10
	newtonLimit   = 8
	newtonEpsilon = 1e-6
	bisectEpsilon = 1e-7
	bisectLimit   = 32
)

// CubicBezier is a cubic Bézier curve pinned at (0, 0) and (1, 1), with two
// free control points, interpreted as a function from x to y. This is the
// curve behind CSS timing functions like cubic-bezier(0.25, 0.1, 0.25, 1).
//
// The control y-coordinates are unrestricted; values outside [0, 1] produce
// vertical overshoot. The control x-coordinates must lie in [0, 1], which
// keeps X(t) monotonic and the x→t inversion well-defined.
//
// A CubicBezier is immutable after construction.
type CubicBezier struct {
	x1, y1, x2, y2 float64

	// Polynomial coefficients, such that X(t) = ((ax t + bx) t + cx) t and
	// analogously for Y(t).
	ax, bx, cx float64
	ay, by, cy float64

	// X(t) sampled at fixed intervals, used to seed the inversion with a
	// tight bracket.
	samples [bezierSamples + 1]float64
}

// NewCubicBezier constructs the unit-domain cubic Bézier with control points
// (x1, y1) and (x2, y2). It returns an *InvalidControlPointsError if x1 or
// x2 lies outside [0, 1].
func NewCubicBezier(x1, y1, x2, y2 float64) (CubicBezier, error) {
	if x1 < 0 || x1 > 1 || x2 < 0 || x2 > 1 {
		return CubicBezier{}, &InvalidControlPointsError{X1: x1, Y1: y1, X2: x2, Y2: y2}
	}
	c := CubicBezier{x1: x1, y1: y1, x2: x2, y2: y2}
	c.cx = 3 * x1
	c.bx = 3*(x2-x1) - c.cx
	c.ax = 1 - c.cx - c.bx
	c.cy = 3 * y1
	c.by = 3*(y2-y1) - c.cy
	c.ay = 1 - c.cy - c.by
	for i := range c.samples {
		c.samples[i] = c.evalX(float64(i) / bezierSamples)
	}
	return c, nil
}

// ControlPoints returns the two free control points.
func (c CubicBezier) ControlPoints() (x1, y1, x2, y2 float64) {
	return c.x1, c.y1, c.x2, c.y2
}

func (c CubicBezier) evalX(t float64) float64 {
	return ((c.ax*t+c.bx)*t + c.cx) * t
}

func (c CubicBezier) evalY(t float64) float64 {
	return ((c.ay*t+c.by)*t + c.cy) * t
}

func (c CubicBezier) derivX(t float64) float64 {
	return (3*c.ax*t+2*c.bx)*t + c.cx
}

// Eval evaluates the curve as a function of x, solving X(t) = x for the
// curve parameter and returning Y(t). The endpoints are returned directly,
// since the curve is pinned there. Inputs outside [0, 1] are the caller's
// responsibility; the solver clamps them to the nearest endpoint.
func (c CubicBezier) Eval(x float64) float64 {
	if x == 0 {
		return 0
	}
	if x == 1 {
		return 1
	}
	return c.evalY(c.solveX(x))
}

// solveX inverts X(t) = x. X is monotonic in t because the control
// x-coordinates are confined to [0, 1], so the sample table yields a correct
// bracket. Within the bracket we try Newton-Raphson first and fall back to
// bisection when the derivative becomes too flat to trust.
func (c CubicBezier) solveX(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	lo, hi := 0.0, 1.0
	t := x
	for i := 1; i <= bezierSamples; i++ {
		if c.samples[i] >= x {
			lo = float64(i-1) / bezierSamples
			hi = float64(i) / bezierSamples
			// Linear interpolation within the bracket as the initial guess.
			span := c.samples[i] - c.samples[i-1]
			if span > 0 {
				t = lo + (hi-lo)*(x-c.samples[i-1])/span
			}
			break
		}
	}

	for i := 0; i < newtonLimit; i++ {
		dx := c.evalX(t) - x
		if math.Abs(dx) < bisectEpsilon {
			return t
		}
		d := c.derivX(t)
		if math.Abs(d) < newtonEpsilon {
			break
		}
		t -= dx / d
		if t <= lo || t >= hi {
			break
		}
	}

	// Bisection on the bracket. Bounded and deterministic; the bracket is a
	// single sample interval, so convergence to bisectEpsilon is quick.
	for i := 0; i < bisectLimit; i++ {
		t = 0.5 * (lo + hi)
		dx := c.evalX(t) - x
		if math.Abs(dx) < bisectEpsilon || hi-lo < bisectEpsilon {
			break
		}
		if dx < 0 {
			lo = t
		} else {
			hi = t
		}
	}
	return t
}
