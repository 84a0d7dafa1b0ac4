package ease

import "math"

// Func is an easing function: a pure mapping from normalized progress to
// eased progress. Progress is nominally in [0, 1], where 0 is the start of
// an animation and 1 its end. The result may leave [0, 1] for curves that
// overshoot, such as back and spring.
type Func func(p float64) float64

// Linear is the identity easing. It is its own reversal and its own mirror,
// so no In/Out/InOut family is derived from it.
func Linear(p float64) float64 { return p }

// Reverse turns an ease-in into the matching ease-out and vice versa, by
// flipping the curve around the center of the unit square.
func Reverse(fn Func) Func {
	return func(p float64) float64 {
		return 1 - fn(1-p)
	}
}

// Mirror folds fn around the midpoint, producing an in-out variant: the
// first half traces fn at double speed and half amplitude, the second half
// traces it backwards. The two halves always meet at (0.5, 0.5).
func Mirror(fn Func) Func {
	return func(p float64) float64 {
		if p <= 0.5 {
			return fn(2*p) / 2
		}
		return (2 - fn(2*(1-p))) / 2
	}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}
