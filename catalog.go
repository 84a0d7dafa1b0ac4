package ease

import "math"

// backStrength is the fixed overshoot strength shared by the back and swing
// primitives. Amplitude is a per-value concern (see [Value.Amp]), not a
// per-curve parameter.
const backStrength = 1.5

// catalogEntry is one closed-form easing primitive. Each entry is either the
// In or the Out member of its family; the registry derives the other two
// members from it (see [Registry.GenerateFamily]).
type catalogEntry struct {
	name     string
	base     Func
	baseIsIn bool
}

var catalog = [...]catalogEntry{
	{"ease", func(p float64) float64 { return p * p }, true},
	{"cubic", func(p float64) float64 { return p * p * p }, true},
	{"quart", func(p float64) float64 { return p * p * p * p }, true},
	{"quint", func(p float64) float64 { return p * p * p * p * p }, true},
	{"circ", circIn, true},
	{"back", backIn, true},
	{"bounce", bounceOut, false},
	{"swing", swingOut, false},
	{"spring", springOut, false},
}

func circIn(p float64) float64 {
	return 1 - math.Sin(math.Acos(p))
}

// backIn is a cubic that dips below zero before accelerating into the
// target.
func backIn(p float64) float64 {
	return p * p * ((backStrength+1)*p - backStrength)
}

// bounceOut is the standard four-segment piecewise quadratic bounce,
// settling at 1 after three rebounds of decreasing height.
func bounceOut(p float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75

	switch {
	case p < 1/d1:
		return n1 * p * p
	case p < 2/d1:
		p -= 1.5 / d1
		return n1*p*p + 0.75
	case p < 2.5/d1:
		p -= 2.25 / d1
		return n1*p*p + 0.9375
	default:
		p -= 2.625 / d1
		return n1*p*p + 0.984375
	}
}

// swingOut is a quadratic that peaks above 1 before returning to the
// target. The peak height is (s+2)²/(4(s+1)) for strength s.
func swingOut(p float64) float64 {
	return ((backStrength + 2) - (backStrength+1)*p) * p
}

// springOut is a damped oscillation: it crosses the target, swings back,
// and settles over two and a quarter periods.
func springOut(p float64) float64 {
	return 1 - math.Cos(p*4.5*math.Pi)*math.Exp(-6*p)
}
