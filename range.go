package ease

// WithinRange eases progress into the output range [from, to] through the
// named curve. Progress outside [0, 1] falls back to linear easing:
// overshoot through an arbitrary curve is not well-defined, only linear
// extrapolation is. The excess beyond the domain is scaled by escapeAmp and
// re-applied, producing a rubber-band overshoot instead of a hard stop; an
// escapeAmp of 0 clamps to the range bounds.
//
// The linear fallback requires "linear" to be registered, which
// [NewDefaultRegistry] guarantees. A registry missing the requested name
// (or "linear", on the fallback path) surfaces an *InvalidEasingNameError.
func (r *Registry) WithinRange(progress, from, to float64, name string, escapeAmp float64) (float64, error) {
	clamped := Clamp(progress, 0, 1)
	if clamped != progress {
		name = "linear"
		clamped += (progress - clamped) * escapeAmp
	}
	fn, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	return from + (to-from)*fn(clamped), nil
}
