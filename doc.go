// Package ease computes and registers easing curves: pure functions mapping
// normalized animation progress in [0, 1] to eased progress. It is a
// stateless value library; driving animations over time is the host's job.
//
// # Easing functions
//
// [Func] is the core type. Curves come from three sources: the identity
// [Linear], closed-form primitives (power curves, circular, back, bounce,
// swing, spring), and cubic Béziers ([CubicBezier]) in the style of CSS
// timing functions. The Bézier evaluator inverts X(t) = x with
// Newton-Raphson iteration seeded from a sample table, falling back to
// bisection in flat regions.
//
// # The registry
//
// A [Registry] maps curve names to functions. [NewDefaultRegistry] builds
// the standard table: "linear", the dash-named Bézier presets ("ease",
// "ease-in", ..., "back-out"), and for every closed-form primitive the
// derived In/Out/InOut family ("easeIn", "easeOut", "easeInOut", through
// "springInOut"). Families are generated from a single base via [Reverse]
// and [Mirror]. Registries are append-only and first-registration-wins;
// lookups of unknown names fail with [InvalidEasingNameError] rather than
// substituting a default.
//
// The package-level [Get], [Register], [RegisterBezier], [WithinRange] and
// [Names] operate on a process-wide default registry, fully populated
// before first use.
//
// # Ranges and value limits
//
// [Registry.WithinRange] maps possibly out-of-domain progress onto an
// output range, falling back to linear extrapolation outside [0, 1] with a
// configurable rubber-band overshoot. [Value] describes one animated
// value's bounds and defaults; [Value.Limit] applies the same rubber-band
// policy to computed outputs. [Action] collects named value definitions
// with popmotion-style merge semantics and can be declared in YAML via
// [ParseAction].
package ease
