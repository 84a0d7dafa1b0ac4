package ease

import (
	"slices"
	"sync"
)

// Registry maps curve names to easing functions. The method set and the
// mapping it owns are deliberately separate constructs, so curve names can
// never collide with operations.
//
// A Registry is append-only: registering a name that already exists is a
// no-op, and entries are never replaced or removed. It is safe for
// concurrent use; concurrent registrations of the same name resolve to a
// single winner.
type Registry struct {
	mu     sync.RWMutex
	curves map[string]Func
}

// NewRegistry returns an empty registry. Note that [Registry.WithinRange]
// relies on "linear" being registered; [NewDefaultRegistry] guarantees that.
func NewRegistry() *Registry {
	return &Registry{curves: make(map[string]Func)}
}

// bezierPresets are the named CSS-style timing functions registered by
// NewDefaultRegistry. Control x-coordinates all lie in [0, 1]; back-in and
// back-out overshoot vertically.
var bezierPresets = [...]struct {
	name           string
	x1, y1, x2, y2 float64
}{
	{"ease", 0.25, 0.1, 0.25, 1},
	{"ease-in", 0.42, 0, 1, 1},
	{"ease-out", 0, 0, 0.58, 1},
	{"ease-in-out", 0.42, 0, 0.58, 1},
	{"back-in", 0.31, 0.01, 0.66, -0.59},
	{"back-out", 0.33, 1.53, 0.69, 0.99},
}

// NewDefaultRegistry returns a registry populated with the built-in curves:
// "linear", the dash-named Bézier presets ("ease", "ease-in", "ease-out",
// "ease-in-out", "back-in", "back-out"), and the In/Out/InOut families
// derived from every catalog primitive ("easeIn" through "springInOut").
//
// The dash-named presets and the camelCase families are distinct: "ease" is
// a Bézier curve, "easeIn" is the quadratic p².
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("linear", Linear)
	for _, p := range bezierPresets {
		// The preset table is fixed and valid; errors cannot occur here.
		r.RegisterBezier(p.name, p.x1, p.y1, p.x2, p.y2)
	}
	for _, e := range catalog {
		r.GenerateFamily(e.name, e.base, e.baseIsIn)
	}
	return r
}

// Register inserts fn under name. It is a no-op if name is already
// registered: the first registration wins.
func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.curves[name]; ok {
		return
	}
	r.curves[name] = fn
}

// RegisterBezier constructs the cubic Bézier with control points (x1, y1)
// and (x2, y2) and registers its evaluation under name. Like [Registry.Register]
// it is a no-op by name. It returns an *InvalidControlPointsError if the
// control x-coordinates leave [0, 1].
func (r *Registry) RegisterBezier(name string, x1, y1, x2, y2 float64) error {
	r.mu.RLock()
	_, ok := r.curves[name]
	r.mu.RUnlock()
	if ok {
		return nil
	}
	c, err := NewCubicBezier(x1, y1, x2, y2)
	if err != nil {
		return err
	}
	r.Register(name, c.Eval)
	return nil
}

// GenerateFamily registers the three members of an easing family derived
// from a single base function. The base is stored under "<name>In" if
// baseIsIn, else under "<name>Out"; its reversal is stored under the
// opposite suffix; and "<name>InOut" is the mirror of the base.
//
// The mirror always folds the base function as generated, even when the
// base is the Out member. Bounce-style In/Out pairs are therefore exact
// reversals of each other while their InOut folds the Out shape directly.
func (r *Registry) GenerateFamily(name string, base Func, baseIsIn bool) {
	in, out := base, Reverse(base)
	if !baseIsIn {
		in, out = Reverse(base), base
	}
	r.Register(name+"In", in)
	r.Register(name+"Out", out)
	r.Register(name+"InOut", Mirror(base))
}

// Get returns the easing registered under name. It returns an
// *InvalidEasingNameError when name is unregistered; there is no fallback
// curve.
func (r *Registry) Get(name string) (Func, error) {
	r.mu.RLock()
	fn, ok := r.curves[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &InvalidEasingNameError{Name: name, Closest: closestName(name, r.Names())}
	}
	return fn, nil
}

// Names returns a sorted snapshot of all registered curve names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.curves))
	for name := range r.curves {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// defaultRegistry backs the package-level functions. It is fully populated
// before any lookup can observe it and only grows afterwards.
var defaultRegistry = NewDefaultRegistry()

// Get returns the easing registered under name in the default registry.
func Get(name string) (Func, error) {
	return defaultRegistry.Get(name)
}

// Register inserts fn under name in the default registry. The first
// registration of a name wins.
func Register(name string, fn Func) {
	defaultRegistry.Register(name, fn)
}

// RegisterBezier registers a cubic Bézier easing in the default registry.
func RegisterBezier(name string, x1, y1, x2, y2 float64) error {
	return defaultRegistry.RegisterBezier(name, x1, y1, x2, y2)
}

// Names returns a sorted snapshot of the default registry's curve names.
func Names() []string {
	return defaultRegistry.Names()
}

// WithinRange maps progress onto [from, to] through the named easing in the
// default registry. See [Registry.WithinRange].
func WithinRange(progress, from, to float64, name string, escapeAmp float64) (float64, error) {
	return defaultRegistry.WithinRange(progress, from, to, name, escapeAmp)
}
