package ease

import (
	"fmt"
	"maps"
	"math"

	"gopkg.in/yaml.v3"
)

// Value is a partial, mergeable definition of one animated value: its
// current value, clamp bounds, amplitude, escape amplitude and rounding
// flag. Nil fields are unset and fall back to their defaults (unbounded
// range, amp 1, escapeAmp 0, no rounding) when resolved.
//
// In YAML, a value definition may be either a mapping of the fields below
// or a bare number, which decodes as {current: n}.
type Value struct {
	Current   *float64 `yaml:"current"`
	Min       *float64 `yaml:"min"`
	Max       *float64 `yaml:"max"`
	Amp       *float64 `yaml:"amp"`
	EscapeAmp *float64 `yaml:"escapeAmp"`
	Round     *bool    `yaml:"round"`
}

// ResolvedValue is a [Value] with defaults applied.
type ResolvedValue struct {
	Current   float64
	Min       float64 // math.Inf(-1) when unbounded
	Max       float64 // math.Inf(1) when unbounded
	Amp       float64
	EscapeAmp float64
	Round     bool
}

// Resolve fills unset fields with their defaults.
func (v Value) Resolve() ResolvedValue {
	out := ResolvedValue{
		Min: math.Inf(-1),
		Max: math.Inf(1),
		Amp: 1,
	}
	if v.Current != nil {
		out.Current = *v.Current
	}
	if v.Min != nil {
		out.Min = *v.Min
	}
	if v.Max != nil {
		out.Max = *v.Max
	}
	if v.Amp != nil {
		out.Amp = *v.Amp
	}
	if v.EscapeAmp != nil {
		out.EscapeAmp = *v.EscapeAmp
	}
	if v.Round != nil {
		out.Round = *v.Round
	}
	return out
}

// Merge combines v with in field by field. Fields set on in win; fields
// unset on in keep v's setting.
func (v Value) Merge(in Value) Value {
	if in.Current != nil {
		v.Current = in.Current
	}
	if in.Min != nil {
		v.Min = in.Min
	}
	if in.Max != nil {
		v.Max = in.Max
	}
	if in.Amp != nil {
		v.Amp = in.Amp
	}
	if in.EscapeAmp != nil {
		v.EscapeAmp = in.EscapeAmp
	}
	if in.Round != nil {
		v.Round = in.Round
	}
	return v
}

// Limit applies the output-limiting policy to a computed output: clamp to
// [Min, Max], then rubber-band the clamped-off excess back in scaled by
// EscapeAmp. With the default escape amplitude of 0 this is a hard clamp.
func (v Value) Limit(output float64) float64 {
	res := v.Resolve()
	restricted := Clamp(output, res.Min, res.Max)
	if res.EscapeAmp != 0 {
		return restricted + (output-restricted)*res.EscapeAmp
	}
	return restricted
}

// UnmarshalYAML decodes either a mapping of value fields or a bare scalar,
// which is wrapped as the current value.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var n float64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*v = Value{Current: &n}
		return nil
	}
	type plain Value
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*v = Value(p)
	return nil
}

// Action holds a named set of value definitions plus arbitrary declared
// properties. It is the mutable container an animation host hangs its
// per-action state on; the easing library itself only reads it.
type Action struct {
	Props  map[string]any
	Values map[string]Value
}

// NewAction creates an action from a property bag. The "values" key, if
// present, is treated per [Action.Set]; all other keys become declared
// properties.
func NewAction(props map[string]any) (*Action, error) {
	a := &Action{
		Props:  make(map[string]any),
		Values: make(map[string]Value),
	}
	if err := a.Set(props); err != nil {
		return nil, err
	}
	return a, nil
}

// Set merges props into the action. Top-level keys override directly. The
// "values" key is merged per value name: a bare number is wrapped as
// {current: n}, a [Value] merges field by field against any existing
// definition, with incoming fields winning.
func (a *Action) Set(props map[string]any) error {
	return a.SetAs(props, "current")
}

// SetAs is [Action.Set] with an explicit target field for bare numbers: a
// scalar under "values" is wrapped as {field: n}.
func (a *Action) SetAs(props map[string]any, field string) error {
	if a.Props == nil {
		a.Props = make(map[string]any)
	}
	if a.Values == nil {
		a.Values = make(map[string]Value)
	}
	for key, val := range props {
		if key != "values" {
			a.Props[key] = val
			continue
		}
		switch vals := val.(type) {
		case map[string]Value:
			for name, def := range vals {
				a.Values[name] = a.Values[name].Merge(def)
			}
		case map[string]any:
			for name, raw := range vals {
				def, err := coerceValue(raw, field)
				if err != nil {
					return fmt.Errorf("ease: value %q: %w", name, err)
				}
				a.Values[name] = a.Values[name].Merge(def)
			}
		default:
			return fmt.Errorf("ease: values must be a map, got %T", val)
		}
	}
	return nil
}

// Extend derives a new action combining the receiver's state with
// additional props. The receiver is never mutated.
func (a *Action) Extend(props map[string]any) (*Action, error) {
	out := &Action{
		Props:  maps.Clone(a.Props),
		Values: maps.Clone(a.Values),
	}
	if err := out.Set(props); err != nil {
		return nil, err
	}
	return out, nil
}

func coerceValue(raw any, field string) (Value, error) {
	switch n := raw.(type) {
	case Value:
		return n, nil
	case *Value:
		return *n, nil
	case float64:
		return scalarValue(field, n)
	case int:
		return scalarValue(field, float64(n))
	default:
		return Value{}, fmt.Errorf("unsupported definition type %T", raw)
	}
}

// scalarValue wraps a bare number as a Value with the named field set. The
// recognized fields are enumerated explicitly; there is no reflection.
func scalarValue(field string, n float64) (Value, error) {
	var v Value
	switch field {
	case "current":
		v.Current = &n
	case "min":
		v.Min = &n
	case "max":
		v.Max = &n
	case "amp":
		v.Amp = &n
	case "escapeAmp":
		v.EscapeAmp = &n
	default:
		return Value{}, fmt.Errorf("unknown value field %q", field)
	}
	return v, nil
}

// ParseAction decodes a declarative action from YAML. The "values" mapping
// becomes the action's value definitions (bare numbers allowed, see
// [Value.UnmarshalYAML]); every other top-level key becomes a declared
// property.
func ParseAction(data []byte) (*Action, error) {
	var typed struct {
		Values map[string]Value `yaml:"values"`
	}
	if err := yaml.Unmarshal(data, &typed); err != nil {
		return nil, fmt.Errorf("ease: parsing action: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ease: parsing action: %w", err)
	}
	delete(raw, "values")
	if raw == nil {
		raw = make(map[string]any)
	}
	a := &Action{
		Props:  raw,
		Values: make(map[string]Value),
	}
	for name, def := range typed.Values {
		a.Values[name] = def
	}
	return a, nil
}
