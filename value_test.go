package ease

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestValueLimit(t *testing.T) {
	for _, tc := range []struct {
		name   string
		def    Value
		output float64
		want   float64
	}{
		{"hard clamp above", Value{Min: ptr(0.0), Max: ptr(100.0)}, 150, 100},
		{"hard clamp below", Value{Min: ptr(0.0), Max: ptr(100.0)}, -50, 0},
		{"rubber band above", Value{Min: ptr(0.0), Max: ptr(100.0), EscapeAmp: ptr(0.5)}, 150, 125},
		{"rubber band below", Value{Min: ptr(0.0), Max: ptr(100.0), EscapeAmp: ptr(0.5)}, -50, -25},
		{"inside untouched", Value{Min: ptr(0.0), Max: ptr(100.0), EscapeAmp: ptr(0.5)}, 60, 60},
		{"unbounded", Value{}, 1e6, 1e6},
		{"min only", Value{Min: ptr(10.0)}, 3, 10},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.def.Limit(tc.output); got != tc.want {
				t.Errorf("got %g, want %g", got, tc.want)
			}
		})
	}
}

func TestValueResolveDefaults(t *testing.T) {
	res := Value{}.Resolve()
	if res.Amp != 1 || res.EscapeAmp != 0 || res.Round {
		t.Errorf("got defaults %+v", res)
	}
	if !math.IsInf(res.Min, -1) || !math.IsInf(res.Max, 1) {
		t.Errorf("got bounds [%g, %g], want unbounded", res.Min, res.Max)
	}
}

func TestValueMerge(t *testing.T) {
	base := Value{Current: ptr(100.0), Min: ptr(0.0)}
	got := base.Merge(Value{Current: ptr(50.0), Round: ptr(true)})
	want := Value{Current: ptr(50.0), Min: ptr(0.0), Round: ptr(true)}
	diff(t, want, got)
}

func TestActionSet(t *testing.T) {
	a, err := NewAction(map[string]any{
		"duration": 300,
		"values": map[string]any{
			"x": 100,
			"opacity": Value{Current: ptr(1.0), Min: ptr(0.0), Max: ptr(1.0)},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, map[string]any{"duration": 300}, a.Props)
	diff(t, Value{Current: ptr(100.0)}, a.Values["x"])

	// Incoming fields override per field, others survive.
	err = a.Set(map[string]any{"values": map[string]any{"opacity": 0.5}})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Value{Current: ptr(0.5), Min: ptr(0.0), Max: ptr(1.0)}, a.Values["opacity"])
}

func TestActionSetAs(t *testing.T) {
	a, err := NewAction(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.SetAs(map[string]any{"values": map[string]any{"x": 10}}, "min"); err != nil {
		t.Fatal(err)
	}
	diff(t, Value{Min: ptr(10.0)}, a.Values["x"])

	err = a.SetAs(map[string]any{"values": map[string]any{"x": 1}}, "bogus")
	if err == nil || !strings.Contains(err.Error(), "unknown value field") {
		t.Errorf("got %v, want unknown-field error", err)
	}
}

func TestActionSetRejectsBadValues(t *testing.T) {
	a, err := NewAction(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Set(map[string]any{"values": 5}); err == nil {
		t.Error("want error for non-map values")
	}
	if err := a.Set(map[string]any{"values": map[string]any{"x": "fast"}}); err == nil {
		t.Error("want error for unsupported definition type")
	}
}

func TestActionExtend(t *testing.T) {
	base, err := NewAction(map[string]any{
		"duration": 300,
		"values":   map[string]any{"x": 100},
	})
	if err != nil {
		t.Fatal(err)
	}
	derived, err := base.Extend(map[string]any{
		"duration": 500,
		"values":   map[string]any{"x": 200, "y": 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	diff(t, map[string]any{"duration": 500}, derived.Props)
	diff(t, Value{Current: ptr(200.0)}, derived.Values["x"])
	diff(t, Value{Current: ptr(1.0)}, derived.Values["y"])

	// The source is untouched.
	diff(t, map[string]any{"duration": 300}, base.Props)
	diff(t, Value{Current: ptr(100.0)}, base.Values["x"])
	if _, ok := base.Values["y"]; ok {
		t.Error("Extend mutated its receiver")
	}
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction([]byte(`
duration: 300
ease: backOut
values:
  x: 100
  opacity:
    current: 1
    min: 0
    max: 1
    round: true
`))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, map[string]any{"duration": 300, "ease": "backOut"}, a.Props)
	diff(t, Value{Current: ptr(100.0)}, a.Values["x"])
	diff(t, Value{
		Current: ptr(1.0),
		Min:     ptr(0.0),
		Max:     ptr(1.0),
		Round:   ptr(true),
	}, a.Values["opacity"])
}

func TestParseActionEmpty(t *testing.T) {
	a, err := ParseAction([]byte("values:\n  x: 1.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, map[string]any{}, a.Props, cmpopts.EquateEmpty())
	diff(t, Value{Current: ptr(1.5)}, a.Values["x"])
}

func TestParseActionInvalid(t *testing.T) {
	if _, err := ParseAction([]byte("values: [1, 2]")); err == nil {
		t.Error("want error for sequence under values")
	}
	if _, err := ParseAction([]byte(":")); err == nil {
		t.Error("want error for malformed YAML")
	}
}
