package ease

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// InvalidEasingNameError reports a lookup of an unregistered curve name.
// Lookups never substitute a default curve; a misspelled name would
// otherwise silently disable an animation.
type InvalidEasingNameError struct {
	Name string
	// Closest is the registered name nearest to Name by edit distance, or
	// empty when nothing plausible is registered.
	Closest string
}

func (e *InvalidEasingNameError) Error() string {
	if e.Closest != "" {
		return fmt.Sprintf("ease: no easing named %q (did you mean %q?)", e.Name, e.Closest)
	}
	return fmt.Sprintf("ease: no easing named %q", e.Name)
}

// InvalidControlPointsError reports Bézier control points that the solver
// cannot invert: control x-coordinates outside [0, 1] make X(t)
// non-monotonic.
type InvalidControlPointsError struct {
	X1, Y1, X2, Y2 float64
}

func (e *InvalidControlPointsError) Error() string {
	return fmt.Sprintf("ease: control x-coordinates must lie in [0, 1], got (%g, %g) and (%g, %g)",
		e.X1, e.Y1, e.X2, e.Y2)
}

// closestName returns the candidate nearest to name, or "" when even the
// nearest one is too far off to be a useful suggestion.
func closestName(name string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		d := levenshtein.ComputeDistance(name, cand)
		if bestDist < 0 || d < bestDist {
			best, bestDist = cand, d
		}
	}
	if bestDist < 0 || bestDist > (len(name)+1)/2 {
		return ""
	}
	return best
}
