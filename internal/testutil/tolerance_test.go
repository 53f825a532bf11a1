package testutil

import "testing"

func TestRequireHelpersPass(t *testing.T) {
	RequireSilent(t, []float64{0, 0})
	RequireFinite(t, []float64{1, -1, 0})
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-13}, 1e-12)
	RequireTaps(t, []float64{1, 0, 1e-13, 0.5}, map[int]float64{0: 1, 3: 0.5}, 1e-12)
	RequireTaps(t, []float64{0, 0}, nil, 0)
}
