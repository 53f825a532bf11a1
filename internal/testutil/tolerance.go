package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSilent fails t if any element is not exactly zero.
func RequireSilent(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if v != 0 {
			t.Fatalf("index %d: got %v, want silence", i, v)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireTaps fails t unless data is within eps of taps at the given
// indices and within eps of zero everywhere else.
func RequireTaps(t *testing.T, data []float64, taps map[int]float64, eps float64) {
	t.Helper()
	for i, v := range data {
		want := taps[i]
		if math.Abs(v-want) > eps {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}
	for i := range taps {
		if i < 0 || i >= len(data) {
			t.Fatalf("tap %d outside %d samples", i, len(data))
		}
	}
}
