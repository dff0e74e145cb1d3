package testutil

import (
	"fmt"
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

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsError evaluates f and ref at every x and returns the largest absolute
// difference together with the input where it occurred.
func MaxAbsError(xs []float64, f, ref func(float64) float64) (maxErr, worstX float64) {
	for _, x := range xs {
		d := math.Abs(f(x) - ref(x))
		if d > maxErr || math.IsNaN(d) {
			maxErr, worstX = d, x
		}
	}
	return maxErr, worstX
}

// MaxRelError is MaxAbsError with each difference divided by |ref(x)|.
// Inputs where ref(x) is zero are skipped.
func MaxRelError(xs []float64, f, ref func(float64) float64) (maxErr, worstX float64) {
	for _, x := range xs {
		r := ref(x)
		if r == 0 {
			continue
		}
		d := math.Abs((f(x) - r) / r)
		if d > maxErr || math.IsNaN(d) {
			maxErr, worstX = d, x
		}
	}
	return maxErr, worstX
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
