package effects

import (
	"math"
	"testing"
)

// TestStereoWidener_ZeroAmountIsIdentity: amount 0 reconstructs both
// channels exactly from mid and side.
func TestStereoWidener_ZeroAmountIsIdentity(t *testing.T) {
	w, err := NewStereoWidener(0)
	if err != nil {
		t.Fatalf("NewStereoWidener: %v", err)
	}

	left := []float64{0.5, -0.3, 0.9, 0}
	right := []float64{-0.1, 0.7, 0.2, 0.4}
	wantL := append([]float64(nil), left...)
	wantR := append([]float64(nil), right...)

	w.ProcessInPlace(left, right)
	for i := range left {
		if math.Abs(left[i]-wantL[i]) > 1e-15 || math.Abs(right[i]-wantR[i]) > 1e-15 {
			t.Errorf("index %d: got (%v, %v), want (%v, %v)", i, left[i], right[i], wantL[i], wantR[i])
		}
	}
}

// TestStereoWidener_MonoUnaffected: identical channels have no side
// component, so widening changes nothing regardless of amount.
func TestStereoWidener_MonoUnaffected(t *testing.T) {
	w, err := NewStereoWidener(0.8)
	if err != nil {
		t.Fatalf("NewStereoWidener: %v", err)
	}

	left := []float64{0.5, -0.3, 0.9}
	right := append([]float64(nil), left...)
	want := append([]float64(nil), left...)

	w.ProcessInPlace(left, right)
	for i := range left {
		if math.Abs(left[i]-want[i]) > 1e-15 || math.Abs(right[i]-want[i]) > 1e-15 {
			t.Errorf("index %d: mono content altered: (%v, %v)", i, left[i], right[i])
		}
	}
}

func TestStereoWidener_BoostsSide(t *testing.T) {
	const amount = 1.0

	w, err := NewStereoWidener(amount)
	if err != nil {
		t.Fatalf("NewStereoWidener: %v", err)
	}

	left := []float64{0.6}
	right := []float64{0.2}
	// mid = 0.4, side = 0.2*(1+1) = 0.4 -> L = 0.8, R = 0.
	w.ProcessInPlace(left, right)
	if math.Abs(left[0]-0.8) > 1e-15 || math.Abs(right[0]) > 1e-15 {
		t.Fatalf("got (%v, %v), want (0.8, 0)", left[0], right[0])
	}
}
