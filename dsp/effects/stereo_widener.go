package effects

import (
	"fmt"
	"math"
)

// StereoWidener adjusts stereo width through mid/side decomposition:
// the side (difference) channel is scaled by 1+amount while the mid
// (sum) channel stays untouched. Amount 0 is the identity transform.
type StereoWidener struct {
	amount float64
}

// NewStereoWidener creates a widener with the given side gain boost.
func NewStereoWidener(amount float64) (*StereoWidener, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("widener amount must be finite: %f", amount)
	}
	return &StereoWidener{amount: amount}, nil
}

// ProcessInPlace rewrites both channels. The slices must have equal
// length.
func (w *StereoWidener) ProcessInPlace(left, right []float64) {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}

	sideGain := (1 + w.amount) / 2
	for i := 0; i < n; i++ {
		mid := (left[i] + right[i]) / 2
		side := (left[i] - right[i]) * sideGain
		left[i] = mid + side
		right[i] = mid - side
	}
}

// Amount returns the side gain boost.
func (w *StereoWidener) Amount() float64 { return w.amount }
