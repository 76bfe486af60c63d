package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ambient/dsp/core"
)

// OnePole is a causal first-order IIR filter section:
//
//	y[i] = b0*x[i] + b1*x[i-1] - a1*y[i-1]
//
// Coefficients come from the bilinear-free one-pole design used by the
// legacy engine: with w = 2*pi*cutoff/sampleRate,
//
//	low-pass:  b0 = w/(w+1),   b1 = 0,        a1 = (w-1)/(w+1)
//	high-pass: b0 = 1/(w+1),   b1 = -1/(w+1), a1 = (w-1)/(w+1)
//
// Each channel needs its own instance; state is per-channel.
type OnePole struct {
	b0, b1, a1 float64
	x1, y1     float64
}

// NewLowPass creates a one-pole low-pass filter.
func NewLowPass(sampleRate, cutoffHz float64) (*OnePole, error) {
	w, err := angularRatio(sampleRate, cutoffHz)
	if err != nil {
		return nil, err
	}
	return &OnePole{
		b0: w / (w + 1),
		a1: (w - 1) / (w + 1),
	}, nil
}

// NewHighPass creates a one-pole high-pass filter.
func NewHighPass(sampleRate, cutoffHz float64) (*OnePole, error) {
	w, err := angularRatio(sampleRate, cutoffHz)
	if err != nil {
		return nil, err
	}
	return &OnePole{
		b0: 1 / (w + 1),
		b1: -1 / (w + 1),
		a1: (w - 1) / (w + 1),
	}, nil
}

func angularRatio(sampleRate, cutoffHz float64) (float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("filter sample rate must be > 0: %f", sampleRate)
	}
	if cutoffHz <= 0 || math.IsNaN(cutoffHz) || math.IsInf(cutoffHz, 0) {
		return 0, fmt.Errorf("filter cutoff must be > 0: %f", cutoffHz)
	}
	return 2 * math.Pi * cutoffHz / sampleRate, nil
}

// ProcessInPlace filters buf causally, starting from silent state.
func (f *OnePole) ProcessInPlace(buf []float64) {
	x1 := f.x1
	y1 := f.y1
	for i, x := range buf {
		y := f.b0*x + f.b1*x1 - f.a1*y1
		y1 = core.FlushDenormals(y)
		x1 = x
		buf[i] = y
	}
	f.x1 = x1
	f.y1 = y1
}

// Reset clears filter memory.
func (f *OnePole) Reset() {
	f.x1 = 0
	f.y1 = 0
}
