package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ambient/dsp/core"
	"github.com/cwbudde/algo-ambient/dsp/delay"
)

// Reverb delay time is fixed; only the echo gain is caller-controlled.
const reverbDelaySeconds = 0.03

// Reverb is a single feedforward comb echo:
//
//	output[i] = input[i] + input[i-d]*decay
//
// with d fixed at 30 ms. The output is clipped to [-1, 1].
type Reverb struct {
	sampleRate   float64
	decay        float64
	delaySamples int
	line         *delay.Line
}

// NewReverb creates a reverb comb for the given sample rate and echo
// gain.
func NewReverb(sampleRate, decay float64) (*Reverb, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("reverb sample rate must be > 0: %f", sampleRate)
	}
	if math.IsNaN(decay) || math.IsInf(decay, 0) {
		return nil, fmt.Errorf("reverb decay must be finite: %f", decay)
	}

	delaySamples := int(math.Round(reverbDelaySeconds * sampleRate))
	if delaySamples < 1 {
		delaySamples = 1
	}
	line, err := delay.New(delaySamples)
	if err != nil {
		return nil, err
	}

	return &Reverb{
		sampleRate:   sampleRate,
		decay:        decay,
		delaySamples: delaySamples,
		line:         line,
	}, nil
}

// ProcessInPlace applies the comb to buf and clips the result.
func (r *Reverb) ProcessInPlace(buf []float64) {
	for i := range buf {
		delayed := r.line.Read(r.delaySamples)
		r.line.Write(buf[i])
		buf[i] += delayed * r.decay
	}
	core.ClipInPlace(buf)
}

// Reset clears the delay line.
func (r *Reverb) Reset() {
	r.line.Reset()
}

// Decay returns the echo gain.
func (r *Reverb) Decay() float64 { return r.decay }
