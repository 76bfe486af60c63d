package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ambient/dsp/core"
)

// Chorus modulation depth is a fixed 3 ms; rate is caller-controlled.
const chorusDepthSeconds = 0.003

// Chorus thickens a signal by adding a copy whose delay swings
// sinusoidally around the current sample:
//
//	output[i] = input[i] + 0.5*input[i-m(i)]
//	m(i) = round(depthSamples * sin(2*pi*rate*i/sampleRate))
//
// m(i) can be negative, in which case the tap reads ahead of i; taps
// outside the buffer leave the sample untouched. The first depthSamples
// samples pass through unmodified while the tap window fills.
type Chorus struct {
	sampleRate   float64
	rateHz       float64
	depthSamples int

	scratch []float64
}

// NewChorus creates a chorus for the given sample rate and modulation
// rate in Hz.
func NewChorus(sampleRate, rateHz float64) (*Chorus, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("chorus sample rate must be > 0: %f", sampleRate)
	}
	if rateHz < 0 || math.IsNaN(rateHz) || math.IsInf(rateHz, 0) {
		return nil, fmt.Errorf("chorus rate must be >= 0: %f", rateHz)
	}

	depthSamples := int(math.Round(chorusDepthSeconds * sampleRate))
	if depthSamples < 1 {
		depthSamples = 1
	}

	return &Chorus{
		sampleRate:   sampleRate,
		rateHz:       rateHz,
		depthSamples: depthSamples,
	}, nil
}

// ProcessInPlace applies the chorus to buf and clips the result.
func (c *Chorus) ProcessInPlace(buf []float64) {
	n := len(buf)
	c.scratch = core.EnsureLen(c.scratch, n)
	core.CopyInto(c.scratch, buf)

	phaseStep := 2 * math.Pi * c.rateHz / c.sampleRate
	for i := c.depthSamples; i < n; i++ {
		m := int(math.Round(float64(c.depthSamples) * math.Sin(phaseStep*float64(i))))
		j := i - m
		if j >= 0 && j < n {
			buf[i] += 0.5 * c.scratch[j]
		}
	}
	core.ClipInPlace(buf)
}

// Reset drops scratch state.
func (c *Chorus) Reset() {
	c.scratch = c.scratch[:0]
}

// RateHz returns the modulation rate.
func (c *Chorus) RateHz() float64 { return c.rateHz }
