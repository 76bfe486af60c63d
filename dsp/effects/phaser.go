package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ambient/dsp/core"
)

// Phaser adds a copy of the signal at a sinusoidally sweeping offset,
// creating moving comb notches:
//
//	output[i] = input[i] + input[i-s(i)]
//	s(i) = round(depth*sampleRate * sin(2*pi*rate*i/sampleRate))
//
// Samples whose swept tap falls outside the buffer pass through
// unmodified.
type Phaser struct {
	sampleRate float64
	rateHz     float64
	depth      float64

	scratch []float64
}

// NewPhaser creates a phaser for the given sample rate, sweep rate in
// Hz, and depth in seconds.
func NewPhaser(sampleRate, rateHz, depth float64) (*Phaser, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("phaser sample rate must be > 0: %f", sampleRate)
	}
	if rateHz < 0 || math.IsNaN(rateHz) || math.IsInf(rateHz, 0) {
		return nil, fmt.Errorf("phaser rate must be >= 0: %f", rateHz)
	}
	if depth < 0 || math.IsNaN(depth) || math.IsInf(depth, 0) {
		return nil, fmt.Errorf("phaser depth must be >= 0: %f", depth)
	}

	return &Phaser{
		sampleRate: sampleRate,
		rateHz:     rateHz,
		depth:      depth,
	}, nil
}

// ProcessInPlace applies the sweep to buf and clips the result.
func (p *Phaser) ProcessInPlace(buf []float64) {
	n := len(buf)
	p.scratch = core.EnsureLen(p.scratch, n)
	core.CopyInto(p.scratch, buf)

	phaseStep := 2 * math.Pi * p.rateHz / p.sampleRate
	depthSamples := p.depth * p.sampleRate
	for i := 0; i < n; i++ {
		s := int(math.Round(depthSamples * math.Sin(phaseStep*float64(i))))
		j := i - s
		if j >= 0 && j < n {
			buf[i] += p.scratch[j]
		}
	}
	core.ClipInPlace(buf)
}

// Reset drops scratch state.
func (p *Phaser) Reset() {
	p.scratch = p.scratch[:0]
}

// RateHz returns the sweep rate.
func (p *Phaser) RateHz() float64 { return p.rateHz }

// Depth returns the sweep depth in seconds.
func (p *Phaser) Depth() float64 { return p.depth }
