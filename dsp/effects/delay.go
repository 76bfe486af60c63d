package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ambient/dsp/core"
	"github.com/cwbudde/algo-ambient/dsp/delay"
)

// Delay echo time is fixed; only the feedback gain is caller-controlled.
const delayTimeSeconds = 0.2

// Delay is a recursive feedback comb:
//
//	output[i] = input[i] + output[i-d]*feedback
//
// with d fixed at 200 ms. Unlike Reverb the echo feeds back from prior
// output samples, so echoes of echoes accumulate. The feedback path is
// unclipped; clipping happens once over the finished buffer.
type Delay struct {
	sampleRate   float64
	feedback     float64
	delaySamples int
	line         *delay.Line
}

// NewDelay creates a feedback delay for the given sample rate and
// feedback gain.
func NewDelay(sampleRate, feedback float64) (*Delay, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("delay sample rate must be > 0: %f", sampleRate)
	}
	if math.IsNaN(feedback) || math.IsInf(feedback, 0) {
		return nil, fmt.Errorf("delay feedback must be finite: %f", feedback)
	}

	delaySamples := int(math.Round(delayTimeSeconds * sampleRate))
	if delaySamples < 1 {
		delaySamples = 1
	}
	line, err := delay.New(delaySamples)
	if err != nil {
		return nil, err
	}

	return &Delay{
		sampleRate:   sampleRate,
		feedback:     feedback,
		delaySamples: delaySamples,
		line:         line,
	}, nil
}

// ProcessInPlace applies the feedback comb to buf and clips the result.
func (d *Delay) ProcessInPlace(buf []float64) {
	for i := range buf {
		delayed := core.FlushDenormals(d.line.Read(d.delaySamples))
		out := buf[i] + delayed*d.feedback
		d.line.Write(out)
		buf[i] = out
	}
	core.ClipInPlace(buf)
}

// Reset clears the delay line.
func (d *Delay) Reset() {
	d.line.Reset()
}

// Feedback returns the feedback gain.
func (d *Delay) Feedback() float64 { return d.feedback }
