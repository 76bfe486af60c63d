// Package synth renders single-note waveforms, Gaussian noise, and
// attack/decay gain envelopes. All stochastic output draws from the
// generator's injected random source so renders are seed-reproducible.
package synth

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ambient/dsp/core"
)

// Waveform names accepted by Tone.
const (
	WaveSine     = "sine"
	WaveSquare   = "square"
	WaveTriangle = "triangle"
	WaveSawtooth = "sawtooth"
	WaveFMSine   = "fm_sine"
	WaveNoisePad = "noise_pad"
)

var waveforms = map[string]struct{}{
	WaveSine:     {},
	WaveSquare:   {},
	WaveTriangle: {},
	WaveSawtooth: {},
	WaveFMSine:   {},
	WaveNoisePad: {},
}

// IsWaveform reports whether name is a waveform Tone can render.
func IsWaveform(name string) bool {
	_, ok := waveforms[name]
	return ok
}

// WaveformNames returns all waveform names in sorted order.
func WaveformNames() []string {
	names := make([]string, 0, len(waveforms))
	for name := range waveforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const (
	fmModIndex = 2.0

	noisePadAttack = 0.5
	noisePadDecay  = 0.7
)

// Generator creates note and noise buffers from a shared configuration.
type Generator struct {
	cfg core.ProcessorConfig
	rng *rand.Rand
}

// NewGenerator creates a configured generator. A nil rng falls back to a
// fixed seed so output stays deterministic.
func NewGenerator(rng *rand.Rand, opts ...core.ProcessorOption) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Generator{
		cfg: core.ApplyProcessorOptions(opts...),
		rng: rng,
	}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Tone renders one note as a mono buffer of round(duration*sampleRate)
// samples scaled by volume.
func (g *Generator) Tone(freqHz, durationSec float64, waveform string, volume float64) ([]float64, error) {
	if durationSec <= 0 || math.IsNaN(durationSec) || math.IsInf(durationSec, 0) {
		return nil, fmt.Errorf("%w: tone duration must be > 0: %f", core.ErrInvalidParameter, durationSec)
	}
	if freqHz < 0 || math.IsNaN(freqHz) || math.IsInf(freqHz, 0) {
		return nil, fmt.Errorf("%w: tone frequency must be >= 0: %f", core.ErrInvalidParameter, freqHz)
	}

	n := int(math.Round(durationSec * g.cfg.SampleRate))
	out := make([]float64, n)

	switch waveform {
	case WaveSine:
		step := 2 * math.Pi * freqHz / g.cfg.SampleRate
		for i := range out {
			out[i] = math.Sin(step * float64(i))
		}
	case WaveSquare:
		step := 2 * math.Pi * freqHz / g.cfg.SampleRate
		for i := range out {
			out[i] = signum(math.Sin(step * float64(i)))
		}
	case WaveTriangle:
		step := 2 * math.Pi * freqHz / g.cfg.SampleRate
		for i := range out {
			out[i] = 2 / math.Pi * math.Asin(math.Sin(step*float64(i)))
		}
	case WaveSawtooth:
		for i := range out {
			ft := freqHz * float64(i) / g.cfg.SampleRate
			out[i] = 2 * (ft - math.Floor(0.5+ft))
		}
	case WaveFMSine:
		// Fixed 2:1 frequency-modulation pair.
		step := 2 * math.Pi * freqHz / g.cfg.SampleRate
		for i := range out {
			theta := step * float64(i)
			out[i] = math.Sin(theta + fmModIndex*math.Sin(2*theta))
		}
	case WaveNoisePad:
		for i := range out {
			out[i] = g.rng.NormFloat64()
		}
		ApplyEnvelope(out, noisePadAttack, noisePadDecay)
	default:
		return nil, fmt.Errorf("%w: unknown waveform %q", core.ErrInvalidParameter, waveform)
	}

	vecmath.ScaleBlockInPlace(out, volume)
	return out, nil
}

// Noise renders standard-normal noise scaled by volume.
func (g *Generator) Noise(durationSec, volume float64) ([]float64, error) {
	if durationSec <= 0 || math.IsNaN(durationSec) || math.IsInf(durationSec, 0) {
		return nil, fmt.Errorf("%w: noise duration must be > 0: %f", core.ErrInvalidParameter, durationSec)
	}

	n := int(math.Round(durationSec * g.cfg.SampleRate))
	out := make([]float64, n)
	for i := range out {
		out[i] = g.rng.NormFloat64()
	}
	vecmath.ScaleBlockInPlace(out, volume)
	return out, nil
}

// ApplyEnvelope multiplies an attack/decay gain curve into signal.
//
// The curve starts as unit gain; the first attack*N samples ramp 0..1,
// then the last decay*N samples ramp 1..0. When the regions overlap the
// decay ramp overwrites the attack ramp (last write wins), matching the
// legacy behavior.
func ApplyEnvelope(signal []float64, attack, decay float64) {
	n := len(signal)
	if n == 0 {
		return
	}

	env := envelope(n, attack, decay)
	vecmath.MulBlockInPlace(signal, env)
}

func envelope(n int, attack, decay float64) []float64 {
	env := make([]float64, n)
	for i := range env {
		env[i] = 1
	}

	attackSamples := clampCount(int(attack*float64(n)), n)
	if attackSamples == 1 {
		env[0] = 0
	} else {
		for i := 0; i < attackSamples; i++ {
			env[i] = float64(i) / float64(attackSamples-1)
		}
	}

	decaySamples := clampCount(int(decay*float64(n)), n)
	if decaySamples == 1 {
		env[n-1] = 1
	} else {
		for j := 0; j < decaySamples; j++ {
			env[n-decaySamples+j] = 1 - float64(j)/float64(decaySamples-1)
		}
	}

	return env
}

func clampCount(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
