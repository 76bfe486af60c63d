// Package lfo provides low-frequency oscillators whose stepped values
// modulate composition and effect parameters between chunks.
package lfo

import "math"

// Waveform names accepted by an Oscillator. Any other name yields 0.
const (
	WaveSine     = "sine"
	WaveTriangle = "triangle"
	WaveSquare   = "square"
	WaveSawtooth = "sawtooth"
)

// Default rates and depths for per-layer modulation.
const (
	DefaultVolumeRateHz = 0.05
	DefaultVolumeDepth  = 0.2
	DefaultPanRateHz    = 0.03
	DefaultPanDepth     = 0.3
	DefaultTimbreRateHz = 0.02
	DefaultTimbreDepth  = 0.1
)

// Oscillator is a phase-accumulating low-frequency oscillator.
//
// Phase is owned exclusively by the oscillator and only advances through
// Step. It accumulates without wrapping; periodicity comes from the trig
// functions themselves.
type Oscillator struct {
	rate     float64
	depth    float64
	waveform string
	phase    float64
}

// New creates an oscillator with the given rate (cycles/sec), depth
// (output amplitude), and waveform name.
func New(rate, depth float64, waveform string) *Oscillator {
	return &Oscillator{
		rate:     rate,
		depth:    depth,
		waveform: waveform,
	}
}

// Step advances phase by 2*pi*rate*dt and returns the oscillator value
// at the new phase, scaled by depth. Unknown waveforms return 0.
func (o *Oscillator) Step(dt float64) float64 {
	o.phase += 2 * math.Pi * o.rate * dt

	switch o.waveform {
	case WaveSine:
		return math.Sin(o.phase) * o.depth
	case WaveTriangle:
		return 2 / math.Pi * math.Asin(math.Sin(o.phase)) * o.depth
	case WaveSquare:
		s := math.Sin(o.phase)
		switch {
		case s > 0:
			return o.depth
		case s < 0:
			return -o.depth
		default:
			return 0
		}
	case WaveSawtooth:
		// Normalize into [0, 2*pi): math.Mod keeps the dividend's sign,
		// so a backwards-running phase would escape the depth bound.
		m := math.Mod(o.phase, 2*math.Pi)
		if m < 0 {
			m += 2 * math.Pi
		}
		return (m/math.Pi - 1) * o.depth
	}
	return 0
}

// Phase returns the accumulated phase in radians.
func (o *Oscillator) Phase() float64 { return o.phase }

// Rate returns the oscillator rate in cycles/sec.
func (o *Oscillator) Rate() float64 { return o.rate }

// Depth returns the output amplitude.
func (o *Oscillator) Depth() float64 { return o.depth }

// SetRate updates the oscillator rate without disturbing phase.
func (o *Oscillator) SetRate(rate float64) { o.rate = rate }

// SetDepth updates the output amplitude.
func (o *Oscillator) SetDepth(depth float64) { o.depth = depth }

// Values holds one stepped sample of a compound oscillator.
type Values struct {
	Volume float64
	Pan    float64
	Timbre float64
}

// Compound bundles the per-layer modulators: volume and pan always, an
// optional third oscillator for timbre.
type Compound struct {
	volume *Oscillator
	pan    *Oscillator
	timbre *Oscillator
}

// NewCompound creates a volume+pan compound oscillator.
func NewCompound(volumeRate, volumeDepth, panRate, panDepth float64) *Compound {
	return &Compound{
		volume: New(volumeRate, volumeDepth, WaveSine),
		pan:    New(panRate, panDepth, WaveSine),
	}
}

// NewDefaultCompound creates a compound oscillator with the legacy
// per-layer rates and depths.
func NewDefaultCompound() *Compound {
	return NewCompound(DefaultVolumeRateHz, DefaultVolumeDepth, DefaultPanRateHz, DefaultPanDepth)
}

// WithTimbre attaches a third oscillator and returns the compound for
// chaining.
func (c *Compound) WithTimbre(rate, depth float64) *Compound {
	c.timbre = New(rate, depth, WaveSine)
	return c
}

// Step advances every member oscillator once by dt and returns their
// values. Timbre stays 0 when no timbre oscillator is attached.
func (c *Compound) Step(dt float64) Values {
	v := Values{
		Volume: c.volume.Step(dt),
		Pan:    c.pan.Step(dt),
	}
	if c.timbre != nil {
		v.Timbre = c.timbre.Step(dt)
	}
	return v
}
