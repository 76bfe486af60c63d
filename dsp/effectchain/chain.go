// Package effectchain runs the fixed-order stereo effect chain:
// reverb, delay, chorus, phaser, stereo widen, low-pass, high-pass.
//
// Every stage has a defined bypass: amounts at or below zero skip the
// comb/modulation stages, cutoffs at or below 20 Hz skip the filters.
// Stages process left and right independently with separate instances,
// and no delay-line state survives a Process call, so chunk seams are
// discontinuities by design.
package effectchain

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ambient/dsp/core"
	"github.com/cwbudde/algo-ambient/dsp/effects"
)

// FilterBypassHz is the cutoff at or below which a filter stage is a
// defined no-op rather than a near-singular computation.
const FilterBypassHz = 20.0

// Modulation-stage scaling from the single caller-facing amount.
const (
	chorusRatePerAmount  = 0.25
	phaserRatePerAmount  = 0.2
	phaserDepthPerAmount = 0.02
)

// Context provides environmental information the chain stages need.
type Context struct {
	SampleRate float64
}

// Params is the per-chunk effect configuration. Zero values bypass
// every stage.
type Params struct {
	Reverb float64
	Delay  float64
	Chorus float64
	Phaser float64
	Widen  float64

	LowpassHz  float64
	HighpassHz float64
}

// DefaultParams returns the legacy chain defaults: gentle reverb and
// delay, a wide-open low-pass, and everything else bypassed.
func DefaultParams() Params {
	return Params{
		Reverb:     0.3,
		Delay:      0.3,
		LowpassHz:  15000,
		HighpassHz: FilterBypassHz,
	}
}

// Chain applies the fixed stage order to stereo chunks.
type Chain struct {
	ctx Context
}

// New creates a chain for the given context.
func New(ctx Context) (*Chain, error) {
	if ctx.SampleRate <= 0 || math.IsNaN(ctx.SampleRate) || math.IsInf(ctx.SampleRate, 0) {
		return nil, fmt.Errorf("effectchain sample rate must be > 0: %f", ctx.SampleRate)
	}
	return &Chain{ctx: ctx}, nil
}

// Context returns the chain context.
func (c *Chain) Context() Context {
	return c.ctx
}

// Process transforms one stereo chunk in place and clips the result.
// Both channels must have equal length.
func (c *Chain) Process(left, right []float64, p Params) error {
	if len(left) != len(right) {
		return fmt.Errorf("effectchain channel length mismatch: %d vs %d", len(left), len(right))
	}
	if err := validateParams(p); err != nil {
		return err
	}

	sr := c.ctx.SampleRate

	if p.Reverb > 0 {
		if err := c.perChannel(left, right, func(buf []float64) error {
			rev, err := effects.NewReverb(sr, p.Reverb)
			if err != nil {
				return err
			}
			rev.ProcessInPlace(buf)
			return nil
		}); err != nil {
			return err
		}
	}

	if p.Delay > 0 {
		if err := c.perChannel(left, right, func(buf []float64) error {
			dly, err := effects.NewDelay(sr, p.Delay)
			if err != nil {
				return err
			}
			dly.ProcessInPlace(buf)
			return nil
		}); err != nil {
			return err
		}
	}

	if p.Chorus > 0 {
		if err := c.perChannel(left, right, func(buf []float64) error {
			cho, err := effects.NewChorus(sr, chorusRatePerAmount*p.Chorus)
			if err != nil {
				return err
			}
			cho.ProcessInPlace(buf)
			return nil
		}); err != nil {
			return err
		}
	}

	if p.Phaser > 0 {
		if err := c.perChannel(left, right, func(buf []float64) error {
			pha, err := effects.NewPhaser(sr, phaserRatePerAmount*p.Phaser, phaserDepthPerAmount*p.Phaser)
			if err != nil {
				return err
			}
			pha.ProcessInPlace(buf)
			return nil
		}); err != nil {
			return err
		}
	}

	if p.Widen > 0 {
		wid, err := effects.NewStereoWidener(p.Widen)
		if err != nil {
			return err
		}
		wid.ProcessInPlace(left, right)
	}

	if p.LowpassHz > FilterBypassHz {
		if err := c.perChannel(left, right, func(buf []float64) error {
			lp, err := effects.NewLowPass(sr, p.LowpassHz)
			if err != nil {
				return err
			}
			lp.ProcessInPlace(buf)
			return nil
		}); err != nil {
			return err
		}
	}

	if p.HighpassHz > FilterBypassHz {
		if err := c.perChannel(left, right, func(buf []float64) error {
			hp, err := effects.NewHighPass(sr, p.HighpassHz)
			if err != nil {
				return err
			}
			hp.ProcessInPlace(buf)
			return nil
		}); err != nil {
			return err
		}
	}

	core.ClipInPlace(left)
	core.ClipInPlace(right)
	return nil
}

// perChannel runs stage on each channel with its own effect instance.
func (c *Chain) perChannel(left, right []float64, stage func([]float64) error) error {
	if err := stage(left); err != nil {
		return err
	}
	return stage(right)
}

func validateParams(p Params) error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"reverb", p.Reverb},
		{"delay", p.Delay},
		{"chorus", p.Chorus},
		{"phaser", p.Phaser},
		{"widen", p.Widen},
		{"lowpass", p.LowpassHz},
		{"highpass", p.HighpassHz},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s amount must be finite: %f", core.ErrInvalidParameter, v.name, v.value)
		}
	}
	return nil
}
