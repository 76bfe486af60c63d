// Package ambient generates procedural ambient music: an Engine renders
// fixed-duration stereo chunks from a flat parameter bundle, composing
// four stochastic layers and passing the mix through an ordered effect
// chain. Rendering is stateless across chunks apart from the random
// stream; low-frequency modulation lives in the caller-side
// ModulationRouter.
package ambient

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ambient/compose"
	"github.com/cwbudde/algo-ambient/dsp/core"
	"github.com/cwbudde/algo-ambient/dsp/effectchain"
)

// Engine renders chunks. Safe for sequential use only; the random
// stream is shared across calls.
type Engine struct {
	cfg      core.ProcessorConfig
	composer *compose.Composer
	chain    *effectchain.Chain
}

type engineOptions struct {
	sampleRate float64
	rng        *rand.Rand
}

// Option configures an Engine.
type Option func(*engineOptions)

// WithSampleRate overrides the default 44.1 kHz sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(o *engineOptions) { o.sampleRate = sampleRate }
}

// WithSeed seeds the engine's random stream, making every render
// bit-reproducible.
func WithSeed(seed int64) Option {
	return func(o *engineOptions) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRandom supplies the random stream directly.
func WithRandom(rng *rand.Rand) Option {
	return func(o *engineOptions) { o.rng = rng }
}

// NewEngine creates an engine. Without WithSeed or WithRandom the
// random stream is seeded from the wall clock.
func NewEngine(opts ...Option) (*Engine, error) {
	o := engineOptions{sampleRate: core.DefaultSampleRate}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sampleRate <= 0 || math.IsNaN(o.sampleRate) || math.IsInf(o.sampleRate, 0) {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %f", core.ErrInvalidParameter, o.sampleRate)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	chain, err := effectchain.New(effectchain.Context{SampleRate: o.sampleRate})
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:      core.ProcessorConfig{SampleRate: o.sampleRate},
		composer: compose.New(o.rng, core.WithSampleRate(o.sampleRate)),
		chain:    chain,
	}, nil
}

// Config returns the engine processor configuration.
func (e *Engine) Config() core.ProcessorConfig {
	return e.cfg
}

// GenerateChunk composes one stereo chunk from the bundle and runs it
// through the effect chain. Master volume and pan offset apply last.
func (e *Engine) GenerateChunk(p Params) (*Chunk, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	left, right, err := e.composer.Chunk(compose.Request{
		DurationSec: p.DurationSec,
		TempoBPM:    p.TempoBPM,
		Scale:       p.Scale,
		Instrument:  p.Instrument,
		UseArpeggio: p.UseArpeggio,
	})
	if err != nil {
		return nil, err
	}

	if err := e.chain.Process(left, right, effectchain.Params{
		Reverb:     p.Reverb,
		Delay:      p.Delay,
		Chorus:     p.Chorus,
		Phaser:     p.Phaser,
		Widen:      p.Widen,
		LowpassHz:  p.LowpassHz,
		HighpassHz: p.HighpassHz,
	}); err != nil {
		return nil, err
	}

	applyMaster(left, right, p.MasterVolume, p.PanOffset)
	return &Chunk{Left: left, Right: right}, nil
}

// applyMaster scales the finished chunk by the master volume and
// rebalances the channels by the pan offset, then clips.
func applyMaster(left, right []float64, volume, panOffset float64) {
	if volume == 1 && panOffset == 0 {
		return
	}
	panOffset = core.Clamp(panOffset, -1, 1)
	vecmath.ScaleBlockInPlace(left, volume*(1-panOffset))
	vecmath.ScaleBlockInPlace(right, volume*(1+panOffset))
	core.ClipInPlace(left)
	core.ClipInPlace(right)
}
