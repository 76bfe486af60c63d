// Package compose holds the generative core: four stochastic layer
// passes (drone, chord, melody, noise) and the arpeggiator that turns
// chords into beat-gridded note runs.
//
// Every random decision draws from the composer's injected source, in a
// fixed order (drone pass, chord pass, melody pass, noise, pan), so a
// seeded source makes whole chunks bit-reproducible.
package compose

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ambient/dsp/core"
	"github.com/cwbudde/algo-ambient/dsp/note"
	"github.com/cwbudde/algo-ambient/dsp/spatial"
	"github.com/cwbudde/algo-ambient/dsp/synth"
)

// Layer tuning: per-layer trigger probabilities, base pitches, mix
// volumes, and envelope fractions.
const (
	droneProbability = 0.8
	droneBasePitch   = 48
	droneVolume      = 0.08
	droneAttack      = 0.3
	droneDecay       = 0.7

	chordProbability = 0.7
	chordBasePitch   = 60
	chordVolume      = 0.05
	chordAttack      = 0.5
	chordDecay       = 0.5
	chordSlotBeats   = 2

	melodyProbability = 0.3
	melodyBasePitch   = 60
	melodyVolume      = 0.07
	melodyAttack      = 0.05
	melodyDecay       = 0.5

	noiseVolume = 0.02
)

var melodyDurationFactors = []float64{0.5, 1.0, 1.5}

// Request describes one chunk to compose.
type Request struct {
	DurationSec float64
	TempoBPM    float64
	Scale       string
	Instrument  string
	UseArpeggio bool
}

// Layers holds the four mono passes of one chunk before mixdown.
type Layers struct {
	Drone  []float64
	Chord  []float64
	Melody []float64
	Noise  []float64
}

// Composer renders procedurally composed chunks.
type Composer struct {
	cfg core.ProcessorConfig
	gen *synth.Generator
	rng *rand.Rand
}

// New creates a composer drawing randomness from rng. A nil rng falls
// back to a fixed seed.
func New(rng *rand.Rand, opts ...core.ProcessorOption) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	cfg := core.ApplyProcessorOptions(opts...)
	return &Composer{
		cfg: cfg,
		gen: synth.NewGenerator(rng, core.WithSampleRate(cfg.SampleRate)),
		rng: rng,
	}
}

// Config returns the composer processor configuration.
func (c *Composer) Config() core.ProcessorConfig {
	return c.cfg
}

// Chunk composes one stereo chunk: the four layers are summed, clipped
// to [-1, 1], and spread onto two channels with a single random pan.
func (c *Composer) Chunk(req Request) (left, right []float64, err error) {
	layers, err := c.Layers(req)
	if err != nil {
		return nil, nil, err
	}

	mono := layers.Drone
	vecmath.AddBlockInPlace(mono, layers.Chord)
	vecmath.AddBlockInPlace(mono, layers.Melody)
	vecmath.AddBlockInPlace(mono, layers.Noise)
	core.ClipInPlace(mono)

	// Uniform pan in [-0.5, 0.5]; drawn last so layer passes consume
	// the random stream in a fixed order.
	pan := c.rng.Float64() - 0.5
	return spatial.Pan(mono, pan)
}

// Layers composes the four mono layer buffers of one chunk without
// mixing them. Callers wanting the finished chunk should use Chunk;
// note that Chunk additionally consumes one pan draw from the random
// source.
func (c *Composer) Layers(req Request) (Layers, error) {
	if err := c.validate(req); err != nil {
		return Layers{}, err
	}
	offsets, err := note.Offsets(req.Scale)
	if err != nil {
		return Layers{}, err
	}

	sr := c.cfg.SampleRate
	n := int(math.Round(req.DurationSec * sr))
	beats := int(req.DurationSec / 60 * req.TempoBPM)
	beatSec := 60 / req.TempoBPM

	layers := Layers{
		Drone:  make([]float64, n),
		Chord:  make([]float64, n),
		Melody: make([]float64, n),
	}

	// Drone: low sustained tones, one per beat with high probability.
	for i := 0; i < beats; i++ {
		if c.rng.Float64() >= droneProbability {
			continue
		}
		pitch := droneBasePitch + offsets[c.rng.Intn(len(offsets))]
		tone, err := c.gen.Tone(note.Frequency(pitch), beatSec, req.Instrument, droneVolume)
		if err != nil {
			return Layers{}, err
		}
		synth.ApplyEnvelope(tone, droneAttack, droneDecay)
		addAt(layers.Drone, tone, c.beatStart(i, req.TempoBPM))
	}

	// Chords: rotated triads every two beats, arpeggiated on request.
	for i := 0; i < beats/chordSlotBeats; i++ {
		if c.rng.Float64() >= chordProbability {
			continue
		}
		root := chordBasePitch + offsets[c.rng.Intn(len(offsets))]
		triad, err := note.Triad(root, offsets)
		if err != nil {
			return Layers{}, err
		}
		chord := note.Rotate(triad, c.rng.Intn(len(triad)))
		start := c.beatStart(i*chordSlotBeats, req.TempoBPM)

		if req.UseArpeggio {
			style := arpeggioStyles[c.rng.Intn(len(arpeggioStyles))]
			arp, err := c.Arpeggio(chord, chordSlotBeats*beatSec, req.Instrument, arpeggioVolume, style, req.TempoBPM)
			if err != nil {
				return Layers{}, err
			}
			addAt(layers.Chord, arp, start)
			continue
		}

		for _, pitch := range chord {
			tone, err := c.gen.Tone(note.Frequency(pitch), chordSlotBeats*beatSec, req.Instrument, chordVolume)
			if err != nil {
				return Layers{}, err
			}
			synth.ApplyEnvelope(tone, chordAttack, chordDecay)
			addAt(layers.Chord, tone, start)
		}
	}

	// Melody: sparse short notes with varying length.
	for i := 0; i < beats; i++ {
		if c.rng.Float64() >= melodyProbability {
			continue
		}
		pitch := melodyBasePitch + offsets[c.rng.Intn(len(offsets))]
		durSec := beatSec * melodyDurationFactors[c.rng.Intn(len(melodyDurationFactors))]
		tone, err := c.gen.Tone(note.Frequency(pitch), durSec, req.Instrument, melodyVolume)
		if err != nil {
			return Layers{}, err
		}
		synth.ApplyEnvelope(tone, melodyAttack, melodyDecay)
		addAt(layers.Melody, tone, c.beatStart(i, req.TempoBPM))
	}

	// Noise: a continuous bed under everything, always present.
	noise, err := c.gen.Noise(req.DurationSec, noiseVolume)
	if err != nil {
		return Layers{}, err
	}
	layers.Noise = noise

	return layers, nil
}

func (c *Composer) validate(req Request) error {
	if req.DurationSec <= 0 || math.IsNaN(req.DurationSec) || math.IsInf(req.DurationSec, 0) {
		return fmt.Errorf("%w: chunk duration must be > 0: %f", core.ErrInvalidParameter, req.DurationSec)
	}
	if req.TempoBPM <= 0 || math.IsNaN(req.TempoBPM) || math.IsInf(req.TempoBPM, 0) {
		return fmt.Errorf("%w: tempo must be > 0: %f", core.ErrInvalidParameter, req.TempoBPM)
	}
	if !synth.IsWaveform(req.Instrument) {
		return fmt.Errorf("%w: unknown instrument %q", core.ErrInvalidParameter, req.Instrument)
	}
	return nil
}

// beatStart maps a beat index to its first sample. The per-beat floor
// is a deliberate carry-over: long renders drift slightly against an
// exact beat grid.
func (c *Composer) beatStart(beat int, tempoBPM float64) int {
	return int(math.Floor(float64(beat) * c.cfg.SampleRate * 60 / tempoBPM))
}

// addAt mixes src into dst starting at start, truncating src at the
// buffer end.
func addAt(dst, src []float64, start int) {
	if start < 0 || start >= len(dst) {
		return
	}
	room := len(dst) - start
	if len(src) > room {
		src = src[:room]
	}
	vecmath.AddBlockInPlace(dst[start:start+len(src)], src)
}
