package compose

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ambient/dsp/core"
	"github.com/cwbudde/algo-ambient/dsp/note"
	"github.com/cwbudde/algo-ambient/dsp/synth"
)

// Arpeggio traversal styles.
const (
	StyleUp     = "up"
	StyleDown   = "down"
	StyleRandom = "random"
)

const (
	arpeggioVolume = 0.05
	arpeggioAttack = 0.02
	arpeggioDecay  = 0.3
)

var arpeggioStyles = []string{StyleUp, StyleDown, StyleRandom}

// Arpeggio renders the chord as a run of beat-length notes on the beat
// grid. The traversal order covers every chord note once and is tiled
// across all beat slots in the duration; StyleRandom draws one
// permutation from the composer's random source.
func (c *Composer) Arpeggio(chord []int, durationSec float64, instrument string, volume float64, style string, tempoBPM float64) ([]float64, error) {
	if len(chord) == 0 {
		return nil, fmt.Errorf("%w: arpeggio chord is empty", core.ErrInvalidParameter)
	}
	if durationSec <= 0 {
		return nil, fmt.Errorf("%w: arpeggio duration must be > 0: %f", core.ErrInvalidParameter, durationSec)
	}
	if tempoBPM <= 0 {
		return nil, fmt.Errorf("%w: tempo must be > 0: %f", core.ErrInvalidParameter, tempoBPM)
	}

	order, err := c.arpeggioOrder(len(chord), style)
	if err != nil {
		return nil, err
	}

	sr := c.cfg.SampleRate
	n := int(math.Round(durationSec * sr))
	out := make([]float64, n)

	slots := int(durationSec / 60 * tempoBPM)
	beatSec := 60 / tempoBPM
	for slot := 0; slot < slots; slot++ {
		pitch := chord[order[slot%len(order)]]
		tone, err := c.gen.Tone(note.Frequency(pitch), beatSec, instrument, volume)
		if err != nil {
			return nil, err
		}
		synth.ApplyEnvelope(tone, arpeggioAttack, arpeggioDecay)
		addAt(out, tone, c.beatStart(slot, tempoBPM))
	}
	return out, nil
}

// arpeggioOrder builds the index traversal for one chord.
func (c *Composer) arpeggioOrder(size int, style string) ([]int, error) {
	switch style {
	case StyleUp:
		order := make([]int, size)
		for i := range order {
			order[i] = i
		}
		return order, nil
	case StyleDown:
		order := make([]int, size)
		for i := range order {
			order[i] = size - 1 - i
		}
		return order, nil
	case StyleRandom:
		return c.rng.Perm(size), nil
	default:
		return nil, fmt.Errorf("%w: unknown arpeggio style %q", core.ErrInvalidParameter, style)
	}
}
