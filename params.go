package ambient

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ambient/dsp/core"
	"github.com/cwbudde/algo-ambient/dsp/effectchain"
	"github.com/cwbudde/algo-ambient/dsp/note"
	"github.com/cwbudde/algo-ambient/dsp/synth"
)

// Params is the flat per-chunk parameter bundle. The engine never
// retains it; callers own the bundle and may rewrite it between chunks
// (see ModulationRouter).
type Params struct {
	DurationSec float64 `json:"duration_sec"`
	TempoBPM    float64 `json:"tempo_bpm"`
	Scale       string  `json:"scale"`
	Instrument  string  `json:"instrument"`
	UseArpeggio bool    `json:"use_arpeggio"`

	MasterVolume float64 `json:"master_volume"`
	PanOffset    float64 `json:"pan_offset"`

	Reverb     float64 `json:"reverb"`
	Delay      float64 `json:"delay"`
	Chorus     float64 `json:"chorus"`
	Phaser     float64 `json:"phaser"`
	Widen      float64 `json:"widen"`
	LowpassHz  float64 `json:"lowpass_hz"`
	HighpassHz float64 `json:"highpass_hz"`
}

// DefaultParams returns the stock bundle: a five-second minor-scale
// sine chunk at 60 BPM with light reverb and delay.
func DefaultParams() Params {
	fx := effectchain.DefaultParams()
	return Params{
		DurationSec:  5,
		TempoBPM:     60,
		Scale:        note.ScaleMinor,
		Instrument:   synth.WaveSine,
		MasterVolume: 1,
		Reverb:       fx.Reverb,
		Delay:        fx.Delay,
		Chorus:       fx.Chorus,
		Phaser:       fx.Phaser,
		Widen:        fx.Widen,
		LowpassHz:    fx.LowpassHz,
		HighpassHz:   fx.HighpassHz,
	}
}

// validate covers only the engine-level fields; composition and effect
// parameters are validated where they are consumed.
func (p Params) validate() error {
	if p.MasterVolume < 0 || math.IsNaN(p.MasterVolume) || math.IsInf(p.MasterVolume, 0) {
		return fmt.Errorf("%w: master volume must be >= 0: %f", core.ErrInvalidParameter, p.MasterVolume)
	}
	if math.IsNaN(p.PanOffset) || math.IsInf(p.PanOffset, 0) {
		return fmt.Errorf("%w: pan offset must be finite: %f", core.ErrInvalidParameter, p.PanOffset)
	}
	return nil
}
