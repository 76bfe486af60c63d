package ambient

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ambient/dsp/lfo"
)

// TestModulationRouter_Apply verifies each target rewrite at a phase
// where the sine oscillators read exactly their depth.
func TestModulationRouter_Apply(t *testing.T) {
	// rate 0.25 Hz and dt 1 s land every oscillator at phase pi/2.
	r := NewModulationRouter(
		Route{Osc: lfo.New(0.25, 0.5, lfo.WaveSine), Target: TargetVolume},
		Route{Osc: lfo.New(0.25, 0.3, lfo.WaveSine), Target: TargetPan},
		Route{Osc: lfo.New(0.25, 0.1, lfo.WaveSine), Target: TargetLowpass},
	)

	p := DefaultParams()
	p.LowpassHz = 10000
	got := r.Apply(p, 1)

	if math.Abs(got.MasterVolume-1.5) > 1e-12 {
		t.Errorf("MasterVolume = %f, want 1.5", got.MasterVolume)
	}
	if math.Abs(got.PanOffset-0.3) > 1e-12 {
		t.Errorf("PanOffset = %f, want 0.3", got.PanOffset)
	}
	if math.Abs(got.LowpassHz-11000) > 1e-6 {
		t.Errorf("LowpassHz = %f, want 11000", got.LowpassHz)
	}
	if p.MasterVolume != 1 {
		t.Error("Apply mutated its input bundle")
	}
}

// TestModulationRouter_VolumeFloorsAtZero verifies a deep negative
// swing cannot drive the volume below zero.
func TestModulationRouter_VolumeFloorsAtZero(t *testing.T) {
	// rate 0.75 Hz and dt 1 s land at phase 3*pi/2: value = -depth.
	r := NewModulationRouter(
		Route{Osc: lfo.New(0.75, 2, lfo.WaveSine), Target: TargetVolume},
	)

	got := r.Apply(DefaultParams(), 1)
	if got.MasterVolume != 0 {
		t.Fatalf("MasterVolume = %f, want 0", got.MasterVolume)
	}
}

// TestModulationRouter_PanClamped verifies pan offsets accumulate only
// within [-1, 1].
func TestModulationRouter_PanClamped(t *testing.T) {
	r := NewModulationRouter(
		Route{Osc: lfo.New(0.25, 3, lfo.WaveSine), Target: TargetPan},
	)

	got := r.Apply(DefaultParams(), 1)
	if got.PanOffset != 1 {
		t.Fatalf("PanOffset = %f, want 1", got.PanOffset)
	}
}

// TestModulationRouter_UnknownTargetAdvancesPhase verifies an unroutable
// target leaves the bundle alone but still steps its oscillator.
func TestModulationRouter_UnknownTargetAdvancesPhase(t *testing.T) {
	osc := lfo.New(0.25, 0.5, lfo.WaveSine)
	r := NewModulationRouter(Route{Osc: osc, Target: "detune"})

	p := DefaultParams()
	got := r.Apply(p, 1)
	if got != p {
		t.Fatal("unknown target rewrote the bundle")
	}
	if math.Abs(osc.Phase()-math.Pi/2) > 1e-12 {
		t.Fatalf("oscillator phase = %f, want pi/2", osc.Phase())
	}
}

// TestNewDefaultModulationRouter verifies the stock route sets.
func TestNewDefaultModulationRouter(t *testing.T) {
	if got := len(NewDefaultModulationRouter(false).routes); got != 2 {
		t.Fatalf("routes without timbre = %d, want 2", got)
	}
	if got := len(NewDefaultModulationRouter(true).routes); got != 3 {
		t.Fatalf("routes with timbre = %d, want 3", got)
	}
}
