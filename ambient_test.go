package ambient

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ambient/dsp/core"
	"github.com/cwbudde/algo-ambient/dsp/note"
)

// TestEngine_GenerateChunkSizeAndRange verifies a default five-second
// render spans 220500 frames per channel inside [-1, 1].
func TestEngine_GenerateChunkSizeAndRange(t *testing.T) {
	e, err := NewEngine(WithSeed(42))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	chunk, err := e.GenerateChunk(DefaultParams())
	if err != nil {
		t.Fatalf("GenerateChunk failed: %v", err)
	}

	const wantFrames = 220500
	if chunk.Frames() != wantFrames {
		t.Fatalf("Frames() = %d, want %d", chunk.Frames(), wantFrames)
	}
	if len(chunk.Right) != wantFrames {
		t.Fatalf("right channel length = %d, want %d", len(chunk.Right), wantFrames)
	}
	for i := range chunk.Left {
		if math.Abs(chunk.Left[i]) > 1 || math.Abs(chunk.Right[i]) > 1 {
			t.Fatalf("sample %d out of range: left=%f right=%f", i, chunk.Left[i], chunk.Right[i])
		}
	}
}

// TestEngine_Reproducible verifies identically seeded engines render
// bit-identical chunks.
func TestEngine_Reproducible(t *testing.T) {
	p := DefaultParams()
	p.UseArpeggio = true
	p.Chorus = 0.4
	p.Phaser = 0.3

	render := func() *Chunk {
		e, err := NewEngine(WithSeed(7))
		if err != nil {
			t.Fatalf("NewEngine failed: %v", err)
		}
		chunk, err := e.GenerateChunk(p)
		if err != nil {
			t.Fatalf("GenerateChunk failed: %v", err)
		}
		return chunk
	}

	a, b := render(), render()
	for i := range a.Left {
		if a.Left[i] != b.Left[i] || a.Right[i] != b.Right[i] {
			t.Fatalf("renders diverge at sample %d", i)
		}
	}
}

// TestEngine_RejectsInvalidParams verifies engine-level validation and
// error propagation from the composer.
func TestEngine_RejectsInvalidParams(t *testing.T) {
	e, err := NewEngine(WithSeed(1))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	p := DefaultParams()
	p.MasterVolume = -0.5
	if _, err := e.GenerateChunk(p); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("negative master volume: err = %v, want core.ErrInvalidParameter", err)
	}

	p = DefaultParams()
	p.Instrument = "organ"
	if _, err := e.GenerateChunk(p); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("unknown instrument: err = %v, want core.ErrInvalidParameter", err)
	}

	p = DefaultParams()
	p.Scale = "dorian"
	if _, err := e.GenerateChunk(p); !errors.Is(err, note.ErrUnknownScale) {
		t.Fatalf("unknown scale: err = %v, want note.ErrUnknownScale", err)
	}
}

// TestNewEngine_RejectsBadSampleRate verifies option validation.
func TestNewEngine_RejectsBadSampleRate(t *testing.T) {
	if _, err := NewEngine(WithSampleRate(0)); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v, want core.ErrInvalidParameter", err)
	}
}

// TestEngine_MasterVolumeZeroSilences verifies a zero master volume
// yields silence.
func TestEngine_MasterVolumeZeroSilences(t *testing.T) {
	e, err := NewEngine(WithSeed(3))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	p := DefaultParams()
	p.MasterVolume = 0
	chunk, err := e.GenerateChunk(p)
	if err != nil {
		t.Fatalf("GenerateChunk failed: %v", err)
	}

	for i := range chunk.Left {
		if chunk.Left[i] != 0 || chunk.Right[i] != 0 {
			t.Fatalf("nonzero sample %d with zero master volume", i)
		}
	}
}

// TestEngine_PanOffsetHardLeft verifies a full left pan offset mutes
// the right channel.
func TestEngine_PanOffsetHardLeft(t *testing.T) {
	e, err := NewEngine(WithSeed(3))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	p := DefaultParams()
	p.PanOffset = -1
	chunk, err := e.GenerateChunk(p)
	if err != nil {
		t.Fatalf("GenerateChunk failed: %v", err)
	}

	for i, s := range chunk.Right {
		if s != 0 {
			t.Fatalf("right channel nonzero at sample %d: %f", i, s)
		}
	}
}
