package effectchain

import (
	"math"
	"math/rand"
	"testing"
)

func testSignal(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*1.6 - 0.8
	}
	return out
}

func TestNew_RejectsBadSampleRate(t *testing.T) {
	for _, sr := range []float64{0, -1, math.NaN()} {
		if _, err := New(Context{SampleRate: sr}); err == nil {
			t.Errorf("sample rate %v: expected error", sr)
		}
	}
}

// TestProcess_AllBypassedIsIdentity: zero amounts and disabled filters
// must return the input unchanged except for final clipping.
func TestProcess_AllBypassedIsIdentity(t *testing.T) {
	chain, err := New(Context{SampleRate: 44100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	left := testSignal(4096, 1)
	right := testSignal(4096, 2)
	wantL := append([]float64(nil), left...)
	wantR := append([]float64(nil), right...)

	p := Params{LowpassHz: FilterBypassHz, HighpassHz: FilterBypassHz}
	if err := chain.Process(left, right, p); err != nil {
		t.Fatalf("Process: %v", err)
	}

	for i := range left {
		if left[i] != wantL[i] || right[i] != wantR[i] {
			t.Fatalf("sample %d altered by bypassed chain", i)
		}
	}
}

func TestProcess_FilterBypassThreshold(t *testing.T) {
	chain, err := New(Context{SampleRate: 44100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	left := testSignal(1024, 3)
	right := testSignal(1024, 4)
	wantL := append([]float64(nil), left...)

	// Exactly 20 Hz must bypass; anything above engages the filter.
	if err := chain.Process(left, right, Params{LowpassHz: 20, HighpassHz: 20}); err != nil {
		t.Fatalf("Process: %v", err)
	}
	for i := range left {
		if left[i] != wantL[i] {
			t.Fatalf("cutoff at threshold engaged the filter (sample %d)", i)
		}
	}

	if err := chain.Process(left, right, Params{LowpassHz: 21}); err != nil {
		t.Fatalf("Process: %v", err)
	}
	same := true
	for i := range left {
		if left[i] != wantL[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("cutoff above threshold did not engage the filter")
	}
}

func TestProcess_ChannelLengthMismatch(t *testing.T) {
	chain, err := New(Context{SampleRate: 44100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := chain.Process(make([]float64, 10), make([]float64, 9), Params{}); err == nil {
		t.Fatal("expected error for mismatched channels")
	}
}

// TestProcess_OutputBounded: a hot input through every stage still lands
// inside [-1, 1].
func TestProcess_OutputBounded(t *testing.T) {
	chain, err := New(Context{SampleRate: 44100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	n := 44100
	left := make([]float64, n)
	right := make([]float64, n)
	for i := range left {
		left[i] = math.Sin(float64(i) * 0.05)
		right[i] = math.Cos(float64(i) * 0.03)
	}

	p := Params{
		Reverb:     0.8,
		Delay:      0.7,
		Chorus:     1.0,
		Phaser:     1.0,
		Widen:      0.9,
		LowpassHz:  12000,
		HighpassHz: 60,
	}
	if err := chain.Process(left, right, p); err != nil {
		t.Fatalf("Process: %v", err)
	}

	for i := 0; i < n; i++ {
		if left[i] < -1 || left[i] > 1 || right[i] < -1 || right[i] > 1 {
			t.Fatalf("sample %d out of range: (%v, %v)", i, left[i], right[i])
		}
	}
}

// TestProcess_Deterministic: the chain is a pure function of its input
// and parameters.
func TestProcess_Deterministic(t *testing.T) {
	p := Params{Reverb: 0.4, Delay: 0.3, Chorus: 0.5, Phaser: 0.25, Widen: 0.2, LowpassHz: 9000, HighpassHz: 80}

	run := func() ([]float64, []float64) {
		chain, err := New(Context{SampleRate: 44100})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		left := testSignal(8192, 11)
		right := testSignal(8192, 12)
		if err := chain.Process(left, right, p); err != nil {
			t.Fatalf("Process: %v", err)
		}
		return left, right
	}

	l1, r1 := run()
	l2, r2 := run()
	for i := range l1 {
		if l1[i] != l2[i] || r1[i] != r2[i] {
			t.Fatalf("sample %d differs across identical runs", i)
		}
	}
}

func TestProcess_RejectsNonFiniteParams(t *testing.T) {
	chain, err := New(Context{SampleRate: 44100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := Params{Reverb: math.NaN()}
	if err := chain.Process(make([]float64, 8), make([]float64, 8), p); err == nil {
		t.Fatal("expected error for NaN amount")
	}
}
