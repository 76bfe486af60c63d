package core

import "testing"

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 4, 16)

	reused := EnsureLen(buf, 10)
	if len(reused) != 10 {
		t.Fatalf("length = %d, want 10", len(reused))
	}
	if &reused[0] != &buf[0] {
		t.Error("capacity not reused")
	}

	grown := EnsureLen(buf, 32)
	if len(grown) != 32 {
		t.Fatalf("grown length = %d, want 32", len(grown))
	}

	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("zero request length = %d, want 0", len(got))
	}
}

func TestCopyInto(t *testing.T) {
	dst := []float64{9, 9, 9}
	if n := CopyInto(dst, []float64{1, 2}); n != 2 {
		t.Fatalf("copied %d, want 2", n)
	}
	want := []float64{1, 2, 9}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, dst[i], want[i])
		}
	}

	if n := CopyInto(dst[:1], []float64{5, 6, 7}); n != 1 || dst[0] != 5 {
		t.Fatalf("short dst: copied %d, dst[0] = %v", n, dst[0])
	}
}
