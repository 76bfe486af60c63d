// Package note provides equal-tempered pitch math, the scale catalog,
// and chord construction used by the generative composer.
package note

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownScale is returned when a scale name is not in the catalog.
var ErrUnknownScale = errors.New("unknown scale")

// Scale names accepted by Offsets.
const (
	ScaleMajor      = "major"
	ScaleMinor      = "minor"
	ScalePentatonic = "pentatonic"
	ScaleChromatic  = "chromatic"
)

// scales maps a scale name to its ordered semitone offsets from the
// root, inclusive of the octave.
var scales = map[string][]int{
	ScaleMajor:      {0, 2, 4, 5, 7, 9, 11, 12},
	ScaleMinor:      {0, 2, 3, 5, 7, 8, 10, 12},
	ScalePentatonic: {0, 2, 4, 7, 9, 12},
	ScaleChromatic:  {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
}

// Offsets returns the semitone offsets for a named scale.
// The returned slice is a copy; callers may mutate it freely.
func Offsets(name string) ([]int, error) {
	offsets, ok := scales[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, name)
	}
	out := make([]int, len(offsets))
	copy(out, offsets)
	return out, nil
}

// ScaleNames returns the catalog names in sorted order.
func ScaleNames() []string {
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Frequency converts an integer pitch number to Hz on the equal-tempered
// scale where pitch 69 (A4) is 440 Hz.
func Frequency(pitch int) float64 {
	return 440 * math.Pow(2, float64(pitch-69)/12)
}

// Triad builds a three-note chord on root using the third and fifth
// degrees of the scale offsets (offsets[2] and offsets[4]).
func Triad(root int, offsets []int) ([]int, error) {
	if len(offsets) < 5 {
		return nil, fmt.Errorf("triad needs at least 5 scale offsets: %d", len(offsets))
	}
	return []int{root, root + offsets[2], root + offsets[4]}, nil
}

// Rotate returns chord rotated cyclically by n positions. Rotation by
// the chord length (or zero) yields the original order. This is the
// "inversion" of the composer: a reordering, not an octave transposition.
func Rotate(chord []int, n int) []int {
	out := make([]int, len(chord))
	if len(chord) == 0 {
		return out
	}
	n %= len(chord)
	if n < 0 {
		n += len(chord)
	}
	copy(out, chord[n:])
	copy(out[len(chord)-n:], chord[:n])
	return out
}
