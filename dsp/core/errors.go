package core

import "errors"

// ErrInvalidParameter is returned when a caller-supplied value is outside
// the range a component can render (unknown waveform, non-positive
// duration or tempo, out-of-range pan).
var ErrInvalidParameter = errors.New("invalid parameter")
