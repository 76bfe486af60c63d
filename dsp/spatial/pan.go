// Package spatial converts mono material into the stereo field.
package spatial

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ambient/dsp/core"
)

// Pan spreads a mono signal onto two channels using a constant-gain law:
// left = signal*(1-pan)/2, right = signal*(1+pan)/2 with pan in [-1, 1].
// Pan 0 splits the signal equally, -1 is hard left, +1 hard right.
func Pan(signal []float64, pan float64) (left, right []float64, err error) {
	if pan < -1 || pan > 1 || math.IsNaN(pan) {
		return nil, nil, fmt.Errorf("%w: pan must be in [-1, 1]: %f", core.ErrInvalidParameter, pan)
	}

	left = make([]float64, len(signal))
	right = make([]float64, len(signal))
	vecmath.ScaleBlock(left, signal, (1-pan)/2)
	vecmath.ScaleBlock(right, signal, (1+pan)/2)
	return left, right, nil
}
