// Package spectrum provides the frequency-domain helpers used to verify
// synthesized material: magnitude/power spectra and a dominant-frequency
// estimator.
package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(in))
	vecmath.Power(out, re, im)
	return out
}

// DominantFrequency estimates the strongest spectral component of a
// real signal in Hz. The signal is zero-padded to the next power of two
// before the transform; resolution is sampleRate/fftSize.
func DominantFrequency(signal []float64, sampleRate float64) (float64, error) {
	if len(signal) == 0 {
		return 0, fmt.Errorf("dominant frequency needs a non-empty signal")
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("dominant frequency sample rate must be > 0: %f", sampleRate)
	}

	fftSize := nextPowerOf2(len(signal))
	inData := make([]complex128, fftSize)
	for i, v := range signal {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return 0, fmt.Errorf("fft forward: %w", err)
	}

	// Skip DC; only non-negative frequencies matter for a real input.
	power := Power(out[:fftSize/2+1])
	peakBin := 1
	for k := 2; k < len(power); k++ {
		if power[k] > power[peakBin] {
			peakBin = k
		}
	}

	return float64(peakBin) * sampleRate / float64(fftSize), nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
