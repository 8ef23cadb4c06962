package wavelet

import (
	"fmt"
	"math"

	"github.com/neurlang/gowavelet/errs"
)

// DefaultCycles is the number of oscillations a kernel spans.
const DefaultCycles = 11

// Length returns the odd kernel length for a wavelet of cycles oscillations
// at fw sampled at fs.
func Length(fs, fw float64, cycles int) int {
	return int(float64(cycles)*fs/fw) | 1
}

// Build returns a Hann-windowed complex oscillation at fw.
//
// The kernel has odd length, its envelope is zero at both ends and one at
// the centre sample len/2, and it is negated: kernel = -exp(2πi·fw·t)·env(t).
// The window is the symmetric Hann, 0.5-0.5·cos(2πk/(len-1)), so both end
// samples are exactly zero.
func Build(fs, fw float64, cycles int) ([]complex128, error) {
	if fs <= 0 || fw <= 0 || cycles <= 0 {
		return nil, fmt.Errorf("%w: wavelet needs positive rates and cycles (fs=%v fw=%v cycles=%d)",
			errs.ErrConfiguration, fs, fw, cycles)
	}

	samples := Length(fs, fw, cycles)
	kernel := make([]complex128, samples)

	for k := range kernel {
		sin, cos := math.Sincos(2 * math.Pi * fw * float64(k) / fs)
		env := envelope(k, samples)
		kernel[k] = complex(-cos*env, -sin*env)
	}

	return kernel, nil
}

// envelope is a symmetric Hann window over n samples.
func envelope(k, n int) float64 {
	if n == 1 {
		return 1
	}
	return (1 - math.Cos(2*math.Pi*float64(k)/float64(n-1))) / 2
}
