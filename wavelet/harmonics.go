package wavelet

import (
	"fmt"

	"github.com/neurlang/gowavelet/errs"
)

// DefaultHarmonicsStep admits the fundamental and its odd harmonics.
const DefaultHarmonicsStep = 2

// DefaultMaxRatio places the harmonic ceiling at fs/5 when none is given.
const DefaultMaxRatio = 0.2

// Ceiling resolves the harmonic ceiling used by Compose: fmax itself, or
// fs·DefaultMaxRatio when fmax is not positive.
func Ceiling(fs, fmax float64) float64 {
	if fmax <= 0 {
		return fs * DefaultMaxRatio
	}
	return fmax
}

// Harmonics lists the harmonic orders at or below fmax, starting at the
// fundamental and advancing by step.
func Harmonics(fw, fmax float64, step int) []int {
	if fw <= 0 || step <= 0 {
		return nil
	}
	var orders []int
	for order := 1; float64(order)*fw <= fmax; order += step {
		orders = append(orders, order)
	}
	return orders
}

// Compose sums the fundamental at fw and its harmonics up to fmax into one
// kernel centred like the fundamental. A non-positive fmax means fs/5.
//
// Each harmonic of order k is attenuated by 1/k before it is added, and the
// result is divided by the sum of those gains.
func Compose(fs, fw, fmax float64, cycles, step int) ([]complex128, error) {
	if fs <= 0 || fw <= 0 {
		return nil, fmt.Errorf("%w: wavelet needs positive rates (fs=%v fw=%v)", errs.ErrConfiguration, fs, fw)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: harmonics step must be positive, got %d", errs.ErrConfiguration, step)
	}
	fmax = Ceiling(fs, fmax)
	if fw > fmax {
		return nil, fmt.Errorf("%w: note %.2fHz is above the harmonic ceiling %.2fHz", errs.ErrConfiguration, fw, fmax)
	}

	var res []complex128
	var mid int
	var scale float64

	for _, order := range Harmonics(fw, fmax, step) {
		gain := 1 / float64(order)
		scale += gain

		w, err := Build(fs, fw*float64(order), cycles)
		if err != nil {
			return nil, err
		}
		if order == 1 {
			res, mid = w, len(w)/2
			continue
		}
		accumulate(res, mid, w, gain)
	}

	inv := 1 / scale
	for i, v := range res {
		res[i] = complex(real(v)*inv, imag(v)*inv)
	}
	return res, nil
}

// accumulate adds gain·w into dst on the window centred at mid.
func accumulate(dst []complex128, mid int, w []complex128, gain float64) {
	off := mid - len(w)/2
	for k, v := range w {
		dst[off+k] += complex(real(v)*gain, imag(v)*gain)
	}
}
