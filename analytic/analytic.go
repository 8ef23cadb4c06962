package analytic

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/neurlang/gowavelet/errs"
)

// Prepare mixes interleaved samples of the given channel count down to mono,
// applies the Hilbert transform and normalizes the peak magnitude to one.
func Prepare(samples []float64, channels int) ([]complex128, error) {
	mono, err := Mono(samples, channels)
	if err != nil {
		return nil, err
	}

	signal := Hilbert(mono)
	if err := normalize(signal); err != nil {
		return nil, err
	}
	return signal, nil
}

// normalize scales signal in place so that no sample has a magnitude above
// one and the loudest sample has a magnitude of exactly one.
func normalize(signal []complex128) error {
	var peak float64
	at := 0
	for i, v := range signal {
		if a := cmplx.Abs(v); a > peak {
			peak, at = a, i
		}
	}
	if peak == 0 {
		return fmt.Errorf("%w: signal is silent, cannot normalize", errs.ErrNumericDegenerate)
	}

	// rounding can leave a quotient an ulp above one; widen the divisor until none is
	scaled := make([]complex128, len(signal))
	for div := peak; ; div = math.Nextafter(div, math.Inf(1)) {
		over := false
		for i, v := range signal {
			scaled[i] = complex(real(v)/div, imag(v)/div)
			if cmplx.Abs(scaled[i]) > 1 {
				over = true
				break
			}
		}
		if !over {
			break
		}
	}

	copy(signal, scaled)
	signal[at] = unit(signal[at])
	return nil
}

// unit returns a number of magnitude exactly one pointing along v, which must
// already be within a few ulps of the unit circle.
func unit(v complex128) complex128 {
	p, q := real(v), imag(v)
	// search the ulp neighbourhood of v for a point exactly on the circle
	for dq := 0; dq <= 2*unitSearchQ; dq++ {
		qq := nudge(q, zigzag(dq))
		for dp := 0; dp <= 2*unitSearchP; dp++ {
			pp := nudge(p, zigzag(dp))
			if math.Hypot(pp, qq) == 1 {
				return complex(pp, qq)
			}
		}
	}
	if math.Abs(p) >= math.Abs(q) {
		return complex(math.Copysign(1, p), 0)
	}
	return complex(0, math.Copysign(1, q))
}

const (
	unitSearchP = 64
	unitSearchQ = 8
)

// zigzag maps 0, 1, 2, 3, 4 ... to 0, 1, -1, 2, -2 ...
func zigzag(i int) int {
	if i%2 == 1 {
		return (i + 1) / 2
	}
	return -i / 2
}

// nudge moves x by k ulps, upwards for positive k.
func nudge(x float64, k int) float64 {
	for ; k > 0; k-- {
		x = math.Nextafter(x, math.Inf(1))
	}
	for ; k < 0; k++ {
		x = math.Nextafter(x, math.Inf(-1))
	}
	return x
}

// Mono averages interleaved frames of channels samples each.
func Mono(samples []float64, channels int) ([]float64, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: channel count must be positive, got %d", errs.ErrInput, channels)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples", errs.ErrInput)
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not divide into %d channels", errs.ErrInput, len(samples), channels)
	}
	if channels == 1 {
		return append([]float64(nil), samples...), nil
	}

	mono := make([]float64, len(samples)/channels)
	for i := range mono {
		var sum float64
		for _, s := range samples[i*channels : (i+1)*channels] {
			sum += s
		}
		mono[i] = sum / float64(channels)
	}
	return mono, nil
}

// Hilbert returns the analytic signal of x: the negative frequencies of its
// spectrum are removed and the positive ones doubled, DC and Nyquist kept
// once.
func Hilbert(x []float64) []complex128 {
	n := len(x)
	if n == 0 {
		return []complex128{}
	}

	spectrum := fft.FFTReal(x)

	half := (n + 1) / 2
	for i := 1; i < half; i++ {
		spectrum[i] *= 2
	}
	for i := n/2 + 1; i < n; i++ {
		spectrum[i] = 0
	}

	return fft.IFFT(spectrum)
}
