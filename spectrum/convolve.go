package spectrum

import (
	"github.com/mjibson/go-dsp/dsputils"
	"github.com/mjibson/go-dsp/fft"
)

// convolver performs same-length linear convolutions of one fixed signal
// against many kernels. The signal spectrum is computed once and only read
// afterwards, so a convolver may be shared between goroutines.
type convolver struct {
	size     int
	n        int
	spectrum []complex128
}

// newConvolver prepares signal for kernels of up to longest samples.
func newConvolver(signal []complex128, longest int) *convolver {
	size := dsputils.NextPowerOf2(len(signal) + longest - 1)
	return &convolver{
		size:     size,
		n:        len(signal),
		spectrum: fft.FFT(dsputils.ZeroPad(signal, size)),
	}
}

// same returns the len(signal) samples of signal*kernel with the kernel
// centred on each output sample.
func (c *convolver) same(kernel []complex128) []complex128 {
	k := fft.FFT(dsputils.ZeroPad(kernel, c.size))
	for i := range k {
		k[i] *= c.spectrum[i]
	}
	full := fft.IFFT(k)
	start := (len(kernel) - 1) / 2
	return full[start : start+c.n]
}
