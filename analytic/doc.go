// Package analytic turns decoded PCM into the normalized complex analytic
// signal the note scanner convolves against.
//
// The real part of the result is the mono mixdown of the input, the
// imaginary part its Hilbert transform, and the whole signal is scaled so
// that its largest magnitude is one.
package analytic
