// Command towavelet writes the harmonic wavelet of one note as a stereo WAV file.
//
// The real part of the complex wavelet goes to the left channel and the
// imaginary part to the right, which makes the kernel easy to inspect in an
// audio editor or to listen to.
//
// Usage:
//
//	towavelet [flags] <note_index>
//
// Note 0 is A0 (27.5Hz), note 48 is A4 (440Hz).
// The output WAV file will be named wavelet-<hz>.wav unless -o is given.
package main
