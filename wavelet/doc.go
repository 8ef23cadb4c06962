// Package wavelet builds the matched-filter kernels used to scan audio for
// musical notes.
//
// A kernel is a Hann-windowed complex oscillation spanning a fixed number of
// cycles of its target frequency. Compose sums a note's fundamental with its
// odd (or otherwise stepped) harmonics into a single kernel, aligning every
// harmonic on the centre sample of the fundamental and normalizing by the
// sum of the harmonic gains so notes with many admitted harmonics are not
// favoured.
package wavelet
