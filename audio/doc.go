// Package audio loads PCM audio from WAV and FLAC files and writes WAV files.
//
// Decoded audio is kept interleaved as float64 samples in [-1, 1] together
// with its sample rate and channel count. Mixing down to mono is left to the
// caller.
package audio
