// Package spectrum renders audio as a piano-roll spectrogram.
//
// Each row of the output belongs to one note of an equal-tempered ladder,
// highest note on top. A row is produced by convolving the normalized
// analytic signal with the note's harmonic wavelet and taking the
// magnitude; rows are then decimated along time to a fixed number of
// columns per second, clipped, and mapped through a colour palette.
// It supports:
//   - Converting WAV/FLAC audio files to note spectrograms (saved as PNG or TIFF images)
//   - Configurable note range, wavelet length, harmonic content and column rate
//   - Parallel per-note scanning with streaming per-row decimation
package spectrum
