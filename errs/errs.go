// Package errs holds the error kinds shared by the spectrogram pipeline.
//
// Every failure returned by this module wraps exactly one of the sentinels
// below, so callers can branch with errors.Is regardless of which stage
// produced it.
package errs

import "errors"

var (
	// ErrInput marks an unreadable, corrupt or unsupported audio source.
	ErrInput = errors.New("input error")

	// ErrConfiguration marks parameters that would make the pipeline
	// produce undefined output: non-positive rates, a note above the
	// harmonic ceiling, a zero decimation factor and the like.
	ErrConfiguration = errors.New("configuration error")

	// ErrNumericDegenerate marks input that cannot be normalized, such as
	// an entirely silent signal.
	ErrNumericDegenerate = errors.New("numeric degenerate")
)
