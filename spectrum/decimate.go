package spectrum

import (
	"fmt"
	"math"

	resampler "github.com/tphakala/go-audio-resampler"
	"gonum.org/v1/gonum/floats"

	"github.com/neurlang/gowavelet/errs"
)

// Factor returns the decimation factor that brings fs down to
// columnsPerSecond image columns.
func Factor(fs, columnsPerSecond int) (int, error) {
	if fs <= 0 || columnsPerSecond <= 0 {
		return 0, fmt.Errorf("%w: sample rate %d and columns per second %d must be positive",
			errs.ErrConfiguration, fs, columnsPerSecond)
	}
	factor := fs / columnsPerSecond
	if factor < 1 {
		return 0, fmt.Errorf("%w: %d columns per second exceeds sample rate %d",
			errs.ErrConfiguration, columnsPerSecond, fs)
	}
	return factor, nil
}

// Decimate low-pass filters and downsamples every row sampled at fs by
// factor, then clips the result into [0, max(matrix)] to remove the filter's
// ringing. Every output row has ⌈n/factor⌉ columns.
func Decimate(matrix [][]float64, fs float64, factor int) ([][]float64, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: decimation factor must be at least 1, got %d", errs.ErrConfiguration, factor)
	}
	if fs <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %v", errs.ErrConfiguration, fs)
	}

	out := make([][]float64, len(matrix))
	var hi float64
	for i, row := range matrix {
		if len(row) > 0 {
			hi = math.Max(hi, floats.Max(row))
		}
		var err error
		if out[i], err = decimateRow(row, fs, factor); err != nil {
			return nil, err
		}
	}

	Clip(out, hi)
	return out, nil
}

// Clip clamps every value of matrix into [0, hi] in place.
func Clip(matrix [][]float64, hi float64) {
	for _, row := range matrix {
		for i, v := range row {
			switch {
			case v < 0:
				row[i] = 0
			case v > hi:
				row[i] = hi
			}
		}
	}
}

// Columns is the length of a row of n samples after decimation by factor.
func Columns(n, factor int) int {
	return (n + factor - 1) / factor
}

// decimateRow resamples row from fs to fs/factor and pads or trims the
// result to exactly Columns(len(row), factor) samples. A factor of one
// copies the row.
func decimateRow(row []float64, fs float64, factor int) ([]float64, error) {
	if factor == 1 {
		return append([]float64(nil), row...), nil
	}

	out := make([]float64, Columns(len(row), factor))
	if len(row) == 0 {
		return out, nil
	}

	resampled, err := resampler.ResampleMono(row, fs, fs/float64(factor), resampler.QualityHigh)
	if err != nil {
		return nil, fmt.Errorf("%w: resampling %d samples from %v Hz by %d: %v",
			errs.ErrNumericDegenerate, len(row), fs, factor, err)
	}
	copy(out, resampled)
	return out, nil
}
