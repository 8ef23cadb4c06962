package spectrum

import (
	"context"
	"fmt"
	"math/cmplx"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/neurlang/gowavelet/errs"
	"github.com/neurlang/gowavelet/wavelet"
)

// Analyze convolves signal with the harmonic wavelet of every note in table
// and returns the magnitude matrix. Note i lands in row len(table)-i-1, so
// the highest note is row 0.
func (m *Spectrum) Analyze(ctx context.Context, signal []complex128, table []float64, fs float64) ([][]float64, error) {
	rows, _, err := m.scan(ctx, signal, table, fs, func(mag []float64) ([]float64, error) { return mag, nil })
	return rows, err
}

// Scan is Analyze followed by Decimate, except that every row is decimated
// as soon as it is computed so the full-rate matrix is never held in memory.
// The result is the same as Decimate(Analyze(...), fs, factor).
func (m *Spectrum) Scan(ctx context.Context, signal []complex128, table []float64, fs float64, factor int) ([][]float64, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: decimation factor must be at least 1, got %d", errs.ErrConfiguration, factor)
	}

	rows, peaks, err := m.scan(ctx, signal, table, fs, func(mag []float64) ([]float64, error) {
		return decimateRow(mag, fs, factor)
	})
	if err != nil {
		return nil, err
	}

	var hi float64
	if len(peaks) > 0 {
		hi = floats.Max(peaks)
	}
	Clip(rows, hi)
	return rows, nil
}

// scan runs the per-note convolutions on a bounded pool of goroutines. Each
// goroutine owns exactly one row slot and one peak slot, so no locking is
// needed. finish maps the full-rate magnitude row to the stored row.
func (m *Spectrum) scan(ctx context.Context, signal []complex128, table []float64, fs float64,
	finish func(mag []float64) ([]float64, error)) (rows [][]float64, peaks []float64, err error) {

	if len(signal) == 0 {
		return nil, nil, fmt.Errorf("%w: empty signal", errs.ErrInput)
	}
	if fs <= 0 {
		return nil, nil, fmt.Errorf("%w: sample rate must be positive, got %v", errs.ErrConfiguration, fs)
	}

	count := len(table)
	rows = make([][]float64, count)
	peaks = make([]float64, count)
	if count == 0 {
		return rows, peaks, nil
	}

	ceiling := m.Ceiling(fs)
	// the lowest note has the longest kernel, harmonics only ever shorten it
	longest := 0
	for _, fw := range table {
		if fw <= 0 {
			return nil, nil, fmt.Errorf("%w: note frequency must be positive, got %v", errs.ErrConfiguration, fw)
		}
		if l := wavelet.Length(fs, fw, m.Cycles); l > longest {
			longest = l
		}
	}
	conv := newConvolver(signal, longest)

	log := m.logger()
	log.Debug("scanning notes",
		zap.Int("notes", count),
		zap.Int("samples", len(signal)),
		zap.Int("fft", conv.size),
		zap.Int("workers", m.workers()))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers())

	for i, fw := range table {
		i, fw := i, fw
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			kernel, err := wavelet.Compose(fs, fw, ceiling, m.Cycles, m.HarmonicsStep)
			if err != nil {
				return err
			}

			response := conv.same(kernel)
			mag := make([]float64, len(response))
			for t, v := range response {
				mag[t] = cmplx.Abs(v)
			}

			row := count - i - 1
			peaks[i] = floats.Max(mag)
			if rows[row], err = finish(mag); err != nil {
				return err
			}

			log.Debug("scanned note",
				zap.Int("note", i),
				zap.Float64("hz", fw),
				zap.Int("row", row),
				zap.Int("kernel", len(kernel)))
			if m.Progress != nil {
				m.Progress.Increment()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return rows, peaks, nil
}
