package spectrum

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"go.uber.org/zap"

	"github.com/neurlang/gowavelet/analytic"
	"github.com/neurlang/gowavelet/audio"
	"github.com/neurlang/gowavelet/errs"
	"github.com/neurlang/gowavelet/notes"
	"github.com/neurlang/gowavelet/palette"
	"github.com/neurlang/gowavelet/wavelet"
)

// Progress is advanced once for every note scanned. An mpb bar satisfies it.
type Progress interface {
	Increment()
}

// Spectrum represents the configuration for generating note spectrograms.
type Spectrum struct {
	Octaves       int
	Cycles        int
	HarmonicsStep int
	// harmonic ceiling as a fraction of the sample rate, non-positive means 1/5
	MaxHarmonicRatio float64
	ColumnsPerSecond int
	Colormap         string
	NumColors        int
	// concurrent note scanners, non-positive means one per CPU
	Workers int

	Progress Progress
	Logger   *zap.Logger
}

// NewSpectrum creates a new Spectrum instance with default values.
//
// 300 columns per second is twelve columns per frame of a 25 fps video.
func NewSpectrum() *Spectrum {
	return &Spectrum{
		Octaves:          8,
		Cycles:           wavelet.DefaultCycles,
		HarmonicsStep:    wavelet.DefaultHarmonicsStep,
		MaxHarmonicRatio: wavelet.DefaultMaxRatio,
		ColumnsPerSecond: 300,
		Colormap:         "terrain",
		NumColors:        4096,
		Workers:          runtime.NumCPU(),
	}
}

// Notes returns the note ladder scanned by m.
func (m *Spectrum) Notes() []float64 {
	return notes.Generate(m.Octaves)
}

// Ceiling returns the highest harmonic frequency admitted at sample rate fs.
func (m *Spectrum) Ceiling(fs float64) float64 {
	return wavelet.Ceiling(fs, fs*m.MaxHarmonicRatio)
}

// Validate reports every parameter that would make a run at sample rate fs
// fail or produce undefined output.
func (m *Spectrum) Validate(fs int) error {
	if fs <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", errs.ErrConfiguration, fs)
	}
	if m.Octaves <= 0 {
		return fmt.Errorf("%w: octaves must be positive, got %d", errs.ErrConfiguration, m.Octaves)
	}
	if m.Cycles <= 0 {
		return fmt.Errorf("%w: wavelet cycles must be positive, got %d", errs.ErrConfiguration, m.Cycles)
	}
	if m.HarmonicsStep <= 0 {
		return fmt.Errorf("%w: harmonics step must be positive, got %d", errs.ErrConfiguration, m.HarmonicsStep)
	}
	if m.NumColors < 1 {
		return fmt.Errorf("%w: palette needs at least one colour, got %d", errs.ErrConfiguration, m.NumColors)
	}
	if _, err := Factor(fs, m.ColumnsPerSecond); err != nil {
		return err
	}
	if _, err := palette.Lookup(m.Colormap); err != nil {
		return err
	}

	table := m.Notes()
	top := len(table) - 1
	if ceiling := m.Ceiling(float64(fs)); table[top] > ceiling {
		return fmt.Errorf("%w: note %s (%.2fHz) is above the harmonic ceiling %.2fHz at %dHz, use fewer octaves or a higher sample rate",
			errs.ErrConfiguration, notes.Name(top), table[top], ceiling, fs)
	}
	return nil
}

func (m *Spectrum) logger() *zap.Logger {
	if m.Logger == nil {
		return zap.NewNop()
	}
	return m.Logger
}

func (m *Spectrum) workers() int {
	if m.Workers <= 0 {
		return runtime.NumCPU()
	}
	return m.Workers
}

// ToSpectrum generates the spectrogram image of clip.
func (m *Spectrum) ToSpectrum(ctx context.Context, clip *audio.Clip) (*image.RGBA, error) {
	if err := m.Validate(clip.SampleRate); err != nil {
		return nil, err
	}
	factor, err := Factor(clip.SampleRate, m.ColumnsPerSecond)
	if err != nil {
		return nil, err
	}
	cmap, err := palette.Lookup(m.Colormap)
	if err != nil {
		return nil, err
	}

	signal, err := analytic.Prepare(clip.Samples, clip.Channels)
	if err != nil {
		return nil, err
	}

	matrix, err := m.Scan(ctx, signal, m.Notes(), float64(clip.SampleRate), factor)
	if err != nil {
		return nil, err
	}

	img, err := palette.Render(matrix, cmap, m.NumColors)
	if err != nil {
		return nil, err
	}

	m.logger().Info("spectrum done",
		zap.Int("fs", clip.SampleRate),
		zap.Int("cps", m.ColumnsPerSecond),
		zap.Int("downsampling", factor),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))

	return img, nil
}

// ToSpectrumFile generates a spectrogram from an input audio file (WAV or
// FLAC, by extension) and saves it as a PNG or TIFF image.
func (m *Spectrum) ToSpectrumFile(ctx context.Context, inputFile, outputFile string) error {
	clip, err := audio.Load(inputFile)
	if err != nil {
		return err
	}
	return m.save(ctx, clip, outputFile)
}

// ToSpectrumWav generates a spectrogram from an input WAV audio file and saves it as an image.
func (m *Spectrum) ToSpectrumWav(ctx context.Context, inputFile, outputFile string) error {
	clip, err := audio.LoadWav(inputFile)
	if err != nil {
		return err
	}
	return m.save(ctx, clip, outputFile)
}

// ToSpectrumFlac generates a spectrogram from an input FLAC audio file and saves it as an image.
func (m *Spectrum) ToSpectrumFlac(ctx context.Context, inputFile, outputFile string) error {
	clip, err := audio.LoadFlac(inputFile)
	if err != nil {
		return err
	}
	return m.save(ctx, clip, outputFile)
}

func (m *Spectrum) save(ctx context.Context, clip *audio.Clip, outputFile string) error {
	if err := palette.CheckFormat(outputFile); err != nil {
		return err
	}
	m.logger().Info("audio loaded",
		zap.Int("fs", clip.SampleRate),
		zap.Int("channels", clip.Channels),
		zap.Duration("duration", clip.Duration()))

	img, err := m.ToSpectrum(ctx, clip)
	if err != nil {
		return err
	}
	return palette.Save(outputFile, img)
}
