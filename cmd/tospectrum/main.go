package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"

	"github.com/neurlang/gowavelet/logging"
	"github.com/neurlang/gowavelet/palette"
	"github.com/neurlang/gowavelet/spectrum"
)

func main() {
	// Create a new instance of Spectrum
	var m = spectrum.NewSpectrum()

	var output, level string
	var quiet, dev bool

	flag.IntVar(&m.Octaves, "octaves", m.Octaves, "number of octaves scanned upwards from A0 (27.5Hz)")
	flag.IntVar(&m.Cycles, "cycles", m.Cycles, "oscillations per wavelet, more is sharper in pitch and blurrier in time")
	flag.IntVar(&m.HarmonicsStep, "harmonics-step", m.HarmonicsStep, "step between summed harmonic orders, 2 keeps odd harmonics")
	flag.Float64Var(&m.MaxHarmonicRatio, "fmax-ratio", m.MaxHarmonicRatio, "highest harmonic frequency as a fraction of the sample rate")
	flag.IntVar(&m.ColumnsPerSecond, "cps", m.ColumnsPerSecond, "image columns per second of audio")
	flag.StringVar(&m.Colormap, "colormap", m.Colormap, "colormap, one of "+strings.Join(palette.Names(), ", ")+" (append _r to reverse)")
	flag.IntVar(&m.NumColors, "colors", m.NumColors, "palette size")
	flag.IntVar(&m.Workers, "workers", m.Workers, "notes scanned in parallel")
	flag.StringVar(&output, "o", "", "output image, .png or .tiff (default <audio_file>.png)")
	flag.StringVar(&level, "log-level", "info", "log level: debug, info, warn, error")
	flag.BoolVar(&dev, "dev", false, "human-readable console logs")
	flag.BoolVar(&quiet, "q", false, "no progress bar")
	flag.Parse()

	// Check if the filename argument is provided
	if flag.NArg() < 1 {
		fmt.Println("Usage: tospectrum [flags] <audio_file>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger, err := logging.New(level, dev)
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	m.Logger = logger

	// Get the filename from the command-line arguments
	var inputFile = flag.Arg(0)
	if !strings.HasSuffix(inputFile, ".wav") && !strings.HasSuffix(inputFile, ".flac") {
		inputFile += ".wav"
	}
	var outputFile = output
	if outputFile == "" {
		outputFile = inputFile + ".png"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var progress *mpb.Progress
	var bar *mpb.Bar
	if !quiet {
		progress = mpb.NewWithContext(ctx, mpb.WithWidth(64), mpb.WithOutput(os.Stderr))
		bar = progress.AddBar(int64(len(m.Notes())),
			mpb.PrependDecorators(
				decor.Name("Scanning notes: "),
				decor.CountersNoUnit("%d / %d"),
			),
			mpb.AppendDecorators(
				decor.Percentage(),
				decor.AverageETA(decor.ET_STYLE_GO),
			),
		)
		m.Progress = bar
	}

	// Generate the spectrogram and save it as an image
	err = m.ToSpectrumFile(ctx, inputFile, outputFile)
	if progress != nil {
		if err != nil {
			bar.Abort(false)
		}
		progress.Wait()
	}
	if err != nil {
		logger.Error("generating spectrogram", zap.String("input", inputFile), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("spectrogram written", zap.String("input", inputFile), zap.String("output", outputFile))
}
