package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/neurlang/gowavelet/audio"
	"github.com/neurlang/gowavelet/logging"
	"github.com/neurlang/gowavelet/notes"
	"github.com/neurlang/gowavelet/wavelet"
)

func main() {
	var fs, cycles, step int
	var ratio float64
	var output string

	flag.IntVar(&fs, "fs", 44100, "sample rate of the wavelet")
	flag.IntVar(&cycles, "cycles", wavelet.DefaultCycles, "oscillations per wavelet")
	flag.IntVar(&step, "harmonics-step", wavelet.DefaultHarmonicsStep, "step between summed harmonic orders")
	flag.Float64Var(&ratio, "fmax-ratio", wavelet.DefaultMaxRatio, "highest harmonic frequency as a fraction of the sample rate")
	flag.StringVar(&output, "o", "", "output wav file (default wavelet-<hz>.wav)")
	flag.Parse()

	// Check if the note argument is provided
	if flag.NArg() < 1 {
		fmt.Println("Usage: towavelet [flags] <note_index>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger, err := logging.New("info", true)
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	n, err := strconv.Atoi(flag.Arg(0))
	if err != nil || n < 0 {
		logger.Error("note index must be a non-negative integer", zap.String("note", flag.Arg(0)))
		os.Exit(1)
	}
	table := notes.Generate(n/notes.SemitonesPerOctave + 1)
	fw := table[n]
	fmax := wavelet.Ceiling(float64(fs), ratio*float64(fs))

	kernel, err := wavelet.Compose(float64(fs), fw, fmax, cycles, step)
	if err != nil {
		logger.Error("building wavelet", zap.String("note", notes.Name(n)), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	// real part left, imaginary part right
	clip := &audio.Clip{SampleRate: fs, Channels: 2, Samples: make([]float64, 0, 2*len(kernel))}
	for _, v := range kernel {
		clip.Samples = append(clip.Samples, real(v), imag(v))
	}

	var outputFile = output
	if outputFile == "" {
		outputFile = fmt.Sprintf("wavelet-%.1f.wav", fw)
	}
	if err := audio.SaveWav(outputFile, clip); err != nil {
		logger.Error("saving wavelet", zap.String("output", outputFile), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("wavelet written",
		zap.String("note", notes.Name(n)),
		zap.Float64("hz", fw),
		zap.Ints("harmonics", wavelet.Harmonics(fw, fmax, step)),
		zap.Int("samples", len(kernel)),
		zap.String("output", outputFile))
}
