package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/mewkiz/flac"

	"github.com/neurlang/gowavelet/errs"
)

// ErrFileNotLoaded is returned for audio files that decode to no samples.
var ErrFileNotLoaded = fmt.Errorf("%w: wavNotLoaded", errs.ErrInput)

// Clip is decoded PCM audio.
type Clip struct {
	SampleRate int
	Channels   int
	// interleaved, Channels values per frame
	Samples []float64
}

// Frames returns the number of sample frames in c.
func (c *Clip) Frames() int {
	if c.Channels <= 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// Duration returns the playing time of c.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(c.Frames()) * time.Second / time.Duration(c.SampleRate)
}

// Load loads a WAV or FLAC file, chosen by extension.
func Load(inputFile string) (*Clip, error) {
	switch strings.ToLower(filepath.Ext(inputFile)) {
	case ".wav":
		return LoadWav(inputFile)
	case ".flac":
		return LoadFlac(inputFile)
	default:
		return nil, fmt.Errorf("%w: unsupported audio file %q, want .wav or .flac", errs.ErrInput, inputFile)
	}
}

// LoadWav loads a mono or stereo wav file.
func LoadWav(inputFile string) (*Clip, error) {
	file, err := os.Open(inputFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInput, err)
	}

	stream, format, err := wav.Decode(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrInput, inputFile, err)
	}
	// closing the stream closes the file
	defer stream.Close()

	clip := &Clip{SampleRate: int(format.SampleRate), Channels: format.NumChannels}
	if err := clip.read(stream); err != nil {
		return nil, fmt.Errorf("%s: %w", inputFile, err)
	}
	return clip, nil
}

func (c *Clip) read(stream beep.Streamer) error {
	var samples = make([][2]float64, 4096)
	for {
		n, ok := stream.Stream(samples)
		for _, s := range samples[:n] {
			c.Samples = append(c.Samples, s[0])
			if c.Channels > 1 {
				c.Samples = append(c.Samples, s[1])
			}
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInput, err)
	}
	if len(c.Samples) == 0 || c.SampleRate <= 0 {
		return ErrFileNotLoaded
	}
	return nil
}

// LoadFlac loads a flac file with any number of channels.
func LoadFlac(inputFile string) (*Clip, error) {
	stream, err := flac.Open(inputFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrInput, inputFile, err)
	}
	defer stream.Close()

	clip := &Clip{
		SampleRate: int(stream.Info.SampleRate),
		Channels:   int(stream.Info.NChannels),
	}
	scale := float64(int64(1) << (stream.Info.BitsPerSample - 1))

	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", errs.ErrInput, inputFile, err)
		}
		for i := 0; i < int(frame.BlockSize); i++ {
			for _, sub := range frame.Subframes {
				clip.Samples = append(clip.Samples, float64(sub.Samples[i])/scale)
			}
		}
	}

	if len(clip.Samples) == 0 || clip.SampleRate <= 0 {
		return nil, fmt.Errorf("%s: %w", inputFile, ErrFileNotLoaded)
	}
	return clip, nil
}

// SaveWav saves a mono or stereo clip as a 16 bit wav file.
func SaveWav(outputFile string, clip *Clip) error {
	if clip.Channels != 1 && clip.Channels != 2 {
		return fmt.Errorf("%w: wav output supports 1 or 2 channels, got %d", errs.ErrConfiguration, clip.Channels)
	}
	if clip.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", errs.ErrConfiguration, clip.SampleRate)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(clip.SampleRate),
		NumChannels: clip.Channels,
		Precision:   2,
	}
	if err := wav.Encode(f, clip.streamer(), format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// streamer replays c as stereo frames; mono samples are copied to both sides.
func (c *Clip) streamer() beep.Streamer {
	pos := 0
	frames := c.Frames()
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= frames {
			return 0, false
		}
		for n < len(samples) && pos < frames {
			left := c.Samples[pos*c.Channels]
			right := left
			if c.Channels > 1 {
				right = c.Samples[pos*c.Channels+1]
			}
			samples[n] = [2]float64{left, right}
			n++
			pos++
		}
		return n, true
	})
}
