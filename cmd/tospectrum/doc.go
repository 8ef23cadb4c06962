// Command tospectrum converts audio files (WAV/FLAC) to note spectrogram images (PNG/TIFF).
//
// Every row of the image is one note of an equal-tempered scale, highest note
// on top, and every column a fixed slice of time (300 per second by default,
// twelve columns per frame of a 25 fps video). Rows are computed by
// convolving the audio with a harmonic wavelet tuned to the note.
//
// Usage:
//
//	tospectrum [flags] <audio_file>
//
// The output image is named <audio_file>.png unless -o is given.
//
// Supported input formats: .wav, .flac
//
// The image can be turned into a scrolling video with ffmpeg, for example:
//
//	ffmpeg -loop 1 -i song.wav.png -i song.wav -vf "pad=iw+4096:ih:0:0,scale=iw:ih*5,crop=ih*16/9:ih:y=0:x=12*n" -r 25 -shortest song.mp4
package main
