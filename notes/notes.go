package notes

import (
	"math"
	"strconv"
)

// A0 is the frequency of the first entry of every table.
const A0 = 27.5

// SemitonesPerOctave is the number of table entries per octave.
const SemitonesPerOctave = 12

var names = [SemitonesPerOctave]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// Generate returns octaves*12 ascending note frequencies starting at A0.
func Generate(octaves int) []float64 {
	if octaves <= 0 {
		return []float64{}
	}
	table := make([]float64, octaves*SemitonesPerOctave)
	for n := range table {
		table[n] = A0 * math.Pow(2, float64(n)/SemitonesPerOctave)
	}
	return table
}

// Name returns the scientific pitch name of table entry n, e.g. "A0" for 0
// and "C1" for 3.
func Name(n int) string {
	if n < 0 {
		return "?"
	}
	// octave numbers change at C, which is three semitones above A
	octave := (n + 9) / SemitonesPerOctave
	return names[n%SemitonesPerOctave] + strconv.Itoa(octave)
}

// Nearest returns the index of the table entry closest to freq, or -1 for an
// empty table.
func Nearest(table []float64, freq float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, f := range table {
		if d := math.Abs(f - freq); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
