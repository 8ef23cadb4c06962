// Package notes generates the equal-tempered note ladder the spectrogram
// rows are built from.
//
// The ladder starts at A0 (27.5 Hz) and climbs one semitone per entry, so
// entry n has frequency 27.5·2^(n/12) and entry 48 is A4 (440 Hz).
package notes
