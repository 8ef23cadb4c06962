package wavelet

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/neurlang/gowavelet/errs"
)

func expectNearlyEqual(t *testing.T, actual, expected float64) {
	t.Helper()
	if math.Abs(actual-expected) > 1e-12 {
		t.Errorf("expected %v, but got: %v", expected, actual)
	}
}

func TestBuildLengthAndEnvelope(t *testing.T) {
	cases := []struct {
		fs, fw float64
		cycles int
	}{
		{44100, 440, 11},
		{44100, 27.5, 11},
		{48000, 1000, 11},
		{8000, 100, 4},
		{44100, 6644.88, 11},
		{1000, 250, 2},
	}
	for _, c := range cases {
		w, err := Build(c.fs, c.fw, c.cycles)
		if err != nil {
			t.Fatalf("Build(%v, %v, %d): %v", c.fs, c.fw, c.cycles, err)
		}
		want := int(float64(c.cycles) * c.fs / c.fw)
		if want%2 == 0 {
			want++
		}
		if len(w) != want {
			t.Fatalf("Build(%v, %v, %d) length = %d, want %d", c.fs, c.fw, c.cycles, len(w), want)
		}
		if len(w)%2 != 1 {
			t.Fatalf("length %d is not odd", len(w))
		}
		// the oscillation has unit magnitude, so |kernel| is the envelope
		expectNearlyEqual(t, cmplx.Abs(w[0]), 0)
		expectNearlyEqual(t, cmplx.Abs(w[len(w)-1]), 0)
		expectNearlyEqual(t, cmplx.Abs(w[len(w)/2]), 1)
	}
}

func TestBuildSign(t *testing.T) {
	w, err := Build(44100, 440, DefaultCycles)
	if err != nil {
		t.Fatal(err)
	}
	mid := len(w) / 2
	phase := 2 * math.Pi * 440 * float64(mid) / 44100
	expectNearlyEqual(t, real(w[mid]), -math.Cos(phase))
	expectNearlyEqual(t, imag(w[mid]), -math.Sin(phase))
}

func TestBuildRejectsBadParameters(t *testing.T) {
	for _, c := range [][3]float64{{0, 440, 11}, {44100, 0, 11}, {44100, 440, 0}, {-1, 440, 11}} {
		if _, err := Build(c[0], c[1], int(c[2])); !errors.Is(err, errs.ErrConfiguration) {
			t.Fatalf("Build(%v) error = %v, want ErrConfiguration", c, err)
		}
	}
}

func TestComposeFundamentalOnly(t *testing.T) {
	const fs, fw = 44100.0, 440.0
	// the third harmonic sits above the ceiling, so only the fundamental is used
	composed, err := Compose(fs, fw, 2*fw, DefaultCycles, DefaultHarmonicsStep)
	if err != nil {
		t.Fatal(err)
	}
	built, err := Build(fs, fw, DefaultCycles)
	if err != nil {
		t.Fatal(err)
	}
	if len(composed) != len(built) {
		t.Fatalf("length %d, want %d", len(composed), len(built))
	}
	for i := range built {
		if composed[i] != built[i] {
			t.Fatalf("sample %d: %v != %v", i, composed[i], built[i])
		}
	}
}

func TestComposeAlignsHarmonicsOnMidpoint(t *testing.T) {
	const fs, fw, fmax = 44100.0, 440.0, 1400.0
	composed, err := Compose(fs, fw, fmax, DefaultCycles, DefaultHarmonicsStep)
	if err != nil {
		t.Fatal(err)
	}
	base, _ := Build(fs, fw, DefaultCycles)
	third, _ := Build(fs, 3*fw, DefaultCycles)

	if len(composed) != len(base) {
		t.Fatalf("length %d, want %d", len(composed), len(base))
	}
	mid := len(base) / 2
	off := mid - len(third)/2
	scale := 1 + 1.0/3

	for i := range composed {
		want := base[i]
		if j := i - off; j >= 0 && j < len(third) {
			want += third[j] / 3
		}
		want /= complex(scale, 0)
		if cmplx.Abs(composed[i]-want) > 1e-12 {
			t.Fatalf("sample %d: %v, want %v", i, composed[i], want)
		}
	}
	// both envelopes peak on the same sample
	expectNearlyEqual(t, cmplx.Abs(third[len(third)/2]), 1)
	if cmplx.Abs(composed[0]) > 1e-12 || cmplx.Abs(composed[len(composed)-1]) > 1e-12 {
		t.Fatalf("composed kernel does not vanish at its ends")
	}
}

func TestComposeDefaultCeiling(t *testing.T) {
	const fs, fw = 44100.0, 1000.0
	withDefault, err := Compose(fs, fw, 0, DefaultCycles, DefaultHarmonicsStep)
	if err != nil {
		t.Fatal(err)
	}
	explicit, err := Compose(fs, fw, fs/5, DefaultCycles, DefaultHarmonicsStep)
	if err != nil {
		t.Fatal(err)
	}
	for i := range explicit {
		if withDefault[i] != explicit[i] {
			t.Fatalf("sample %d differs: %v != %v", i, withDefault[i], explicit[i])
		}
	}
}

func TestCeiling(t *testing.T) {
	const fs = 44100.0
	for _, fmax := range []float64{0, -1} {
		if got := Ceiling(fs, fmax); got != fs*DefaultMaxRatio {
			t.Errorf("Ceiling(%v, %v) = %v, want %v", fs, fmax, got, fs*DefaultMaxRatio)
		}
	}
	if got := Ceiling(fs, 5000); got != 5000 {
		t.Errorf("Ceiling(%v, 5000) = %v", fs, got)
	}

	// the resolved ceiling admits the same harmonics Compose sums
	orders := Harmonics(1000, Ceiling(fs, 0), DefaultHarmonicsStep)
	want := []int{1, 3, 5, 7}
	if len(orders) != len(want) {
		t.Fatalf("harmonics %v, want %v", orders, want)
	}
	for i := range want {
		if orders[i] != want[i] {
			t.Fatalf("harmonics %v, want %v", orders, want)
		}
	}
}

func TestComposeRejectsNoteAboveCeiling(t *testing.T) {
	_, err := Compose(22050, 6644.88, 0, DefaultCycles, DefaultHarmonicsStep)
	if !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("error = %v, want ErrConfiguration", err)
	}
	if _, err := Compose(44100, 440, 0, DefaultCycles, 0); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("zero step error = %v, want ErrConfiguration", err)
	}
}

func TestHarmonics(t *testing.T) {
	got := Harmonics(440, 8820, 2)
	want := []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	if len(got) != len(want) {
		t.Fatalf("Harmonics = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Harmonics = %v, want %v", got, want)
		}
	}
	if got := Harmonics(440, 400, 2); len(got) != 0 {
		t.Fatalf("expected no orders below the fundamental, got %v", got)
	}
}
