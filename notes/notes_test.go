package notes

import (
	"math"
	"testing"
)

func expectNearlyEqual(t *testing.T, actual, expected float64) {
	t.Helper()
	if math.Abs(actual-expected) > 1e-9 {
		t.Errorf("expected %v, but got: %v", expected, actual)
	}
}

func TestGenerateEightOctaves(t *testing.T) {
	table := Generate(8)
	if len(table) != 96 {
		t.Fatalf("expected 96 notes, got %d", len(table))
	}
	expectNearlyEqual(t, table[0], 27.5)
	expectNearlyEqual(t, table[12], 55.0)
	expectNearlyEqual(t, table[48], 440.0)
	for i := 1; i < len(table); i++ {
		if table[i] <= table[i-1] {
			t.Fatalf("table not strictly increasing at %d: %v <= %v", i, table[i], table[i-1])
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	if got := Generate(0); len(got) != 0 {
		t.Fatalf("expected empty table, got %d entries", len(got))
	}
	if got := Generate(-3); len(got) != 0 {
		t.Fatalf("expected empty table, got %d entries", len(got))
	}
}

func TestName(t *testing.T) {
	cases := map[int]string{
		0:  "A0",
		2:  "B0",
		3:  "C1",
		48: "A4",
		57: "F#5",
		95: "G#8",
		-1: "?",
	}
	for n, want := range cases {
		if got := Name(n); got != want {
			t.Errorf("Name(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestNearest(t *testing.T) {
	table := Generate(8)
	if got := Nearest(table, 440); got != 48 {
		t.Fatalf("Nearest(440) = %d, want 48", got)
	}
	if got := Nearest(table, 1); got != 0 {
		t.Fatalf("Nearest(1) = %d, want 0", got)
	}
	if got := Nearest(nil, 440); got != -1 {
		t.Fatalf("Nearest on empty table = %d, want -1", got)
	}
}
