package palette

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/neurlang/gowavelet/errs"
)

func mustLookup(t *testing.T, name string) Colormap {
	t.Helper()
	cmap, err := Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", name, err)
	}
	return cmap
}

func TestNewSamplesEndpoints(t *testing.T) {
	colors, err := New(mustLookup(t, "gray"), 256)
	if err != nil {
		t.Fatal(err)
	}
	if colors[0] != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("first colour %v, want black", colors[0])
	}
	if colors[255] != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("last colour %v, want white", colors[255])
	}
	for i := 1; i < len(colors); i++ {
		if colors[i].R < colors[i-1].R {
			t.Fatalf("gray palette not monotonic at %d", i)
		}
	}

	terrain, err := New(mustLookup(t, "terrain"), 4096)
	if err != nil {
		t.Fatal(err)
	}
	if c := terrain[0]; c.R != 51 || c.G != 51 {
		t.Fatalf("terrain starts at %v, want dark blue", c)
	}
	if c := terrain[4095]; c != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("terrain ends at %v, want white", c)
	}

	single, err := New(mustLookup(t, "gray"), 1)
	if err != nil || len(single) != 1 || single[0].R != 0 {
		t.Fatalf("single colour palette = %v, %v", single, err)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range append(Names(), "grey", "Terrain", "jet_r") {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
	if _, err := Lookup("rainbowish"); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("unknown colormap error = %v, want ErrConfiguration", err)
	}

	forward := mustLookup(t, "hot")
	reversed := mustLookup(t, "hot_r")
	for _, x := range []float64{0, 0.2, 0.5, 0.9, 1} {
		r1, g1, b1 := forward(x)
		r2, g2, b2 := reversed(1 - x)
		if math.Abs(r1-r2)+math.Abs(g1-g2)+math.Abs(b1-b2) > 1e-9 {
			t.Fatalf("hot(%v) != hot_r(%v)", x, 1-x)
		}
	}
}

func TestQuantize(t *testing.T) {
	const n = 4096
	scale := float64(n-1) / 2.5
	cases := []struct {
		v    float64
		want int
	}{
		{0, 0},
		{-0.1, 0},
		{2.5, n - 1},
		{3, n - 1},
		{1.25, 2047},
	}
	for _, c := range cases {
		if got := quantize(c.v, scale, n); got != c.want {
			t.Errorf("quantize(%v) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestRenderLayout(t *testing.T) {
	matrix := [][]float64{
		{4, 0, 2},
		{0, 1, 0},
	}
	img, err := Render(matrix, mustLookup(t, "gray"), 5)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds %v, want 3x2", b)
	}
	// palette of 5 grays: 0, 63, 127, 191, 255
	want := [][]uint8{
		{255, 0, 127},
		{0, 63, 0},
	}
	for y := range want {
		for x := range want[y] {
			if got := img.RGBAAt(x, y).R; got != want[y][x] {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}
}

func TestRenderEdgeCases(t *testing.T) {
	cmap := mustLookup(t, "terrain")
	img, err := Render([][]float64{{0, 0}, {0, 0}}, cmap, 16)
	if err != nil {
		t.Fatalf("all-zero matrix: %v", err)
	}
	first, _ := New(cmap, 16)
	if img.RGBAAt(1, 1) != first[0] {
		t.Fatalf("zero matrix not mapped to the first palette entry")
	}
	if _, err := Render([][]float64{{1, 2}, {3}}, cmap, 16); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("ragged matrix error = %v, want ErrConfiguration", err)
	}
	if _, err := Render([][]float64{{1}}, cmap, 0); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("zero colours error = %v, want ErrConfiguration", err)
	}
}

func TestSaveLossless(t *testing.T) {
	img, err := Render([][]float64{{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 1, 1, 1}}, mustLookup(t, "jet"), 4096)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	decoders := map[string]func(f *os.File) (image.Image, error){
		"out.png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"out.tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
		"out.tif":  func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}
	for name, decode := range decoders {
		path := filepath.Join(dir, name)
		if err := Save(path, img); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r1, g1, b1, _ := img.At(x, y).RGBA()
				r2, g2, b2, _ := decoded.At(x, y).RGBA()
				if r1 != r2 || g1 != g2 || b1 != b2 {
					t.Fatalf("%s pixel (%d,%d) changed", name, x, y)
				}
			}
		}
	}

	if err := Save(filepath.Join(dir, "out.jpg"), img); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("jpeg output error = %v, want ErrConfiguration", err)
	}
}
