package palette

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/neurlang/gowavelet/errs"
)

// New samples cmap at n evenly spaced points over [0, 1].
func New(cmap Colormap, n int) ([]color.RGBA, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: palette needs at least one colour, got %d", errs.ErrConfiguration, n)
	}
	colors := make([]color.RGBA, n)
	for i := range colors {
		var x float64
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		r, g, b := cmap(x)
		colors[i] = color.RGBA{R: toByte(r), G: toByte(g), B: toByte(b), A: 255}
	}
	return colors, nil
}

func toByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(1, v)) * 255)
}

// Render maps every value of matrix to one of numColors palette entries,
// the largest value to the last entry, and returns the raster with row 0 of
// the matrix on top.
func Render(matrix [][]float64, cmap Colormap, numColors int) (*image.RGBA, error) {
	colors, err := New(cmap, numColors)
	if err != nil {
		return nil, err
	}

	var width int
	var peak float64
	for i, row := range matrix {
		if i == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", errs.ErrConfiguration, i, len(row), width)
		}
		if len(row) > 0 {
			peak = math.Max(peak, floats.Max(row))
		}
	}

	var scale float64
	if peak > 0 {
		scale = float64(numColors-1) / peak
	}

	img := image.NewRGBA(image.Rect(0, 0, width, len(matrix)))
	for y, row := range matrix {
		for x, v := range row {
			img.SetRGBA(x, y, colors[quantize(v, scale, numColors)])
		}
	}
	return img, nil
}

// quantize truncates v·scale to a palette index within [0, n-1].
func quantize(v, scale float64, n int) int {
	if !(v > 0) {
		return 0
	}
	idx := int(v * scale)
	if idx > n-1 {
		return n - 1
	}
	return idx
}
