package palette

import (
	"fmt"
	"strings"

	"github.com/neurlang/gowavelet/errs"
)

// Colormap maps x in [0, 1] to red, green and blue intensities in [0, 1].
type Colormap func(x float64) (r, g, b float64)

// anchor is one breakpoint of a piecewise-linear channel.
type anchor struct {
	x, y float64
}

type segments struct {
	r, g, b []anchor
}

// named colormaps, breakpoints as published for the matplotlib maps of the
// same names
var colormaps = map[string]segments{
	"terrain": {
		r: []anchor{{0, 0.2}, {0.15, 0}, {0.25, 0}, {0.5, 1}, {0.75, 0.5}, {1, 1}},
		g: []anchor{{0, 0.2}, {0.15, 0.6}, {0.25, 0.8}, {0.5, 1}, {0.75, 0.36}, {1, 1}},
		b: []anchor{{0, 0.6}, {0.15, 1}, {0.25, 0.4}, {0.5, 0.6}, {0.75, 0.33}, {1, 1}},
	},
	"gray": {
		r: []anchor{{0, 0}, {1, 1}},
		g: []anchor{{0, 0}, {1, 1}},
		b: []anchor{{0, 0}, {1, 1}},
	},
	"hot": {
		r: []anchor{{0, 0.0416}, {0.365079, 1}, {1, 1}},
		g: []anchor{{0, 0}, {0.365079, 0}, {0.746032, 1}, {1, 1}},
		b: []anchor{{0, 0}, {0.746032, 0}, {1, 1}},
	},
	"jet": {
		r: []anchor{{0, 0}, {0.35, 0}, {0.66, 1}, {0.89, 1}, {1, 0.5}},
		g: []anchor{{0, 0}, {0.125, 0}, {0.375, 1}, {0.64, 1}, {0.91, 0}, {1, 0}},
		b: []anchor{{0, 0.5}, {0.11, 1}, {0.34, 1}, {0.65, 0}, {1, 0}},
	},
	"cool": {
		r: []anchor{{0, 0}, {1, 1}},
		g: []anchor{{0, 1}, {1, 0}},
		b: []anchor{{0, 1}, {1, 1}},
	},
	"copper": {
		r: []anchor{{0, 0}, {0.809524, 1}, {1, 1}},
		g: []anchor{{0, 0}, {1, 0.7812}},
		b: []anchor{{0, 0}, {1, 0.4975}},
	},
}

// Lookup returns the named colormap. "grey" is accepted for "gray" and a
// "_r" suffix reverses any map.
func Lookup(name string) (Colormap, error) {
	key := strings.ToLower(name)
	reversed := strings.HasSuffix(key, "_r")
	key = strings.TrimSuffix(key, "_r")
	if key == "grey" {
		key = "gray"
	}

	seg, ok := colormaps[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown colormap %q", errs.ErrConfiguration, name)
	}

	cmap := func(x float64) (r, g, b float64) {
		return interpolate(seg.r, x), interpolate(seg.g, x), interpolate(seg.b, x)
	}
	if reversed {
		return func(x float64) (r, g, b float64) { return cmap(1 - x) }, nil
	}
	return cmap, nil
}

// Names lists the base colormap names Lookup accepts.
func Names() []string {
	return []string{"cool", "copper", "gray", "hot", "jet", "terrain"}
}

func interpolate(points []anchor, x float64) float64 {
	if x <= points[0].x {
		return points[0].y
	}
	for i := 1; i < len(points); i++ {
		if x <= points[i].x {
			lo, hi := points[i-1], points[i]
			return lo.y + (x-lo.x)/(hi.x-lo.x)*(hi.y-lo.y)
		}
	}
	return points[len(points)-1].y
}
