package fractal

import (
	"fmt"
	"sort"
)

// Region is an axis-aligned rectangle of the complex plane. The X
// interval maps to grid columns and the Y interval to grid rows; both
// are half-open, so the right and bottom edges are excluded when a
// region is sampled onto a grid.
type Region struct {
	XMin, XMax float64
	YMin, YMax float64
}

// FullView covers the whole set: cx in [-2, 1), cy in [-1.5, 1.5).
var FullView = Region{XMin: -2.0, XMax: 1.0, YMin: -1.5, YMax: 1.5}

// Landmark regions of the Mandelbrot set.
var (
	// Seahorse Valley - dense filaments and repeating seahorse curls
	SeahorseValley = Region{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}

	// Elephant Valley - large bulb with trunk-like tendrils
	ElephantValley = Region{XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02}

	// Spiral Minibrot - small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325}

	// Triple Spiral - threefold symmetric spiral structure
	TripleSpiral = Region{XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980}

	// Valley of the Dragon - deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850}
)

var regions = map[string]Region{
	"full":     FullView,
	"seahorse": SeahorseValley,
	"elephant": ElephantValley,
	"minibrot": SpiralMinibrot,
	"triple":   TripleSpiral,
	"dragon":   ValleyOfTheDragon,
}

// RegionByName looks up a named region from the catalogue.
func RegionByName(name string) (Region, error) {
	r, ok := regions[name]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownRegion, name, RegionNames())
	}
	return r, nil
}

// RegionNames lists catalogue region names in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r Region) Width() float64  { return r.XMax - r.XMin }
func (r Region) Height() float64 { return r.YMax - r.YMin }

// Zoom scales the region about its center. Factors below 1 zoom in.
func (r Region) Zoom(factor float64) Region {
	cx := (r.XMin + r.XMax) / 2
	cy := (r.YMin + r.YMax) / 2
	hw := r.Width() / 2 * factor
	hh := r.Height() / 2 * factor
	return Region{XMin: cx - hw, XMax: cx + hw, YMin: cy - hh, YMax: cy + hh}
}

// Pan shifts the region by the given fractions of its own size.
func (r Region) Pan(dx, dy float64) Region {
	sx := dx * r.Width()
	sy := dy * r.Height()
	return Region{XMin: r.XMin + sx, XMax: r.XMax + sx, YMin: r.YMin + sy, YMax: r.YMax + sy}
}
