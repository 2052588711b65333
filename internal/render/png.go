// Package render turns iteration-count fields into images.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/san-kum/fraclab/internal/field"
)

// WritePNG encodes the field as a size-by-size PNG. Cells that
// exhausted the iteration budget are painted black; escaping cells go
// through a smooth sinusoidal palette keyed on the normalized count.
func WritePNG(w io.Writer, f *field.Field, iterations int32) error {
	size := int(f.Size)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for i := 0; i < size; i++ {
		row := f.Row(int32(i))
		for j := 0; j < size; j++ {
			img.SetRGBA(j, i, CellColor(row[j], iterations))
		}
	}

	return png.Encode(w, img)
}

// CellColor maps one count to a palette color.
func CellColor(count, iterations int32) color.RGBA {
	if iterations > 1 && count == iterations-1 {
		return color.RGBA{A: 255}
	}

	t := float64(count) / float64(iterations)
	r := uint8(255 * (0.5 + 0.5*math.Sin(2*math.Pi*t+0.0)))
	g := uint8(255 * (0.5 + 0.5*math.Sin(2*math.Pi*t+2.1)))
	b := uint8(255 * (0.5 + 0.5*math.Sin(2*math.Pi*t+4.2)))
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
