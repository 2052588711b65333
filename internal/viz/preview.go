// Package viz renders fields in the terminal: a density-ramp ASCII
// preview and an interactive bubbletea explorer.
package viz

import (
	"strings"

	"github.com/san-kum/fraclab/internal/field"
)

// ramp orders glyphs by visual density; the last glyph marks cells
// that exhausted the iteration budget.
const ramp = " .:-=+*#%@"

// Render draws the field as ASCII art at most maxWidth characters
// wide. Rows are sampled at half the column rate to compensate for
// terminal cell aspect ratio.
func Render(f *field.Field, iterations int32, maxWidth int) string {
	if maxWidth <= 0 || f == nil || f.Size == 0 {
		return ""
	}

	cols := int(f.Size)
	if cols > maxWidth {
		cols = maxWidth
	}
	rows := cols / 2
	if rows < 1 {
		rows = 1
	}

	var sb strings.Builder
	sb.Grow(rows * (cols + 1))

	for r := 0; r < rows; r++ {
		i := int32(r) * f.Size / int32(rows)
		row := f.Row(i)
		for c := 0; c < cols; c++ {
			j := int32(c) * f.Size / int32(cols)
			sb.WriteByte(ramp[glyphIndex(row[j], iterations)])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func glyphIndex(count, iterations int32) int {
	if iterations <= 1 {
		return 0
	}
	if count >= iterations-1 {
		return len(ramp) - 1
	}
	idx := int(int64(count) * int64(len(ramp)-1) / int64(iterations-1))
	if idx >= len(ramp)-1 {
		idx = len(ramp) - 2
	}
	return idx
}
