package analysis

import "github.com/san-kum/fraclab/internal/field"

// Histogram buckets the field's counts into bins spanning
// [0, iterations). Returned values are raw cell tallies as float64,
// ready for terminal plotting.
func Histogram(f *field.Field, iterations int32, bins int) []float64 {
	if bins <= 0 || iterations <= 0 {
		return nil
	}
	if int32(bins) > iterations {
		bins = int(iterations)
	}

	hist := make([]float64, bins)
	for _, v := range f.Data {
		idx := int(int64(v) * int64(bins) / int64(iterations))
		if idx >= bins {
			idx = bins - 1
		}
		hist[idx]++
	}
	return hist
}

// RowProfile extracts one grid row as float64 samples, for plotting a
// horizontal slice through the field.
func RowProfile(f *field.Field, row int32) []float64 {
	if row < 0 || row >= f.Size {
		return nil
	}
	src := f.Row(row)
	profile := make([]float64, len(src))
	for i, v := range src {
		profile[i] = float64(v)
	}
	return profile
}
