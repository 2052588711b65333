package analysis

import "github.com/san-kum/fraclab/internal/field"

// Summary aggregates per-field statistics. InteriorFraction counts
// cells that exhausted the iteration budget; a cell that escaped on the
// very last step records the same count, so the estimate is slightly
// high near the set boundary.
type Summary struct {
	EscapeFraction   float64
	InteriorFraction float64
	MeanCount        float64
	MaxCount         int32
}

// Summarize computes the summary for a field generated with the given
// iteration budget.
func Summarize(f *field.Field, iterations int32) Summary {
	var s Summary
	if len(f.Data) == 0 {
		return s
	}

	interior := 0
	total := 0.0
	for _, v := range f.Data {
		total += float64(v)
		if v == iterations-1 {
			interior++
		}
		if v > s.MaxCount {
			s.MaxCount = v
		}
	}

	n := float64(len(f.Data))
	s.InteriorFraction = float64(interior) / n
	s.EscapeFraction = 1 - s.InteriorFraction
	s.MeanCount = total / n
	return s
}

// Metrics flattens the summary into a name-to-value map for run
// metadata.
func (s Summary) Metrics() map[string]float64 {
	return map[string]float64{
		"escape_fraction":   s.EscapeFraction,
		"interior_fraction": s.InteriorFraction,
		"mean_count":        s.MeanCount,
		"max_count":         float64(s.MaxCount),
	}
}
