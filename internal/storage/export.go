package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/fraclab/internal/field"
)

type ExportData struct {
	ID         string             `json:"id"`
	Kernel     string             `json:"kernel"`
	Region     string             `json:"region"`
	Size       int32              `json:"size"`
	Iterations int32              `json:"iterations"`
	Metrics    map[string]float64 `json:"metrics"`
	Counts     [][]int32          `json:"counts"`
}

func exportData(meta *RunMetadata, f *field.Field) ExportData {
	counts := make([][]int32, f.Size)
	for i := int32(0); i < f.Size; i++ {
		counts[i] = f.Row(i)
	}
	return ExportData{
		ID:         meta.ID,
		Kernel:     meta.Kernel,
		Region:     meta.Region,
		Size:       meta.Size,
		Iterations: meta.Iterations,
		Metrics:    meta.Metrics,
		Counts:     counts,
	}
}

func ExportJSON(path string, meta *RunMetadata, f *field.Field) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, f))
}

func ExportJSONStdout(meta *RunMetadata, f *field.Field) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, f))
}

// ExportCSV writes the field grid as CSV, one record per grid row.
func ExportCSV(w io.Writer, f *field.Field) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	record := make([]string, f.Size)
	for i := int32(0); i < f.Size; i++ {
		for j, v := range f.Row(i) {
			record[j] = strconv.FormatInt(int64(v), 10)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return nil
}
