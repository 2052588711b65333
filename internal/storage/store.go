package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/fraclab/internal/field"
)

// Store persists rendered fields under a base directory, one
// subdirectory per run holding metadata.json and field.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Kernel     string             `json:"kernel"`
	Region     string             `json:"region"`
	Size       int32              `json:"size"`
	Iterations int32              `json:"iterations"`
	Workers    int                `json:"workers"`
	Timestamp  time.Time          `json:"timestamp"`
	ElapsedMS  float64            `json:"elapsed_ms"`
	Metrics    map[string]float64 `json:"metrics"`
}

func (s *Store) Save(kernel, region string, size, iterations int32, workers int, elapsed time.Duration, metrics map[string]float64, f *field.Field) (string, error) {
	runID := fmt.Sprintf("%s_%d", kernel, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Kernel:     kernel,
		Region:     region,
		Size:       size,
		Iterations: iterations,
		Workers:    workers,
		Timestamp:  time.Now(),
		ElapsedMS:  float64(elapsed.Microseconds()) / 1000,
		Metrics:    metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "field.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	record := make([]string, f.Size)
	for i := int32(0); i < f.Size; i++ {
		row := f.Row(i)
		for j, v := range row {
			record[j] = strconv.FormatInt(int64(v), 10)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadField reads a stored field back. The grid edge length is taken
// from the CSV itself; Load provides the metadata separately.
func (s *Store) LoadField(runID string) (*field.Field, error) {
	csvPath := filepath.Join(s.baseDir, runID, "field.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("storage: empty field file for run %s", runID)
	}

	size := int32(len(records))
	f, err := field.New(size)
	if err != nil {
		return nil, err
	}

	for i, record := range records {
		if int32(len(record)) != size {
			return nil, fmt.Errorf("storage: run %s row %d has %d cells, want %d", runID, i, len(record), size)
		}
		row := f.Row(int32(i))
		for j, cell := range record {
			v, err := strconv.ParseInt(cell, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("storage: run %s cell (%d,%d): %w", runID, i, j, err)
			}
			row[j] = int32(v)
		}
	}

	return f, nil
}
