package storage

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/san-kum/fraclab/internal/field"
)

func testField(t *testing.T) *field.Field {
	t.Helper()
	f, err := field.New(3)
	if err != nil {
		t.Fatal(err)
	}
	copy(f.Data, []int32{0, 1, 2, 3, 4, 5, 6, 7, 8})
	return f
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	f := testField(t)
	metrics := map[string]float64{"max_count": 8}

	runID, err := st.Save("wide", "full", 3, 10, 2, 5*time.Millisecond, metrics, f)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Kernel != "wide" || meta.Size != 3 || meta.Iterations != 10 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Metrics["max_count"] != 8 {
		t.Errorf("metrics not persisted: %+v", meta.Metrics)
	}

	loaded, err := st.LoadField(runID)
	if err != nil {
		t.Fatalf("load field failed: %v", err)
	}
	if !loaded.Equal(f) {
		t.Error("loaded field differs from saved field")
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	f := testField(t)
	if _, err := st.Save("wide", "full", 3, 10, 1, time.Millisecond, nil, f); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("/nonexistent/fraclab-test")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir should not fail: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportCSV(t *testing.T) {
	f := testField(t)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, f); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	want := "0,1,2\n3,4,5\n6,7,8\n"
	if buf.String() != want {
		t.Errorf("csv = %q, want %q", buf.String(), want)
	}
}

func TestExportJSONShape(t *testing.T) {
	f := testField(t)
	meta := &RunMetadata{ID: "wide_1", Kernel: "wide", Region: "full", Size: 3, Iterations: 10}

	data, err := json.Marshal(exportData(meta, f))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded ExportData
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.ID != "wide_1" || len(decoded.Counts) != 3 || decoded.Counts[2][2] != 8 {
		t.Errorf("unexpected export data: %+v", decoded)
	}
}
