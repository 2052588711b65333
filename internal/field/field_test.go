package field

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/fraclab/internal/fractal"
)

func TestFillRange(t *testing.T) {
	const size, iterations = 64, 50

	out := make([]int32, size*size)
	if err := Fill(size, iterations, out); err != nil {
		t.Fatalf("fill failed: %v", err)
	}

	for idx, v := range out {
		if v < 0 || v >= iterations {
			t.Fatalf("cell %d = %d, out of [0, %d)", idx, v, iterations)
		}
	}
}

func TestFillDeterminism(t *testing.T) {
	const size, iterations = 48, 40

	a := make([]int32, size*size)
	b := make([]int32, size*size)

	if err := Fill(size, iterations, a); err != nil {
		t.Fatalf("first fill failed: %v", err)
	}
	if err := Fill(size, iterations, b); err != nil {
		t.Fatalf("second fill failed: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs between runs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestFillSpotChecks(t *testing.T) {
	const size, iterations = 200, 100

	out := make([]int32, size*size)
	if err := Fill(size, iterations, out); err != nil {
		t.Fatalf("fill failed: %v", err)
	}

	// Row 100, column 67 samples (cx, cy) = (-0.995, 0), inside the
	// period-2 bulb, so the orbit never escapes.
	if got := out[100*size+67]; got != iterations-1 {
		t.Errorf("interior cell = %d, want %d", got, iterations-1)
	}

	// The (0, 0) corner samples (-2, -1.5); the orbit crosses radius
	// 10 on step 3 through exact binary fractions, recording 2.
	if got := out[0]; got != 2 {
		t.Errorf("corner cell = %d, want 2", got)
	}
}

func TestFillSingleIteration(t *testing.T) {
	const size = 32

	out := make([]int32, size*size)
	if err := Fill(size, 1, out); err != nil {
		t.Fatalf("fill failed: %v", err)
	}

	// Every orbit starts at (0,0), which survives step 0.
	for idx, v := range out {
		if v != 0 {
			t.Fatalf("cell %d = %d, want 0 with a one-step budget", idx, v)
		}
	}
}

func TestFillSizeOne(t *testing.T) {
	out := make([]int32, 1)
	if err := Fill(1, 10, out); err != nil {
		t.Fatalf("fill failed: %v", err)
	}
	if out[0] != 2 {
		t.Errorf("single cell = %d, want 2 (samples the (-2, -1.5) corner)", out[0])
	}
}

func TestFillInvalidArguments(t *testing.T) {
	tests := []struct {
		name       string
		size       int32
		iterations int32
		bufLen     int
	}{
		{"zero size", 0, 10, 16},
		{"negative size", -5, 10, 16},
		{"zero iterations", 4, 0, 16},
		{"negative iterations", 4, -1, 16},
		{"short buffer", 4, 10, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]int32, tt.bufLen)
			for i := range out {
				out[i] = -7
			}

			err := Fill(tt.size, tt.iterations, out)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}

			// Fail-fast contract: no partial writes.
			for i, v := range out {
				if v != -7 {
					t.Fatalf("cell %d written to %d despite invalid arguments", i, v)
				}
			}
		})
	}
}

func TestGeneratorMatchesFill(t *testing.T) {
	const size, iterations = 97, 60

	want := make([]int32, size*size)
	if err := Fill(size, iterations, want); err != nil {
		t.Fatalf("fill failed: %v", err)
	}

	for _, workers := range []int{1, 2, 3, 8, 200} {
		g := NewGenerator()
		g.Workers = workers

		got := make([]int32, size*size)
		if err := g.Generate(context.Background(), size, iterations, got); err != nil {
			t.Fatalf("generate with %d workers failed: %v", workers, err)
		}

		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("workers=%d: cell %d = %d, want %d", workers, i, got[i], want[i])
			}
		}
	}
}

func TestGeneratorCancel(t *testing.T) {
	g := NewGenerator()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := make([]int32, 256*256)
	err := g.Generate(ctx, 256, 500, out)
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
}

func TestGeneratorCustomKernelRegion(t *testing.T) {
	g := NewGenerator()
	g.Kernel = fractal.NewMandelbrot()
	g.Region = fractal.SeahorseValley

	f, err := g.NewField(context.Background(), 32, 40)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	for idx, v := range f.Data {
		if v < 0 || v >= 40 {
			t.Fatalf("cell %d = %d, out of [0, 40)", idx, v)
		}
	}
}

func TestFieldAccessors(t *testing.T) {
	f, err := New(4)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	f.Data[2*4+3] = 9

	if got := f.At(2, 3); got != 9 {
		t.Errorf("At(2, 3) = %d, want 9", got)
	}
	if got := f.Row(2)[3]; got != 9 {
		t.Errorf("Row(2)[3] = %d, want 9", got)
	}
	if got := f.Max(); got != 9 {
		t.Errorf("Max() = %d, want 9", got)
	}

	c := f.Clone()
	if !f.Equal(c) {
		t.Error("clone should equal original")
	}
	c.Data[0] = 1
	if f.Equal(c) {
		t.Error("mutated clone should not equal original")
	}

	if _, err := New(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for zero size, got %v", err)
	}
}
