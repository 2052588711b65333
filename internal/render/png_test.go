package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/san-kum/fraclab/internal/field"
)

func TestWritePNG(t *testing.T) {
	f, err := field.New(8)
	if err != nil {
		t.Fatal(err)
	}
	if err := field.Fill(8, 30, f.Data); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, f, 30); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 8 {
		t.Errorf("image is %dx%d, want 8x8", bounds.Dx(), bounds.Dy())
	}
}

func TestCellColorInterior(t *testing.T) {
	c := CellColor(29, 30)
	if c.R != 0 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("interior cell should be opaque black, got %+v", c)
	}

	e := CellColor(3, 30)
	if e == c {
		t.Error("escaping cell should differ from interior color")
	}
}
