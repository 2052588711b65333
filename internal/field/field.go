package field

import "fmt"

// Field is a generated iteration-count grid. Data holds Size*Size
// counts in row-major order; cell (i, j) lives at index i*Size + j.
type Field struct {
	Size int32
	Data []int32
}

// New allocates a zeroed field of the given edge length.
func New(size int32) (*Field, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidArgument, size)
	}
	return &Field{
		Size: size,
		Data: make([]int32, int(size)*int(size)),
	}, nil
}

// At returns the count at row i, column j.
func (f *Field) At(i, j int32) int32 {
	return f.Data[i*f.Size+j]
}

// Row returns the backing slice for row i. The slice aliases Data.
func (f *Field) Row(i int32) []int32 {
	start := int(i) * int(f.Size)
	return f.Data[start : start+int(f.Size)]
}

func (f *Field) Clone() *Field {
	c := &Field{Size: f.Size, Data: make([]int32, len(f.Data))}
	copy(c.Data, f.Data)
	return c
}

// Equal reports whether two fields have identical size and contents.
func (f *Field) Equal(other *Field) bool {
	if other == nil || f.Size != other.Size {
		return false
	}
	for i, v := range f.Data {
		if other.Data[i] != v {
			return false
		}
	}
	return true
}

// Max returns the largest count in the field, or 0 for an empty one.
func (f *Field) Max() int32 {
	var max int32
	for _, v := range f.Data {
		if v > max {
			max = v
		}
	}
	return max
}
