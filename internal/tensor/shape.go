package tensor

import "fmt"

// Shape represents the dimensions of a buffer.
type Shape []int

// NumElements returns the total number of elements in the buffer.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// CountFrom returns the product of the dimensions starting at axis.
// CountFrom(1) of a (N, C, H, W) blob is the per-sample element count.
func (s Shape) CountFrom(axis int) int {
	if axis < 0 || axis > len(s) {
		panic(fmt.Sprintf("axis %d out of range for shape %v", axis, s))
	}
	n := 1
	for _, dim := range s[axis:] {
		n *= dim
	}
	return n
}

// IsBlob reports whether the shape describes a (N, C) blob: rank 2, or
// rank 4 with unit spatial dimensions.
func (s Shape) IsBlob() bool {
	switch len(s) {
	case 2:
		return true
	case 4:
		return s[2] == 1 && s[3] == 1
	default:
		return false
	}
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape as (d0, d1, ...).
func (s Shape) String() string {
	out := "("
	for i, dim := range s {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(dim)
	}
	return out + ")"
}
