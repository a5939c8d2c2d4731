// Package tensor provides the shaped numeric buffers exchanged between the
// host framework and the loss layers.
package tensor

import "unsafe"

// DType is a constraint for the element types a loss buffer can hold.
type DType interface {
	~float32 | ~float64
}

// DataType represents runtime type information for buffers.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// Valid reports whether dt is one of the supported data types.
func (dt DataType) Valid() bool {
	return dt == Float32 || dt == Float64
}

// inferDataType infers DataType from a generic type T. Named types such as
// `type coord float64` resolve through their underlying width.
func inferDataType[T DType](dummy T) DataType {
	if unsafe.Sizeof(dummy) == 4 {
		return Float32
	}
	return Float64
}
