package tensor

import (
	"fmt"
	"unsafe"
)

// Device represents the compute device a buffer lives on.
type Device int

// Supported compute devices. Loss layers only run on the CPU.
const (
	CPU Device = iota
)

// String returns a human-readable device name.
func (d Device) String() string {
	if d == CPU {
		return "CPU"
	}
	return "Unknown"
}

// RawTensor is the low-level buffer representation.
// It owns a contiguous row-major byte slice interpreted according to dtype.
type RawTensor struct {
	data   []byte   // Backing storage
	shape  Shape    // Buffer dimensions
	stride []int    // Memory strides (row-major)
	dtype  DataType // Runtime type information
	device Device   // Compute device
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is zero-initialized.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if !dtype.Valid() {
		return nil, fmt.Errorf("unsupported dtype %d", dtype)
	}

	return &RawTensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}, nil
}

// FromSlice creates a CPU buffer from a Go slice. The slice is copied.
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), CPU)
	if err != nil {
		return nil, err
	}

	switch src := any(data).(type) {
	case []float32:
		copy(raw.AsFloat32(), src)
	case []float64:
		copy(raw.AsFloat64(), src)
	default:
		// ~float32 / ~float64 named types
		for i, v := range data {
			raw.SetItem(i, float64(v))
		}
	}
	return raw, nil
}

// Shape returns the buffer's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// DType returns the buffer's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the buffer's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// AsFloat32 interprets the data as []float32.
// Panics if the buffer's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the buffer's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// Float64s returns the elements widened to float64.
// For Float64 buffers the returned slice aliases the buffer and must not be
// modified; Float32 buffers are copied.
func (r *RawTensor) Float64s() []float64 {
	if r.dtype == Float64 {
		return r.AsFloat64()
	}
	src := r.AsFloat32()
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}

// Clone returns a deep copy of the buffer.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:   data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
	}
}

// Zero resets every element to zero.
func (r *RawTensor) Zero() {
	clear(r.data)
}

// Item returns flat element i widened to float64.
func (r *RawTensor) Item(i int) float64 {
	if r.dtype == Float32 {
		return float64(r.AsFloat32()[i])
	}
	return r.AsFloat64()[i]
}

// SetItem stores v at flat index i, narrowing to the buffer's dtype.
func (r *RawTensor) SetItem(i int, v float64) {
	if r.dtype == Float32 {
		r.AsFloat32()[i] = float32(v)
		return
	}
	r.AsFloat64()[i] = v
}
