// Copyright 2025 RCC-loss Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/nianfudong/RCC-loss/internal/tensor"
)

// Shape represents the dimensions of a buffer.
type Shape = tensor.Shape

// DataType represents runtime element type information.
type DataType = tensor.DataType

// Supported data types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
)

// Device represents the compute device a buffer lives on.
type Device = tensor.Device

// CPU is the only device loss layers run on.
const CPU = tensor.CPU

// RawTensor is the low-level buffer representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Typed views via AsFloat32(), AsFloat64()
//   - Blob access via Num(), Channels(), At(), SetAt()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 10, 1, 1}, tensor.Float32, tensor.CPU)
//	raw.SetAt(1, 4, 0.5)
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-filled buffer with the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice creates a CPU buffer from a copy of data.
func FromSlice[T float32 | float64](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}
