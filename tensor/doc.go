// Copyright 2025 RCC-loss Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the shaped buffers exchanged with the loss layers.
//
// # Overview
//
// Loss inputs are (N, C, 1, 1) blobs: N samples of C channels each. A
// RawTensor owns contiguous row-major storage of float32 or float64 values
// and offers both flat access (AsFloat32, AsFloat64, Item) and bounds-checked
// blob access (At, SetAt).
//
// # Basic Usage
//
//	pred, err := tensor.FromSlice([]float32{1, 3, 2, 5}, tensor.Shape{1, 4, 1, 1})
//	if err != nil {
//	    return err
//	}
//	x0 := pred.At(0, 0)   // sample 0, channel 0
//	pred.SetAt(0, 0, 1.1)
package tensor
