package tensor

import "fmt"

// Blob accessors treat a rank-2 (N, C) or rank-4 (N, C, 1, 1) buffer as a
// batch of per-sample channel vectors.

// Num returns the batch dimension N.
func (r *RawTensor) Num() int {
	if len(r.shape) == 0 {
		return 1
	}
	return r.shape[0]
}

// Channels returns the channel dimension C, or 1 for rank-1 and scalar buffers.
func (r *RawTensor) Channels() int {
	if len(r.shape) < 2 {
		return 1
	}
	return r.shape[1]
}

// offset maps (sample, channel) to a flat element index.
// Panics if the buffer is not a blob or the index is out of range.
func (r *RawTensor) offset(n, c int) int {
	if !r.shape.IsBlob() {
		panic(fmt.Sprintf("shape %v is not an (N, C) blob", r.shape))
	}
	if n < 0 || n >= r.shape[0] || c < 0 || c >= r.shape[1] {
		panic(fmt.Sprintf("index (%d, %d) out of range for shape %v", n, c, r.shape))
	}
	return n*r.stride[0] + c*r.stride[1]
}

// At returns element (n, c) widened to float64.
func (r *RawTensor) At(n, c int) float64 {
	return r.Item(r.offset(n, c))
}

// SetAt stores v at (n, c), narrowing to the buffer's dtype.
func (r *RawTensor) SetAt(n, c int, v float64) {
	r.SetItem(r.offset(n, c), v)
}

// Rows returns one float64 channel vector per sample.
// For Float64 buffers the rows alias the buffer, so writes are visible in it;
// Float32 buffers are widened into copies.
func (r *RawTensor) Rows() [][]float64 {
	data := r.Float64s()
	channels := r.Channels()
	rows := make([][]float64, r.Num())
	for n := range rows {
		lo := r.offset(n, 0)
		rows[n] = data[lo : lo+channels : lo+channels]
	}
	return rows
}
