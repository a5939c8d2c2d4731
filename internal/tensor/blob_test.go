package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_IsBlob(t *testing.T) {
	tests := []struct {
		shape Shape
		want  bool
	}{
		{Shape{2, 10}, true},
		{Shape{2, 10, 1, 1}, true},
		{Shape{2, 10, 2, 1}, false},
		{Shape{2, 10, 1}, false},
		{Shape{10}, false},
		{Shape{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.IsBlob())
		})
	}
}

func TestShape_CountFrom(t *testing.T) {
	s := Shape{3, 10, 1, 1}
	assert.Equal(t, 30, s.CountFrom(0))
	assert.Equal(t, 10, s.CountFrom(1))
	assert.Equal(t, 1, s.CountFrom(4))
	assert.Panics(t, func() { s.CountFrom(5) })
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "(2, 4, 1, 1)", Shape{2, 4, 1, 1}.String())
	assert.Equal(t, "()", Shape{}.String())
}

func TestRawTensor_BlobIndexing(t *testing.T) {
	raw, err := FromSlice([]float32{
		1, 3, 2, 5,
		4, 6, 8, 7,
	}, Shape{2, 4, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, 2, raw.Num())
	assert.Equal(t, 4, raw.Channels())
	assert.Equal(t, 5.0, raw.At(0, 3))
	assert.Equal(t, 8.0, raw.At(1, 2))

	raw.SetAt(1, 0, 0.25)
	assert.Equal(t, float32(0.25), raw.AsFloat32()[4])
}

func TestRawTensor_BlobIndexingBounds(t *testing.T) {
	raw, err := NewRaw(Shape{2, 4}, Float64, CPU)
	require.NoError(t, err)

	assert.Panics(t, func() { raw.At(2, 0) })
	assert.Panics(t, func() { raw.At(0, 4) })
	assert.Panics(t, func() { raw.SetAt(-1, 0, 1) })

	notBlob, err := NewRaw(Shape{2, 4, 3, 1}, Float64, CPU)
	require.NoError(t, err)
	assert.Panics(t, func() { notBlob.At(0, 0) })
}

func TestRawTensor_Rows(t *testing.T) {
	raw, err := FromSlice([]float64{
		1, 3, 2, 5,
		4, 6, 8, 7,
	}, Shape{2, 4, 1, 1})
	require.NoError(t, err)

	rows := raw.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []float64{1, 3, 2, 5}, rows[0])
	assert.Equal(t, []float64{4, 6, 8, 7}, rows[1])
	assert.Equal(t, 4, cap(rows[0]), "a row cannot be grown into the next sample")

	rows[1][2] = -1
	assert.Equal(t, -1.0, raw.At(1, 2), "float64 rows alias the buffer")
}

func TestRawTensor_RowsFloat32(t *testing.T) {
	raw, err := FromSlice([]float32{1.5, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	rows := raw.Rows()
	assert.Equal(t, [][]float64{{1.5, 2}, {3, 4}}, rows)

	rows[0][0] = 9
	assert.Equal(t, 1.5, raw.At(0, 0), "float32 rows are copies")
}

func TestRawTensor_RowsRequiresBlob(t *testing.T) {
	raw, err := NewRaw(Shape{2, 4, 3, 1}, Float64, CPU)
	require.NoError(t, err)
	assert.Panics(t, func() { raw.Rows() })
}
