package loss

import (
	"errors"
	"testing"

	"github.com/nianfudong/RCC-loss/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		pred   tensor.Shape
		target tensor.Shape
		want   Groups
	}{
		{"five keypoints", tensor.Shape{8, 10, 1, 1}, tensor.Shape{8, 10, 1, 1}, Groups{X: Range{0, 5}, Y: Range{5, 10}}},
		{"rank 2", tensor.Shape{3, 4}, tensor.Shape{3, 4}, Groups{X: Range{0, 2}, Y: Range{2, 4}}},
		{"mixed rank", tensor.Shape{3, 4}, tensor.Shape{3, 4, 1, 1}, Groups{X: Range{0, 2}, Y: Range{2, 4}}},
		{"single keypoint", tensor.Shape{1, 2, 1, 1}, tensor.Shape{1, 2, 1, 1}, Groups{X: Range{0, 1}, Y: Range{1, 2}}},
		{"odd channels", tensor.Shape{1, 5, 1, 1}, tensor.Shape{1, 5, 1, 1}, Groups{X: Range{0, 2}, Y: Range{2, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.pred, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		pred   tensor.Shape
		target tensor.Shape
	}{
		{"channels", tensor.Shape{2, 10, 1, 1}, tensor.Shape{2, 8, 1, 1}},
		{"batch", tensor.Shape{2, 10, 1, 1}, tensor.Shape{3, 10, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.pred, tt.target)
			require.ErrorIs(t, err, ErrShapeMismatch)

			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, tt.pred, shapeErr.Pred)
			assert.Equal(t, tt.target, shapeErr.Target)
		})
	}
}

func TestSplit_UnsupportedShape(t *testing.T) {
	_, err := Split(tensor.Shape{2, 10, 3, 3}, tensor.Shape{2, 10, 3, 3})
	assert.ErrorIs(t, err, ErrUnsupportedShape)

	_, err = Split(tensor.Shape{10}, tensor.Shape{10})
	assert.ErrorIs(t, err, ErrUnsupportedShape)
}

func TestRange_Pairs(t *testing.T) {
	assert.Equal(t, 0, Range{0, 0}.Pairs())
	assert.Equal(t, 0, Range{3, 4}.Pairs())
	assert.Equal(t, 1, Range{0, 2}.Pairs())
	assert.Equal(t, 10, Range{5, 10}.Pairs())
}
