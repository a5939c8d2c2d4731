package loss

import "github.com/nianfudong/RCC-loss/internal/tensor"

// Range is a half-open channel interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of channels in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Pairs returns the number of unordered channel pairs inside the range.
func (r Range) Pairs() int {
	n := r.Len()
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Groups holds the x-coordinate and y-coordinate channel ranges of a blob.
type Groups struct {
	X Range
	Y Range
}

// Split validates a prediction/target shape pair and derives the coordinate
// groups: X = [0, C/2), Y = [C/2, C).
//
// With an odd channel count the middle channel falls into Y; callers are
// expected to supply an even C.
func Split(pred, target tensor.Shape) (Groups, error) {
	if !pred.IsBlob() || !target.IsBlob() {
		return Groups{}, &ShapeError{Op: "split", Pred: pred, Target: target, Err: ErrUnsupportedShape}
	}
	if pred[0] != target[0] || pred.CountFrom(1) != target.CountFrom(1) {
		return Groups{}, &ShapeError{Op: "split", Pred: pred, Target: target, Err: ErrShapeMismatch}
	}

	channels := pred[1]
	half := channels / 2
	return Groups{
		X: Range{Start: 0, End: half},
		Y: Range{Start: half, End: channels},
	}, nil
}
