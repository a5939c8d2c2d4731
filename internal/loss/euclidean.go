package loss

import (
	"github.com/nianfudong/RCC-loss/internal/tensor"
	"gonum.org/v1/gonum/floats"
)

// EuclideanLossType is the registered name of EuclideanLoss.
const EuclideanLossType = "EuclideanLoss"

// EuclideanLoss is the absolute-position companion of RelevantLoss.
//
//	diff = pred - target
//	loss = Σ diff² / N / 2
//
// It shares the blob contract, state machine and gradient distribution of
// RelevantLoss, with diff in place of the pairwise derivative buffer.
type EuclideanLoss struct {
	blobState
}

// NewEuclideanLoss creates an absolute squared-error loss layer.
func NewEuclideanLoss(cfg Config) *EuclideanLoss {
	return &EuclideanLoss{blobState: blobState{cfg: cfg}}
}

// Type returns "EuclideanLoss".
func (l *EuclideanLoss) Type() string {
	return EuclideanLossType
}

// Reshape validates the input pair.
func (l *EuclideanLoss) Reshape(pred, target *tensor.RawTensor) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reshape("EuclideanLoss.Reshape", pred, target)
}

// Forward computes Σ (pred - target)² / N / 2 and stores the difference.
func (l *EuclideanLoss) Forward(pred, target *tensor.RawTensor) (*tensor.RawTensor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.reshape("EuclideanLoss.Forward", pred, target); err != nil {
		return nil, err
	}
	diff := l.buf.AsFloat64()
	floats.SubTo(diff, pred.Float64s(), target.Float64s())

	return l.finish(floats.Dot(diff, diff))
}

// Backward returns ±g / N * (pred - target) for the flagged inputs.
func (l *EuclideanLoss) Backward(outputGrad *tensor.RawTensor, propagateDown []bool, pred, target *tensor.RawTensor) ([]*tensor.RawTensor, error) {
	return l.backward("EuclideanLoss.Backward", outputGrad, propagateDown, pred, target)
}

// Diff returns a copy of pred - target from the last forward pass.
func (l *EuclideanLoss) Diff() []float64 {
	return l.snapshot()
}
