package loss

import (
	"github.com/nianfudong/RCC-loss/internal/parallel"
	"github.com/nianfudong/RCC-loss/internal/tensor"
)

// RelevantLossType is the registered name of RelevantLoss.
const RelevantLossType = "RelevantLoss"

// RelevantLoss penalizes the difference between predicted and true relative
// displacements of keypoint coordinates.
//
// For each sample and each coordinate group (x-block, y-block), every
// unordered channel pair (i, j), i < j, contributes
//
//	dist = (pred[i] - pred[j]) - (truth[i] - truth[j])
//	loss += dist²
//
// The stored derivative of channel i is Σ_j ±dist(i, j): + when i is the
// lower index of the pair, − when it is the higher. All accumulation is done
// in float64; the output is narrowed to the input dtype on write.
//
// RelevantLoss is safe for concurrent Backward calls. Forward excludes all
// other calls while it runs.
type RelevantLoss struct {
	blobState
}

// NewRelevantLoss creates a relative-geometry loss layer.
func NewRelevantLoss(cfg Config) *RelevantLoss {
	return &RelevantLoss{blobState: blobState{cfg: cfg}}
}

// Type returns "RelevantLoss".
func (l *RelevantLoss) Type() string {
	return RelevantLossType
}

// Reshape validates the input pair. A change of shape discards any previous
// forward result.
func (l *RelevantLoss) Reshape(pred, target *tensor.RawTensor) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reshape("RelevantLoss.Reshape", pred, target)
}

// Forward computes the loss and rebuilds the derivative buffer from scratch.
//
// Parameters:
//   - pred: predicted coordinates, shape (N, C, 1, 1)
//   - target: ground-truth coordinates, same N and C as pred
//
// Returns a one-element buffer holding Σ dist² / N / 2.
func (l *RelevantLoss) Forward(pred, target *tensor.RawTensor) (*tensor.RawTensor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.reshape("RelevantLoss.Forward", pred, target); err != nil {
		return nil, err
	}
	l.buf.Zero()

	p, t, d := pred.Rows(), target.Rows(), l.buf.Rows()
	total := parallel.Sum(len(p), func(n int) float64 {
		return accumulateSample(p[n], t[n], d[n], l.groups)
	}, l.cfg.Parallel)

	return l.finish(total)
}

// Backward returns gradients for the inputs flagged in propagateDown.
//
//	grad[0] = +g / N * derivatives
//	grad[1] = -g / N * derivatives
//
// where g is the single element of outputGrad. It fails with ErrInvalidState
// unless a Forward on the same shapes has completed.
func (l *RelevantLoss) Backward(outputGrad *tensor.RawTensor, propagateDown []bool, pred, target *tensor.RawTensor) ([]*tensor.RawTensor, error) {
	return l.backward("RelevantLoss.Backward", outputGrad, propagateDown, pred, target)
}

// Derivatives returns a copy of the per-element derivative buffer of the
// last forward pass, laid out like the inputs.
func (l *RelevantLoss) Derivatives() []float64 {
	return l.snapshot()
}

// accumulateSample runs the pairwise kernel over both coordinate groups of
// one sample and returns the sample's summed squared error.
func accumulateSample(pred, truth, deriv []float64, g Groups) float64 {
	return accumulateGroup(pred, truth, deriv, g.X) + accumulateGroup(pred, truth, deriv, g.Y)
}

// accumulateGroup visits pairs i ascending, then j ascending from i+1, so
// floating-point results are reproducible. Groups with fewer than two
// channels contribute nothing.
func accumulateGroup(pred, truth, deriv []float64, r Range) float64 {
	if r.Pairs() == 0 {
		return 0
	}
	var sum float64
	for i := r.Start; i+1 < r.End; i++ {
		for j := i + 1; j < r.End; j++ {
			dist := (pred[i] - pred[j]) - (truth[i] - truth[j])
			deriv[i] += dist
			deriv[j] -= dist
			sum += dist * dist
		}
	}
	return sum
}
