package loss

import (
	"fmt"
	"sync"

	"github.com/nianfudong/RCC-loss/internal/parallel"
	"github.com/nianfudong/RCC-loss/internal/tensor"
)

// Layer is the capability set a host framework needs from a loss layer.
//
// Inputs are indexed 0 (prediction) and 1 (ground truth). Forward returns a
// one-element buffer holding the mean loss over the batch. Backward takes the
// upstream gradient of that scalar and returns one gradient per input, nil
// where propagateDown is false.
type Layer interface {
	// Type returns the registered layer name.
	Type() string

	// Reshape validates the input pair and sizes internal buffers.
	Reshape(pred, target *tensor.RawTensor) error

	// Forward computes the loss and the derivative buffer used by Backward.
	Forward(pred, target *tensor.RawTensor) (*tensor.RawTensor, error)

	// Backward scales the stored derivatives by outputGrad into input gradients.
	Backward(outputGrad *tensor.RawTensor, propagateDown []bool, pred, target *tensor.RawTensor) ([]*tensor.RawTensor, error)

	// AllowForceBackward reports whether gradients may be forced into input i.
	AllowForceBackward(input int) bool
}

// State is the forward/backward protocol state of a layer.
type State int

// Layer states.
const (
	Idle         State = iota // No valid derivative buffer.
	LossComputed              // Forward completed; Backward is legal.
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case LossComputed:
		return "LossComputed"
	default:
		return "Unknown"
	}
}

// Config controls how a layer executes. It has no effect on the loss value.
type Config struct {
	Parallel parallel.Config // Per-sample fan-out.
}

// DefaultConfig returns the default layer configuration.
func DefaultConfig() Config {
	return Config{Parallel: parallel.DefaultConfig()}
}

// blobState is the shape bookkeeping and per-element buffer shared by the
// blob loss layers. buf is a float64 blob shaped like the prediction and holds
// whatever Backward scales into gradients.
type blobState struct {
	mu          sync.RWMutex
	cfg         Config
	predShape   tensor.Shape
	targetShape tensor.Shape
	dtype       tensor.DataType
	device      tensor.Device
	groups      Groups
	buf         *tensor.RawTensor
	loss        float64
	state       State
}

// reshape validates the pair and reallocates buf when the shapes, dtype or
// device change; any earlier forward result is then discarded.
// Caller must hold the write lock.
func (s *blobState) reshape(op string, pred, target *tensor.RawTensor) error {
	if pred == nil || target == nil {
		return fmt.Errorf("%s: %w: nil input", op, ErrInvalidArgument)
	}
	if !pred.DType().Valid() || pred.DType() != target.DType() {
		return fmt.Errorf("%s: %w: prediction %s, target %s", op, ErrUnsupportedDType, pred.DType(), target.DType())
	}

	groups, err := Split(pred.Shape(), target.Shape())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.buf == nil ||
		!pred.Shape().Equal(s.predShape) || !target.Shape().Equal(s.targetShape) ||
		pred.DType() != s.dtype || pred.Device() != s.device {
		buf, err := tensor.NewRaw(pred.Shape(), tensor.Float64, pred.Device())
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		s.buf = buf
		s.predShape = pred.Shape().Clone()
		s.targetShape = target.Shape().Clone()
		s.dtype = pred.DType()
		s.device = pred.Device()
		s.state = Idle
	}
	s.groups = groups
	return nil
}

// finish records a completed forward pass and builds the loss output.
// Caller must hold the write lock.
func (s *blobState) finish(total float64) (*tensor.RawTensor, error) {
	out, loss, err := aggregate(total, s.predShape[0], s.dtype, s.device)
	if err != nil {
		return nil, err
	}
	s.loss = loss
	s.state = LossComputed
	return out, nil
}

// backward checks the protocol and distributes buf into input gradients.
func (s *blobState) backward(op string, outputGrad *tensor.RawTensor, propagateDown []bool, pred, target *tensor.RawTensor) ([]*tensor.RawTensor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != LossComputed {
		return nil, fmt.Errorf("%s: %w: state is %s", op, ErrInvalidState, s.state)
	}
	if pred == nil || target == nil {
		return nil, fmt.Errorf("%s: %w: nil input", op, ErrInvalidArgument)
	}
	if !pred.Shape().Equal(s.predShape) || !target.Shape().Equal(s.targetShape) {
		return nil, fmt.Errorf("%s: %w: forward saw %v/%v, backward got %v/%v",
			op, ErrInvalidState, s.predShape, s.targetShape, pred.Shape(), target.Shape())
	}
	if pred.DType() != s.dtype {
		return nil, fmt.Errorf("%s: %w: forward saw %s, backward got %s", op, ErrInvalidState, s.dtype, pred.DType())
	}
	if len(propagateDown) != 2 {
		return nil, fmt.Errorf("%s: %w: propagateDown has %d entries, want 2", op, ErrInvalidArgument, len(propagateDown))
	}
	if outputGrad == nil || outputGrad.NumElements() != 1 {
		return nil, fmt.Errorf("%s: %w: upstream gradient must hold exactly one element", op, ErrInvalidArgument)
	}

	shapes := [2]tensor.Shape{s.predShape, s.targetShape}
	return gradients(s.buf.AsFloat64(), outputGrad.Item(0), s.predShape[0], propagateDown, shapes, s.dtype, s.device)
}

// State returns the current protocol state.
func (s *blobState) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Loss returns the float64 loss of the last forward pass.
func (s *blobState) Loss() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loss
}

// AllowForceBackward reports true for both inputs: gradients may flow into
// the ground truth as well as the prediction.
func (s *blobState) AllowForceBackward(input int) bool {
	return input == 0 || input == 1
}

// snapshot returns a copy of buf, or nil before the first reshape.
func (s *blobState) snapshot() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.buf == nil {
		return nil
	}
	return s.buf.Clone().AsFloat64()
}
