package loss

import (
	"errors"
	"fmt"

	"github.com/nianfudong/RCC-loss/internal/tensor"
)

// Common errors.
var (
	ErrShapeMismatch    = errors.New("prediction and target shapes differ")
	ErrInvalidState     = errors.New("backward requires a forward pass on the same shapes")
	ErrUnsupportedShape = errors.New("input is not an (N, C, 1, 1) blob")
	ErrUnsupportedDType = errors.New("unsupported dtype")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownLayer     = errors.New("unknown layer type")
)

// ShapeError provides detailed information about a rejected input pair.
type ShapeError struct {
	Op     string       // Operation that rejected the inputs (e.g. "RelevantLoss.Reshape")
	Pred   tensor.Shape // Prediction shape
	Target tensor.Shape // Ground-truth shape
	Err    error        // Underlying sentinel
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v: prediction %v, target %v", e.Op, e.Err, e.Pred, e.Target)
}

// Unwrap returns the underlying sentinel so errors.Is works.
func (e *ShapeError) Unwrap() error {
	return e.Err
}
