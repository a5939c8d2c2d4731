package loss

import (
	"github.com/nianfudong/RCC-loss/internal/tensor"
	"gonum.org/v1/gonum/floats"
)

// aggregate turns the summed squared error into the mean loss
//
//	loss = total / N / 2
//
// and writes it into a one-element buffer of the input dtype. The halving
// cancels the factor 2 of d(x²)/dx so Backward can scale by 1/N alone.
func aggregate(total float64, num int, dtype tensor.DataType, device tensor.Device) (*tensor.RawTensor, float64, error) {
	loss := total / float64(num) / 2

	out, err := tensor.NewRaw(tensor.Shape{1}, dtype, device)
	if err != nil {
		return nil, 0, err
	}
	out.SetItem(0, loss)
	return out, loss, nil
}

// gradients distributes the derivative buffer into per-input gradients.
//
//	alpha_i = sign_i * g / N,  sign_0 = +1, sign_1 = -1
//	grad_i  = alpha_i * derivatives
func gradients(
	derivatives []float64,
	g float64,
	num int,
	propagateDown []bool,
	shapes [2]tensor.Shape,
	dtype tensor.DataType,
	device tensor.Device,
) ([]*tensor.RawTensor, error) {
	grads := make([]*tensor.RawTensor, 2)
	for i := range grads {
		if !propagateDown[i] {
			continue
		}
		sign := 1.0
		if i == 1 {
			sign = -1.0
		}
		alpha := sign * g / float64(num)

		grad, err := distribute(derivatives, alpha, shapes[i], dtype, device)
		if err != nil {
			return nil, err
		}
		grads[i] = grad
	}
	return grads, nil
}

// distribute writes alpha * src into a fresh buffer of the given shape.
func distribute(src []float64, alpha float64, shape tensor.Shape, dtype tensor.DataType, device tensor.Device) (*tensor.RawTensor, error) {
	grad, err := tensor.NewRaw(shape, dtype, device)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case tensor.Float64:
		floats.ScaleTo(grad.AsFloat64(), alpha, src)
	case tensor.Float32:
		dst := grad.AsFloat32()
		for i, v := range src {
			dst[i] = float32(alpha * v)
		}
	default:
		return nil, ErrUnsupportedDType
	}
	return grad, nil
}
