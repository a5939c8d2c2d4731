package loss

import (
	"math/rand"
	"testing"

	"github.com/nianfudong/RCC-loss/internal/parallel"
	"github.com/nianfudong/RCC-loss/internal/tensor"
	"github.com/stretchr/testify/require"
)

// sequentialConfig keeps test runs single-threaded unless a test opts in.
func sequentialConfig() Config {
	return Config{Parallel: parallel.Sequential()}
}

// blob builds an (n, c, 1, 1) float64 buffer.
func blob(t *testing.T, data []float64, n, c int) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.FromSlice(data, tensor.Shape{n, c, 1, 1})
	require.NoError(t, err)
	return raw
}

// scalar builds the one-element upstream gradient.
func scalar(t *testing.T, g float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.FromSlice([]float64{g}, tensor.Shape{1})
	require.NoError(t, err)
	return raw
}

// randomCoords returns n*c values in [-scale, scale).
func randomCoords(rng *rand.Rand, n, c int, scale float64) []float64 {
	out := make([]float64, n*c)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * scale
	}
	return out
}
