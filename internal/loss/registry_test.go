package loss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	assert.Equal(t, []string{"EuclideanLoss", "RelevantLoss"}, DefaultRegistry.Types())

	for _, name := range DefaultRegistry.Types() {
		l, err := DefaultRegistry.New(name, DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, name, l.Type())
	}
}

func TestRegistry_Unknown(t *testing.T) {
	_, err := NewRegistry().New("SoftmaxWithLoss", DefaultConfig())
	assert.ErrorIs(t, err, ErrUnknownLayer)
	assert.Contains(t, err.Error(), "SoftmaxWithLoss")
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.Register("L2", func(cfg Config) Layer { return NewEuclideanLoss(cfg) })

	l, err := r.New("L2", sequentialConfig())
	require.NoError(t, err)
	assert.IsType(t, &EuclideanLoss{}, l)
	assert.Len(t, r.Types(), 3)
	assert.Len(t, DefaultRegistry.Types(), 2, "custom registries do not touch the default one")
}
