package sample

import (
	"testing"

	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform(t *testing.T) {
	u := New(42)
	assert.Equal(t, uint64(42), u.Seed())
	values := u.Uniform(-10, 10, 2, 3, 4)
	require.Equal(t, dtypes.Float32, values.Shape().DType)
	require.Equal(t, []int{2, 3, 4}, values.Shape().Dimensions)
	flat := tensors.MustCopyFlatData[float32](values)
	var distinct = make(map[float32]bool)
	for _, v := range flat {
		require.GreaterOrEqual(t, v, float32(-10))
		require.Less(t, v, float32(10))
		distinct[v] = true
	}
	assert.Greater(t, len(distinct), 20)

	// Same seed, same values.
	assert.Equal(t, flat, tensors.MustCopyFlatData[float32](New(42).Uniform(-10, 10, 2, 3, 4)))
	assert.NotEqual(t, flat, tensors.MustCopyFlatData[float32](New(43).Uniform(-10, 10, 2, 3, 4)))
}

func TestUniformNarrowRange(t *testing.T) {
	// The interval is so narrow that float32 rounding often reaches the upper bound, which must stay excluded.
	u := New(1)
	for _, v := range tensors.MustCopyFlatData[float32](u.Uniform(1, 1.0000001, 1000)) {
		require.GreaterOrEqual(t, v, float32(1))
		require.Less(t, v, float32(1.0000001))
	}
}

func TestUniformScalarAndEmpty(t *testing.T) {
	u := New(3)
	scalar := u.Uniform(0, 1)
	assert.Equal(t, 0, scalar.Shape().Rank())
	empty := u.Uniform(0, 1, 0, 5)
	assert.Equal(t, 0, empty.Shape().Size())
	assert.Panics(t, func() { u.Uniform(1, 1, 2) })
}

func TestClockSeed(t *testing.T) {
	assert.NotZero(t, New(0).Seed())
}
