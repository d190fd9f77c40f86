package onnx

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	. "github.com/gomlx/gomlx/pkg/core/graph"
	"github.com/gomlx/gomlx/pkg/core/graph/graphtest"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnx-conformance/internal/protos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/gomlx/gomlx/backends/default"
)

// argMaxExample is the literal input shared by the ArgMax example cases.
func argMaxExample() *tensors.Tensor {
	return tensors.FromFlatDataAndDimensions([]float32{2, 2, 3, 10}, 2, 2)
}

func TestReferenceArgMax(t *testing.T) {
	testCases := []struct {
		name     string
		attrs    ArgMaxAttributes
		wantDims []int
		want     []int64
	}{
		// Row 0 is a tie [2, 2]: the tie-break decides between index 0 and 1.
		{"axis1-no-keepdims", ArgMaxAttributes{Axis: 1, KeepDims: false}, []int{2}, []int64{0, 1}},
		{"axis1-no-keepdims-last", ArgMaxAttributes{Axis: 1, KeepDims: false, TieBreak: LastIndex}, []int{2}, []int64{1, 1}},
		{"axis1-keepdims", ArgMaxAttributes{Axis: 1, KeepDims: true}, []int{2, 1}, []int64{0, 1}},
		{"axis1-keepdims-last", ArgMaxAttributes{Axis: 1, KeepDims: true, TieBreak: LastIndex}, []int{2, 1}, []int64{1, 1}},
		{"default-axis", DefaultArgMaxAttributes, []int{1, 2}, []int64{1, 1}},
		{"default-axis-last", ArgMaxAttributes{KeepDims: true, TieBreak: LastIndex}, []int{1, 2}, []int64{1, 1}},
		{"negative-axis", ArgMaxAttributes{Axis: -1, KeepDims: true}, []int{2, 1}, []int64{0, 1}},
		{"negative-axis-last", ArgMaxAttributes{Axis: -1, KeepDims: true, TieBreak: LastIndex}, []int{2, 1}, []int64{1, 1}},
		{"negative-axis-0", ArgMaxAttributes{Axis: -2, KeepDims: false}, []int{2}, []int64{1, 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ReferenceArgMax(argMaxExample(), tc.attrs)
			require.NoError(t, err)
			require.Equal(t, dtypes.Int64, result.Shape().DType)
			require.Equal(t, tc.wantDims, result.Shape().Dimensions)
			require.Equal(t, tc.want, tensors.MustCopyFlatData[int64](result))
		})
	}
}

func TestReferenceArgMaxShapes(t *testing.T) {
	data := tensors.FromFlatDataAndDimensions(make([]float32, 2*3*4), 2, 3, 4)
	for axis := -3; axis < 3; axis++ {
		for _, keepDims := range []bool{false, true} {
			t.Run(fmt.Sprintf("axis=%d-keepdims=%v", axis, keepDims), func(t *testing.T) {
				result, err := ReferenceArgMax(data, ArgMaxAttributes{Axis: axis, KeepDims: keepDims})
				require.NoError(t, err)
				normalized := (axis + 3) % 3
				want := ArgMaxOutputDimensions([]int{2, 3, 4}, normalized, keepDims)
				require.Equal(t, want, result.Shape().Dimensions)
				if keepDims {
					require.Equal(t, 3, result.Shape().Rank())
					require.Equal(t, 1, result.Shape().Dim(normalized))
				} else {
					require.Equal(t, 2, result.Shape().Rank())
				}
				// All values equal: first index is 0, last is the size of the axis minus 1.
				for _, v := range tensors.MustCopyFlatData[int64](result) {
					require.Equal(t, int64(0), v)
				}
				last, err := ReferenceArgMax(data, ArgMaxAttributes{Axis: axis, KeepDims: keepDims, TieBreak: LastIndex})
				require.NoError(t, err)
				for _, v := range tensors.MustCopyFlatData[int64](last) {
					require.Equal(t, int64([]int{2, 3, 4}[normalized]-1), v)
				}
			})
		}
	}
}

func TestReferenceArgMaxRank1(t *testing.T) {
	data := tensors.FromFlatDataAndDimensions([]float32{-1, 7, 3, 7}, 4)
	result, err := ReferenceArgMax(data, ArgMaxAttributes{Axis: 0, KeepDims: false})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Shape().Rank())
	assert.Equal(t, []int64{1}, tensors.MustCopyFlatData[int64](result))

	result, err = ReferenceArgMax(data, ArgMaxAttributes{Axis: -1, KeepDims: true, TieBreak: LastIndex})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, result.Shape().Dimensions)
	assert.Equal(t, []int64{3}, tensors.MustCopyFlatData[int64](result))

	// Axis of dimension 1.
	single := tensors.FromFlatDataAndDimensions([]float32{5, 6}, 2, 1)
	result, err = ReferenceArgMax(single, ArgMaxAttributes{Axis: 1, KeepDims: false, TieBreak: LastIndex})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, tensors.MustCopyFlatData[int64](result))
}

func TestReferenceArgMaxNaN(t *testing.T) {
	nan := float32(math.NaN())
	data := tensors.FromFlatDataAndDimensions([]float32{1, nan, 3, nan, float32(math.Inf(1)), 0}, 2, 3)
	first, err := ReferenceArgMax(data, ArgMaxAttributes{Axis: 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0}, tensors.MustCopyFlatData[int64](first))
	last, err := ReferenceArgMax(data, ArgMaxAttributes{Axis: 1, TieBreak: LastIndex})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0}, tensors.MustCopyFlatData[int64](last))

	data = tensors.FromFlatDataAndDimensions([]float64{math.NaN(), 2, math.NaN()}, 3)
	first, err = ReferenceArgMax(data, ArgMaxAttributes{})
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, tensors.MustCopyFlatData[int64](first))
	last, err = ReferenceArgMax(data, ArgMaxAttributes{TieBreak: LastIndex})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, tensors.MustCopyFlatData[int64](last))
}

func TestReferenceArgMaxDTypes(t *testing.T) {
	check := func(t *testing.T, data *tensors.Tensor, wantFirst, wantLast []int64) {
		first, err := ReferenceArgMax(data, ArgMaxAttributes{Axis: 1})
		require.NoError(t, err)
		assert.Equal(t, wantFirst, tensors.MustCopyFlatData[int64](first))
		last, err := ReferenceArgMax(data, ArgMaxAttributes{Axis: 1, TieBreak: LastIndex})
		require.NoError(t, err)
		assert.Equal(t, wantLast, tensors.MustCopyFlatData[int64](last))
	}
	t.Run("int8", func(t *testing.T) {
		check(t, tensors.FromFlatDataAndDimensions([]int8{-3, 5, 5, 7, -1, 7}, 2, 3), []int64{1, 0}, []int64{2, 2})
	})
	t.Run("int32", func(t *testing.T) {
		check(t, tensors.FromFlatDataAndDimensions([]int32{-3, -5, -3, 0, 1, 2}, 2, 3), []int64{0, 2}, []int64{2, 2})
	})
	t.Run("int64", func(t *testing.T) {
		check(t, tensors.FromFlatDataAndDimensions([]int64{math.MinInt64, math.MinInt64, 4, 4}, 2, 2), []int64{0, 0}, []int64{1, 1})
	})
	t.Run("uint8", func(t *testing.T) {
		check(t, tensors.FromFlatDataAndDimensions([]uint8{255, 0, 255, 1, 2, 3}, 2, 3), []int64{0, 2}, []int64{2, 2})
	})
	t.Run("uint64", func(t *testing.T) {
		check(t, tensors.FromFlatDataAndDimensions([]uint64{math.MaxUint64, 1, 0, 0}, 2, 2), []int64{0, 0}, []int64{0, 1})
	})
	t.Run("float64", func(t *testing.T) {
		check(t, tensors.FromFlatDataAndDimensions([]float64{-0.5, -0.25, -0.25, 3}, 2, 2), []int64{1, 1}, []int64{1, 1})
	})
	t.Run("bool", func(t *testing.T) {
		_, err := ReferenceArgMax(tensors.FromFlatDataAndDimensions([]bool{true, false}, 2), ArgMaxAttributes{})
		require.ErrorIs(t, err, ErrUnsupportedDType)
	})
}

func TestReferenceArgMaxErrors(t *testing.T) {
	data := argMaxExample()
	for _, axis := range []int{2, -3, 100} {
		_, err := ReferenceArgMax(data, ArgMaxAttributes{Axis: axis})
		require.ErrorIs(t, err, ErrInvalidAxis, "axis=%d", axis)
	}

	scalar := tensors.FromFlatDataAndDimensions([]float32{1})
	_, err := ReferenceArgMax(scalar, ArgMaxAttributes{})
	require.ErrorIs(t, err, ErrInvalidAxis)

	empty := tensors.FromFlatDataAndDimensions([]float32{}, 2, 0)
	_, err = ReferenceArgMax(empty, ArgMaxAttributes{Axis: 1})
	require.ErrorIs(t, err, ErrEmptyReduction)
	// Reducing a non-empty axis of a tensor with no elements is fine.
	result, err := ReferenceArgMax(empty, ArgMaxAttributes{Axis: 0, KeepDims: true})
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, result.Shape().Dimensions)

	_, err = ReferenceArgMax(data, ArgMaxAttributes{TieBreak: TieBreak(7)})
	require.Error(t, err)
	_, err = ReferenceArgMax(nil, ArgMaxAttributes{})
	require.Error(t, err)
}

func TestNormalizeAxis(t *testing.T) {
	for rank := 1; rank <= 4; rank++ {
		for axis := -rank; axis < rank; axis++ {
			got, err := NormalizeAxis(axis, rank)
			require.NoError(t, err)
			if axis < 0 {
				require.Equal(t, axis+rank, got)
			} else {
				require.Equal(t, axis, got)
			}
		}
		_, err := NormalizeAxis(rank, rank)
		require.ErrorIs(t, err, ErrInvalidAxis)
		_, err = NormalizeAxis(-rank-1, rank)
		require.ErrorIs(t, err, ErrInvalidAxis)
	}
	_, err := NormalizeAxis(0, 0)
	require.ErrorIs(t, err, ErrInvalidAxis)
}

// TestArgMaxLastByReflection checks that reversing the axis, taking the first maximum and mapping the
// position back selects the same index as a backwards scan, on inputs with many ties and NaNs.
func TestArgMaxLastByReflection(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for range 200 {
		l := reductionLayout{outer: 1 + rng.IntN(4), size: 1 + rng.IntN(6), inner: 1 + rng.IntN(4)}
		flat := make([]float32, l.outer*l.size*l.inner)
		for ii := range flat {
			if rng.IntN(10) == 0 {
				flat[ii] = float32(math.NaN())
			} else {
				flat[ii] = float32(rng.IntN(3))
			}
		}
		require.Equal(t, argMaxLastDirect(flat, l), argMaxLastByReflection(flat, l), "layout %+v, values %v", l, flat)

		ints := make([]int16, len(flat))
		for ii := range ints {
			ints[ii] = int16(rng.IntN(3) - 1)
		}
		require.Equal(t, argMaxLastDirect(ints, l), argMaxLastByReflection(ints, l), "layout %+v, values %v", l, ints)
	}
}

func TestArgMaxAttributesFromNode(t *testing.T) {
	attrs, err := ArgMaxAttributesFromNode(&protos.NodeProto{OpType: "ArgMax"})
	require.NoError(t, err)
	assert.Equal(t, DefaultArgMaxAttributes, attrs)

	attrs, err = ArgMaxAttributesFromNode(&protos.NodeProto{
		OpType: "ArgMax",
		Attribute: []*protos.AttributeProto{
			{Name: "axis", Type: protos.AttributeProto_INT, I: -1},
			{Name: "keepdims", Type: protos.AttributeProto_INT, I: 0},
			{Name: "select_last_index", Type: protos.AttributeProto_INT, I: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, ArgMaxAttributes{Axis: -1, KeepDims: false, TieBreak: LastIndex}, attrs)
	assert.Equal(t, "axis=-1, keepdims=false, LastIndex", attrs.String())

	_, err = ArgMaxAttributesFromNode(&protos.NodeProto{
		OpType:    "ArgMax",
		Attribute: []*protos.AttributeProto{{Name: "axis", Type: protos.AttributeProto_FLOAT, F: 1}},
	})
	require.Error(t, err)
}

func TestConvertArgReduceOp(t *testing.T) {
	graphtest.RunTestGraphFn(t, "ArgMax-axis0-keepdims", func(g *Graph) (inputs, outputs []*Node) {
		x := Const(g, [][]float32{{1.0, 4.0}, {3.0, 2.0}, {2.0, 5.0}})
		inputs = []*Node{x}
		outputs = []*Node{convertArgReduceOp(x, 0, true, FirstIndex, argMaxInt64)}
		return
	}, []any{
		// Column 0: max is 3.0 at index 1.
		// Column 1: max is 5.0 at index 2.
		[][]int64{{1, 2}},
	}, -1)

	graphtest.RunTestGraphFn(t, "ArgMax-select-last-index", func(g *Graph) (inputs, outputs []*Node) {
		x := Const(g, [][]float32{{1.0, 4.0, 4.0, 2.0}, {3.0, 5.0, 5.0, 5.0}})
		inputs = []*Node{x}
		outputs = []*Node{convertArgReduceOp(x, 1, false, LastIndex, argMaxInt64)}
		return
	}, []any{
		[]int64{2, 3},
	}, -1)

	graphtest.RunTestGraphFn(t, "ArgMax-negative-axis", func(g *Graph) (inputs, outputs []*Node) {
		x := Const(g, [][]float32{{-5.0, -2.0, -8.0}, {-1.0, -9.0, -3.0}})
		inputs = []*Node{x}
		outputs = []*Node{convertArgReduceOp(x, -1, true, FirstIndex, argMaxInt64)}
		return
	}, []any{
		[][]int64{{1}, {0}},
	}, -1)
}

// TestGraphArgMax cross-checks the GoMLX graph version against the reference, for every axis and attribute
// combination, on inputs with ties.
func TestGraphArgMax(t *testing.T) {
	backend := graphtest.BuildTestBackend()
	rng := rand.New(rand.NewPCG(1, 2))
	flat := make([]float32, 2*3*4)
	for ii := range flat {
		flat[ii] = float32(rng.IntN(4))
	}
	data := tensors.FromFlatDataAndDimensions(flat, 2, 3, 4)
	for axis := -3; axis < 3; axis++ {
		for _, keepDims := range []bool{false, true} {
			for _, tieBreak := range []TieBreak{FirstIndex, LastIndex} {
				attrs := ArgMaxAttributes{Axis: axis, KeepDims: keepDims, TieBreak: tieBreak}
				t.Run(attrs.String(), func(t *testing.T) {
					want, err := ReferenceArgMax(data, attrs)
					require.NoError(t, err)
					got, err := GraphArgMax(backend, data, attrs)
					require.NoError(t, err)
					require.Equal(t, want.Shape().Dimensions, got.Shape().Dimensions)
					require.Equal(t, dtypes.Int64, got.Shape().DType)
					require.Equal(t, tensors.MustCopyFlatData[int64](want), tensors.MustCopyFlatData[int64](got))
				})
			}
		}
	}

	_, err := GraphArgMax(backend, data, ArgMaxAttributes{Axis: 3})
	require.ErrorIs(t, err, ErrInvalidAxis)
	_, err = GraphArgMax(backend, tensors.FromFlatDataAndDimensions([]float32{}, 0, 2), ArgMaxAttributes{})
	require.ErrorIs(t, err, ErrEmptyReduction)
}
