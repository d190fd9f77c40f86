package onnx

// This file implements the reference (plain Go) version of ONNX arg-reduction operators.

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnx-conformance/internal/protos"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidAxis is returned when an axis, after adjusting negative values, falls outside [0, rank).
	ErrInvalidAxis = errors.New("invalid axis")

	// ErrEmptyReduction is returned when the reduced axis has dimension 0: there is no maximum to select.
	ErrEmptyReduction = errors.New("empty reduction axis")
)

// TieBreak selects which index ArgMax returns when the maximum value occurs more than once along the axis.
type TieBreak int

const (
	// FirstIndex selects the lowest index among the maximum values (ONNX select_last_index=0).
	FirstIndex TieBreak = iota

	// LastIndex selects the highest index among the maximum values (ONNX select_last_index=1).
	LastIndex
)

func (tb TieBreak) String() string {
	switch tb {
	case FirstIndex:
		return "FirstIndex"
	case LastIndex:
		return "LastIndex"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(tb))
	}
}

// ArgMaxAttributes are the ONNX ArgMax attributes: axis, keepdims and select_last_index (as a TieBreak).
type ArgMaxAttributes struct {
	// Axis to reduce, negative values count from the last axis.
	Axis int

	// KeepDims keeps the reduced axis with dimension 1, instead of removing it.
	KeepDims bool

	TieBreak TieBreak
}

// DefaultArgMaxAttributes are the values ONNX uses for omitted ArgMax attributes.
var DefaultArgMaxAttributes = ArgMaxAttributes{
	Axis:     0,
	KeepDims: true,
	TieBreak: FirstIndex,
}

func (attrs ArgMaxAttributes) String() string {
	return fmt.Sprintf("axis=%d, keepdims=%v, %s", attrs.Axis, attrs.KeepDims, attrs.TieBreak)
}

// ArgMaxAttributesFromNode reads the ArgMax attributes of node, using DefaultArgMaxAttributes for the omitted ones.
func ArgMaxAttributesFromNode(node *protos.NodeProto) (attrs ArgMaxAttributes, err error) {
	err = exceptions.TryCatch[error](func() {
		attrs.Axis = getIntAttrOr(node, "axis", DefaultArgMaxAttributes.Axis)
		attrs.KeepDims = getBoolAttrOr(node, "keepdims", DefaultArgMaxAttributes.KeepDims)
		attrs.TieBreak = FirstIndex
		if getBoolAttrOr(node, "select_last_index", DefaultArgMaxAttributes.TieBreak == LastIndex) {
			attrs.TieBreak = LastIndex
		}
	})
	return
}

// NormalizeAxis converts a negative axis (counting from the end) to its positive value, and checks that the
// result is in [0, rank).
func NormalizeAxis(axis, rank int) (int, error) {
	adjusted := axis
	if adjusted < 0 {
		adjusted += rank
	}
	if adjusted < 0 || adjusted >= rank {
		return 0, errors.Wrapf(ErrInvalidAxis, "axis %d for a tensor of rank %d", axis, rank)
	}
	return adjusted, nil
}

// ArgMaxOutputDimensions returns the dimensions of the ArgMax output for the given input dimensions:
// the (already normalized) axis is removed, or set to 1 if keepDims is true.
func ArgMaxOutputDimensions(dimensions []int, axis int, keepDims bool) []int {
	output := make([]int, 0, len(dimensions))
	for ii, dim := range dimensions {
		if ii == axis {
			if keepDims {
				output = append(output, 1)
			}
			continue
		}
		output = append(output, dim)
	}
	return output
}

// ReferenceArgMax computes ONNX ArgMax of data, returning an Int64 tensor with the selected indices.
//
// NaN values are taken as the maximum, as numpy does: the first NaN (or last, with LastIndex) is selected.
//
// It returns an error wrapping ErrInvalidAxis if the axis is out of range (including any axis of a scalar),
// ErrEmptyReduction if the reduced axis has dimension 0, or ErrUnsupportedDType for dtypes without an ordering
// implemented here.
func ReferenceArgMax(data *tensors.Tensor, attrs ArgMaxAttributes) (*tensors.Tensor, error) {
	if data == nil {
		return nil, errors.New("ArgMax: data tensor is nil")
	}
	shape := data.Shape()
	axis, err := NormalizeAxis(attrs.Axis, shape.Rank())
	if err != nil {
		return nil, errors.WithMessagef(err, "ArgMax of %s", shape)
	}
	if shape.Dimensions[axis] == 0 {
		return nil, errors.Wrapf(ErrEmptyReduction, "ArgMax of %s on axis %d", shape, axis)
	}
	if attrs.TieBreak != FirstIndex && attrs.TieBreak != LastIndex {
		return nil, errors.Errorf("ArgMax: unknown tie-break policy %s", attrs.TieBreak)
	}

	var indices []int64
	switch shape.DType {
	case dtypes.Float32:
		indices, err = argMaxTensor[float32](data, axis, attrs.TieBreak)
	case dtypes.Float64:
		indices, err = argMaxTensor[float64](data, axis, attrs.TieBreak)
	case dtypes.Int8:
		indices, err = argMaxTensor[int8](data, axis, attrs.TieBreak)
	case dtypes.Int16:
		indices, err = argMaxTensor[int16](data, axis, attrs.TieBreak)
	case dtypes.Int32:
		indices, err = argMaxTensor[int32](data, axis, attrs.TieBreak)
	case dtypes.Int64:
		indices, err = argMaxTensor[int64](data, axis, attrs.TieBreak)
	case dtypes.Uint8:
		indices, err = argMaxTensor[uint8](data, axis, attrs.TieBreak)
	case dtypes.Uint16:
		indices, err = argMaxTensor[uint16](data, axis, attrs.TieBreak)
	case dtypes.Uint32:
		indices, err = argMaxTensor[uint32](data, axis, attrs.TieBreak)
	case dtypes.Uint64:
		indices, err = argMaxTensor[uint64](data, axis, attrs.TieBreak)
	default:
		return nil, errors.Wrapf(ErrUnsupportedDType, "ArgMax of %s", shape)
	}
	if err != nil {
		return nil, err
	}
	return tensors.FromFlatDataAndDimensions(indices, ArgMaxOutputDimensions(shape.Dimensions, axis, attrs.KeepDims)...), nil
}

// ordered are the types ReferenceArgMax can compare.
type ordered interface {
	float32 | float64 | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// reductionLayout describes a row-major tensor as [outer, size, inner], where size is the dimension of the
// reduced axis.
type reductionLayout struct {
	outer, size, inner int
}

func newReductionLayout(dimensions []int, axis int) (l reductionLayout) {
	l.outer, l.size, l.inner = 1, dimensions[axis], 1
	for _, dim := range dimensions[:axis] {
		l.outer *= dim
	}
	for _, dim := range dimensions[axis+1:] {
		l.inner *= dim
	}
	return
}

func argMaxTensor[T ordered](data *tensors.Tensor, axis int, tieBreak TieBreak) (indices []int64, err error) {
	layout := newReductionLayout(data.Shape().Dimensions, axis)
	err = tensors.ConstFlatData(data, func(flat []T) {
		if tieBreak == LastIndex {
			indices = argMaxLastByReflection(flat, layout)
		} else {
			indices = argMaxFirst(flat, layout)
		}
	})
	return
}

// greater reports whether v should replace the current best: NaN is larger than anything, and the first NaN wins.
func greater[T ordered](v, best T) bool {
	if best != best {
		return false
	}
	return v != v || v > best
}

// argMaxFirst scans every reduced row and returns the position of the first maximum.
func argMaxFirst[T ordered](flat []T, l reductionLayout) []int64 {
	indices := make([]int64, l.outer*l.inner)
	for outerIdx := range l.outer {
		for innerIdx := range l.inner {
			base := outerIdx*l.size*l.inner + innerIdx
			bestIdx, best := 0, flat[base]
			for k := 1; k < l.size; k++ {
				if v := flat[base+k*l.inner]; greater(v, best) {
					bestIdx, best = k, v
				}
			}
			indices[outerIdx*l.inner+innerIdx] = int64(bestIdx)
		}
	}
	return indices
}

// argMaxLastByReflection reverses the reduced axis, selects the first maximum and maps the position p
// back to the original axis as size-p-1.
func argMaxLastByReflection[T ordered](flat []T, l reductionLayout) []int64 {
	reversed := make([]T, len(flat))
	for outerIdx := range l.outer {
		for k := range l.size {
			src := (outerIdx*l.size + k) * l.inner
			dst := (outerIdx*l.size + l.size - k - 1) * l.inner
			copy(reversed[dst:dst+l.inner], flat[src:src+l.inner])
		}
	}
	indices := argMaxFirst(reversed, l)
	for ii, p := range indices {
		indices[ii] = int64(l.size) - p - 1
	}
	return indices
}

// argMaxLastDirect scans every reduced row and returns the position of the last maximum.
// It must always agree with argMaxLastByReflection.
func argMaxLastDirect[T ordered](flat []T, l reductionLayout) []int64 {
	indices := make([]int64, l.outer*l.inner)
	for outerIdx := range l.outer {
		for innerIdx := range l.inner {
			base := outerIdx*l.size*l.inner + innerIdx
			bestIdx, best := l.size-1, flat[base+(l.size-1)*l.inner]
			for k := l.size - 2; k >= 0; k-- {
				if v := flat[base+k*l.inner]; greater(v, best) {
					bestIdx, best = k, v
				}
			}
			indices[outerIdx*l.inner+innerIdx] = int64(bestIdx)
		}
	}
	return indices
}
