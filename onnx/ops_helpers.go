package onnx

// This file builds the arg-reduction operators with GoMLX graph ops, so the reference implementation can be
// cross-checked against a GoMLX backend.

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/backends"
	. "github.com/gomlx/gomlx/pkg/core/graph"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// argReduceFn is a function type for argmax/argmin operations.
type argReduceFn func(*Node, int) *Node

// argMaxInt64 is GoMLX ArgMax returning ONNX's index dtype.
func argMaxInt64(x *Node, axis int) *Node {
	return ArgMax(x, axis, dtypes.Int64)
}

// convertArgReduceOp is a generic implementation for ArgMax and ArgMin operators.
// It handles the common logic for both operations including the tie-break policy and keepdims.
func convertArgReduceOp(operand *Node, axis int, keepDims bool, tieBreak TieBreak, argFn argReduceFn) *Node {
	axis = AdjustAxisToOperandRank(operand, axis)

	var result *Node
	if tieBreak == LastIndex {
		// To select last index, reverse the axis, find argmax/min, then compute correct index
		reversed := Reverse(operand, axis)
		result = argFn(reversed, axis)
		lastIdx := Scalar(operand.Graph(), result.DType(), operand.Shape().Dim(axis)-1)
		result = Sub(lastIdx, result)
	} else {
		result = argFn(operand, axis)
	}

	if keepDims {
		result = ExpandAxes(result, axis)
	}

	return result
}

// ArgMaxNode adds ONNX ArgMax of x to its graph, returning the Int64 indices.
//
// It panics (with an exception) if the axis is out of range, like other GoMLX ops.
func ArgMaxNode(x *Node, attrs ArgMaxAttributes) *Node {
	return convertArgReduceOp(x, attrs.Axis, attrs.KeepDims, attrs.TieBreak, argMaxInt64)
}

// GraphArgMax computes ONNX ArgMax of data by building and executing a GoMLX graph on the given backend.
//
// It implements the same semantics as ReferenceArgMax, except for NaN handling, which is left to the backend.
func GraphArgMax(backend backends.Backend, data *tensors.Tensor, attrs ArgMaxAttributes) (result *tensors.Tensor, err error) {
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
	err = exceptions.TryCatch[error](func() {
		normalized := attrs
		normalized.Axis = axis
		result = MustExecOnce(backend, func(x *Node) *Node {
			return ArgMaxNode(x, normalized)
		}, data)
		_ = result.ToLocal() // Detach from the backend.
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "while executing ArgMax(%s) of %s", attrs, shape)
	}
	return result, nil
}
