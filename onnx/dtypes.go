// Package onnx holds the ONNX operator definitions used to generate conformance cases: operator
// schemas and node construction, conversion of tensors to/from ONNX protos, and the reference
// implementation of the operators.
package onnx

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnx-conformance/internal/protos"
	"github.com/pkg/errors"
)

// ErrUnsupportedDType is returned when a tensor data type has no ONNX or reference counterpart.
var ErrUnsupportedDType = errors.New("unsupported data type")

// dtypeForONNX converts an ONNX data type to a gomlx data type.
func dtypeForONNX(onnxDType protos.TensorProto_DataType) (dtypes.DType, error) {
	switch onnxDType {
	case protos.TensorProto_FLOAT:
		return dtypes.Float32, nil
	case protos.TensorProto_DOUBLE:
		return dtypes.Float64, nil
	case protos.TensorProto_FLOAT16:
		return dtypes.Float16, nil
	case protos.TensorProto_BFLOAT16:
		return dtypes.BFloat16, nil
	case protos.TensorProto_INT32:
		return dtypes.Int32, nil
	case protos.TensorProto_INT64:
		return dtypes.Int64, nil
	case protos.TensorProto_UINT8:
		return dtypes.Uint8, nil
	case protos.TensorProto_INT8:
		return dtypes.Int8, nil
	case protos.TensorProto_INT16:
		return dtypes.Int16, nil
	case protos.TensorProto_UINT16:
		return dtypes.Uint16, nil
	case protos.TensorProto_UINT32:
		return dtypes.Uint32, nil
	case protos.TensorProto_UINT64:
		return dtypes.Uint64, nil
	case protos.TensorProto_BOOL:
		return dtypes.Bool, nil
	case protos.TensorProto_COMPLEX64:
		return dtypes.Complex64, nil
	case protos.TensorProto_COMPLEX128:
		return dtypes.Complex128, nil
	default:
		return dtypes.InvalidDType, errors.Wrapf(ErrUnsupportedDType, "ONNX data type %v", onnxDType)
	}
}

// onnxDTypeFor is the inverse of dtypeForONNX.
func onnxDTypeFor(dtype dtypes.DType) (protos.TensorProto_DataType, error) {
	switch dtype {
	case dtypes.Float32:
		return protos.TensorProto_FLOAT, nil
	case dtypes.Float64:
		return protos.TensorProto_DOUBLE, nil
	case dtypes.Float16:
		return protos.TensorProto_FLOAT16, nil
	case dtypes.BFloat16:
		return protos.TensorProto_BFLOAT16, nil
	case dtypes.Int32:
		return protos.TensorProto_INT32, nil
	case dtypes.Int64:
		return protos.TensorProto_INT64, nil
	case dtypes.Uint8:
		return protos.TensorProto_UINT8, nil
	case dtypes.Int8:
		return protos.TensorProto_INT8, nil
	case dtypes.Int16:
		return protos.TensorProto_INT16, nil
	case dtypes.Uint16:
		return protos.TensorProto_UINT16, nil
	case dtypes.Uint32:
		return protos.TensorProto_UINT32, nil
	case dtypes.Uint64:
		return protos.TensorProto_UINT64, nil
	case dtypes.Bool:
		return protos.TensorProto_BOOL, nil
	case dtypes.Complex64:
		return protos.TensorProto_COMPLEX64, nil
	case dtypes.Complex128:
		return protos.TensorProto_COMPLEX128, nil
	default:
		return protos.TensorProto_UNDEFINED, errors.Wrapf(ErrUnsupportedDType, "GoMLX dtype %s has no ONNX equivalent", dtype)
	}
}
