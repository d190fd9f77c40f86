package onnx

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/backends"
	. "github.com/gomlx/gomlx/pkg/core/graph"
	"github.com/gomlx/gomlx/pkg/core/shapes"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnx-conformance/internal/protos"
	"github.com/pkg/errors"
)

// DefaultDeviceNum is the device number used in local graph operations
// (like converting tensors for different types).
var DefaultDeviceNum = backends.DeviceNum(0)

// Shape converts an ONNX data type and shape to GoMLX shapes.Shape (it includes the dtype).
func Shape(proto *protos.TensorProto) (shape shapes.Shape, err error) {
	if proto == nil {
		err = errors.New("ONNX TensorProto is nil")
		return
	}
	shape.DType, err = dtypeForONNX(protos.TensorProto_DataType(proto.DataType))
	if err != nil {
		return
	}
	shape.Dimensions = make([]int, len(proto.Dims))
	for axis, dim := range proto.Dims {
		if dim < 0 {
			err = errors.Errorf("tensor %q has negative dimension %d at axis %d", proto.Name, dim, axis)
			return
		}
		shape.Dimensions[axis] = int(dim)
	}
	return
}

// checkAndCreateTensorFromProto implements the generic check and copy of the ONNX proto data to a tensor for the supported data type.
func checkAndCreateTensorFromProto[T interface {
	float32 | float64 | int32 | int64 | uint64
}](backend backends.Backend, proto *protos.TensorProto, onnxData []T, shape shapes.Shape) (*tensors.Tensor, error) {
	if len(onnxData) != shape.Size() {
		return nil, errors.Errorf("tensor %q shaped %s has size %d , but ONNX proto provided a slice with %d values!?",
			proto.Name, shape, shape.Size(), len(onnxData))
	}

	onnxDataTensor := tensors.FromFlatDataAndDimensions(onnxData, shape.Dimensions...)
	if shape.DType == dtypes.FromGenericsType[T]() {
		// The provided ONNX tensor is exactly what we want:
		return onnxDataTensor, nil
	}
	defer func() { _ = onnxDataTensor.FinalizeAll() }()
	if backend == nil {
		return nil, errors.Errorf("tensor %q of dtype %s is stored as %s values and needs a backend to be converted",
			proto.Name, shape.DType, dtypes.FromGenericsType[T]())
	}

	// Convert from the ONNX proto data type to the target datatype, e.g.: INT8 values are stored in int32_data.
	var converted *tensors.Tensor
	err := exceptions.TryCatch[error](func() {
		converted = MustExecOnce(backend, func(x *Node) *Node {
			return ConvertDType(x, shape.DType)
		}, onnxDataTensor)
		_ = converted.ToLocal() // Detach from the conversion backend.
	})
	return converted, err
}

// TensorFromProto converts a protos.TensorProto to a tensors.Tensor, handling the different ways ONNX stores values.
//
// The backend is only used when the values are stored in a typed field different from the tensor dtype (e.g. INT8
// stored in int32_data), and it can be nil otherwise.
func TensorFromProto(backend backends.Backend, proto *protos.TensorProto) (t *tensors.Tensor, err error) {
	if proto == nil {
		return nil, errors.New("ONNX TensorProto is nil")
	}

	var shape shapes.Shape
	shape, err = Shape(proto)
	if err != nil {
		err = errors.WithMessagef(err, "while parsing tensor %q", proto.Name)
		return
	}

	// If data is provided as RawData: check that the size of the data is the same used in GoMLX.
	// ONNX raw data is little-endian, the same as GoMLX local storage in all supported platforms.
	if proto.RawData != nil {
		t = tensors.FromShape(shape)
		t.MutableBytes(func(data []byte) {
			if len(data) != len(proto.RawData) {
				err = errors.Errorf("tensor %q shaped %s uses %d bytes, but ONNX proto provided %d bytes of raw-data!?",
					proto.Name, shape, len(data), len(proto.RawData))
			} else {
				copy(data, proto.RawData)
			}
		})
		if err != nil {
			_ = t.FinalizeAll()
			return nil, err
		}
		return
	}

	// Tries to convert to each data type.
	switch {
	case proto.DoubleData != nil:
		return checkAndCreateTensorFromProto(backend, proto, proto.DoubleData, shape)
	case proto.FloatData != nil:
		return checkAndCreateTensorFromProto(backend, proto, proto.FloatData, shape)
	case proto.Int64Data != nil:
		return checkAndCreateTensorFromProto(backend, proto, proto.Int64Data, shape)
	case proto.Uint64Data != nil:
		return checkAndCreateTensorFromProto(backend, proto, proto.Uint64Data, shape)
	case proto.Int32Data != nil:
		return checkAndCreateTensorFromProto(backend, proto, proto.Int32Data, shape)
	}
	if shape.Size() == 0 {
		return tensors.FromShape(shape), nil
	}
	return nil, errors.Errorf("tensor %q shaped %s has no supported format of data in the ONNX proto!?", proto.Name, shape)
}

// TensorToProto converts a GoMLX tensor to an ONNX protos.TensorProto named name.
//
// Values are always stored as raw-data, the same way the ONNX numpy helpers do.
func TensorToProto(name string, t *tensors.Tensor) (*protos.TensorProto, error) {
	if t == nil {
		return nil, errors.Errorf("tensor %q is nil", name)
	}
	shape := t.Shape()
	onnxDType, err := onnxDTypeFor(shape.DType)
	if err != nil {
		return nil, errors.WithMessagef(err, "while converting tensor %q", name)
	}
	proto := &protos.TensorProto{
		Name:     name,
		DataType: int32(onnxDType),
		Dims:     sliceMap(shape.Dimensions, func(dim int) int64 { return int64(dim) }),
		RawData:  []byte{},
	}
	t.ConstBytes(func(data []byte) {
		proto.RawData = append(proto.RawData, data...)
	})
	return proto, nil
}
