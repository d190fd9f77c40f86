package onnx

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gomlx/gomlx/pkg/core/graph/graphtest"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnx-conformance/internal/protos"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

// TestShape tests the Shape() function that converts ONNX TensorProto to GoMLX shapes.Shape
func TestShape(t *testing.T) {
	t.Run("NilProto", func(t *testing.T) {
		_, err := Shape(nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "nil")
	})

	t.Run("Float32Scalar", func(t *testing.T) {
		proto := &protos.TensorProto{
			Dims:     []int64{},
			DataType: int32(protos.TensorProto_FLOAT),
		}
		shape, err := Shape(proto)
		require.NoError(t, err)
		require.Equal(t, dtypes.Float32, shape.DType)
		require.Equal(t, 0, shape.Rank())
	})

	t.Run("Int64_3D", func(t *testing.T) {
		proto := &protos.TensorProto{
			Dims:     []int64{2, 3, 4},
			DataType: int32(protos.TensorProto_INT64),
		}
		shape, err := Shape(proto)
		require.NoError(t, err)
		require.Equal(t, dtypes.Int64, shape.DType)
		require.Equal(t, []int{2, 3, 4}, shape.Dimensions)
	})

	t.Run("NegativeDimension", func(t *testing.T) {
		proto := &protos.TensorProto{
			Dims:     []int64{2, -1},
			DataType: int32(protos.TensorProto_FLOAT),
		}
		_, err := Shape(proto)
		require.Error(t, err)
		require.Contains(t, err.Error(), "negative dimension")
	})

	t.Run("StringNotSupported", func(t *testing.T) {
		proto := &protos.TensorProto{
			Dims:     []int64{2},
			DataType: int32(protos.TensorProto_STRING),
		}
		_, err := Shape(proto)
		require.ErrorIs(t, err, ErrUnsupportedDType)
	})
}

// TestTensorFromProto tests the conversion of the ONNX proto to GoMLX tensors.
func TestTensorFromProto(t *testing.T) {
	backend := graphtest.BuildTestBackend()

	t.Run("NilProto", func(t *testing.T) {
		_, err := TensorFromProto(backend, nil)
		require.Error(t, err)
	})

	t.Run("FloatData_Float32", func(t *testing.T) {
		proto := &protos.TensorProto{
			Dims:      []int64{2, 2},
			DataType:  int32(protos.TensorProto_FLOAT),
			FloatData: []float32{2, 2, 3, 10},
		}
		tensor, err := TensorFromProto(nil, proto)
		require.NoError(t, err)
		require.Equal(t, []int{2, 2}, tensor.Shape().Dimensions)
		require.Equal(t, []float32{2, 2, 3, 10}, tensors.MustCopyFlatData[float32](tensor))
	})

	t.Run("Int64Data_Int64", func(t *testing.T) {
		proto := &protos.TensorProto{
			Dims:      []int64{3},
			DataType:  int32(protos.TensorProto_INT64),
			Int64Data: []int64{-1, 0, 1 << 40},
		}
		tensor, err := TensorFromProto(nil, proto)
		require.NoError(t, err)
		require.Equal(t, dtypes.Int64, tensor.Shape().DType)
		require.Equal(t, []int64{-1, 0, 1 << 40}, tensors.MustCopyFlatData[int64](tensor))
	})

	t.Run("DTypeConversion_Int32ToInt8", func(t *testing.T) {
		// INT8 values are stored in int32_data.
		proto := &protos.TensorProto{
			Dims:      []int64{3},
			DataType:  int32(protos.TensorProto_INT8),
			Int32Data: []int32{-128, 5, 127},
		}
		tensor, err := TensorFromProto(backend, proto)
		require.NoError(t, err)
		require.Equal(t, dtypes.Int8, tensor.Shape().DType)
		require.Equal(t, []int8{-128, 5, 127}, tensors.MustCopyFlatData[int8](tensor))

		_, err = TensorFromProto(nil, proto)
		require.Error(t, err)
		require.Contains(t, err.Error(), "needs a backend")
	})

	t.Run("RawData_Float32", func(t *testing.T) {
		data := []float32{1.5, 2.5, 3.5, 4.5}
		rawBytes := make([]byte, 0, len(data)*4)
		for _, v := range data {
			rawBytes = binary.LittleEndian.AppendUint32(rawBytes, math.Float32bits(v))
		}
		proto := &protos.TensorProto{
			Dims:     []int64{4},
			DataType: int32(protos.TensorProto_FLOAT),
			RawData:  rawBytes,
		}
		tensor, err := TensorFromProto(nil, proto)
		require.NoError(t, err)
		require.Equal(t, dtypes.Float32, tensor.Shape().DType)
		require.Equal(t, data, tensors.MustCopyFlatData[float32](tensor))
	})

	t.Run("RawData_Int8", func(t *testing.T) {
		proto := &protos.TensorProto{
			Dims:     []int64{4},
			DataType: int32(protos.TensorProto_INT8),
			RawData:  []byte{128, 255, 0, 127}, // -128, -1, 0, 127 as unsigned bytes
		}
		tensor, err := TensorFromProto(nil, proto)
		require.NoError(t, err)
		require.Equal(t, []int8{-128, -1, 0, 127}, tensors.MustCopyFlatData[int8](tensor))
	})

	t.Run("RawDataSizeMismatch", func(t *testing.T) {
		proto := &protos.TensorProto{
			Dims:     []int64{2},
			DataType: int32(protos.TensorProto_FLOAT),
			RawData:  []byte{0, 0, 0, 0},
		}
		_, err := TensorFromProto(nil, proto)
		require.Error(t, err)
		require.Contains(t, err.Error(), "raw-data")
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		proto := &protos.TensorProto{
			Dims:      []int64{2, 2}, // Expects 4 elements
			DataType:  int32(protos.TensorProto_FLOAT),
			FloatData: []float32{1.0, 2.0},
		}
		_, err := TensorFromProto(nil, proto)
		require.Error(t, err)
		require.Contains(t, err.Error(), "size")
	})

	t.Run("Empty", func(t *testing.T) {
		proto := &protos.TensorProto{
			Dims:     []int64{2, 0},
			DataType: int32(protos.TensorProto_FLOAT),
		}
		tensor, err := TensorFromProto(nil, proto)
		require.NoError(t, err)
		require.Equal(t, 0, tensor.Shape().Size())
	})

	t.Run("NoData", func(t *testing.T) {
		proto := &protos.TensorProto{
			Dims:     []int64{2},
			DataType: int32(protos.TensorProto_FLOAT),
		}
		_, err := TensorFromProto(nil, proto)
		require.Error(t, err)
	})
}

func TestTensorToProto(t *testing.T) {
	t.Run("Float32", func(t *testing.T) {
		tensor := tensors.FromFlatDataAndDimensions([]float32{2, 2, 3, 10}, 2, 2)
		proto, err := TensorToProto("data", tensor)
		require.NoError(t, err)
		require.Equal(t, "data", proto.Name)
		require.Equal(t, int32(protos.TensorProto_FLOAT), proto.DataType)
		require.Equal(t, []int64{2, 2}, proto.Dims)
		require.Len(t, proto.RawData, 16)
		require.Equal(t, uint32(0x41200000), binary.LittleEndian.Uint32(proto.RawData[12:])) // 10.0
		require.Nil(t, proto.FloatData)
	})

	t.Run("Int64Scalar", func(t *testing.T) {
		tensor := tensors.FromFlatDataAndDimensions([]int64{-2})
		proto, err := TensorToProto("result", tensor)
		require.NoError(t, err)
		require.Equal(t, int32(protos.TensorProto_INT64), proto.DataType)
		require.Empty(t, proto.Dims)
		require.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, proto.RawData)
	})

	t.Run("Empty", func(t *testing.T) {
		tensor := tensors.FromFlatDataAndDimensions([]int64{}, 0, 3)
		proto, err := TensorToProto("empty", tensor)
		require.NoError(t, err)
		require.NotNil(t, proto.RawData)
		require.Empty(t, proto.RawData)
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := TensorToProto("x", nil)
		require.Error(t, err)
	})
}

func TestRoundTripConversion(t *testing.T) {
	testCases := []struct {
		name     string
		original *tensors.Tensor
	}{
		{"Float32_2D", tensors.FromFlatDataAndDimensions([]float32{1.0, -2.0, 3.0, float32(math.Inf(-1))}, 2, 2)},
		{"Float64_1D", tensors.FromFlatDataAndDimensions([]float64{0.1, 0.2}, 2)},
		{"Int32_1D", tensors.FromFlatDataAndDimensions([]int32{10, 20, 30}, 3)},
		{"Int64_3D", tensors.FromFlatDataAndDimensions([]int64{0, 1, 2, 3, 4, 5, 6, 7}, 2, 2, 2)},
		{"Uint16_Scalar", tensors.FromFlatDataAndDimensions([]uint16{65535})},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tensorProto, err := TensorToProto(tc.name, tc.original)
			require.NoError(t, err)

			// Through the wire format too.
			contents, err := proto.Marshal(tensorProto)
			require.NoError(t, err)
			decoded := &protos.TensorProto{}
			require.NoError(t, proto.Unmarshal(contents, decoded))

			recovered, err := TensorFromProto(nil, decoded)
			require.NoError(t, err)
			require.True(t, tc.original.Shape().Equal(recovered.Shape()),
				"original shape %s, recovered %s", tc.original.Shape(), recovered.Shape())
			require.Equal(t, tc.original.Value(), recovered.Value())
		})
	}
}

func TestDTypeConversion(t *testing.T) {
	for _, dtype := range []dtypes.DType{dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32,
		dtypes.Int64, dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64, dtypes.Bool, dtypes.Float16} {
		onnxDType, err := onnxDTypeFor(dtype)
		require.NoError(t, err)
		back, err := dtypeForONNX(onnxDType)
		require.NoError(t, err)
		require.Equal(t, dtype, back)
	}
	_, err := dtypeForONNX(protos.TensorProto_STRING)
	require.ErrorIs(t, err, ErrUnsupportedDType)
	_, err = onnxDTypeFor(dtypes.InvalidDType)
	require.ErrorIs(t, err, ErrUnsupportedDType)
}
