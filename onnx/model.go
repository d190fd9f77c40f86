package onnx

import (
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/onnx-conformance/internal/protos"
	"github.com/pkg/errors"
)

const (
	// IRVersion is the ONNX IR version of the generated models.
	IRVersion = 8

	// ProducerName is the producer name of the generated models, the same used by the ONNX backend tests.
	ProducerName = "backend-test"
)

// valueInfo describes a graph input or output with the dtype and static shape of t.
func valueInfo(name string, t *tensors.Tensor) (*protos.ValueInfoProto, error) {
	shape := t.Shape()
	onnxDType, err := onnxDTypeFor(shape.DType)
	if err != nil {
		return nil, errors.WithMessagef(err, "while describing %q", name)
	}
	return &protos.ValueInfoProto{
		Name: name,
		Type: &protos.TypeProto{
			Value: &protos.TypeProto_TensorType{
				TensorType: &protos.TypeProto_Tensor{
					ElemType: int32(onnxDType),
					Shape: &protos.TensorShapeProto{
						Dim: sliceMap(shape.Dimensions, func(dim int) *protos.TensorShapeProto_Dimension {
							return &protos.TensorShapeProto_Dimension{
								Value: &protos.TensorShapeProto_Dimension_DimValue{DimValue: int64(dim)},
							}
						}),
					},
				},
			},
		},
	}, nil
}

// MakeModel wraps node in a model whose graph is named name, with its inputs and outputs typed after the given
// tensors. The opset imported is the one of the operator schema.
func MakeModel(name string, node *protos.NodeProto, inputs, outputs []*tensors.Tensor) (*protos.ModelProto, error) {
	schema, found := Schemas[node.OpType]
	if !found {
		return nil, errors.Wrapf(ErrInvalidInvocation, "unknown operator %q", node.OpType)
	}
	if len(inputs) != len(node.Input) || len(outputs) != len(node.Output) {
		return nil, errors.Errorf("%s: model %q given %d inputs and %d outputs",
			nodeToString(node), name, len(inputs), len(outputs))
	}
	graph := &protos.GraphProto{Name: name, Node: []*protos.NodeProto{node}}
	for ii, t := range inputs {
		vi, err := valueInfo(node.Input[ii], t)
		if err != nil {
			return nil, err
		}
		graph.Input = append(graph.Input, vi)
	}
	for ii, t := range outputs {
		vi, err := valueInfo(node.Output[ii], t)
		if err != nil {
			return nil, err
		}
		graph.Output = append(graph.Output, vi)
	}
	return &protos.ModelProto{
		IrVersion:    IRVersion,
		ProducerName: ProducerName,
		Graph:        graph,
		OpsetImport:  []*protos.OperatorSetIdProto{{Domain: schema.Domain, Version: schema.SinceVersion}},
	}, nil
}

// NodeFromModel returns the only node of a model created with MakeModel.
func NodeFromModel(model *protos.ModelProto) (*protos.NodeProto, error) {
	if model == nil || model.Graph == nil {
		return nil, errors.New("ONNX model has no graph")
	}
	if len(model.Graph.Node) != 1 {
		return nil, errors.Errorf("ONNX model graph %q has %d nodes, expected exactly 1", model.Graph.Name, len(model.Graph.Node))
	}
	return model.Graph.Node[0], nil
}
