package onnx

import (
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/onnx-conformance/internal/protos"
	"github.com/pkg/errors"
)

// referenceFn computes the outputs of a node from its inputs, with the plain Go reference implementation.
type referenceFn func(node *protos.NodeProto, inputs []*tensors.Tensor) ([]*tensors.Tensor, error)

// referenceOps maps the operator type to its reference implementation.
var referenceOps = map[string]referenceFn{
	"ArgMax": referenceArgMaxNode,
}

// EvalNode computes the expected outputs of node for the given inputs, using the reference implementation of the
// operator.
func EvalNode(node *protos.NodeProto, inputs []*tensors.Tensor) ([]*tensors.Tensor, error) {
	if node == nil {
		return nil, errors.New("EvalNode: node is nil")
	}
	fn, found := referenceOps[node.OpType]
	if !found {
		return nil, errors.Errorf("no reference implementation for operator %q", node.OpType)
	}
	if len(inputs) != len(node.Input) {
		return nil, errors.Errorf("%s takes %d inputs, %d given", nodeToString(node), len(node.Input), len(inputs))
	}
	outputs, err := fn(node, inputs)
	if err != nil {
		return nil, errors.WithMessagef(err, "while evaluating %s", nodeToString(node))
	}
	return outputs, nil
}

func referenceArgMaxNode(node *protos.NodeProto, inputs []*tensors.Tensor) ([]*tensors.Tensor, error) {
	attrs, err := ArgMaxAttributesFromNode(node)
	if err != nil {
		return nil, err
	}
	result, err := ReferenceArgMax(inputs[0], attrs)
	if err != nil {
		return nil, err
	}
	return []*tensors.Tensor{result}, nil
}
