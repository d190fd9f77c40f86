package onnx

import "github.com/gomlx/onnx-conformance/internal/protos"

// AttributeSchema declares the type and default value of an operator attribute.
type AttributeSchema struct {
	Type protos.AttributeProto_AttributeType

	// Default value for INT attributes, used when the attribute is omitted.
	Default int64
}

// OpSchema declares an operator: its name, the opset version it is taken from, its arity and attributes.
type OpSchema struct {
	OpType string

	// Domain is empty for the default "ai.onnx" domain.
	Domain string

	// SinceVersion is the opset version of the operator definition.
	SinceVersion int64

	MinInputs, MaxInputs   int
	MinOutputs, MaxOutputs int
	Attributes             map[string]AttributeSchema
}

// ArgMaxSchema is the ONNX ArgMax-13 operator definition.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__ArgMax.html
var ArgMaxSchema = &OpSchema{
	OpType:       "ArgMax",
	SinceVersion: 13,
	MinInputs:    1,
	MaxInputs:    1,
	MinOutputs:   1,
	MaxOutputs:   1,
	Attributes: map[string]AttributeSchema{
		"axis":              {Type: protos.AttributeProto_INT, Default: int64(DefaultArgMaxAttributes.Axis)},
		"keepdims":          {Type: protos.AttributeProto_INT, Default: boolToInt64(DefaultArgMaxAttributes.KeepDims)},
		"select_last_index": {Type: protos.AttributeProto_INT, Default: boolToInt64(DefaultArgMaxAttributes.TieBreak == LastIndex)},
	},
}

// Schemas maps operator types to their definitions. MakeNode only accepts operators registered here.
var Schemas = map[string]*OpSchema{
	ArgMaxSchema.OpType: ArgMaxSchema,
}

func boolToInt64(v bool) int64 {
	if v {
		return 1
	}
	return 0
}
