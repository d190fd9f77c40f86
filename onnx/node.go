package onnx

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnx-conformance/internal/protos"
	"github.com/pkg/errors"
)

// ErrInvalidInvocation is returned by MakeNode when the operator, its arity or its attributes don't
// match the operator schema.
var ErrInvalidInvocation = errors.New("invalid operator invocation")

// sliceMap executes the given function sequentially for every element on in and returns a mapped slice.
func sliceMap[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}

// AttrInt creates an INT attribute.
func AttrInt(name string, value int) *protos.AttributeProto {
	return &protos.AttributeProto{Name: name, Type: protos.AttributeProto_INT, I: int64(value)}
}

// AttrBool creates a boolean attribute: ONNX stores those as INT attributes set to 0 or 1.
func AttrBool(name string, value bool) *protos.AttributeProto {
	if value {
		return AttrInt(name, 1)
	}
	return AttrInt(name, 0)
}

// MakeNode creates a node invoking opType, after validating it against the registered OpSchema.
//
// It returns an error wrapping ErrInvalidInvocation if the operator is unknown, if the number of inputs or
// outputs is out of the schema range, or if any attribute is unknown, repeated or of the wrong type.
func MakeNode(opType string, inputs, outputs []string, attrs ...*protos.AttributeProto) (*protos.NodeProto, error) {
	schema, found := Schemas[opType]
	if !found {
		return nil, errors.Wrapf(ErrInvalidInvocation, "unknown operator %q", opType)
	}
	if len(inputs) < schema.MinInputs || len(inputs) > schema.MaxInputs {
		return nil, errors.Wrapf(ErrInvalidInvocation, "%s takes %d to %d inputs, got %d (%q)",
			opType, schema.MinInputs, schema.MaxInputs, len(inputs), inputs)
	}
	if len(outputs) < schema.MinOutputs || len(outputs) > schema.MaxOutputs {
		return nil, errors.Wrapf(ErrInvalidInvocation, "%s takes %d to %d outputs, got %d (%q)",
			opType, schema.MinOutputs, schema.MaxOutputs, len(outputs), outputs)
	}
	for _, name := range slices.Concat(inputs, outputs) {
		if name == "" {
			return nil, errors.Wrapf(ErrInvalidInvocation, "%s: empty input/output names are not supported", opType)
		}
	}
	seen := make(map[string]bool, len(attrs))
	for _, attr := range attrs {
		attrSchema, found := schema.Attributes[attr.Name]
		if !found {
			return nil, errors.Wrapf(ErrInvalidInvocation, "%s has no attribute %q", opType, attr.Name)
		}
		if attr.Type != attrSchema.Type {
			return nil, errors.Wrapf(ErrInvalidInvocation, "%s attribute %q must be %s, got %s",
				opType, attr.Name, attrSchema.Type, attr.Type)
		}
		if seen[attr.Name] {
			return nil, errors.Wrapf(ErrInvalidInvocation, "%s attribute %q given more than once", opType, attr.Name)
		}
		seen[attr.Name] = true
	}
	return &protos.NodeProto{
		OpType:    opType,
		Domain:    schema.Domain,
		Input:     slices.Clone(inputs),
		Output:    slices.Clone(outputs),
		Attribute: slices.Clone(attrs),
	}, nil
}

// nodeToString returns a short description of the node, used in error messages.
func nodeToString(node *protos.NodeProto) string {
	var sb strings.Builder
	sb.WriteString(node.OpType)
	if node.Name != "" {
		fmt.Fprintf(&sb, "[%s]", node.Name)
	}
	fmt.Fprintf(&sb, "(%s)", strings.Join(node.Input, ", "))
	if len(node.Attribute) > 0 {
		attrs := sliceMap(node.Attribute, func(attr *protos.AttributeProto) string {
			switch attr.Type {
			case protos.AttributeProto_INT:
				return fmt.Sprintf("%s=%d", attr.Name, attr.I)
			case protos.AttributeProto_FLOAT:
				return fmt.Sprintf("%s=%g", attr.Name, attr.F)
			case protos.AttributeProto_STRING:
				return fmt.Sprintf("%s=%q", attr.Name, attr.S)
			case protos.AttributeProto_INTS:
				return fmt.Sprintf("%s=%v", attr.Name, attr.Ints)
			default:
				return fmt.Sprintf("%s:%s", attr.Name, attr.Type)
			}
		})
		fmt.Fprintf(&sb, "{%s}", strings.Join(attrs, ", "))
	}
	fmt.Fprintf(&sb, " -> (%s)", strings.Join(node.Output, ", "))
	return sb.String()
}

////////////////////////////////////////////////////////////////////
//
// Attribute getters.
//
////////////////////////////////////////////////////////////////////

// getNodeAttr returns the given node attribute. If required is true, it will panic with a message about
// the missing attribute.
func getNodeAttr(node *protos.NodeProto, name string, required bool) *protos.AttributeProto {
	for _, attr := range node.Attribute {
		if attr.Name == name {
			return attr
		}
	}
	if required {
		exceptions.Panicf("ONNX %s is missing required attribute %q", nodeToString(node), name)
	}
	return nil
}

func assertNodeAttrType(node *protos.NodeProto, attr *protos.AttributeProto, attributeType protos.AttributeProto_AttributeType) {
	if attr.Type != attributeType {
		exceptions.Panicf("unsupported ONNX attribute %q of type %q in %s", attr.Name, attr.Type, nodeToString(node))
	}
}

// getIntAttrOr gets an integer attribute for node if present or return the given defaultValue.
// It panics with an error message if the attribute is present but is of the wrong type.
func getIntAttrOr(node *protos.NodeProto, attrName string, defaultValue int) int {
	attr := getNodeAttr(node, attrName, false)
	if attr == nil {
		return defaultValue
	}
	assertNodeAttrType(node, attr, protos.AttributeProto_INT)
	return int(attr.I)
}

// getBoolAttrOr gets a boolean attribute (ONNX uses an int value of 0 or 1) for node if present or return the given defaultValue.
// It panics with an error message if the attribute is present but is of the wrong type.
func getBoolAttrOr(node *protos.NodeProto, attrName string, defaultValue bool) bool {
	defaultInt := 0
	if defaultValue {
		defaultInt = 1
	}
	intValue := getIntAttrOr(node, attrName, defaultInt)
	return intValue != 0
}
