package cases

import (
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/onnx-conformance/internal/protos"
	"github.com/gomlx/onnx-conformance/onnx"
	"github.com/pkg/errors"
)

func init() {
	register(
		Routine{"ArgMax/no_keepdims", (*Exporter).ExportArgMaxNoKeepdims},
		Routine{"ArgMax/keepdims", (*Exporter).ExportArgMaxKeepdims},
		Routine{"ArgMax/default_axes_keepdims", (*Exporter).ExportArgMaxDefaultAxesKeepdims},
		Routine{"ArgMax/negative_axis_keepdims", (*Exporter).ExportArgMaxNegativeAxisKeepdims},
		Routine{"ArgMax/no_keepdims_select_last_index", (*Exporter).ExportArgMaxNoKeepdimsSelectLastIndex},
		Routine{"ArgMax/keepdims_select_last_index", (*Exporter).ExportArgMaxKeepdimsSelectLastIndex},
		Routine{"ArgMax/default_axes_keepdims_select_last_index", (*Exporter).ExportArgMaxDefaultAxesKeepdimsSelectLastIndex},
		Routine{"ArgMax/negative_axis_keepdims_select_last_index", (*Exporter).ExportArgMaxNegativeAxisKeepdimsSelectLastIndex},
	)
}

const (
	// argMaxRandomLow and argMaxRandomHigh bound the values of the random ArgMax inputs.
	argMaxRandomLow, argMaxRandomHigh = -10.0, 10.0
)

// argMaxRandomDims is the shape of the random ArgMax inputs: rank 3 to exercise the output shapes.
var argMaxRandomDims = []int{2, 3, 4}

// argMaxExample returns the literal ArgMax input: row 0 has a tie, so the tie-break policy matters.
func argMaxExample() *tensors.Tensor {
	return tensors.FromFlatDataAndDimensions([]float32{2, 2, 3, 10}, 2, 2)
}

// argMaxScenario is one ArgMax attribute configuration.
type argMaxScenario struct {
	// family is the part of the case names after "argmax_".
	family string

	// axis is nil if the attribute is omitted.
	axis     *int
	keepDims bool
	tieBreak onnx.TieBreak
}

func axisAttr(axis int) *int { return &axis }

// nodeAttributes returns the node attributes of the scenario: keepdims is always set, axis only if
// given, and select_last_index only when it is not the default.
func (s argMaxScenario) nodeAttributes() []*protos.AttributeProto {
	var attrs []*protos.AttributeProto
	if s.axis != nil {
		attrs = append(attrs, onnx.AttrInt("axis", *s.axis))
	}
	attrs = append(attrs, onnx.AttrBool("keepdims", s.keepDims))
	if s.tieBreak != onnx.DefaultArgMaxAttributes.TieBreak {
		attrs = append(attrs, onnx.AttrBool("select_last_index", s.tieBreak == onnx.LastIndex))
	}
	return attrs
}

// caseName returns the name of the case for the given data source ("example" or "random").
func (s argMaxScenario) caseName(source string) string {
	name := "argmax_" + s.family + "_" + source
	if s.tieBreak == onnx.LastIndex {
		name += "_select_last_index"
	}
	return name
}

// exportArgMax records the scenario twice: with the literal example and with a random rank-3 input.
func (e *Exporter) exportArgMax(s argMaxScenario) error {
	if e.Recorder == nil || e.Sampler == nil {
		return errors.New("ArgMax export requires a Recorder and a Sampler")
	}
	// keepdims is set even when it is the default, so the node matches the ONNX reference fixtures byte for byte.
	node, err := onnx.MakeNode("ArgMax", []string{"data"}, []string{"result"}, s.nodeAttributes()...)
	if err != nil {
		return err
	}
	// The expected values are derived from the node itself, so they can't drift from what is recorded.
	attrs, err := onnx.ArgMaxAttributesFromNode(node)
	if err != nil {
		return err
	}

	sources := []struct {
		name string
		data func() *tensors.Tensor
	}{
		{"example", argMaxExample},
		{"random", func() *tensors.Tensor {
			return e.Sampler.Uniform(argMaxRandomLow, argMaxRandomHigh, argMaxRandomDims...)
		}},
	}
	for _, source := range sources {
		data := source.data()
		result, err := onnx.ReferenceArgMax(data, attrs)
		if err != nil {
			return errors.WithMessagef(err, "while computing ArgMax(%s) for case %q", attrs, s.caseName(source.name))
		}
		err = Expect(e.Recorder, node, []*tensors.Tensor{data}, []*tensors.Tensor{result}, s.caseName(source.name))
		if err != nil {
			return err
		}
	}
	return nil
}

// ExportArgMaxNoKeepdims records argmax_no_keepdims_{example,random}: axis=1, keepdims=0.
//
// Example result: [0, 1].
func (e *Exporter) ExportArgMaxNoKeepdims() error {
	return e.exportArgMax(argMaxScenario{family: "no_keepdims", axis: axisAttr(1), keepDims: false})
}

// ExportArgMaxKeepdims records argmax_keepdims_{example,random}: axis=1, keepdims=1.
//
// Example result: [[0], [1]]. Random result shape: [2, 1, 4].
func (e *Exporter) ExportArgMaxKeepdims() error {
	return e.exportArgMax(argMaxScenario{family: "keepdims", axis: axisAttr(1), keepDims: true})
}

// ExportArgMaxDefaultAxesKeepdims records argmax_default_axis_{example,random}: axis omitted (0), keepdims=1.
//
// Example result: [[1, 1]]. Random result shape: [1, 3, 4].
func (e *Exporter) ExportArgMaxDefaultAxesKeepdims() error {
	return e.exportArgMax(argMaxScenario{family: "default_axis", keepDims: true})
}

// ExportArgMaxNegativeAxisKeepdims records argmax_negative_axis_keepdims_{example,random}: axis=-1, keepdims=1.
//
// Example result: [[0], [1]]. Random result shape: [2, 3, 1].
func (e *Exporter) ExportArgMaxNegativeAxisKeepdims() error {
	return e.exportArgMax(argMaxScenario{family: "negative_axis_keepdims", axis: axisAttr(-1), keepDims: true})
}

// ExportArgMaxNoKeepdimsSelectLastIndex is ExportArgMaxNoKeepdims with select_last_index=1.
//
// Example result: [1, 1].
func (e *Exporter) ExportArgMaxNoKeepdimsSelectLastIndex() error {
	return e.exportArgMax(argMaxScenario{family: "no_keepdims", axis: axisAttr(1), keepDims: false,
		tieBreak: onnx.LastIndex})
}

// ExportArgMaxKeepdimsSelectLastIndex is ExportArgMaxKeepdims with select_last_index=1.
//
// Example result: [[1], [1]].
func (e *Exporter) ExportArgMaxKeepdimsSelectLastIndex() error {
	return e.exportArgMax(argMaxScenario{family: "keepdims", axis: axisAttr(1), keepDims: true,
		tieBreak: onnx.LastIndex})
}

// ExportArgMaxDefaultAxesKeepdimsSelectLastIndex is ExportArgMaxDefaultAxesKeepdims with select_last_index=1.
//
// Example result: [[1, 1]].
func (e *Exporter) ExportArgMaxDefaultAxesKeepdimsSelectLastIndex() error {
	return e.exportArgMax(argMaxScenario{family: "default_axis", keepDims: true, tieBreak: onnx.LastIndex})
}

// ExportArgMaxNegativeAxisKeepdimsSelectLastIndex is ExportArgMaxNegativeAxisKeepdims with select_last_index=1.
//
// Example result: [[1], [1]].
func (e *Exporter) ExportArgMaxNegativeAxisKeepdimsSelectLastIndex() error {
	return e.exportArgMax(argMaxScenario{family: "negative_axis_keepdims", axis: axisAttr(-1), keepDims: true,
		tieBreak: onnx.LastIndex})
}
