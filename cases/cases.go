// Package cases generates ONNX operator conformance cases: for each scenario of an operator it builds the node,
// computes the expected outputs with the reference implementation and hands the named case to a Recorder.
//
// Routines returns the registered export routines, so a driver can enumerate and run them by name:
//
//	exporter := cases.New(recorder, sampler)
//	numRoutines, err := exporter.ExportAll(nil)
package cases

import (
	"slices"
	"strings"

	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/onnx-conformance/internal/protos"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Case is one conformance test case: a node, its inputs and the expected outputs.
type Case struct {
	// Name is unique across all cases, e.g. "argmax_no_keepdims_example".
	Name string

	Node    *protos.NodeProto
	Inputs  []*tensors.Tensor
	Outputs []*tensors.Tensor
}

// Recorder persists cases. It should fail if a case with the same name was already recorded.
type Recorder interface {
	Record(c *Case) error
}

// Sampler creates tensors filled with pseudo-random values.
type Sampler interface {
	// Uniform returns a Float32 tensor with the given dimensions, with values uniformly sampled from [low, high).
	Uniform(low, high float64, dimensions ...int) *tensors.Tensor
}

// Expect checks the case is well-formed and passes it to the recorder.
//
// Errors from the recorder are returned unchanged (e.g. duplicate names).
func Expect(recorder Recorder, node *protos.NodeProto, inputs, outputs []*tensors.Tensor, name string) error {
	if node == nil {
		return errors.Errorf("case %q: node is nil", name)
	}
	if recorder == nil {
		return errors.Errorf("case %q: no recorder", name)
	}
	if name == "" {
		return errors.Errorf("case for %s has no name", node.OpType)
	}
	if len(inputs) != len(node.Input) {
		return errors.Errorf("case %q: %s node has %d inputs, but %d tensors were given",
			name, node.OpType, len(node.Input), len(inputs))
	}
	if len(outputs) != len(node.Output) {
		return errors.Errorf("case %q: %s node has %d outputs, but %d tensors were given",
			name, node.OpType, len(node.Output), len(outputs))
	}
	if slices.Contains(inputs, nil) || slices.Contains(outputs, nil) {
		return errors.Errorf("case %q: nil input or output tensor", name)
	}
	klog.V(1).Infof("case %q: %s%v -> %v", name, node.OpType,
		tensorShapes(inputs), tensorShapes(outputs))
	return recorder.Record(&Case{
		Name:    name,
		Node:    node,
		Inputs:  inputs,
		Outputs: outputs,
	})
}

func tensorShapes(values []*tensors.Tensor) []string {
	shapes := make([]string, len(values))
	for ii, t := range values {
		shapes[ii] = t.Shape().String()
	}
	return shapes
}

// Exporter holds the collaborators used by the export routines.
type Exporter struct {
	Recorder Recorder
	Sampler  Sampler
}

// New creates an Exporter that records cases in recorder and uses sampler for the random inputs.
func New(recorder Recorder, sampler Sampler) *Exporter {
	return &Exporter{Recorder: recorder, Sampler: sampler}
}

// Routine is a named export routine: each call records a fixed set of cases.
type Routine struct {
	// Name of the routine, "<OpType>/<scenario>".
	Name string

	Export func(e *Exporter) error
}

var routines []Routine

// register adds export routines to the list returned by Routines.
func register(newRoutines ...Routine) {
	routines = append(routines, newRoutines...)
}

// Routines returns all registered export routines, sorted by name.
func Routines() []Routine {
	sorted := slices.Clone(routines)
	slices.SortFunc(sorted, func(a, b Routine) int { return strings.Compare(a.Name, b.Name) })
	return sorted
}

// ExportAll runs every registered routine for which match returns true (all routines if match is nil).
//
// It stops at the first error, and returns the number of routines run successfully.
func (e *Exporter) ExportAll(match func(name string) bool) (numRoutines int, err error) {
	for _, routine := range Routines() {
		if match != nil && !match(routine.Name) {
			continue
		}
		klog.V(1).Infof("exporting %s", routine.Name)
		if err = routine.Export(e); err != nil {
			return numRoutines, errors.WithMessagef(err, "while exporting %s", routine.Name)
		}
		numRoutines++
	}
	return numRoutines, nil
}
