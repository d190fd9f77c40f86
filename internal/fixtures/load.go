package fixtures

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomlx/gomlx/backends"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/onnx-conformance/cases"
	"github.com/gomlx/onnx-conformance/internal/protos"
	"github.com/gomlx/onnx-conformance/onnx"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
)

// ErrMismatch is returned by Verify when a stored output differs from the recomputed one.
var ErrMismatch = errors.New("expected output mismatch")

// Load reads the case stored in caseDir (as written by Dir).
//
// The backend is only needed for tensors stored in a typed field different from their dtype, it can be nil
// for the cases written by Dir.
func Load(backend backends.Backend, caseDir string) (*cases.Case, error) {
	contents, err := os.ReadFile(filepath.Join(caseDir, ModelFileName))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read model of case in %q", caseDir)
	}
	model := &protos.ModelProto{}
	if err = proto.Unmarshal(contents, model); err != nil {
		return nil, errors.Wrapf(err, "while parsing model of case in %q", caseDir)
	}
	node, err := onnx.NodeFromModel(model)
	if err != nil {
		return nil, errors.WithMessagef(err, "case in %q", caseDir)
	}

	c := &cases.Case{
		Name: strings.TrimPrefix(filepath.Base(caseDir), CaseDirPrefix),
		Node: node,
	}
	dataSetDir := filepath.Join(caseDir, DataSetDirName)
	for ii := range node.Input {
		t, err := loadTensor(backend, filepath.Join(dataSetDir, InputFileName(ii)))
		if err != nil {
			return nil, err
		}
		c.Inputs = append(c.Inputs, t)
	}
	for ii := range node.Output {
		t, err := loadTensor(backend, filepath.Join(dataSetDir, OutputFileName(ii)))
		if err != nil {
			return nil, err
		}
		c.Outputs = append(c.Outputs, t)
	}
	return c, nil
}

func loadTensor(backend backends.Backend, path string) (*tensors.Tensor, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read tensor file")
	}
	tensorProto := &protos.TensorProto{}
	if err = proto.Unmarshal(contents, tensorProto); err != nil {
		return nil, errors.Wrapf(err, "while parsing tensor %q", path)
	}
	t, err := onnx.TensorFromProto(backend, tensorProto)
	if err != nil {
		return nil, errors.WithMessagef(err, "while loading tensor %q", path)
	}
	return t, nil
}

// LoadAll loads every case stored under root, sorted by name.
func LoadAll(backend backends.Backend, root string) ([]*cases.Case, error) {
	caseDirs, err := filepath.Glob(filepath.Join(root, CaseDirPrefix+"*"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list cases in %q", root)
	}
	var loaded []*cases.Case
	for _, caseDir := range caseDirs {
		if info, err := os.Stat(caseDir); err != nil || !info.IsDir() {
			continue
		}
		c, err := Load(backend, caseDir)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, c)
	}
	return loaded, nil
}

// Verify recomputes the outputs of the case from its node and inputs with the reference implementation and checks
// they are equal to the stored outputs.
//
// If backend is not nil, ArgMax cases are also recomputed with GoMLX on the backend.
func Verify(backend backends.Backend, c *cases.Case) error {
	expected, err := onnx.EvalNode(c.Node, c.Inputs)
	if err != nil {
		return errors.WithMessagef(err, "case %q", c.Name)
	}
	if err = requireSameTensors(c.Name, "reference", expected, c.Outputs); err != nil {
		return err
	}
	if backend == nil || c.Node.OpType != onnx.ArgMaxSchema.OpType {
		return nil
	}
	attrs, err := onnx.ArgMaxAttributesFromNode(c.Node)
	if err != nil {
		return errors.WithMessagef(err, "case %q", c.Name)
	}
	result, err := onnx.GraphArgMax(backend, c.Inputs[0], attrs)
	if err != nil {
		return errors.WithMessagef(err, "case %q", c.Name)
	}
	return requireSameTensors(c.Name, backend.Name(), []*tensors.Tensor{result}, c.Outputs)
}

// requireSameTensors compares shapes and the raw bytes of the values.
func requireSameTensors(caseName, source string, want, got []*tensors.Tensor) error {
	if len(want) != len(got) {
		return errors.Wrapf(ErrMismatch, "case %q: %s computed %d outputs, %d stored", caseName, source, len(want), len(got))
	}
	for ii := range want {
		if !want[ii].Shape().Equal(got[ii].Shape()) {
			return errors.Wrapf(ErrMismatch, "case %q output #%d: %s computed shape %s, stored %s",
				caseName, ii, source, want[ii].Shape(), got[ii].Shape())
		}
		var wantBytes, gotBytes []byte
		want[ii].ConstBytes(func(data []byte) { wantBytes = bytes.Clone(data) })
		got[ii].ConstBytes(func(data []byte) { gotBytes = bytes.Clone(data) })
		if !bytes.Equal(wantBytes, gotBytes) {
			return errors.Wrapf(ErrMismatch, "case %q output #%d: %s computed %v, stored %v",
				caseName, ii, source, want[ii], got[ii])
		}
	}
	return nil
}
