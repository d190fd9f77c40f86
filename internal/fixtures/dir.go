package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/onnx-conformance/cases"
	"github.com/gomlx/onnx-conformance/onnx"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"k8s.io/klog/v2"
)

const (
	// ModelFileName is the name of the model file in each case directory.
	ModelFileName = "model.onnx"

	// DataSetDirName is the directory, inside each case directory, holding the input and output tensors.
	DataSetDirName = "test_data_set_0"

	// ManifestFileName is the name of the manifest written by Dir.Close in the root directory.
	ManifestFileName = "manifest.parquet"

	// CaseDirPrefix is prepended to the case name to form its directory name.
	CaseDirPrefix = "test_"
)

// CaseDir returns the directory of the case named name under root.
func CaseDir(root, name string) string {
	return filepath.Join(root, CaseDirPrefix+name)
}

// InputFileName returns the file name of the input tensor #idx inside the data set directory.
func InputFileName(idx int) string { return fmt.Sprintf("input_%d.pb", idx) }

// OutputFileName returns the file name of the output tensor #idx inside the data set directory.
func OutputFileName(idx int) string { return fmt.Sprintf("output_%d.pb", idx) }

// Dir is a cases.Recorder that writes the cases in the ONNX backend test layout:
//
//	<root>/test_<name>/model.onnx
//	<root>/test_<name>/test_data_set_0/input_<i>.pb
//	<root>/test_<name>/test_data_set_0/output_<i>.pb
//
// Close must be called at the end to write the manifest. It is safe for concurrent use.
type Dir struct {
	root      string
	overwrite bool
	seed      uint64

	mu           sync.Mutex
	names        map[string]bool
	manifest     []ManifestEntry
	bytesWritten int64
}

// NewDir creates the root directory if needed and returns a Dir recorder writing to it.
//
// If overwrite is false, recording a case whose directory already exists fails with ErrDuplicateCaseName.
// The seed is stored in the manifest, to allow regenerating the random cases.
func NewDir(root string, overwrite bool, seed uint64) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create fixtures directory %q", root)
	}
	return &Dir{
		root:      root,
		overwrite: overwrite,
		seed:      seed,
		names:     make(map[string]bool),
	}, nil
}

// Root returns the root directory.
func (d *Dir) Root() string { return d.root }

// BytesWritten returns the total size of the files written so far.
func (d *Dir) BytesWritten() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bytesWritten
}

// writeFile is os.WriteFile, replaced in tests to simulate disk errors.
var writeFile = os.WriteFile

// Record implements cases.Recorder.
//
// All files of the case are encoded before anything is written, and if writing fails the partially written case
// directory is removed, so a failed case can be recorded again.
func (d *Dir) Record(c *cases.Case) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.names[c.Name] {
		return errors.Wrapf(ErrDuplicateCaseName, "case %q", c.Name)
	}
	caseDir := CaseDir(d.root, c.Name)
	if _, err := os.Stat(caseDir); err == nil {
		if !d.overwrite {
			return errors.Wrapf(ErrDuplicateCaseName, "case %q already stored in %q", c.Name, caseDir)
		}
		if err = os.RemoveAll(caseDir); err != nil {
			return errors.Wrapf(err, "failed to remove previous version of case %q", c.Name)
		}
	}

	files, err := encodeCase(c)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Join(caseDir, DataSetDirName), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for case %q", c.Name)
	}
	var written int64
	for _, f := range files {
		path := filepath.Join(caseDir, f.path)
		if err = writeFile(path, f.contents, 0o644); err != nil {
			if removeErr := os.RemoveAll(caseDir); removeErr != nil {
				klog.Errorf("failed to remove partially written case %q: %v", c.Name, removeErr)
			}
			return errors.Wrapf(err, "failed to write %q", path)
		}
		written += int64(len(f.contents))
	}

	d.names[c.Name] = true
	d.bytesWritten += written
	d.manifest = append(d.manifest, newManifestEntry(c, d.seed))
	klog.V(1).Infof("wrote case %q to %q (%d bytes)", c.Name, caseDir, written)
	return nil
}

// caseFile is the contents of one file of a case, with its path relative to the case directory.
type caseFile struct {
	path     string
	contents []byte
}

// encodeCase serializes the model and the tensors of the case.
func encodeCase(c *cases.Case) ([]caseFile, error) {
	model, err := onnx.MakeModel(CaseDirPrefix+c.Name, c.Node, c.Inputs, c.Outputs)
	if err != nil {
		return nil, errors.WithMessagef(err, "while creating model for case %q", c.Name)
	}
	contents, err := proto.Marshal(model)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode model of case %q", c.Name)
	}
	files := []caseFile{{path: ModelFileName, contents: contents}}
	encodeTensors := func(names []string, values []*tensors.Tensor, fileName func(int) string) error {
		for ii, t := range values {
			tensorProto, err := onnx.TensorToProto(names[ii], t)
			if err != nil {
				return errors.WithMessagef(err, "case %q", c.Name)
			}
			contents, err := proto.Marshal(tensorProto)
			if err != nil {
				return errors.Wrapf(err, "failed to encode tensor %q of case %q", names[ii], c.Name)
			}
			files = append(files, caseFile{path: filepath.Join(DataSetDirName, fileName(ii)), contents: contents})
		}
		return nil
	}
	if err = encodeTensors(c.Node.Input, c.Inputs, InputFileName); err != nil {
		return nil, err
	}
	if err = encodeTensors(c.Node.Output, c.Outputs, OutputFileName); err != nil {
		return nil, err
	}
	return files, nil
}

// Close writes the manifest of the cases recorded.
//
// Rows of a manifest already in the root directory are kept, except for the cases recorded again, whose rows are
// replaced: the manifest describes every case stored, not only the ones of the last run.
func (d *Dir) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	path := filepath.Join(d.root, ManifestFileName)
	entries := d.manifest
	if _, err := os.Stat(path); err == nil {
		previous, err := ReadManifest(path)
		if err != nil {
			return err
		}
		entries = mergeManifest(previous, d.manifest)
	}
	return WriteManifest(path, entries)
}
