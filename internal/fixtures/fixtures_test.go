package fixtures

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/gomlx/gomlx/pkg/core/graph/graphtest"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/onnx-conformance/cases"
	"github.com/gomlx/onnx-conformance/internal/protos"
	"github.com/gomlx/onnx-conformance/internal/sample"
	"github.com/gomlx/onnx-conformance/onnx"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	_ "github.com/gomlx/gomlx/backends/default"
)

const testSeed = 17

// exportToDir exports all cases to a new temporary directory.
func exportToDir(t *testing.T) (root string, memory *Memory) {
	root = t.TempDir()
	dir, err := NewDir(root, false, testSeed)
	require.NoError(t, err)
	memory = NewMemory()
	exporter := cases.New(Tee{memory, dir}, sample.New(testSeed))
	_, err = exporter.ExportAll(nil)
	require.NoError(t, err)
	require.NoError(t, dir.Close())
	require.Positive(t, dir.BytesWritten())
	return
}

func TestMemory(t *testing.T) {
	memory := NewMemory()
	c := &cases.Case{Name: "a"}
	require.NoError(t, memory.Record(c))
	require.ErrorIs(t, memory.Record(&cases.Case{Name: "a"}), ErrDuplicateCaseName)
	require.NoError(t, memory.Record(&cases.Case{Name: "b"}))
	assert.Same(t, c, memory.Get("a"))
	assert.Nil(t, memory.Get("c"))
	assert.Len(t, memory.Cases(), 2)

	second := NewMemory()
	require.NoError(t, second.Record(&cases.Case{Name: "b"}))
	tee := Tee{NewMemory(), second}
	require.ErrorIs(t, tee.Record(&cases.Case{Name: "b"}), ErrDuplicateCaseName)
	assert.NotNil(t, tee[0].(*Memory).Get("b"))
}

func TestDirLayout(t *testing.T) {
	root, memory := exportToDir(t)
	caseDir := CaseDir(root, "argmax_keepdims_example")
	assert.FileExists(t, filepath.Join(caseDir, ModelFileName))
	assert.FileExists(t, filepath.Join(caseDir, DataSetDirName, "input_0.pb"))
	assert.FileExists(t, filepath.Join(caseDir, DataSetDirName, "output_0.pb"))
	assert.NoFileExists(t, filepath.Join(caseDir, DataSetDirName, "input_1.pb"))
	assert.FileExists(t, filepath.Join(root, ManifestFileName))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	var caseDirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			caseDirs = append(caseDirs, entry.Name())
		}
	}
	assert.Len(t, caseDirs, len(memory.Cases()))

	// Model and tensor protos as a standard ONNX reader sees them.
	contents, err := os.ReadFile(filepath.Join(caseDir, ModelFileName))
	require.NoError(t, err)
	model := &protos.ModelProto{}
	require.NoError(t, proto.Unmarshal(contents, model))
	assert.Equal(t, "test_argmax_keepdims_example", model.Graph.Name)
	assert.Equal(t, int64(13), model.OpsetImport[0].Version)

	contents, err = os.ReadFile(filepath.Join(caseDir, DataSetDirName, "output_0.pb"))
	require.NoError(t, err)
	output := &protos.TensorProto{}
	require.NoError(t, proto.Unmarshal(contents, output))
	assert.Equal(t, "result", output.Name)
	assert.Equal(t, []int64{2, 1}, output.Dims)
	assert.Equal(t, int32(protos.TensorProto_INT64), output.DataType)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0}, output.RawData)
}

func TestLoadAndVerify(t *testing.T) {
	root, memory := exportToDir(t)
	backend := graphtest.BuildTestBackend()

	loaded, err := LoadAll(backend, root)
	require.NoError(t, err)
	require.Len(t, loaded, 16)
	for _, c := range loaded {
		original := memory.Get(c.Name)
		require.NotNil(t, original, c.Name)
		assert.True(t, proto.Equal(original.Node, c.Node), c.Name)
		assert.Equal(t, original.Inputs[0].Value(), c.Inputs[0].Value(), c.Name)
		assert.Equal(t, original.Outputs[0].Value(), c.Outputs[0].Value(), c.Name)
		require.NoError(t, Verify(backend, c), c.Name)
		require.NoError(t, Verify(nil, c), c.Name)
	}
}

func TestVerifyMismatch(t *testing.T) {
	root, _ := exportToDir(t)
	c, err := Load(nil, CaseDir(root, "argmax_no_keepdims_example"))
	require.NoError(t, err)
	require.NoError(t, Verify(nil, c))

	c.Outputs[0] = tensors.FromFlatDataAndDimensions([]int64{1, 1}, 2)
	require.ErrorIs(t, Verify(nil, c), ErrMismatch)
	c.Outputs[0] = tensors.FromFlatDataAndDimensions([]int64{0, 1}, 2, 1)
	require.ErrorIs(t, Verify(nil, c), ErrMismatch)
	c.Outputs = nil
	require.ErrorIs(t, Verify(nil, c), ErrMismatch)
}

func TestManifest(t *testing.T) {
	root, memory := exportToDir(t)
	entries, err := ReadManifest(filepath.Join(root, ManifestFileName))
	require.NoError(t, err)
	require.Len(t, entries, len(memory.Cases()))
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	byName := make(map[string]ManifestEntry, len(entries))
	for _, entry := range entries {
		assert.Equal(t, "ArgMax", entry.OpType)
		assert.Equal(t, int64(testSeed), entry.Seed)
		byName[entry.Name] = entry
	}
	entry := byName["argmax_negative_axis_keepdims_random_select_last_index"]
	assert.Equal(t, "axis=-1 keepdims=1 select_last_index=1", entry.Attributes)
	c := memory.Get(entry.Name)
	assert.Equal(t, []string{c.Inputs[0].Shape().String()}, entry.InputShapes)
	assert.Equal(t, []string{c.Outputs[0].Shape().String()}, entry.OutputShapes)
	assert.Equal(t, "keepdims=1", byName["argmax_default_axis_example"].Attributes)
}

func TestDuplicateAndOverwrite(t *testing.T) {
	root, _ := exportToDir(t)

	// A second export to the same directory fails, unless overwrite is set.
	dir, err := NewDir(root, false, testSeed)
	require.NoError(t, err)
	err = cases.New(dir, sample.New(testSeed)).ExportArgMaxKeepdims()
	require.ErrorIs(t, err, ErrDuplicateCaseName)

	dir, err = NewDir(root, true, testSeed+1)
	require.NoError(t, err)
	exporter := cases.New(dir, sample.New(testSeed+1))
	require.NoError(t, exporter.ExportArgMaxKeepdims())
	// Within the same Dir names are still unique.
	require.ErrorIs(t, exporter.ExportArgMaxKeepdims(), ErrDuplicateCaseName)
	require.NoError(t, dir.Close())

	c, err := Load(nil, CaseDir(root, "argmax_keepdims_random"))
	require.NoError(t, err)
	require.NoError(t, Verify(nil, c))

	// The manifest still lists every stored case, with the seed of the run that wrote each one.
	entries, err := ReadManifest(filepath.Join(root, ManifestFileName))
	require.NoError(t, err)
	require.Len(t, entries, 16)
	seeds := make(map[string]int64, len(entries))
	for _, entry := range entries {
		seeds[entry.Name] = entry.Seed
	}
	assert.Len(t, seeds, 16)
	assert.Equal(t, int64(testSeed+1), seeds["argmax_keepdims_example"])
	assert.Equal(t, int64(testSeed+1), seeds["argmax_keepdims_random"])
	assert.Equal(t, int64(testSeed), seeds["argmax_keepdims_example_select_last_index"])
	assert.Equal(t, int64(testSeed), seeds["argmax_no_keepdims_random"])
}

func TestMergeManifest(t *testing.T) {
	previous := []ManifestEntry{{Name: "a", Seed: 1}, {Name: "b", Seed: 1}, {Name: "c", Seed: 1}}
	updates := []ManifestEntry{{Name: "d", Seed: 2}, {Name: "b", Seed: 2}}
	merged := mergeManifest(previous, updates)
	assert.Equal(t, []ManifestEntry{{Name: "a", Seed: 1}, {Name: "b", Seed: 2}, {Name: "c", Seed: 1}, {Name: "d", Seed: 2}}, merged)
	assert.Equal(t, updates, mergeManifest(nil, updates))
}

func TestRecordWriteFailure(t *testing.T) {
	root := t.TempDir()
	dir, err := NewDir(root, false, testSeed)
	require.NoError(t, err)

	errDiskFull := errors.New("disk full")
	writeFile = func(path string, contents []byte, perm os.FileMode) error {
		if filepath.Base(path) == OutputFileName(0) {
			return errDiskFull
		}
		return os.WriteFile(path, contents, perm)
	}
	defer func() { writeFile = os.WriteFile }()

	exporter := cases.New(dir, sample.New(testSeed))
	require.ErrorIs(t, exporter.ExportArgMaxKeepdims(), errDiskFull)
	assert.NoDirExists(t, CaseDir(root, "argmax_keepdims_example"))
	assert.Zero(t, dir.BytesWritten())

	// Once the disk recovers, the same case can be recorded: no leftover directory is taken as a duplicate.
	writeFile = os.WriteFile
	require.NoError(t, exporter.ExportArgMaxKeepdims())
	require.NoError(t, dir.Close())
	c, err := Load(nil, CaseDir(root, "argmax_keepdims_example"))
	require.NoError(t, err)
	require.NoError(t, Verify(nil, c))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "test_missing"))
	require.Error(t, err)

	root := t.TempDir()
	caseDir := CaseDir(root, "broken")
	require.NoError(t, os.MkdirAll(caseDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(caseDir, ModelFileName), []byte{0x0a, 0xff}, 0o644))
	_, err = Load(nil, caseDir)
	require.Error(t, err)
	_, err = LoadAll(nil, root)
	require.Error(t, err)

	// A valid model without its data set.
	node, err := onnx.MakeNode("ArgMax", []string{"data"}, []string{"result"})
	require.NoError(t, err)
	data := tensors.FromFlatDataAndDimensions([]float32{1, 2}, 2)
	result := tensors.FromFlatDataAndDimensions([]int64{1}, 1)
	model, err := onnx.MakeModel("test_broken", node, []*tensors.Tensor{data}, []*tensors.Tensor{result})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(caseDir, ModelFileName), must.M1(proto.Marshal(model)), 0o644))
	_, err = Load(nil, caseDir)
	require.Error(t, err)
}
