package fixtures

import (
	"fmt"
	"strings"

	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/onnx-conformance/cases"
	"github.com/gomlx/onnx-conformance/internal/protos"
	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
)

// ManifestEntry is one row of the manifest: a summary of a stored case.
type ManifestEntry struct {
	Name         string   `parquet:"name"`
	OpType       string   `parquet:"op_type"`
	Attributes   string   `parquet:"attributes"`
	InputShapes  []string `parquet:"input_shapes"`
	OutputShapes []string `parquet:"output_shapes"`

	// Seed of the sampler used for the random inputs.
	Seed int64 `parquet:"seed"`
}

func newManifestEntry(c *cases.Case, seed uint64) ManifestEntry {
	return ManifestEntry{
		Name:         c.Name,
		OpType:       c.Node.OpType,
		Attributes:   attributesString(c.Node.Attribute),
		InputShapes:  shapesStrings(c.Inputs),
		OutputShapes: shapesStrings(c.Outputs),
		Seed:         int64(seed),
	}
}

// attributesString lists the attributes as "name=value" pairs, in the node order.
func attributesString(attrs []*protos.AttributeProto) string {
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		switch attr.Type {
		case protos.AttributeProto_INT:
			parts = append(parts, fmt.Sprintf("%s=%d", attr.Name, attr.I))
		case protos.AttributeProto_INTS:
			parts = append(parts, fmt.Sprintf("%s=%v", attr.Name, attr.Ints))
		case protos.AttributeProto_FLOAT:
			parts = append(parts, fmt.Sprintf("%s=%g", attr.Name, attr.F))
		default:
			parts = append(parts, fmt.Sprintf("%s:%s", attr.Name, attr.Type))
		}
	}
	return strings.Join(parts, " ")
}

func shapesStrings(values []*tensors.Tensor) []string {
	result := make([]string, len(values))
	for ii, t := range values {
		result[ii] = t.Shape().String()
	}
	return result
}

// mergeManifest returns the previous entries with the rows of the cases in updates replaced, followed by the
// entries of new cases, in the order they were recorded.
func mergeManifest(previous, updates []ManifestEntry) []ManifestEntry {
	pending := make(map[string]int, len(updates))
	for ii, entry := range updates {
		pending[entry.Name] = ii
	}
	merged := make([]ManifestEntry, 0, len(previous)+len(updates))
	for _, entry := range previous {
		if ii, found := pending[entry.Name]; found {
			merged = append(merged, updates[ii])
			delete(pending, entry.Name)
			continue
		}
		merged = append(merged, entry)
	}
	for _, entry := range updates {
		if _, found := pending[entry.Name]; found {
			merged = append(merged, entry)
		}
	}
	return merged
}

// WriteManifest writes the entries to a parquet file.
func WriteManifest(path string, entries []ManifestEntry) error {
	if err := parquet.WriteFile(path, entries); err != nil {
		return errors.Wrapf(err, "failed to write manifest %q", path)
	}
	return nil
}

// ReadManifest reads a manifest written by WriteManifest.
func ReadManifest(path string) ([]ManifestEntry, error) {
	entries, err := parquet.ReadFile[ManifestEntry](path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest %q", path)
	}
	return entries, nil
}
