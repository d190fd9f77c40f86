// Package benchmarks implements support functionality for the benchmark tests of the ArgMax implementations:
// the plain Go reference and the GoMLX graph version.
package benchmarks

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"testing"
	"time"

	_ "github.com/gomlx/gomlx/backends/default"
	"github.com/gomlx/gomlx/pkg/core/shapes"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnx-conformance/onnx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var (
	// TestShapes are the input shapes benchmarked.
	TestShapes = []shapes.Shape{
		shapes.Make(dtypes.Float32, 2, 3, 4),
		shapes.Make(dtypes.Float32, 64, 128, 32),
		shapes.Make(dtypes.Float32, 1000, 1000),
	}

	// TestAttributes are the ArgMax configurations benchmarked: reducing the innermost and the outermost axes,
	// with both tie-break policies.
	TestAttributes = []onnx.ArgMaxAttributes{
		{Axis: -1, KeepDims: true, TieBreak: onnx.FirstIndex},
		{Axis: -1, KeepDims: true, TieBreak: onnx.LastIndex},
		{Axis: 0, KeepDims: false, TieBreak: onnx.FirstIndex},
		{Axis: 0, KeepDims: false, TieBreak: onnx.LastIndex},
	}

	benchmarkNameSuffix = "|GOMAXPROCS"
)

// benchmarkName is the name of the sub-benchmark for the shape and attributes.
func benchmarkName(s shapes.Shape, attrs onnx.ArgMaxAttributes) string {
	return fmt.Sprintf("shape=%s/axis=%d,keepdims=%v,%s%s", s, attrs.Axis, attrs.KeepDims, attrs.TieBreak, benchmarkNameSuffix)
}

// requireSameIndices compares two Int64 tensors of indices and fails the test if they differ.
func requireSameIndices(t testing.TB, want, got *tensors.Tensor) {
	// Make sure shapes are the same.
	require.True(t, got.Shape().Equal(want.Shape()), "want shape %s, got %s", want.Shape(), got.Shape())
	if mismatches := reportMismatches(os.Stdout, want, got); mismatches > 0 {
		panic(errors.Errorf("found %d mismatches in tensors", mismatches))
	}
}

// reportMismatches prints the first 3 mismatched positions of the Int64 tensors want and got (of the same shape)
// to w, and returns the number of mismatches.
func reportMismatches(w io.Writer, want, got *tensors.Tensor) (mismatches int) {
	flatIdx := 0
	gotFlat := tensors.MustCopyFlatData[int64](got)
	wantFlat := tensors.MustCopyFlatData[int64](want)
	for indices := range got.Shape().Iter() {
		if gotFlat[flatIdx] != wantFlat[flatIdx] {
			if mismatches < 3 {
				fmt.Fprintf(w, "\tIndex %v (flatIdx=%d) has a mismatch: got %d, want %d\n", indices, flatIdx, gotFlat[flatIdx], wantFlat[flatIdx])
			} else if mismatches == 3 {
				fmt.Fprintf(w, "\t...\n")
			}
			mismatches++
		}
		flatIdx++
	}
	if mismatches > 0 {
		fmt.Fprintf(w, "Found %d mismatches in tensors\n", mismatches)
	}
	return
}

// formatDuration formats the duration with 2 decimal places but keeping the unit suffix.
func formatDuration(d time.Duration) string {
	s := d.String()
	i := 0
	for ; i < len(s); i++ {
		if (s[i] < '0' || s[i] > '9') && s[i] != '.' {
			break
		}
	}
	// Found the time unit (the suffix)
	num := s[:i]
	unit := s[i:]
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%.2f%s", f, unit)
}
