// onnx_cases generates the ONNX operator conformance cases.
//
// Each case is written in the ONNX backend test layout under --output (a "test_<name>" directory with
// model.onnx and test_data_set_0/{input,output}_<i>.pb), plus a manifest.parquet summarizing all cases.
// Without --output it runs in memory only, which is useful together with --verify.
//
// Example:
//
//	onnx_cases --output=/tmp/onnx_cases --seed=42 --match=ArgMax --verify --summary
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/gomlx/gomlx/backends/simplego"
	"github.com/gomlx/onnx-conformance/cases"
	"github.com/gomlx/onnx-conformance/internal/fixtures"
	"github.com/gomlx/onnx-conformance/internal/sample"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagOutput = flag.String("output", "", "Directory where to write the cases. "+
		"If empty, cases are only generated in memory.")
	flagSeed = flag.Uint64("seed", 0, "Seed for the random inputs. If 0, a seed is taken from the clock "+
		"(and it is stored in the manifest).")
	flagMatch     = flag.String("match", "", "Regular expression: only export routines whose name matches, e.g. \"ArgMax/.*keepdims\".")
	flagOverwrite = flag.Bool("overwrite", false, "Overwrite cases already stored in --output.")
	flagVerify    = flag.Bool("verify", false, "After generating, verify every case: reload it from --output (if set), "+
		"recompute the expected outputs and cross-check them with GoMLX SimpleGo backend.")
	flagSummary = flag.Bool("summary", false, "Display a table with the generated cases.")
	flagList    = flag.Bool("list", false, "List the export routines and exit.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if len(flag.Args()) > 0 {
		klog.Errorf("Unexpected arguments %q. See 'onnx_cases -help'.", flag.Args())
		os.Exit(1)
	}

	if *flagList {
		for _, routine := range cases.Routines() {
			fmt.Println(routine.Name)
		}
		return
	}

	opts := options{
		output:    *flagOutput,
		seed:      *flagSeed,
		overwrite: *flagOverwrite,
		verify:    *flagVerify,
	}
	if *flagMatch != "" {
		re, err := regexp.Compile(*flagMatch)
		if err != nil {
			klog.Fatalf("Failed to compile -match=%q: %v", *flagMatch, err)
		}
		opts.match = re.MatchString
	}
	if *flagSummary {
		opts.summary = os.Stdout
	}
	if _, err := run(opts); err != nil {
		klog.Fatalf("onnx_cases failed: %+v", err)
	}
}

// options of one onnx_cases run, parsed from the flags.
type options struct {
	output    string
	seed      uint64
	match     func(name string) bool
	overwrite bool
	verify    bool

	// summary, if not nil, is where the summary tables are written.
	summary io.Writer
}

// run exports the cases selected by opts, optionally verifying them and writing a summary.
// It returns the cases generated: the reloaded ones if they were verified from opts.output.
func run(opts options) ([]*cases.Case, error) {
	sampler := sample.New(opts.seed)
	memory := fixtures.NewMemory()
	var dir *fixtures.Dir
	var recorder cases.Recorder = memory
	if opts.output != "" {
		var err error
		dir, err = fixtures.NewDir(opts.output, opts.overwrite, sampler.Seed())
		if err != nil {
			return nil, err
		}
		recorder = fixtures.Tee{memory, dir}
	}

	exporter := cases.New(recorder, sampler)
	numRoutines, err := exporter.ExportAll(opts.match)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to export cases")
	}
	if dir != nil {
		if err = dir.Close(); err != nil {
			return nil, errors.WithMessage(err, "failed to write manifest")
		}
	}
	klog.Infof("Exported %d cases from %d routines (seed=%d)", len(memory.Cases()), numRoutines, sampler.Seed())

	generated := memory.Cases()
	if opts.verify {
		generated, err = verify(generated, opts.output)
		if err != nil {
			return nil, err
		}
	}
	if opts.summary != nil {
		report(opts.summary, generated, dir, sampler.Seed())
	}
	return generated, nil
}

// verify checks every case, reloading it from output if set. It returns the cases verified.
func verify(generated []*cases.Case, output string) ([]*cases.Case, error) {
	backend, err := simplego.New("")
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create SimpleGo backend")
	}
	defer backend.Finalize()

	toVerify := generated
	if output != "" {
		toVerify = make([]*cases.Case, 0, len(generated))
		for _, c := range generated {
			loaded, err := fixtures.Load(backend, fixtures.CaseDir(output, c.Name))
			if err != nil {
				return nil, err
			}
			toVerify = append(toVerify, loaded)
		}
	}
	var numFailed int
	for _, c := range toVerify {
		if err := fixtures.Verify(backend, c); err != nil {
			klog.Errorf("Verification failed: %v", err)
			numFailed++
		}
	}
	if numFailed > 0 {
		return nil, errors.Errorf("%d of %d cases failed verification", numFailed, len(toVerify))
	}
	klog.Infof("Verified %d cases", len(toVerify))
	return toVerify, nil
}
