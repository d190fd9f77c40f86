// Package fixtures implements the storage of conformance cases: an in-memory Recorder, a Recorder writing the
// ONNX backend test directory layout, and the functions to load and verify stored cases.
package fixtures

import (
	"sync"

	"github.com/gomlx/onnx-conformance/cases"
	"github.com/pkg/errors"
)

// ErrDuplicateCaseName is returned when recording a case whose name was already recorded.
var ErrDuplicateCaseName = errors.New("duplicate case name")

// Memory is a cases.Recorder that keeps the cases in memory. It is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	cases  []*cases.Case
	byName map[string]*cases.Case
}

// NewMemory creates an empty Memory recorder.
func NewMemory() *Memory {
	return &Memory{byName: make(map[string]*cases.Case)}
}

// Record implements cases.Recorder.
func (m *Memory) Record(c *cases.Case) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.byName[c.Name]; found {
		return errors.Wrapf(ErrDuplicateCaseName, "case %q", c.Name)
	}
	m.byName[c.Name] = c
	m.cases = append(m.cases, c)
	return nil
}

// Cases returns the recorded cases, in the order they were recorded.
func (m *Memory) Cases() []*cases.Case {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*cases.Case(nil), m.cases...)
}

// Get returns the case with the given name, or nil if it was not recorded.
func (m *Memory) Get(name string) *cases.Case {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byName[name]
}

// Tee is a cases.Recorder that records every case in all its recorders, in order, stopping at the first error.
type Tee []cases.Recorder

// Record implements cases.Recorder.
func (t Tee) Record(c *cases.Case) error {
	for _, recorder := range t {
		if err := recorder.Record(c); err != nil {
			return err
		}
	}
	return nil
}
