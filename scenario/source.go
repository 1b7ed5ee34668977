package scenario

import (
	"context"
	"sync"
)

// Source supplies scenarios, e.g. from a file that may change between runs.
type Source interface {
	// Scenario returns the current scenario.
	Scenario(ctx context.Context) (*Scenario, error)
}

// File is a Source that reads a scenario file on every call.
type File struct {
	path string
}

var _ Source = (*File)(nil)

// NewFile creates a source backed by the scenario file at path.
//
// Parameters:
//   - path: Path to a .yaml, .yml or .toml file
//
// Returns:
//   - *File: Source reading path on every call
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Scenario loads the file.
func (f *File) Scenario(ctx context.Context) (*Scenario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Load(f.path)
}

// Static implements a Source with a fixed scenario.
type Static struct {
	mu       sync.RWMutex
	scenario Scenario
}

var _ Source = (*Static)(nil)

// NewStatic creates a new static scenario source.
//
// Useful for tests and for programs that build scenarios in code.
//
// Parameters:
//   - s: The scenario (copied)
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := scenario.NewStatic(scenario.Scenario{
//	    Criterion: scenario.Criterion{Name: "one-of-best-c", C: 2},
//	    Families:  []scenario.Family{...},
//	})
func NewStatic(s Scenario) *Static {
	return &Static{scenario: s}
}

// Scenario returns a copy of the scenario.
//
// Returns:
//   - *Scenario: A shallow copy of the scenario
//   - error: Always nil (never fails)
func (s *Static) Scenario(_ context.Context) (*Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.scenario

	return &out, nil
}

// Update replaces the scenario.
//
// Parameters:
//   - sc: New scenario
func (s *Static) Update(sc Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenario = sc
}
