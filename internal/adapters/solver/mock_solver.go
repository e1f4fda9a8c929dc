package solver

import (
	"context"
	"route-form-service/internal/domain"
	"sync"
)

// MockSolver returns a canned result or error and records every call.
type MockSolver struct {
	mu     sync.Mutex
	result domain.SolverResult
	err    error
	calls  [][]string
}

func NewMockSolver(result domain.SolverResult, err error) *MockSolver {
	return &MockSolver{result: result, err: err}
}

func (m *MockSolver) Solve(ctx context.Context, locations []string) (domain.SolverResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := make([]string, len(locations))
	copy(call, locations)
	m.calls = append(m.calls, call)
	if err := ctx.Err(); err != nil {
		return domain.SolverResult{}, &RequestFailedError{Err: err}
	}
	if m.err != nil {
		return domain.SolverResult{}, m.err
	}
	return m.result, nil
}

// Swap the canned answer between calls.
func (m *MockSolver) Set(result domain.SolverResult, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.result = result
	m.err = err
}

func (m *MockSolver) Calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([][]string, len(m.calls))
	copy(out, m.calls)
	return out
}
