package ports

import (
	"context"
	"errors"
	"route-form-service/internal/domain"
)

// ErrRequestFailed is matched (errors.Is) by every Solver error meaning "no successful response":
// a non-2xx status or a network call that could not complete.
var ErrRequestFailed = errors.New("solver request failed")

// Contract for the external route solver reachable at POST /tsp.
type Solver interface {
	// Return the optimized visiting order and total distance for the given locations.
	Solve(ctx context.Context, locations []string) (domain.SolverResult, error)
}
