package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"route-form-service/internal/domain"
	"route-form-service/internal/platform/obs"
	"strings"
)

// Cap on how much of a failed response body is kept for logging.
const maxErrorBody = 4 << 10

// HTTPSolver implements ports.Solver against the JSON contract at POST {baseURL}/tsp.
//
// It issues exactly one request per Solve call: no retries, no caching.
// Cancellation and deadlines come from the caller's context.
// The solver is safe for concurrent use.
type HTTPSolver struct {
	session  *http.Client
	endpoint string
}

type Option func(*HTTPSolver)

// Use a specific http.Client (timeouts, transport) instead of http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(s *HTTPSolver) {
		if c != nil {
			s.session = c
		}
	}
}

// NewHTTPSolver builds a client for the solver rooted at baseURL.
// An empty baseURL targets the current origin ("/tsp"), which is what the browser build uses.
func NewHTTPSolver(baseURL string, opts ...Option) *HTTPSolver {
	s := &HTTPSolver{
		session:  http.DefaultClient,
		endpoint: strings.TrimRight(baseURL, "/") + "/tsp",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HTTPSolver) Endpoint() string { return s.endpoint }

func (s *HTTPSolver) Solve(ctx context.Context, locations []string) (_ domain.SolverResult, err error) {
	defer obs.Time(ctx, "solver.Solve")(&err)

	body, err := json.Marshal(domain.NewSolveRequest(locations))
	if err != nil {
		return domain.SolverResult{}, fmt.Errorf("encode solve request: %w", err)
	}

	req, err := s.newRequest(ctx, body)
	if err != nil {
		return domain.SolverResult{}, err
	}

	resp, err := s.do(req)
	if err != nil {
		return domain.SolverResult{}, err
	}
	defer resp.Body.Close()

	var result domain.SolverResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.SolverResult{}, fmt.Errorf("decode solve response: %w", err)
	}

	return result, nil
}

func (s *HTTPSolver) newRequest(ctx context.Context, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// do sends req and converts both transport errors and non-2xx statuses into RequestFailedError.
func (s *HTTPSolver) do(req *http.Request) (*http.Response, error) {
	resp, err := s.session.Do(req)
	if err != nil {
		return nil, &RequestFailedError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, &RequestFailedError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}
