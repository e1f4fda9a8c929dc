package solver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSolverSolveSuccess(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tsp", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"best_path":["A","C","B"],"minimum_distance_km":12.345,"google_maps_url":"https://maps.example/x"}`))
	}))
	defer server.Close()

	s := NewHTTPSolver(server.URL)
	result, err := s.Solve(context.Background(), []string{"A", "B", "C"})

	require.NoError(t, err)
	assert.Equal(t, `{"locations":["A","B","C"]}`, gotBody)
	assert.Equal(t, []string{"A", "C", "B"}, result.BestPath)
	assert.Equal(t, 12.345, result.MinimumDistanceKm)
	assert.Equal(t, "https://maps.example/x", result.GoogleMapsURL)
}

func TestHTTPSolverSendsEmptyArray(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{"best_path":[],"minimum_distance_km":0,"google_maps_url":""}`))
	}))
	defer server.Close()

	_, err := NewHTTPSolver(server.URL).Solve(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, `{"locations":[]}`, gotBody)
}

func TestHTTPSolverNonSuccessStatus(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusBadGateway} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			w.Write([]byte(` {"error":"Please provide at least two locations."} `))
		}))

		_, err := NewHTTPSolver(server.URL).Solve(context.Background(), []string{"A"})
		server.Close()

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRequestFailed), "status %d should be a request failure", code)

		var rf *RequestFailedError
		require.True(t, errors.As(err, &rf))
		assert.Equal(t, code, rf.Status)
		assert.Equal(t, `{"error":"Please provide at least two locations."}`, rf.Body)
	}
}

func TestHTTPSolverConnectivityFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewHTTPSolver(url).Solve(context.Background(), []string{"A", "B"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)

	var rf *RequestFailedError
	require.ErrorAs(t, err, &rf)
	assert.Equal(t, 0, rf.Status)
}

func TestHTTPSolverTimeoutIsRequestFailure(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	s := NewHTTPSolver(server.URL, WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))
	_, err := s.Solve(context.Background(), []string{"A", "B"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestHTTPSolverInvalidJSONIsNotRequestFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := NewHTTPSolver(server.URL).Solve(context.Background(), []string{"A", "B"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRequestFailed))
	assert.Contains(t, err.Error(), "decode solve response")
}

func TestNewHTTPSolverEndpoint(t *testing.T) {
	assert.Equal(t, "/tsp", NewHTTPSolver("").Endpoint())
	assert.Equal(t, "http://solver:5000/tsp", NewHTTPSolver("http://solver:5000/").Endpoint())
}

func TestMockSolverRecordsCalls(t *testing.T) {
	m := NewMockSolver(domainResult(), nil)

	in := []string{"A", "B"}
	_, err := m.Solve(context.Background(), in)
	require.NoError(t, err)
	in[0] = "Z"

	m.Set(domainResult(), &RequestFailedError{Status: 500})
	_, err = m.Solve(context.Background(), []string{"C"})
	assert.ErrorIs(t, err, ErrRequestFailed)

	assert.Equal(t, [][]string{{"A", "B"}, {"C"}}, m.Calls())
}
