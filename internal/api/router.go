package api

import (
	"fmt"
	"io/fs"
	"net/http"
	"route-form-service/internal/api/handlers"
	"route-form-service/internal/ports"
)

// Assets bundles everything the router serves besides the API.
type Assets struct {
	// Hosted document carrying the form contract elements.
	Index []byte
	// Filesystem holding static/css/*.
	Static fs.FS
	// Directory with main.wasm and wasm_exec.js; empty disables /app/.
	WasmDir string
	// Reported by /health.
	SolverEndpoint string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(solver ports.Solver, assets Assets) (http.Handler, error) {
	mux := http.NewServeMux()

	staticSub, err := fs.Sub(assets.Static, "static")
	if err != nil {
		return nil, fmt.Errorf("new router: static sub-filesystem: %w", err)
	}

	pageHandler := &handlers.PageHandler{Index: assets.Index, Solver: solver}
	tspHandler := &handlers.TSPHandler{Solver: solver}
	healthHandler := &handlers.HealthHandler{SolverEndpoint: assets.SolverEndpoint}

	mux.HandleFunc("/health", healthHandler.Check)
	mux.HandleFunc("/tsp", tspHandler.Solve)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
	if assets.WasmDir != "" {
		mux.Handle("/app/", http.StripPrefix("/app/", http.FileServer(http.Dir(assets.WasmDir))))
	}
	mux.HandleFunc("/", pageHandler.Serve)

	// Request ids must exist before the logging middleware reads them.
	return requestIDMiddleware(loggingMiddleware(mux)), nil
}
