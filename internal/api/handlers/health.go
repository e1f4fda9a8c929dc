package handlers

import (
	"net/http"
)

// HealthHandler is a liveness check. It does not call the solver, so a
// solver outage never fails the probe.
type HealthHandler struct {
	SolverEndpoint string
}

type healthResponse struct {
	Status string `json:"status"`
	Solver string `json:"solver,omitempty"`
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Solver: h.SolverEndpoint})
}
