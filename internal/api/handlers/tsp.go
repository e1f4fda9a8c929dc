package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"route-form-service/internal/adapters/solver"
	"route-form-service/internal/api/dto"
	"route-form-service/internal/platform/obs"
	"route-form-service/internal/ports"
	"strings"
)

// Cap on request bodies accepted by POST /tsp.
const maxTSPBody = 64 << 10

// TSPHandler serves POST /tsp on the page's origin by forwarding to the upstream solver.
// It adds no routing logic of its own.
type TSPHandler struct {
	Solver ports.Solver
}

func (h *TSPHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TSPRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTSPBody))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	result, err := h.Solver.Solve(r.Context(), req.Locations)
	if err != nil {
		status, msg := upstreamError(err)
		log.Printf("solve failed: req_id=%s locations=%d status=%d err=%v", obs.RequestID(r.Context()), len(req.Locations), status, err)
		writeError(w, r, status, msg)
		return
	}

	path := result.BestPath
	if path == nil {
		path = []string{}
	}

	writeJSON(w, r, http.StatusOK, dto.TSPResponse{
		BestPath:          path,
		MinimumDistanceKm: result.MinimumDistanceKm,
		GoogleMapsURL:     safeMapURL(result.GoogleMapsURL),
	})
}

// upstreamError maps a solver failure to the status and message returned to the page.
// Client errors from the solver pass through with its message; anything else is a bad gateway.
func upstreamError(err error) (int, string) {
	var rf *solver.RequestFailedError
	if errors.As(err, &rf) && rf.Status >= 400 && rf.Status < 500 {
		if msg := errorMessage(rf.Body); msg != "" {
			return rf.Status, msg
		}
		return rf.Status, "route solver rejected the request"
	}

	if errors.Is(err, ports.ErrRequestFailed) {
		return http.StatusBadGateway, "route solver unavailable"
	}
	return http.StatusBadGateway, "invalid response from route solver"
}

func errorMessage(body string) string {
	var e dto.ErrorResponse
	if err := json.Unmarshal([]byte(body), &e); err != nil {
		return ""
	}
	return strings.TrimSpace(e.Error)
}
