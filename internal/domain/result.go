package domain

import "fmt"

// Represents a successful answer from the route solver.
// BestPath holds the location labels in visiting order, as returned by the solver.
// A SolverResult is ephemeral: each successful submission replaces the previous one.
type SolverResult struct {
	BestPath          []string `json:"best_path"`
	MinimumDistanceKm float64  `json:"minimum_distance_km"`
	GoogleMapsURL     string   `json:"google_maps_url"`
}

// Return the distance text shown under the route, rounded to two decimals.
func (r SolverResult) DistanceLabel() string {
	return fmt.Sprintf("Total Distance: %.2f km", r.MinimumDistanceKm)
}
