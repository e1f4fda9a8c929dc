package solver

import "route-form-service/internal/domain"

func domainResult() domain.SolverResult {
	return domain.SolverResult{
		BestPath:          []string{"A", "B"},
		MinimumDistanceKm: 1.5,
		GoogleMapsURL:     "https://maps.example/ab",
	}
}
