package dto

type TSPRequest struct {
	Locations []string `json:"locations"`
}

type TSPResponse struct {
	BestPath          []string `json:"best_path"`
	MinimumDistanceKm float64  `json:"minimum_distance_km"`
	GoogleMapsURL     string   `json:"google_maps_url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
