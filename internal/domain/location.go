package domain

// Locations is the ordered list of free-text location strings collected from the form.
// Insertion order is presentation order. Duplicates and empty strings are kept as-is;
// interpreting them is the solver's job.
type Locations []string

// Return a copy that is never nil, so it always encodes as a JSON array.
func (l Locations) Normalized() Locations {
	out := make(Locations, len(l))
	copy(out, l)
	return out
}

// Wire body of a solve request (POST /tsp).
type SolveRequest struct {
	Locations Locations `json:"locations"`
}

// Build a SolveRequest whose locations field encodes as [] rather than null.
func NewSolveRequest(locations []string) SolveRequest {
	return SolveRequest{Locations: Locations(locations).Normalized()}
}
