package domain

import (
	"encoding/json"
	"testing"
)

func TestSolverResultDistanceLabel(t *testing.T) {
	cases := []struct {
		km   float64
		want string
	}{
		{12.345, "Total Distance: 12.35 km"},
		{0, "Total Distance: 0.00 km"},
		{7.1, "Total Distance: 7.10 km"},
		{1234.5678, "Total Distance: 1234.57 km"},
	}

	for _, c := range cases {
		got := SolverResult{MinimumDistanceKm: c.km}.DistanceLabel()
		if got != c.want {
			t.Errorf("DistanceLabel(%v) = %q, want %q", c.km, got, c.want)
		}
	}
}

func TestNewSolveRequestEncodesEmptyListAsArray(t *testing.T) {
	b, err := json.Marshal(NewSolveRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(b) != `{"locations":[]}` {
		t.Fatalf("body = %s, want {\"locations\":[]}", b)
	}
}

func TestNewSolveRequestKeepsOrderAndDuplicates(t *testing.T) {
	in := []string{"B", "", "A", "B"}
	req := NewSolveRequest(in)

	// mutate the input to make sure the request holds its own copy
	in[0] = "Z"

	b, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(b) != `{"locations":["B","","A","B"]}` {
		t.Fatalf("body = %s", b)
	}
}
