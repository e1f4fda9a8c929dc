package handlers

import "testing"

func TestSafeMapURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://maps.example/x", "https://maps.example/x"},
		{
			"https://www.google.com/maps/dir/?api=1&origin=A+St&destination=B+Ave&waypoints=C%2C+D|E",
			"https://www.google.com/maps/dir/?api=1&origin=A+St&destination=B+Ave&waypoints=C%2C+D|E",
		},
		{"  http://maps.example/y  ", "http://maps.example/y"},
		{"", ""},
		{"javascript:alert(1)", ""},
		{"data:text/html,hi", ""},
		{"/relative/path", ""},
	}

	for _, c := range cases {
		if got := safeMapURL(c.in); got != c.want {
			t.Errorf("safeMapURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
