package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cloud City", "cloud-city"},
		{"  Neon Identity  ", "neon-identity"},
		{"Art & Motion", "art-and-motion"},
		{"R/D Lab", "r-d-lab"},
		{"L'Atelier", "latelier"},
		{"--- Weird___Title ---", "weird-title"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
