package slug

import "testing"

func TestToSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two-words", "Data Structures", "data-structures"},
		{"single", "Physics", "physics"},
		{"repeated-space", "Operating   Systems", "operating-systems"},
		{"tabs-and-edges", "  Computer\tNetworks ", "computer-networks"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToSlug(tt.in); got != tt.want {
				t.Errorf("ToSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToDisplayName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two-words", "data-structures", "Data Structures"},
		{"upper-input", "DATA-STRUCTURES", "Data Structures"},
		{"double-hyphen", "data--structures", "Data Structures"},
		{"edge-hyphens", "-physics-", "Physics"},
		{"punctuation", "c++-programming", "C++ Programming"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToDisplayName(tt.in); got != tt.want {
				t.Errorf("ToDisplayName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"Data Structures", "Physics", "Discrete Mathematics And Logic"} {
		if got := ToDisplayName(ToSlug(name)); got != name {
			t.Fatalf("round trip of %q gave %q", name, got)
		}
	}
}
