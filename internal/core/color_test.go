package core

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected color.RGBA
		wantErr  bool
	}{
		{"svg name", "blueviolet", color.RGBA{R: 138, G: 43, B: 226, A: 255}, false},
		{"mixed case name", "  Black ", color.RGBA{A: 255}, false},
		{"hex", "#49311c", color.RGBA{R: 73, G: 49, B: 28, A: 255}, false},
		{"bad hex", "#zzzzzz", color.RGBA{}, true},
		{"unknown name", "notacolor", color.RGBA{}, true},
		{"empty", "", color.RGBA{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) expected error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{R: 200, G: 200, B: 0, A: 255}); got != "#c8c800" {
		t.Errorf("Hex() = %q, expected #c8c800", got)
	}
}
