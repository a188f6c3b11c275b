package style

import (
	"slices"
	"testing"
)

func TestRGBA(t *testing.T) {
	tests := []struct {
		hex      string
		alpha    float64
		expected string
	}{
		{"#6366f1", 0.5, "rgba(99, 102, 241, 0.5)"},
		{"ffffff", 1, "rgba(255, 255, 255, 1)"},
		{"#FFaa00", 0.25, "rgba(255, 170, 0, 0.25)"},
		{"#fff", 0.5, "rgba(0, 0, 0, 0.5)"},
		{"not-a-color", 0.3, "rgba(0, 0, 0, 0.3)"},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := RGBA(tt.hex, tt.alpha); got != tt.expected {
				t.Errorf("RGBA(%q, %v) = %q, want %q", tt.hex, tt.alpha, got, tt.expected)
			}
		})
	}
}

func TestComplementary(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"#f59e0b", "#0a61f4"},
		{"#000000", "#ffffff"},
		{"6366f1", "#9c990e"},
		{"#abc", "#abc"},
		{"from-amber-400", "from-amber-400"},
	}

	for _, tt := range tests {
		if got := Complementary(tt.in); got != tt.expected {
			t.Errorf("Complementary(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestSanitizeColor(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"#fff", "#fff"},
		{"#11223344", "#11223344"},
		{" rgb(1, 2, 3) ", "rgb(1, 2, 3)"},
		{"hsla(120, 50%, 50%, 0.3)", "hsla(120, 50%, 50%, 0.3)"},
		{"transparent", "transparent"},
		{"red; background: url(x)", "#123456"},
		{"#12345", "#123456"},
		{"", "#123456"},
	}

	for _, tt := range tests {
		if got := SanitizeColor(tt.in, "#123456"); got != tt.expected {
			t.Errorf("SanitizeColor(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestGradientStops(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected []string
	}{
		{
			name:     "palette names",
			ref:      "from-amber-400 via-orange-500 to-rose-500",
			expected: []string{"#fbbf24", "#f97316", "#f43f5e"},
		},
		{
			name:     "order is from via to regardless of input order",
			ref:      "to-rose-500 from-amber-400",
			expected: []string{"#fbbf24", "#f43f5e"},
		},
		{
			name:     "arbitrary values",
			ref:      "from-[#f59e0b] to-[#0a61f4]",
			expected: []string{"#f59e0b", "#0a61f4"},
		},
		{
			name:     "alpha suffix",
			ref:      "from-violet-400/20 via-purple-400/20 to-indigo-400/20",
			expected: []string{"rgba(167, 139, 250, 0.2)", "rgba(192, 132, 252, 0.2)", "rgba(129, 140, 248, 0.2)"},
		},
		{
			name:     "unknown tokens skipped",
			ref:      "bg-gradient-to-r from-chartreuse-300 to-white",
			expected: []string{"#ffffff"},
		},
		{
			name: "plain color is not a reference",
			ref:  "#ffffff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradientStops(tt.ref); !slices.Equal(got, tt.expected) {
				t.Errorf("GradientStops(%q) = %v, want %v", tt.ref, got, tt.expected)
			}
		})
	}
}
