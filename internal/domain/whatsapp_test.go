package domain

import "testing"

func TestFormatWhatsApp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "formatted us number", input: "+1 (234) 567-8901", expected: "12345678901"},
		{name: "already digits", input: "447700900123", expected: "447700900123"},
		{name: "empty", input: "", expected: ""},
		{name: "letters only", input: "call me", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWhatsApp(tt.input); got != tt.expected {
				t.Errorf("FormatWhatsApp(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidWhatsApp(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"+1 (234) 567-8901", true},
		{"123456789", false},
		{"1234567890", true},
		{"123456789012345", true},
		{"1234567890123456", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidWhatsApp(tt.input); got != tt.want {
				t.Errorf("ValidWhatsApp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBookingURL(t *testing.T) {
	got := BookingURL("12345678901", "Haircut")
	want := "https://wa.me/12345678901?text=Hi%2C+I+want+to+book+Haircut"
	if got != want {
		t.Errorf("BookingURL() = %q, want %q", got, want)
	}
}

func TestInstagramURL(t *testing.T) {
	tests := []struct {
		handle string
		want   string
	}{
		{"@joescafe", "https://instagram.com/joescafe"},
		{"  joescafe ", "https://instagram.com/joescafe"},
		{"", ""},
		{"@", ""},
	}
	for _, tt := range tests {
		if got := InstagramURL(tt.handle); got != tt.want {
			t.Errorf("InstagramURL(%q) = %q, want %q", tt.handle, got, tt.want)
		}
	}
}

func TestCallURL(t *testing.T) {
	if got := CallURL("12345678901"); got != "tel:12345678901" {
		t.Errorf("CallURL() = %q", got)
	}
}
