package domain

import (
	"net/url"
	"strings"
	"unicode"
)

const (
	minWhatsAppDigits = 10
	maxWhatsAppDigits = 15
)

// FormatWhatsApp strips every non-digit character.
func FormatWhatsApp(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidWhatsApp reports whether number carries 10 to 15 digits once formatted.
func ValidWhatsApp(number string) bool {
	n := len(FormatWhatsApp(number))
	return n >= minWhatsAppDigits && n <= maxWhatsAppDigits
}

// BookingURL opens a WhatsApp chat prefilled with a booking request for service.
func BookingURL(whatsapp, service string) string {
	q := url.Values{"text": {"Hi, I want to book " + service}}
	return "https://wa.me/" + FormatWhatsApp(whatsapp) + "?" + q.Encode()
}

// ChatURL opens a WhatsApp chat without a prefilled message.
func ChatURL(whatsapp string) string {
	return "https://wa.me/" + FormatWhatsApp(whatsapp)
}

// CallURL is the tel: link for a stored number.
func CallURL(whatsapp string) string {
	return "tel:" + whatsapp
}

// InstagramURL builds the profile link from a handle; "" when there is no handle.
func InstagramURL(handle string) string {
	h := NormalizeHandle(handle)
	if h == "" {
		return ""
	}
	return "https://instagram.com/" + h
}

// NormalizeHandle trims whitespace and a leading @.
func NormalizeHandle(handle string) string {
	return strings.TrimFunc(strings.TrimPrefix(strings.TrimSpace(handle), "@"), unicode.IsSpace)
}
