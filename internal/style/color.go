package style

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	colorWhite    = "#ffffff"
	colorBlack    = "#000000"
	colorSlate800 = "#1e293b"
	colorSlate900 = "#0f172a"
	// DefaultPrimary is used whenever a theme carries an unusable primary color.
	DefaultPrimary = "#6366f1"
)

var (
	hexTriplet = regexp.MustCompile(`^#?([a-fA-F\d]{2})([a-fA-F\d]{2})([a-fA-F\d]{2})$`)
	cssHex     = regexp.MustCompile(`^#([a-fA-F\d]{3,4}|[a-fA-F\d]{6}|[a-fA-F\d]{8})$`)
	cssFunc    = regexp.MustCompile(`^(rgb|rgba|hsl|hsla)\(\s*[-\d.%\s,/]+\)$`)
)

// RGB is an 8-bit color triplet.
type RGB struct {
	R, G, B uint8
}

// HexToRGB parses a six digit hex color, with or without '#'.
func HexToRGB(hex string) (RGB, bool) {
	m := hexTriplet.FindStringSubmatch(strings.TrimSpace(hex))
	if m == nil {
		return RGB{}, false
	}
	var out [3]uint8
	for i := 0; i < 3; i++ {
		v, _ := strconv.ParseUint(m[i+1], 16, 8)
		out[i] = uint8(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, true
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA renders hex with alpha in [0,1]. Unparseable colors render as black.
func RGBA(hex string, alpha float64) string {
	c, ok := HexToRGB(hex)
	if !ok {
		c = RGB{}
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, num(alpha))
}

// Complementary inverts each channel. Unparseable input is returned as is.
func Complementary(hex string) string {
	c, ok := HexToRGB(hex)
	if !ok {
		return hex
	}
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}.Hex()
}

// IsColor accepts hex colors, rgb()/hsl() functions and "transparent".
func IsColor(value string) bool {
	v := strings.TrimSpace(value)
	return v == "transparent" || cssHex.MatchString(v) || cssFunc.MatchString(v)
}

// SanitizeColor returns value when it is a usable color, fallback otherwise.
func SanitizeColor(value, fallback string) string {
	if IsColor(value) {
		return strings.TrimSpace(value)
	}
	return fallback
}
