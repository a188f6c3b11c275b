package style

import (
	"strconv"
	"strings"
)

// palette maps the utility color names used in gradient references to hex.
var palette = map[string]string{
	"white":       colorWhite,
	"black":       colorBlack,
	"slate-800":   colorSlate800,
	"slate-900":   colorSlate900,
	"gray-900":    "#111827",
	"amber-400":   "#fbbf24",
	"orange-500":  "#f97316",
	"rose-500":    "#f43f5e",
	"sky-400":     "#38bdf8",
	"cyan-500":    "#06b6d4",
	"blue-600":    "#2563eb",
	"violet-400":  "#a78bfa",
	"violet-900":  "#4c1d95",
	"purple-400":  "#c084fc",
	"purple-500":  "#a855f7",
	"purple-900":  "#581c87",
	"indigo-400":  "#818cf8",
	"emerald-400": "#34d399",
	"green-500":   "#22c55e",
	"teal-600":    "#0d9488",
	"pink-400":    "#f472b6",
	"pink-500":    "#ec4899",
	"red-500":     "#ef4444",
}

// GradientStops parses a reference such as "from-amber-400 via-orange-500
// to-rose-500" or "from-[#f59e0b] to-[#0a61f4]" into CSS colors, ordered
// from, via..., to. Unknown tokens are skipped.
func GradientStops(ref string) []string {
	var from, to string
	var via []string
	for _, tok := range strings.Fields(ref) {
		kind, value, ok := strings.Cut(tok, "-")
		if !ok {
			continue
		}
		c, ok := stopColor(value)
		if !ok {
			continue
		}
		switch kind {
		case "from":
			from = c
		case "via":
			via = append(via, c)
		case "to":
			to = c
		}
	}

	stops := make([]string, 0, len(via)+2)
	if from != "" {
		stops = append(stops, from)
	}
	stops = append(stops, via...)
	if to != "" {
		stops = append(stops, to)
	}
	return stops
}

func stopColor(value string) (string, bool) {
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		c := strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
		return c, IsColor(c)
	}
	if IsColor(value) {
		return value, true
	}

	name, alpha, hasAlpha := strings.Cut(value, "/")
	hex, ok := palette[name]
	if !ok {
		return "", false
	}
	if !hasAlpha {
		return hex, true
	}
	pct, err := strconv.ParseFloat(alpha, 64)
	if err != nil {
		return "", false
	}
	return RGBA(hex, pct/100), true
}

// LinearGradient renders a linear-gradient() value.
func LinearGradient(direction string, stops []string) string {
	return "linear-gradient(" + direction + ", " + strings.Join(stops, ", ") + ")"
}
