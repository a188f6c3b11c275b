package style

import (
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
)

// ErrUnknownPreset is returned for a preset name not in the catalog.
var ErrUnknownPreset = errors.New("unknown preset")

// ThemePreset is a named, complete theme.
type ThemePreset struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Theme domain.Theme `json:"theme"`
}

var themePresets = []ThemePreset{
	{ID: "modern", Name: "Modern", Theme: domain.Theme{
		Style: domain.StyleMinimal, PrimaryColor: "#6366f1", BackgroundColor: "#ffffff",
		TextColor: "#1e293b", ButtonStyle: domain.ButtonRounded, Font: domain.FontInter,
	}},
	{ID: "midnight", Name: "Midnight", Theme: domain.Theme{
		Style: domain.StyleDark, PrimaryColor: "#818cf8", BackgroundColor: "#0f172a",
		TextColor: "#f1f5f9", ButtonStyle: domain.ButtonRounded, Font: domain.FontInter,
	}},
	{ID: "sunset", Name: "Sunset", Theme: domain.Theme{
		Style: domain.StyleGradient, PrimaryColor: "#f59e0b", BackgroundColor: "from-amber-400 via-orange-500 to-rose-500",
		TextColor: "#ffffff", ButtonStyle: domain.ButtonPill, Font: domain.FontOutfit,
	}},
	{ID: "ocean", Name: "Ocean", Theme: domain.Theme{
		Style: domain.StyleGradient, PrimaryColor: "#0891b2", BackgroundColor: "from-sky-400 via-cyan-500 to-blue-600",
		TextColor: "#ffffff", ButtonStyle: domain.ButtonPill, Font: domain.FontInter,
	}},
	{ID: "glass", Name: "Glass", Theme: domain.Theme{
		Style: domain.StyleGlass, PrimaryColor: "#8b5cf6", BackgroundColor: "from-violet-400/20 via-purple-400/20 to-indigo-400/20",
		TextColor: "#1e293b", ButtonStyle: domain.ButtonRounded, Font: domain.FontInter,
	}},
	{ID: "neon", Name: "Neon", Theme: domain.Theme{
		Style: domain.StyleNeon, PrimaryColor: "#c084fc", BackgroundColor: "#0f0f23",
		TextColor: "#f1f5f9", ButtonStyle: domain.ButtonRounded, Font: domain.FontSpaceMono,
	}},
	{ID: "forest", Name: "Forest", Theme: domain.Theme{
		Style: domain.StyleGradient, PrimaryColor: "#10b981", BackgroundColor: "from-emerald-400 via-green-500 to-teal-600",
		TextColor: "#ffffff", ButtonStyle: domain.ButtonPill, Font: domain.FontOutfit,
	}},
	{ID: "rose", Name: "Rose", Theme: domain.Theme{
		Style: domain.StyleGradient, PrimaryColor: "#ec4899", BackgroundColor: "from-pink-400 via-rose-500 to-red-500",
		TextColor: "#ffffff", ButtonStyle: domain.ButtonPill, Font: domain.FontCaveat,
	}},
}

// DefaultPresetID names the theme new businesses start with.
const DefaultPresetID = "modern"

// ThemePresets lists the shipped presets in display order.
func ThemePresets() []ThemePreset {
	out := make([]ThemePreset, len(themePresets))
	for i, p := range themePresets {
		out[i] = ThemePreset{ID: p.ID, Name: p.Name, Theme: p.Theme.Clone()}
	}
	return out
}

// PresetTheme returns a fresh copy of the preset theme. Applying it replaces
// every theme field.
func PresetTheme(id string) (domain.Theme, error) {
	for _, p := range themePresets {
		if p.ID == id {
			return p.Theme.Clone(), nil
		}
	}
	return domain.Theme{}, fmt.Errorf("%w: theme %q", ErrUnknownPreset, id)
}

// DefaultTheme is the modern preset.
func DefaultTheme() domain.Theme {
	t, _ := PresetTheme(DefaultPresetID)
	return t
}

// Enhance replaces a gradient theme's background with a gradient from the
// primary color to its complement. Other styles are returned unchanged.
func Enhance(t domain.Theme) domain.Theme {
	out := t.Clone()
	if t.Style == domain.StyleGradient {
		out.BackgroundColor = fmt.Sprintf("from-[%s] to-[%s]", t.PrimaryColor, Complementary(t.PrimaryColor))
	}
	return out
}
