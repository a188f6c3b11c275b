package style

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
)

// DefaultFilters is the identity filter stack.
func DefaultFilters() domain.FilterSettings {
	return domain.FilterSettings{
		Brightness: 100,
		Contrast:   100,
		Saturate:   100,
		Opacity:    100,
		DropShadow: domain.DropShadow{Color: colorBlack},
	}
}

// FilterCSS composes the filter value in a fixed order. The drop-shadow term
// is only emitted when its blur is positive. Values are not range checked.
func FilterCSS(f domain.FilterSettings) string {
	terms := []string{
		"blur(" + num(f.Blur) + "px)",
		"brightness(" + num(f.Brightness) + "%)",
		"contrast(" + num(f.Contrast) + "%)",
		"saturate(" + num(f.Saturate) + "%)",
		"hue-rotate(" + num(f.HueRotate) + "deg)",
		"grayscale(" + num(f.Grayscale) + "%)",
		"sepia(" + num(f.Sepia) + "%)",
		"invert(" + num(f.Invert) + "%)",
		"opacity(" + num(f.Opacity) + "%)",
	}
	if ds := f.DropShadow; ds.Blur > 0 {
		terms = append(terms, fmt.Sprintf("drop-shadow(%spx %spx %spx %s)", num(ds.X), num(ds.Y), num(ds.Blur), ds.Color))
	}
	return strings.Join(terms, " ")
}

// FilterRule renders the full "filter: ...;" declaration.
func FilterRule(f domain.FilterSettings) string {
	return "filter: " + FilterCSS(f) + ";"
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// ClampFilters forces every setting into its documented range.
func ClampFilters(f domain.FilterSettings) domain.FilterSettings {
	f.Blur = clamp(f.Blur, 0, 20)
	f.Brightness = clamp(f.Brightness, 0, 200)
	f.Contrast = clamp(f.Contrast, 0, 200)
	f.Saturate = clamp(f.Saturate, 0, 200)
	f.HueRotate = clamp(f.HueRotate, -180, 180)
	f.Grayscale = clamp(f.Grayscale, 0, 100)
	f.Sepia = clamp(f.Sepia, 0, 100)
	f.Invert = clamp(f.Invert, 0, 100)
	f.Opacity = clamp(f.Opacity, 0, 100)
	f.DropShadow.X = clamp(f.DropShadow.X, -20, 20)
	f.DropShadow.Y = clamp(f.DropShadow.Y, -20, 20)
	f.DropShadow.Blur = clamp(f.DropShadow.Blur, 0, 30)
	f.DropShadow.Color = SanitizeColor(f.DropShadow.Color, colorBlack)
	return f
}

// FilterPreset is a named filter stack.
type FilterPreset struct {
	Name     string                `json:"name"`
	Settings domain.FilterSettings `json:"settings"`
}

func withFilters(edit func(*domain.FilterSettings)) domain.FilterSettings {
	f := DefaultFilters()
	edit(&f)
	return f
}

var filterPresets = []FilterPreset{
	{Name: "None", Settings: DefaultFilters()},
	{Name: "Vintage", Settings: withFilters(func(f *domain.FilterSettings) {
		f.Sepia, f.Contrast, f.Brightness = 80, 120, 110
	})},
	{Name: "B&W", Settings: withFilters(func(f *domain.FilterSettings) {
		f.Grayscale, f.Contrast = 100, 110
	})},
	{Name: "Vibrant", Settings: withFilters(func(f *domain.FilterSettings) {
		f.Saturate, f.Contrast, f.Brightness = 150, 120, 105
	})},
	{Name: "Cool", Settings: withFilters(func(f *domain.FilterSettings) {
		f.HueRotate, f.Saturate = 180, 120
	})},
	{Name: "Warm", Settings: withFilters(func(f *domain.FilterSettings) {
		f.HueRotate, f.Saturate, f.Brightness = -30, 130, 105
	})},
	{Name: "Dream", Settings: withFilters(func(f *domain.FilterSettings) {
		f.Blur, f.Brightness, f.Saturate, f.Opacity = 1, 115, 130, 90
	})},
	{Name: "Matrix", Settings: withFilters(func(f *domain.FilterSettings) {
		f.HueRotate, f.Contrast, f.Brightness = 120, 130, 80
	})},
}

// FilterPresets lists the shipped filter presets.
func FilterPresets() []FilterPreset {
	out := make([]FilterPreset, len(filterPresets))
	copy(out, filterPresets)
	return out
}

// PresetFilters looks a preset up by name, case-insensitively. A preset
// replaces the whole stack.
func PresetFilters(name string) (domain.FilterSettings, error) {
	for _, p := range filterPresets {
		if strings.EqualFold(p.Name, name) {
			return p.Settings, nil
		}
	}
	return domain.FilterSettings{}, fmt.Errorf("%w: filter %q", ErrUnknownPreset, name)
}
