package style

import (
	"github.com/MrSnakeDoc/tapbook/internal/domain"
)

const glassBlur = "blur(24px)"

var neonBackground = LinearGradient("to bottom right", []string{"#111827", "#581c87", "#4c1d95"})

// Background resolves the page background for a theme.
func Background(t domain.Theme) Declarations {
	d := Declarations{}
	switch t.Style {
	case domain.StyleMinimal:
		d = d.Set("background-color", SanitizeColor(t.BackgroundColor, colorWhite))
	case domain.StyleDark:
		d = d.Set("background-color", colorSlate900)
	case domain.StyleGradient:
		if g, ok := themeGradient(t); ok {
			d = d.Set("background-image", g)
		} else {
			d = d.Set("background-color", colorWhite)
		}
	case domain.StyleGlass:
		if g, ok := themeGradient(t); ok {
			d = d.Set("background-image", g)
		} else {
			d = d.Set("background-color", colorWhite)
		}
		d = d.Set("backdrop-filter", glassBlur)
	case domain.StyleNeon:
		d = d.Set("background-image", neonBackground)
	default:
		d = d.Set("background-color", colorWhite)
	}
	return d.Set("position", "relative").Set("overflow", "hidden")
}

// themeGradient builds the gradient for gradient-like styles. A plain color
// background fades from the primary color into it.
func themeGradient(t domain.Theme) (string, bool) {
	stops := GradientStops(t.BackgroundColor)
	if len(stops) == 0 && IsColor(t.BackgroundColor) {
		stops = []string{SanitizeColor(t.PrimaryColor, DefaultPrimary), t.BackgroundColor}
	}
	switch len(stops) {
	case 0:
		return "", false
	case 1:
		stops = append(stops, stops[0])
	}
	return LinearGradient("to bottom right", stops), true
}

// Text resolves text color, adding a glow and a monospace face under neon.
func Text(t domain.Theme) Declarations {
	color := SanitizeColor(t.TextColor, colorSlate800)
	d := Declarations{}.Set("color", color)
	if t.Style == domain.StyleNeon {
		d = d.Set("text-shadow", "0 0 10px "+color).
			Set("font-family", fontStacks[domain.FontSpaceMono])
	}
	return d
}

// ButtonRule holds the resting and hover declarations of a button.
type ButtonRule struct {
	Base  Declarations `json:"base"`
	Hover Declarations `json:"hover"`
}

func buttonShape(b domain.ButtonStyle) Declarations {
	switch b {
	case domain.ButtonPill:
		return Declarations{{"border-radius", "9999px"}}
	case domain.ButtonSquare, domain.ButtonBrutal:
		return Declarations{{"border-radius", "0"}}
	default:
		return Declarations{{"border-radius", "8px"}}
	}
}

// Button resolves the button look. Brutal and ghost shapes carry their own
// treatment and ignore the page style.
func Button(t domain.Theme) ButtonRule {
	primary := SanitizeColor(t.PrimaryColor, DefaultPrimary)
	base := buttonShape(t.ButtonStyle)
	hover := Declarations{}

	switch t.ButtonStyle {
	case domain.ButtonBrutal:
		base = base.Merge(Declarations{
			{"background-color", primary},
			{"color", colorWhite},
			{"border", "4px solid " + colorBlack},
			{"box-shadow", "4px 4px 0px 0px " + colorBlack},
		})
		hover = Declarations{
			{"transform", "translate(4px, 4px)"},
			{"box-shadow", "2px 2px 0px 0px " + colorBlack},
		}
	case domain.ButtonGhost:
		base = base.Merge(Declarations{
			{"background-color", "transparent"},
			{"border", "2px solid " + primary},
			{"color", primary},
		})
		hover = Declarations{
			{"background-color", primary},
			{"color", colorWhite},
		}
	default:
		b, h := styleTreatment(t.Style, primary)
		base = base.Merge(b)
		hover = h
	}

	if t.AnimationsEnabled() {
		base = base.Set("transition", "all 300ms ease")
	}
	if !t.HoverEffectsEnabled() {
		return ButtonRule{Base: base}
	}
	if _, ok := hover.Get("transform"); !ok {
		hover = hover.Set("transform", "scale(1.05)")
	}
	return ButtonRule{Base: base, Hover: hover}
}

func styleTreatment(s domain.ThemeStyle, primary string) (Declarations, Declarations) {
	switch s {
	case domain.StyleNeon:
		return Declarations{
				{"background-color", "transparent"},
				{"border", "2px solid " + primary},
				{"color", primary},
				{"box-shadow", "0 0 20px " + RGBA(primary, 0.5)},
			}, Declarations{
				{"background-color", primary},
				{"color", colorSlate900},
				{"box-shadow", "0 0 30px " + RGBA(primary, 0.6)},
			}
	case domain.StyleGlass:
		return Declarations{
				{"background-color", "rgba(255, 255, 255, 0.2)"},
				{"backdrop-filter", glassBlur},
				{"border", "1px solid rgba(255, 255, 255, 0.4)"},
				{"color", colorSlate800},
			}, Declarations{
				{"background-color", "rgba(255, 255, 255, 0.3)"},
			}
	case domain.StyleGradient:
		return Declarations{
				{"background-image", LinearGradient("to right", []string{primary, primary})},
				{"color", colorWhite},
			}, Declarations{
				{"box-shadow", "0 10px 15px " + RGBA(primary, 0.25)},
			}
	default:
		return Declarations{
				{"background-color", primary},
				{"color", colorWhite},
			}, Declarations{
				{"background-color", RGBA(primary, 0.9)},
			}
	}
}

// FontFamily is the generic family group a font tag belongs to.
type FontFamily string

const (
	FamilySans  FontFamily = "sans"
	FamilySerif FontFamily = "serif"
	FamilyMono  FontFamily = "mono"
)

var fontStacks = map[domain.Font]string{
	domain.FontInter:     "Inter, system-ui, -apple-system, sans-serif",
	domain.FontOutfit:    "Outfit, system-ui, -apple-system, sans-serif",
	domain.FontSpaceMono: "Space Mono, Monaco, Consolas, monospace",
	domain.FontPlayfair:  "Playfair Display, Georgia, serif",
	domain.FontCaveat:    "Caveat, cursive, system-ui",
}

// FontSpec is the resolved typography of a theme.
type FontSpec struct {
	Family        FontFamily `json:"family"`
	Stack         string     `json:"stack"`
	LetterSpacing string     `json:"letterSpacing,omitempty"`
}

// Font resolves a font tag. Unknown tags fall back to Inter.
func Font(f domain.Font) FontSpec {
	switch f {
	case domain.FontOutfit:
		return FontSpec{Family: FamilySans, Stack: fontStacks[f], LetterSpacing: "0.025em"}
	case domain.FontSpaceMono:
		return FontSpec{Family: FamilyMono, Stack: fontStacks[f]}
	case domain.FontPlayfair:
		return FontSpec{Family: FamilySerif, Stack: fontStacks[f]}
	case domain.FontCaveat:
		return FontSpec{Family: FamilySans, Stack: fontStacks[f]}
	default:
		return FontSpec{Family: FamilySans, Stack: fontStacks[domain.FontInter]}
	}
}

func (f FontSpec) Declarations() Declarations {
	d := Declarations{{"font-family", f.Stack}}
	if f.LetterSpacing != "" {
		d = d.Set("letter-spacing", f.LetterSpacing)
	}
	return d
}

// Backdrop resolves the content card treatment.
func Backdrop(b domain.BackdropStyle) Declarations {
	switch b {
	case domain.BackdropBlur:
		return Declarations{
			{"backdrop-filter", "blur(12px)"},
			{"background-color", "rgba(255, 255, 255, 0.1)"},
		}
	case domain.BackdropGlass:
		return Declarations{
			{"backdrop-filter", glassBlur},
			{"background-color", "rgba(255, 255, 255, 0.2)"},
			{"border", "1px solid rgba(255, 255, 255, 0.3)"},
		}
	case domain.BackdropFrosted:
		return Declarations{
			{"backdrop-filter", "blur(40px)"},
			{"background-color", "rgba(255, 255, 255, 0.05)"},
			{"border", "1px solid rgba(255, 255, 255, 0.1)"},
		}
	case domain.BackdropTinted:
		return Declarations{
			{"backdrop-filter", "blur(4px)"},
			{"background-color", "rgba(0, 0, 0, 0.2)"},
		}
	case domain.BackdropVibrant:
		return Declarations{
			{"backdrop-filter", "blur(16px)"},
			{"background-image", LinearGradient("to bottom right", []string{RGBA(palette["purple-500"], 0.2), RGBA(palette["pink-500"], 0.2)})},
		}
	}
	return nil
}

// ServicesLayout resolves the container of the services section.
func ServicesLayout(s domain.ServicesStyle) Declarations {
	switch s {
	case domain.ServicesList:
		return Declarations{{"display", "flex"}, {"flex-direction", "column"}, {"gap", "0.5rem"}}
	case domain.ServicesGrid:
		return Declarations{{"display", "grid"}, {"grid-template-columns", "repeat(2, minmax(0, 1fr))"}, {"gap", "0.75rem"}}
	case domain.ServicesMinimal:
		return Declarations{{"display", "flex"}, {"flex-direction", "column"}, {"gap", "0.25rem"}}
	default:
		return Declarations{{"display", "grid"}, {"grid-template-columns", "1fr"}, {"gap", "1rem"}}
	}
}

var glyphs = map[string]string{
	domain.IconInstagram: "📸",
	domain.IconFacebook:  "📘",
	domain.IconTwitter:   "🐦",
	domain.IconYouTube:   "▶️",
	domain.IconLinkedIn:  "💼",
	domain.IconTikTok:    "🎵",
	domain.IconWhatsApp:  "💬",
	domain.IconGlobe:     "🌐",
}

// LinkGlyph maps an icon tag to its glyph; unknown tags get the globe.
func LinkGlyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return glyphs[domain.IconGlobe]
}
