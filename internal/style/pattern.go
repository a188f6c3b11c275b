package style

import (
	"errors"
	"fmt"
)

// ErrUnknownPattern is returned for a pattern id not in the catalog.
var ErrUnknownPattern = errors.New("unknown pattern")

// PatternType groups patterns in the catalog.
type PatternType string

const (
	PatternGeometric PatternType = "geometric"
	PatternOrganic   PatternType = "organic"
	PatternTexture   PatternType = "texture"
)

// BlendMode is a CSS mix-blend-mode keyword.
type BlendMode string

var blendModes = []BlendMode{
	"normal", "multiply", "screen", "overlay", "soft-light",
	"hard-light", "color-dodge", "color-burn", "darken", "lighten",
}

// BlendModes lists the supported blend modes.
func BlendModes() []BlendMode {
	out := make([]BlendMode, len(blendModes))
	copy(out, blendModes)
	return out
}

func (b BlendMode) Valid() bool {
	for _, m := range blendModes {
		if m == b {
			return true
		}
	}
	return false
}

// PatternOptions parameterize every generator. Opacity is a percentage,
// rotation is in degrees, size and spacing are in px.
type PatternOptions struct {
	PrimaryColor   string    `json:"primaryColor"`
	SecondaryColor string    `json:"secondaryColor"`
	Size           float64   `json:"size"`
	Opacity        float64   `json:"opacity"`
	Rotation       float64   `json:"rotation"`
	Spacing        float64   `json:"spacing"`
	BlendMode      BlendMode `json:"blendMode"`
	Animation      bool      `json:"animation"`
}

func DefaultPatternOptions() PatternOptions {
	return PatternOptions{
		PrimaryColor:   DefaultPrimary,
		SecondaryColor: "#8b5cf6",
		Size:           2,
		Opacity:        30,
		Spacing:        20,
		BlendMode:      "normal",
	}
}

// Normalize brings options into their documented ranges and replaces
// unusable colors and blend modes with defaults.
func (o PatternOptions) Normalize() PatternOptions {
	def := DefaultPatternOptions()
	o.PrimaryColor = SanitizeColor(o.PrimaryColor, def.PrimaryColor)
	o.SecondaryColor = SanitizeColor(o.SecondaryColor, def.SecondaryColor)
	if o.Size <= 0 {
		o.Size = def.Size
	}
	o.Opacity = clamp(o.Opacity, 5, 100)
	o.Rotation = clamp(o.Rotation, -180, 180)
	o.Spacing = clamp(o.Spacing, 10, 100)
	if !o.BlendMode.Valid() {
		o.BlendMode = def.BlendMode
	}
	return o
}

// Pattern is a catalog entry.
type Pattern struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     PatternType `json:"type"`
	rotates  bool
	generate func(o PatternOptions) Declarations
}

func px(v float64) string { return num(v) + "px" }

var patterns = []Pattern{
	{ID: "dots", Name: "Dots", Type: PatternGeometric, rotates: true, generate: func(o PatternOptions) Declarations {
		return Declarations{
			{"background-image", fmt.Sprintf("radial-gradient(circle at %s %s, %s %s, transparent %s)",
				px(o.Spacing), px(o.Spacing), o.PrimaryColor, px(o.Size), px(o.Size))},
			{"background-size", px(o.Spacing*2) + " " + px(o.Spacing*2)},
		}
	}},
	{ID: "grid", Name: "Grid", Type: PatternGeometric, rotates: true, generate: func(o PatternOptions) Declarations {
		return Declarations{
			{"background-image", fmt.Sprintf("linear-gradient(%s %s, transparent %s), linear-gradient(90deg, %s %s, transparent %s)",
				o.PrimaryColor, px(o.Size), px(o.Size), o.PrimaryColor, px(o.Size), px(o.Size))},
			{"background-size", px(o.Spacing) + " " + px(o.Spacing)},
		}
	}},
	{ID: "diagonal", Name: "Diagonal Lines", Type: PatternGeometric, generate: func(o PatternOptions) Declarations {
		return Declarations{
			{"background-image", fmt.Sprintf("repeating-linear-gradient(%sdeg, %s, %s %s, transparent %s, transparent %s)",
				num(o.Rotation), o.PrimaryColor, o.PrimaryColor, px(o.Size), px(o.Size), px(o.Spacing))},
		}
	}},
	{ID: "checkerboard", Name: "Checkerboard", Type: PatternGeometric, rotates: true, generate: func(o PatternOptions) Declarations {
		p, q := o.PrimaryColor, o.SecondaryColor
		return Declarations{
			{"background-image", fmt.Sprintf("conic-gradient(%s 90deg, %s 90deg, %s 180deg, %s 180deg, %s 270deg, %s 270deg)", p, q, q, p, p, q)},
			{"background-size", px(o.Spacing) + " " + px(o.Spacing)},
		}
	}},
	{ID: "triangles", Name: "Triangles", Type: PatternGeometric, rotates: true, generate: func(o PatternOptions) Declarations {
		p := o.PrimaryColor
		half := px(o.Spacing / 2)
		return Declarations{
			{"background-image", fmt.Sprintf("linear-gradient(135deg, %s 25%%, transparent 25%%), linear-gradient(225deg, %s 25%%, transparent 25%%), linear-gradient(45deg, %s 25%%, transparent 25%%), linear-gradient(315deg, %s 25%%, transparent 25%%)", p, p, p, p)},
			{"background-size", px(o.Spacing) + " " + px(o.Spacing)},
			{"background-position", fmt.Sprintf("0 0, %s 0, %s %s, 0px %s", half, half, half, half)},
		}
	}},
	{ID: "waves", Name: "Waves", Type: PatternOrganic, rotates: true, generate: func(o PatternOptions) Declarations {
		d := Declarations{
			{"background-image", fmt.Sprintf("radial-gradient(ellipse %s %s at 0 0, %s, transparent), radial-gradient(ellipse %s %s at %s %s, %s, transparent)",
				px(o.Spacing), px(o.Size), o.PrimaryColor, px(o.Spacing), px(o.Size), px(o.Spacing/2), px(o.Size), o.SecondaryColor)},
			{"background-size", px(o.Spacing) + " " + px(o.Size*2)},
		}
		if o.Animation {
			d = d.Set("animation", "wave-float 6s ease-in-out infinite")
		}
		return d
	}},
	{ID: "hexagons", Name: "Hexagons", Type: PatternGeometric, rotates: true, generate: func(o PatternOptions) Declarations {
		return Declarations{
			{"background-image", fmt.Sprintf("radial-gradient(circle at 25%% 25%%, %s 2px, transparent 2px), radial-gradient(circle at 75%% 75%%, %s 2px, transparent 2px)",
				o.PrimaryColor, o.SecondaryColor)},
			{"background-size", px(o.Spacing) + " " + px(o.Spacing)},
		}
	}},
	{ID: "organic-shapes", Name: "Organic Shapes", Type: PatternOrganic, rotates: true, generate: func(o PatternOptions) Declarations {
		z := o.Size
		d := Declarations{
			{"background-image", fmt.Sprintf("radial-gradient(ellipse %s %s at 20%% 30%%, %s, transparent), radial-gradient(ellipse %s %s at 80%% 70%%, %s, transparent), radial-gradient(ellipse %s %s at 50%% 90%%, %s, transparent)",
				px(z), px(z*1.5), o.PrimaryColor, px(z*0.8), px(z), o.SecondaryColor, px(z*1.2), px(z*0.7), o.PrimaryColor+"66")},
			{"background-size", px(o.Spacing) + " " + px(o.Spacing)},
		}
		if o.Animation {
			d = d.Set("animation", "organic-morph 20s ease-in-out infinite")
		}
		return d
	}},
	{ID: "noise", Name: "Noise", Type: PatternTexture, generate: func(o PatternOptions) Declarations {
		return Declarations{
			{"background-image", "url(" + NoiseTexture(int(o.Spacing), o.Opacity, nil) + ")"},
			{"background-size", px(o.Spacing) + " " + px(o.Spacing)},
		}
	}},
	{ID: "paper", Name: "Paper", Type: PatternTexture, generate: func(o PatternOptions) Declarations {
		return Declarations{
			{"background-image", fmt.Sprintf("radial-gradient(circle at 1px 1px, %s33 1px, transparent 0), radial-gradient(circle at 2px 2px, %s22 1px, transparent 0)",
				o.PrimaryColor, o.SecondaryColor)},
			{"background-size", px(o.Spacing) + " " + px(o.Spacing)},
		}
	}},
}

// Patterns lists the catalog in display order.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// GeneratePattern normalizes opts and renders the named pattern with its
// opacity, rotation and blend declarations.
func GeneratePattern(id string, opts PatternOptions) (Declarations, error) {
	for _, p := range patterns {
		if p.ID != id {
			continue
		}
		o := opts.Normalize()
		d := p.generate(o).Set("opacity", num(o.Opacity/100))
		if p.rotates {
			d = d.Set("transform", "rotate("+num(o.Rotation)+"deg)")
		}
		return d.Set("mix-blend-mode", string(o.BlendMode)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, id)
}

// Keyframes holds the animations pattern declarations may reference.
var Keyframes = map[string]string{
	"wave-float":    "@keyframes wave-float { 0%, 100% { transform: translateY(0); } 50% { transform: translateY(-10px); } }",
	"organic-morph": "@keyframes organic-morph { 0%, 100% { transform: scale(1) rotate(0deg); } 33% { transform: scale(1.1) rotate(120deg); } 66% { transform: scale(0.9) rotate(240deg); } }",
}
