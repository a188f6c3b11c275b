package style

import (
	"maps"
	"slices"
	"strings"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
)

// Presentation is everything a renderer needs to draw a themed page.
type Presentation struct {
	Background Declarations          `json:"background"`
	Text       Declarations          `json:"text"`
	Font       FontSpec              `json:"font"`
	Button     ButtonRule            `json:"button"`
	Backdrop   Declarations          `json:"backdrop,omitempty"`
	Services   Declarations          `json:"services"`
	Filter     string                `json:"filter,omitempty"`
	Shadow     string                `json:"shadow,omitempty"`
	Pattern    string                `json:"pattern,omitempty"`
	CustomCSS  string                `json:"customCSS,omitempty"`
	CSSStatus  CSSValidation         `json:"cssStatus"`
	Particles  domain.ParticleEffect `json:"particles,omitempty"`
}

// Resolve derives the presentation of a theme and layout. Custom CSS that
// fails validation is left out.
func Resolve(t domain.Theme, layout domain.Layout) Presentation {
	p := Presentation{
		Background: Background(t),
		Text:       Text(t),
		Font:       Font(t.Font),
		Button:     Button(t),
		Backdrop:   Backdrop(t.BackdropStyle),
		Services:   ServicesLayout(layout.ServicesStyle),
		Shadow:     t.CustomShadow,
		Pattern:    t.BackgroundPattern,
		CSSStatus:  ValidateCustomCSS(t.CustomCSS),
	}
	if t.Filters != nil {
		p.Filter = FilterCSS(*t.Filters)
	}
	if p.CSSStatus.Valid {
		p.CustomCSS = t.CustomCSS
	}
	if t.ParticleEffect.Valid() {
		p.Particles = t.ParticleEffect
	}
	return p
}

// PageStyle is the inline style of the page root.
func (p Presentation) PageStyle() string {
	return p.Font.Declarations().Merge(p.Background).Merge(p.Text).String()
}

// CardStyle is the inline style of the content card.
func (p Presentation) CardStyle() string {
	d := p.Backdrop
	if p.Shadow != "" && p.Shadow != "none" {
		d = d.Set("box-shadow", p.Shadow)
	}
	if p.Filter != "" {
		d = d.Set("filter", p.Filter)
	}
	return d.String()
}

// PatternStyle is the inline style of the pattern overlay, "" when unset.
func (p Presentation) PatternStyle() string {
	if p.Pattern == "" {
		return ""
	}
	return "position: absolute; inset: 0; pointer-events: none; " + p.Pattern
}

// Stylesheet renders the rules that cannot live in an inline style:
// button hover, referenced keyframes, then the custom CSS.
func (p Presentation) Stylesheet(buttonSelector string) string {
	var parts []string
	if rule := p.Button.Base.Block(buttonSelector); rule != "" {
		parts = append(parts, rule)
	}
	if rule := p.Button.Hover.Block(buttonSelector + ":hover"); rule != "" {
		parts = append(parts, rule)
	}
	for _, name := range slices.Sorted(maps.Keys(Keyframes)) {
		if strings.Contains(p.Pattern, name) {
			parts = append(parts, Keyframes[name])
		}
	}
	if p.CustomCSS != "" {
		parts = append(parts, p.CustomCSS)
	}
	return strings.Join(parts, "\n")
}
