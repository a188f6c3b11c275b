package domain

// ThemeStyle is the overall page treatment.
type ThemeStyle string

const (
	StyleMinimal  ThemeStyle = "minimal"
	StyleDark     ThemeStyle = "dark"
	StyleGradient ThemeStyle = "gradient"
	StyleGlass    ThemeStyle = "glass"
	StyleNeon     ThemeStyle = "neon"
	StylePastel   ThemeStyle = "pastel"
)

func (s ThemeStyle) Valid() bool {
	switch s {
	case StyleMinimal, StyleDark, StyleGradient, StyleGlass, StyleNeon, StylePastel:
		return true
	}
	return false
}

// ButtonStyle is the shape and treatment of link and booking buttons.
type ButtonStyle string

const (
	ButtonRounded ButtonStyle = "rounded"
	ButtonPill    ButtonStyle = "pill"
	ButtonSquare  ButtonStyle = "square"
	ButtonBrutal  ButtonStyle = "brutal"
	ButtonGhost   ButtonStyle = "ghost"
)

func (b ButtonStyle) Valid() bool {
	switch b {
	case ButtonRounded, ButtonPill, ButtonSquare, ButtonBrutal, ButtonGhost:
		return true
	}
	return false
}

// Font is a font family tag.
type Font string

const (
	FontInter     Font = "inter"
	FontOutfit    Font = "outfit"
	FontSpaceMono Font = "space-mono"
	FontPlayfair  Font = "playfair"
	FontCaveat    Font = "caveat"
)

func (f Font) Valid() bool {
	switch f {
	case FontInter, FontOutfit, FontSpaceMono, FontPlayfair, FontCaveat:
		return true
	}
	return false
}

// BackdropStyle is the treatment of the content card over the background.
type BackdropStyle string

const (
	BackdropNone    BackdropStyle = "none"
	BackdropBlur    BackdropStyle = "blur"
	BackdropGlass   BackdropStyle = "glass"
	BackdropFrosted BackdropStyle = "frosted"
	BackdropTinted  BackdropStyle = "tinted"
	BackdropVibrant BackdropStyle = "vibrant"
)

func (b BackdropStyle) Valid() bool {
	switch b {
	case "", BackdropNone, BackdropBlur, BackdropGlass, BackdropFrosted, BackdropTinted, BackdropVibrant:
		return true
	}
	return false
}

// ParticleEffect names an ambient particle animation overlay.
type ParticleEffect string

const (
	ParticlesSnow      ParticleEffect = "snow"
	ParticlesStars     ParticleEffect = "stars"
	ParticlesBubbles   ParticleEffect = "bubbles"
	ParticlesGeometric ParticleEffect = "geometric"
	ParticlesFireflies ParticleEffect = "fireflies"
	ParticlesMatrix    ParticleEffect = "matrix"
)

func (p ParticleEffect) Valid() bool {
	switch p {
	case "", ParticlesSnow, ParticlesStars, ParticlesBubbles, ParticlesGeometric, ParticlesFireflies, ParticlesMatrix:
		return true
	}
	return false
}

// DropShadow is the drop-shadow term of a filter stack.
type DropShadow struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Blur  float64 `json:"blur"`
	Color string  `json:"color"`
}

// FilterSettings is a layered CSS filter configuration.
// Units: blur px, hueRotate deg, everything else percent.
type FilterSettings struct {
	Blur       float64    `json:"blur"`
	Brightness float64    `json:"brightness"`
	Contrast   float64    `json:"contrast"`
	Saturate   float64    `json:"saturate"`
	HueRotate  float64    `json:"hueRotate"`
	Grayscale  float64    `json:"grayscale"`
	Sepia      float64    `json:"sepia"`
	Invert     float64    `json:"invert"`
	Opacity    float64    `json:"opacity"`
	DropShadow DropShadow `json:"dropShadow"`
}

// Theme is the visual configuration of a business page.
// BackgroundPattern and CustomShadow hold precomputed CSS.
type Theme struct {
	Style             ThemeStyle      `json:"style"`
	PrimaryColor      string          `json:"primaryColor"`
	BackgroundColor   string          `json:"backgroundColor"`
	TextColor         string          `json:"textColor"`
	ButtonStyle       ButtonStyle     `json:"buttonStyle"`
	Font              Font            `json:"font"`
	BackdropStyle     BackdropStyle   `json:"backdropStyle,omitempty"`
	Animations        *bool           `json:"animations,omitempty"`
	HoverEffects      *bool           `json:"hoverEffects,omitempty"`
	CustomCSS         string          `json:"customCSS,omitempty"`
	BackgroundPattern string          `json:"backgroundPattern,omitempty"`
	CustomShadow      string          `json:"customShadow,omitempty"`
	ParticleEffect    ParticleEffect  `json:"particleEffect,omitempty"`
	Filters           *FilterSettings `json:"filters,omitempty"`
}

// AnimationsEnabled defaults to true when unset.
func (t Theme) AnimationsEnabled() bool { return t.Animations == nil || *t.Animations }

// HoverEffectsEnabled defaults to true when unset.
func (t Theme) HoverEffectsEnabled() bool { return t.HoverEffects == nil || *t.HoverEffects }

// Clone copies pointer fields so the result shares no state with t.
func (t Theme) Clone() Theme {
	c := t
	if t.Animations != nil {
		v := *t.Animations
		c.Animations = &v
	}
	if t.HoverEffects != nil {
		v := *t.HoverEffects
		c.HoverEffects = &v
	}
	if t.Filters != nil {
		f := *t.Filters
		c.Filters = &f
	}
	return c
}
