package editor

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/ident"
	"github.com/MrSnakeDoc/tapbook/internal/style"
	"github.com/MrSnakeDoc/tapbook/internal/validation"
)

// Kind names an edit operation.
type Kind string

const (
	OpThemePreset     Kind = "theme.preset"
	OpThemeSet        Kind = "theme.set"
	OpThemeEnhance    Kind = "theme.enhance"
	OpFiltersSet      Kind = "filters.set"
	OpFiltersPreset   Kind = "filters.preset"
	OpFiltersClear    Kind = "filters.clear"
	OpShadowAdd       Kind = "shadow.add"
	OpShadowDuplicate Kind = "shadow.duplicate"
	OpShadowRemove    Kind = "shadow.remove"
	OpShadowUpdate    Kind = "shadow.update"
	OpShadowReset     Kind = "shadow.reset"
	OpShadowPreset    Kind = "shadow.preset"
	OpPatternSet      Kind = "pattern.set"
	OpPatternClear    Kind = "pattern.clear"
	OpCSSSet          Kind = "css.set"
	OpLinkAdd         Kind = "link.add"
	OpLinkUpdate      Kind = "link.update"
	OpLinkDelete      Kind = "link.delete"
	OpLinkMove        Kind = "link.move"
	OpProfileSet      Kind = "profile.set"
	OpLayoutSet       Kind = "layout.set"
	OpServicesSet     Kind = "services.set"
	OpInfoSet         Kind = "info.set"
)

var (
	ErrUnknownOp  = errors.New("unknown operation")
	ErrMissingArg = errors.New("missing operation argument")
	ErrNoLink     = errors.New("link not found")
)

// ThemePatch sets the non-nil theme fields.
type ThemePatch struct {
	Style           *domain.ThemeStyle     `json:"style,omitempty"`
	PrimaryColor    *string                `json:"primaryColor,omitempty" validate:"omitempty,csscolor"`
	BackgroundColor *string                `json:"backgroundColor,omitempty"`
	TextColor       *string                `json:"textColor,omitempty" validate:"omitempty,csscolor"`
	ButtonStyle     *domain.ButtonStyle    `json:"buttonStyle,omitempty"`
	Font            *domain.Font           `json:"font,omitempty"`
	BackdropStyle   *domain.BackdropStyle  `json:"backdropStyle,omitempty"`
	ParticleEffect  *domain.ParticleEffect `json:"particleEffect,omitempty"`
	Animations      *bool                  `json:"animations,omitempty"`
	HoverEffects    *bool                  `json:"hoverEffects,omitempty"`
}

// LinkPatch carries link fields for add and update.
type LinkPatch struct {
	Title   *string          `json:"title,omitempty" validate:"omitempty,max=60"`
	URL     *string          `json:"url,omitempty" validate:"omitempty,max=2048"`
	Type    *domain.LinkType `json:"type,omitempty"`
	Icon    *string          `json:"icon,omitempty"`
	Visible *bool            `json:"visible,omitempty"`
}

// InfoPatch edits the basic business fields.
type InfoPatch struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,max=80"`
	WhatsApp  *string `json:"whatsapp,omitempty" validate:"omitempty,whatsapp"`
	Instagram *string `json:"instagram,omitempty" validate:"omitempty,max=60"`
}

// Operation is one edit. Only the arguments of its kind are read.
type Operation struct {
	Op Kind `json:"op"`

	Preset   string                 `json:"preset,omitempty"`
	Theme    *ThemePatch            `json:"theme,omitempty"`
	Filters  *domain.FilterSettings `json:"filters,omitempty"`
	LayerID  string                 `json:"layerId,omitempty"`
	Layer    *style.ShadowLayer     `json:"layer,omitempty"`
	Pattern  string                 `json:"pattern,omitempty"`
	Options  *style.PatternOptions  `json:"options,omitempty"`
	CSS      *string                `json:"css,omitempty"`
	LinkID   string                 `json:"linkId,omitempty"`
	Link     *LinkPatch             `json:"link,omitempty"`
	To       int                    `json:"to,omitempty"`
	Profile  *domain.Profile        `json:"profile,omitempty"`
	Layout   *domain.Layout         `json:"layout,omitempty"`
	Services []domain.Service       `json:"services,omitempty"`
	Info     *InfoPatch             `json:"info,omitempty"`
}

// draft is the mutable working copy ops apply to.
type draft struct {
	business *domain.Business
	shadow   *style.ShadowStack
	pattern  PatternState
	css      CSSState
}

func missing(op Kind, arg string) error {
	return fmt.Errorf("%w: %s needs %s", ErrMissingArg, op, arg)
}

func (d *draft) apply(op Operation) error {
	b := d.business
	switch op.Op {
	case OpThemePreset:
		t, err := style.PresetTheme(op.Preset)
		if err != nil {
			return err
		}
		// The preset is the whole theme. Editor state for the custom
		// layers it drops goes with them.
		b.Theme = t
		d.shadow = shadowStackFor(t.CustomShadow)
		d.pattern = PatternState{Options: style.DefaultPatternOptions()}
		d.css = CSSState{Draft: t.CustomCSS, Status: style.ValidateCustomCSS(t.CustomCSS)}
	case OpThemeSet:
		if op.Theme == nil {
			return missing(op.Op, "theme")
		}
		return applyThemePatch(&b.Theme, *op.Theme)
	case OpThemeEnhance:
		b.Theme = style.Enhance(b.Theme)

	case OpFiltersSet:
		if op.Filters == nil {
			return missing(op.Op, "filters")
		}
		f := style.ClampFilters(*op.Filters)
		b.Theme.Filters = &f
	case OpFiltersPreset:
		f, err := style.PresetFilters(op.Preset)
		if err != nil {
			return err
		}
		b.Theme.Filters = &f
	case OpFiltersClear:
		b.Theme.Filters = nil

	case OpShadowAdd:
		d.shadow.Append()
		b.Theme.CustomShadow = d.shadow.CSS()
	case OpShadowDuplicate:
		if _, err := d.shadow.Duplicate(op.LayerID); err != nil {
			return err
		}
		b.Theme.CustomShadow = d.shadow.CSS()
	case OpShadowRemove:
		if err := d.shadow.Remove(op.LayerID); err != nil {
			return err
		}
		b.Theme.CustomShadow = d.shadow.CSS()
	case OpShadowUpdate:
		if op.Layer == nil {
			return missing(op.Op, "layer")
		}
		l := *op.Layer
		l.Color = style.SanitizeColor(l.Color, "#000000")
		l.Opacity = min(max(l.Opacity, 0), 100)
		if err := d.shadow.Update(l); err != nil {
			return err
		}
		b.Theme.CustomShadow = d.shadow.CSS()
	case OpShadowReset:
		b.Theme.CustomShadow = d.shadow.Reset()
	case OpShadowPreset:
		if err := d.shadow.ApplyPreset(op.Preset); err != nil {
			return err
		}
		b.Theme.CustomShadow = d.shadow.CSS()

	case OpPatternSet:
		opts := style.DefaultPatternOptions()
		if op.Options != nil {
			opts = *op.Options
		}
		decls, err := style.GeneratePattern(op.Pattern, opts)
		if err != nil {
			return err
		}
		d.pattern = PatternState{ID: op.Pattern, Options: opts.Normalize()}
		b.Theme.BackgroundPattern = decls.String()
	case OpPatternClear:
		d.pattern = PatternState{}
		b.Theme.BackgroundPattern = ""

	case OpCSSSet:
		if op.CSS == nil {
			return missing(op.Op, "css")
		}
		d.css = CSSState{Draft: *op.CSS, Status: style.ValidateCustomCSS(*op.CSS)}
		if d.css.Status.Valid {
			b.Theme.CustomCSS = *op.CSS
		}

	case OpLinkAdd:
		return d.addLink(op)
	case OpLinkUpdate:
		return d.updateLink(op)
	case OpLinkDelete:
		i := b.LinkIndex(op.LinkID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrNoLink, op.LinkID)
		}
		b.Links = slices.Delete(b.Links, i, i+1)
		b.Layout.LinkOrder = slices.DeleteFunc(b.Layout.LinkOrder, func(id string) bool { return id == op.LinkID })
	case OpLinkMove:
		i := b.LinkIndex(op.LinkID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrNoLink, op.LinkID)
		}
		l := b.Links[i]
		b.Links = slices.Delete(b.Links, i, i+1)
		to := min(max(op.To, 0), len(b.Links))
		b.Links = slices.Insert(b.Links, to, l)
		b.Layout.LinkOrder = nil

	case OpProfileSet:
		if op.Profile == nil {
			return missing(op.Op, "profile")
		}
		p := domain.Profile{
			Avatar:     strings.TrimSpace(op.Profile.Avatar),
			Bio:        strings.TrimSpace(op.Profile.Bio),
			CoverImage: strings.TrimSpace(op.Profile.CoverImage),
		}
		if err := p.Validate(); err != nil {
			return err
		}
		b.Profile = p
	case OpLayoutSet:
		if op.Layout == nil {
			return missing(op.Op, "layout")
		}
		return d.setLayout(*op.Layout)
	case OpServicesSet:
		b.Services = domain.ValidServices(op.Services)
	case OpInfoSet:
		if op.Info == nil {
			return missing(op.Op, "info")
		}
		return applyInfo(b, *op.Info)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
	}
	return nil
}

func invalid(field, msg string) error {
	return domain.ValidationErrors{domain.NewValidationError(field, msg)}
}

func applyThemePatch(t *domain.Theme, p ThemePatch) error {
	if err := validation.Struct(p, nil); err != nil {
		return err
	}
	if p.Style != nil && !p.Style.Valid() {
		return invalid("style", fmt.Sprintf("unknown style %q", *p.Style))
	}
	if p.ButtonStyle != nil && !p.ButtonStyle.Valid() {
		return invalid("buttonStyle", fmt.Sprintf("unknown button style %q", *p.ButtonStyle))
	}
	if p.Font != nil && !p.Font.Valid() {
		return invalid("font", fmt.Sprintf("unknown font %q", *p.Font))
	}
	if p.BackdropStyle != nil && !p.BackdropStyle.Valid() {
		return invalid("backdropStyle", fmt.Sprintf("unknown backdrop %q", *p.BackdropStyle))
	}
	if p.ParticleEffect != nil && !p.ParticleEffect.Valid() {
		return invalid("particleEffect", fmt.Sprintf("unknown particle effect %q", *p.ParticleEffect))
	}
	if p.BackgroundColor != nil {
		v := strings.TrimSpace(*p.BackgroundColor)
		if !style.IsColor(v) && len(style.GradientStops(v)) == 0 {
			return invalid("backgroundColor", "backgroundColor must be a color or a gradient")
		}
		t.BackgroundColor = v
	}

	if p.Style != nil {
		t.Style = *p.Style
	}
	if p.PrimaryColor != nil {
		t.PrimaryColor = strings.TrimSpace(*p.PrimaryColor)
	}
	if p.TextColor != nil {
		t.TextColor = strings.TrimSpace(*p.TextColor)
	}
	if p.ButtonStyle != nil {
		t.ButtonStyle = *p.ButtonStyle
	}
	if p.Font != nil {
		t.Font = *p.Font
	}
	if p.BackdropStyle != nil {
		t.BackdropStyle = *p.BackdropStyle
	}
	if p.ParticleEffect != nil {
		t.ParticleEffect = *p.ParticleEffect
	}
	if p.Animations != nil {
		v := *p.Animations
		t.Animations = &v
	}
	if p.HoverEffects != nil {
		v := *p.HoverEffects
		t.HoverEffects = &v
	}
	return nil
}

func (d *draft) addLink(op Operation) error {
	p := op.Link
	if p == nil || p.Title == nil || strings.TrimSpace(*p.Title) == "" {
		return invalid("link.title", "Link title is required")
	}
	if p.URL == nil || strings.TrimSpace(*p.URL) == "" {
		return invalid("link.url", "Link URL is required")
	}
	l := domain.CustomLink{ID: ident.NewLinkID(), Type: domain.LinkURL, Icon: domain.IconGlobe, Visible: true}
	if err := patchLink(&l, *p); err != nil {
		return err
	}
	d.business.Links = append(d.business.Links, l)
	return nil
}

func (d *draft) updateLink(op Operation) error {
	if op.Link == nil {
		return missing(op.Op, "link")
	}
	i := d.business.LinkIndex(op.LinkID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNoLink, op.LinkID)
	}
	l := d.business.Links[i]
	if err := patchLink(&l, *op.Link); err != nil {
		return err
	}
	if strings.TrimSpace(l.Title) == "" || strings.TrimSpace(l.URL) == "" {
		return invalid("link", "Link title and URL are required")
	}
	d.business.Links[i] = l
	return nil
}

func patchLink(l *domain.CustomLink, p LinkPatch) error {
	if err := validation.Struct(p, nil); err != nil {
		return err
	}
	if p.Type != nil {
		if !p.Type.Valid() {
			return invalid("link.type", fmt.Sprintf("unknown link type %q", *p.Type))
		}
		l.Type = *p.Type
	}
	if p.Title != nil {
		l.Title = strings.TrimSpace(*p.Title)
	}
	if p.URL != nil {
		l.URL = strings.TrimSpace(*p.URL)
	}
	if p.Icon != nil {
		l.Icon = *p.Icon
	}
	if p.Visible != nil {
		l.Visible = *p.Visible
	}
	return nil
}

func (d *draft) setLayout(l domain.Layout) error {
	if l.ServicesStyle == "" {
		l.ServicesStyle = domain.ServicesCards
	}
	if !l.ServicesStyle.Valid() {
		return invalid("servicesStyle", fmt.Sprintf("unknown services style %q", l.ServicesStyle))
	}
	for _, id := range l.LinkOrder {
		if d.business.LinkIndex(id) < 0 {
			return invalid("linkOrder", fmt.Sprintf("unknown link %q", id))
		}
	}
	l.LinkOrder = slices.Clone(l.LinkOrder)
	d.business.Layout = l
	return nil
}

func applyInfo(b *domain.Business, p InfoPatch) error {
	if err := validation.Struct(p, nil); err != nil {
		return err
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return invalid("name", "Business name is required")
		}
		b.Name = name
	}
	if p.WhatsApp != nil {
		b.WhatsApp = domain.FormatWhatsApp(*p.WhatsApp)
	}
	if p.Instagram != nil {
		b.Instagram = domain.NormalizeHandle(*p.Instagram)
	}
	return nil
}
