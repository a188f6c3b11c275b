package domain

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxBioLength is the maximum number of characters allowed in a profile bio.
const MaxBioLength = 160

// Service is one bookable offering listed on a business page.
type Service struct {
	Name  string `json:"name" yaml:"name"`
	Price string `json:"price" yaml:"price"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

// Valid reports whether both name and price are present.
func (s Service) Valid() bool {
	return strings.TrimSpace(s.Name) != "" && strings.TrimSpace(s.Price) != ""
}

// ValidServices keeps the services that have a name and a price, trimmed.
func ValidServices(services []Service) []Service {
	out := make([]Service, 0, len(services))
	for _, s := range services {
		if !s.Valid() {
			continue
		}
		out = append(out, Service{
			Name:  strings.TrimSpace(s.Name),
			Price: strings.TrimSpace(s.Price),
			Image: strings.TrimSpace(s.Image),
		})
	}
	return out
}

// Profile holds the optional presentation details of a business.
type Profile struct {
	Avatar     string `json:"avatar,omitempty"`
	Bio        string `json:"bio,omitempty"`
	CoverImage string `json:"coverImage,omitempty"`
}

// Validate enforces the bio length limit.
func (p Profile) Validate() error {
	if utf8.RuneCountInString(p.Bio) > MaxBioLength {
		return ValidationErrors{NewValidationError("bio", "Bio must be 160 characters or less")}
	}
	return nil
}

// ServicesStyle controls how the services section is laid out.
type ServicesStyle string

const (
	ServicesCards   ServicesStyle = "cards"
	ServicesList    ServicesStyle = "list"
	ServicesGrid    ServicesStyle = "grid"
	ServicesMinimal ServicesStyle = "minimal"
)

func (s ServicesStyle) Valid() bool {
	switch s {
	case ServicesCards, ServicesList, ServicesGrid, ServicesMinimal:
		return true
	}
	return false
}

// Layout describes page section visibility and ordering.
type Layout struct {
	ShowServices  bool          `json:"showServices"`
	ServicesStyle ServicesStyle `json:"servicesStyle"`
	LinkOrder     []string      `json:"linkOrder,omitempty"`
}

// DefaultLayout is the layout given to newly created businesses.
func DefaultLayout() Layout {
	return Layout{ShowServices: true, ServicesStyle: ServicesCards}
}

// Business is the one persisted record: a business micro-site.
type Business struct {
	Slug      string       `json:"slug"`
	Name      string       `json:"name"`
	WhatsApp  string       `json:"whatsapp"`
	Instagram string       `json:"instagram,omitempty"`
	Services  []Service    `json:"services"`
	EditToken string       `json:"edit_token,omitempty"`
	Theme     Theme        `json:"theme"`
	Profile   Profile      `json:"profile"`
	Links     []CustomLink `json:"links"`
	Layout    Layout       `json:"layout"`
	Version   int64        `json:"version"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Clone returns a deep copy of b.
func (b *Business) Clone() *Business {
	if b == nil {
		return nil
	}
	c := *b
	c.Services = slices.Clone(b.Services)
	c.Links = slices.Clone(b.Links)
	c.Layout.LinkOrder = slices.Clone(b.Layout.LinkOrder)
	c.Theme = b.Theme.Clone()
	return &c
}

// Public returns a copy safe to expose without a token.
func (b *Business) Public() *Business {
	c := b.Clone()
	c.EditToken = ""
	return c
}

// VisibleLinks returns the visible links in display order. When the layout
// carries a link order, listed ids come first in that order.
func (b *Business) VisibleLinks() []CustomLink {
	links := make([]CustomLink, 0, len(b.Links))
	for _, l := range b.Links {
		if l.Visible {
			links = append(links, l)
		}
	}
	if len(b.Layout.LinkOrder) == 0 {
		return links
	}
	rank := make(map[string]int, len(b.Layout.LinkOrder))
	for i, id := range b.Layout.LinkOrder {
		rank[id] = i
	}
	slices.SortStableFunc(links, func(a, c CustomLink) int {
		ra, okA := rank[a.ID]
		rc, okC := rank[c.ID]
		switch {
		case okA && okC:
			return ra - rc
		case okA:
			return -1
		case okC:
			return 1
		}
		return 0
	})
	return links
}

// LinkIndex returns the position of the link with id, or -1.
func (b *Business) LinkIndex(id string) int {
	return slices.IndexFunc(b.Links, func(l CustomLink) bool { return l.ID == id })
}
