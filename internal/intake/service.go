package intake

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/ident"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
	"github.com/MrSnakeDoc/tapbook/internal/store"
	"github.com/MrSnakeDoc/tapbook/internal/style"
)

// maxInsertAttempts bounds retries when another creator claims the slug
// between the uniqueness check and the insert.
const maxInsertAttempts = 3

// reservedSlugs collide with fixed routes.
var reservedSlugs = map[string]bool{
	"api": true, "healthz": true, "readyz": true, "infra": true,
	"reload": true, "static": true, "edit": true, "favicon-ico": true,
}

// Draft is a validated business that has no slug or token yet.
type Draft struct {
	Name      string
	WhatsApp  string
	Instagram string
	Services  []domain.Service
	Theme     domain.Theme
	Profile   domain.Profile
	Links     []domain.CustomLink
}

// Service persists new businesses.
type Service struct {
	store store.Businesses
	log   logger.Logger
	now   func() time.Time
}

func NewService(s store.Businesses, log logger.Logger) *Service {
	return &Service{store: s, log: log, now: time.Now}
}

// Create validates the form and stores a business with the default theme.
func (s *Service) Create(ctx context.Context, f Form) (*domain.Business, error) {
	f = f.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return s.Insert(ctx, Draft{
		Name:      f.BusinessName,
		WhatsApp:  f.WhatsApp,
		Instagram: f.Instagram,
		Services:  f.Services,
		Theme:     style.DefaultTheme(),
	})
}

// Insert assigns a unique slug and a fresh token to d and stores it.
func (s *Service) Insert(ctx context.Context, d Draft) (*domain.Business, error) {
	for attempt := 1; attempt <= maxInsertAttempts; attempt++ {
		slug, err := ident.UniqueSlug(ctx, d.Name, s.slugTaken)
		if errors.Is(err, ident.ErrEmptySlug) {
			return nil, domain.ValidationErrors{
				domain.NewValidationError("business_name", "Business name must contain letters or numbers"),
			}
		}
		if err != nil {
			return nil, err
		}

		b := s.newBusiness(slug, d)
		err = s.store.Insert(ctx, b)
		if errors.Is(err, domain.ErrSlugTaken) {
			s.log.Warn("slug claimed concurrently, retrying",
				logger.String("slug", slug),
				logger.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("insert business %s: %w", slug, err)
		}

		s.log.Info("business created",
			logger.String("slug", b.Slug),
			logger.Int("services", len(b.Services)))
		return b, nil
	}
	return nil, fmt.Errorf("insert business %q: %w", d.Name, domain.ErrSlugTaken)
}

func (s *Service) slugTaken(ctx context.Context, slug string) (bool, error) {
	if reservedSlugs[slug] {
		return true, nil
	}
	return s.store.Exists(ctx, slug)
}

func (s *Service) newBusiness(slug string, d Draft) *domain.Business {
	now := s.now().UTC()
	links := d.Links
	if links == nil {
		links = []domain.CustomLink{}
	}
	return &domain.Business{
		Slug:      slug,
		Name:      d.Name,
		WhatsApp:  domain.FormatWhatsApp(d.WhatsApp),
		Instagram: d.Instagram,
		Services:  d.Services,
		EditToken: ident.NewEditToken(),
		Theme:     d.Theme,
		Profile:   d.Profile,
		Links:     links,
		Layout:    domain.DefaultLayout(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RedirectURL is where a successful submission lands.
func RedirectURL(b *domain.Business) string {
	return fmt.Sprintf("/%s?success=true&edit=%s", b.Slug, url.QueryEscape(b.EditToken))
}

// EditURL is the editor link for b.
func EditURL(slug, token string) string {
	return fmt.Sprintf("/%s/edit?token=%s", slug, url.QueryEscape(token))
}
