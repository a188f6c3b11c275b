package intake

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
	catalogsrc "github.com/MrSnakeDoc/tapbook/internal/sources/catalog"
	"github.com/MrSnakeDoc/tapbook/internal/style"
)

// SeedResult reports one seed entry.
type SeedResult struct {
	Name     string
	Business *domain.Business
	Err      error
}

// Seed creates every business in the file. A bad entry is reported and
// skipped; the rest are still created. Entries with a type borrow services,
// preset and tagline from the matching starter when they leave them empty.
func (s *Service) Seed(ctx context.Context, entries []catalogsrc.SeedBusiness, starters Starters) []SeedResult {
	results := make([]SeedResult, 0, len(entries))
	for i, e := range entries {
		b, err := s.seedOne(ctx, e, starters)
		if err != nil {
			s.log.Warn("seed entry skipped",
				logger.Int("index", i),
				logger.String("name", e.Name),
				logger.Error(err))
		}
		results = append(results, SeedResult{Name: e.Name, Business: b, Err: err})
	}
	return results
}

func (s *Service) seedOne(ctx context.Context, e catalogsrc.SeedBusiness, starters Starters) (*domain.Business, error) {
	preset, bio := e.Preset, e.Bio
	services := catalogsrc.MapServices(e.Services)

	if e.Type != "" {
		st, ok := starters.Starter(e.Type)
		if !ok {
			return nil, fmt.Errorf("unknown business type %q", e.Type)
		}
		if preset == "" {
			preset = st.Preset
		}
		if bio == "" {
			bio = st.Tagline
		}
		if len(services) == 0 {
			services = st.Services
		}
	}

	f := Form{
		BusinessName: e.Name,
		WhatsApp:     e.WhatsApp,
		Instagram:    e.Instagram,
		Services:     services,
	}.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	theme := style.DefaultTheme()
	if preset != "" {
		t, err := style.PresetTheme(preset)
		if err != nil {
			return nil, err
		}
		theme = t
	}

	return s.Insert(ctx, Draft{
		Name:      f.BusinessName,
		WhatsApp:  f.WhatsApp,
		Instagram: f.Instagram,
		Services:  f.Services,
		Theme:     theme,
		Profile:   domain.Profile{Bio: bio},
	})
}
