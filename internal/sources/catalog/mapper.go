package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/tapbook/internal/catalog"
	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/ident"
	"github.com/MrSnakeDoc/tapbook/internal/style"
)

// ErrEmptyCatalog is returned when no starter survives mapping.
var ErrEmptyCatalog = errors.New("no valid starters found in catalog")

// MapStarters converts the YAML to registry starters. Invalid entries are
// skipped and reported; unknown platforms are dropped; an unknown preset
// falls back to the default theme.
func MapStarters(cfg Config) ([]catalog.Starter, []error) {
	starters := make([]catalog.Starter, 0, len(cfg.Starters))
	var problems []error

	for i, e := range cfg.Starters {
		typ := ident.CreateSlug(e.Type)
		if typ == "" {
			problems = append(problems, fmt.Errorf("starter %d: missing type", i))
			continue
		}

		label := strings.TrimSpace(e.Label)
		if label == "" {
			label = e.Type
		}

		preset := e.Preset
		if _, err := style.PresetTheme(preset); err != nil {
			if preset != "" {
				problems = append(problems, fmt.Errorf("starter %s: %w", typ, err))
			}
			preset = style.DefaultPresetID
		}

		platforms := make([]string, 0, len(e.Platforms))
		for _, p := range e.Platforms {
			if _, ok := domain.PlatformByID(p); !ok {
				problems = append(problems, fmt.Errorf("starter %s: unknown platform %q", typ, p))
				continue
			}
			platforms = append(platforms, p)
		}

		starters = append(starters, catalog.Starter{
			Type:      typ,
			Label:     label,
			Example:   e.Example,
			Tagline:   e.Tagline,
			Preset:    preset,
			Platforms: platforms,
			Services:  MapServices(e.Services),
		})
	}

	if len(starters) == 0 {
		problems = append(problems, ErrEmptyCatalog)
	}
	return starters, problems
}

// MapServices keeps entries with both a name and a price.
func MapServices(entries []ServiceEntry) []domain.Service {
	services := make([]domain.Service, 0, len(entries))
	for _, e := range entries {
		services = append(services, domain.Service{Name: e.Name, Price: e.Price, Image: e.Image})
	}
	return domain.ValidServices(services)
}
