package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/tapbook/internal/catalog"
	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/ident"
	"github.com/MrSnakeDoc/tapbook/internal/style"
)

// Step is a wizard state.
type Step string

const (
	StepBasicInfo Step = "basic-info"
	StepPlatforms Step = "platforms"
	StepHandles   Step = "handles"
)

var steps = []Step{StepBasicInfo, StepPlatforms, StepHandles}

var (
	ErrFirstStep   = errors.New("already on the first step")
	ErrLastStep    = errors.New("already on the last step, finish instead")
	ErrNotFinished = errors.New("wizard can only finish from the handles step")
	ErrUnknownStep = errors.New("unknown wizard step")
)

// Starters resolves a business type to its starter.
type Starters interface {
	Starter(typ string) (catalog.Starter, bool)
}

// Wizard is the full client-held wizard state. Transitions return a new
// value and never skip a step.
type Wizard struct {
	Step      Step              `json:"step"`
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	Platforms []string          `json:"platforms"`
	Handles   map[string]string `json:"handles"`
}

func NewWizard() Wizard {
	return Wizard{Step: StepBasicInfo, Handles: map[string]string{}}
}

func (w Wizard) index() int {
	for i, s := range steps {
		if s == w.Step {
			return i
		}
	}
	return -1
}

// Validate checks the fields owned by the current step.
func (w Wizard) Validate(starters Starters) error {
	var errs domain.ValidationErrors
	switch w.Step {
	case StepBasicInfo:
		if strings.TrimSpace(w.Name) == "" {
			errs = append(errs, domain.NewValidationError("name", "Business name is required"))
		} else if ident.CreateSlug(w.Name) == "" {
			errs = append(errs, domain.NewValidationError("name", "Business name must contain letters or numbers"))
		}
		if _, ok := starters.Starter(w.Type); !ok {
			errs = append(errs, domain.NewValidationError("type", "Choose a business type"))
		}
	case StepPlatforms:
		if len(w.Platforms) == 0 {
			errs = append(errs, domain.NewValidationError("platforms", "Choose at least one platform"))
		}
		for _, id := range w.Platforms {
			if _, ok := domain.PlatformByID(id); !ok {
				errs = append(errs, domain.NewValidationError("platforms", fmt.Sprintf("Unknown platform %q", id)))
			}
		}
	case StepHandles:
		for _, id := range w.Platforms {
			p, ok := domain.PlatformByID(id)
			if !ok {
				continue
			}
			h := w.Handles[id]
			switch {
			case strings.TrimSpace(h) == "":
				errs = append(errs, domain.NewValidationError("handles."+id, p.Label+" handle is required"))
			case !p.ValidHandle(h):
				msg := "Invalid " + p.Label + " handle"
				if id == "whatsapp" {
					msg = "Please enter a valid WhatsApp number"
				}
				errs = append(errs, domain.NewValidationError("handles."+id, msg))
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStep, w.Step)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Next validates the current step and advances. Entering the platforms step
// preselects the starter's platforms when none are chosen yet.
func (w Wizard) Next(starters Starters) (Wizard, error) {
	i := w.index()
	if i < 0 {
		return w, fmt.Errorf("%w: %q", ErrUnknownStep, w.Step)
	}
	if i == len(steps)-1 {
		return w, ErrLastStep
	}
	if err := w.Validate(starters); err != nil {
		return w, err
	}

	next := w.clone()
	next.Step = steps[i+1]
	if next.Step == StepPlatforms && len(next.Platforms) == 0 {
		if s, ok := starters.Starter(w.Type); ok {
			next.Platforms = append(next.Platforms, s.Platforms...)
		}
	}
	return next, nil
}

// Back returns to the previous step without validation.
func (w Wizard) Back() (Wizard, error) {
	i := w.index()
	switch {
	case i < 0:
		return w, fmt.Errorf("%w: %q", ErrUnknownStep, w.Step)
	case i == 0:
		return w, ErrFirstStep
	}
	prev := w.clone()
	prev.Step = steps[i-1]
	return prev, nil
}

func (w Wizard) clone() Wizard {
	c := w
	c.Platforms = append([]string(nil), w.Platforms...)
	c.Handles = make(map[string]string, len(w.Handles))
	for k, v := range w.Handles {
		c.Handles[k] = v
	}
	return c
}

// CreateFromWizard finishes the wizard: the starter supplies services and
// theme, WhatsApp and Instagram handles fill the business fields and every
// other platform becomes a social link.
func (s *Service) CreateFromWizard(ctx context.Context, w Wizard, starters Starters) (*domain.Business, error) {
	if w.Step != StepHandles {
		return nil, ErrNotFinished
	}
	for _, step := range steps {
		probe := w
		probe.Step = step
		if err := probe.Validate(starters); err != nil {
			return nil, err
		}
	}

	starter, _ := starters.Starter(w.Type)
	theme, err := style.PresetTheme(starter.Preset)
	if err != nil {
		theme = style.DefaultTheme()
	}

	d := Draft{
		Name:     strings.TrimSpace(w.Name),
		Services: starter.Services,
		Theme:    theme,
		Profile:  domain.Profile{Bio: starter.Tagline},
	}
	for _, id := range w.Platforms {
		p, _ := domain.PlatformByID(id)
		handle := w.Handles[id]
		switch id {
		case "whatsapp":
			d.WhatsApp = handle
		case "instagram":
			d.Instagram = domain.NormalizeHandle(handle)
		default:
			d.Links = append(d.Links, p.Link(ident.NewLinkID(), handle))
		}
	}
	return s.Insert(ctx, d)
}
