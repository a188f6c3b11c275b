package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/MrSnakeDoc/tapbook/internal/catalog"
	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
	"github.com/MrSnakeDoc/tapbook/internal/store/memory"
)

func starters() *catalog.Registry {
	r := catalog.NewRegistry()
	r.Replace([]catalog.Starter{{
		Type:      "barber",
		Label:     "Barbershop",
		Tagline:   "Premium cuts",
		Preset:    "midnight",
		Platforms: []string{"instagram", "whatsapp"},
		Services:  []domain.Service{{Name: "Classic Haircut", Price: "$35"}},
	}})
	return r
}

func TestWizardForward(t *testing.T) {
	reg := starters()
	w := NewWizard()

	if _, err := w.Next(reg); err == nil {
		t.Fatal("Next() from empty basic info should fail")
	}
	if _, err := w.Back(); !errors.Is(err, ErrFirstStep) {
		t.Errorf("Back() from first step error = %v", err)
	}

	w.Name = "Tony's Barbershop"
	w.Type = "barber"
	w, err := w.Next(reg)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if w.Step != StepPlatforms {
		t.Fatalf("Step = %q, want platforms", w.Step)
	}
	if len(w.Platforms) != 2 {
		t.Errorf("starter platforms not preselected: %v", w.Platforms)
	}

	w.Platforms = nil
	if _, err := w.Next(reg); err == nil {
		t.Error("Next() without platforms should fail")
	}

	w.Platforms = []string{"instagram", "whatsapp", "tiktok"}
	w, err = w.Next(reg)
	if err != nil || w.Step != StepHandles {
		t.Fatalf("Next() = %q, %v", w.Step, err)
	}
	if _, err := w.Next(reg); !errors.Is(err, ErrLastStep) {
		t.Errorf("Next() from handles error = %v, want ErrLastStep", err)
	}

	back, err := w.Back()
	if err != nil || back.Step != StepPlatforms {
		t.Errorf("Back() = %q, %v", back.Step, err)
	}
	if w.Step != StepHandles {
		t.Error("Back() mutated the receiver")
	}
}

func TestWizardValidation(t *testing.T) {
	reg := starters()

	tests := []struct {
		name   string
		wizard Wizard
		field  string
	}{
		{"unknown type", Wizard{Step: StepBasicInfo, Name: "Tony", Type: "florist"}, "type"},
		{"blank name", Wizard{Step: StepBasicInfo, Name: "  ", Type: "barber"}, "name"},
		{"unknown platform", Wizard{Step: StepPlatforms, Platforms: []string{"myspace"}}, "platforms"},
		{"missing handle", Wizard{Step: StepHandles, Platforms: []string{"tiktok"}}, "handles.tiktok"},
		{"bad number", Wizard{Step: StepHandles, Platforms: []string{"whatsapp"}, Handles: map[string]string{"whatsapp": "123"}}, "handles.whatsapp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, ok := domain.AsValidation(tt.wizard.Validate(reg))
			if !ok || list.For(tt.field) == "" {
				t.Errorf("Validate() = %v, want error on %s", list, tt.field)
			}
		})
	}

	if err := (Wizard{Step: "review"}).Validate(reg); !errors.Is(err, ErrUnknownStep) {
		t.Errorf("Validate() unknown step error = %v", err)
	}
}

func TestCreateFromWizard(t *testing.T) {
	ctx := context.Background()
	reg := starters()
	st := memory.New()
	svc := NewService(st, logger.NewNop())

	w := Wizard{
		Step:      StepHandles,
		Name:      "Tony's Barbershop",
		Type:      "barber",
		Platforms: []string{"instagram", "whatsapp", "tiktok"},
		Handles: map[string]string{
			"instagram": "@tonys",
			"whatsapp":  "+1 234 567 8900",
			"tiktok":    "tonycuts",
		},
	}

	early := w
	early.Step = StepPlatforms
	if _, err := svc.CreateFromWizard(ctx, early, reg); !errors.Is(err, ErrNotFinished) {
		t.Errorf("CreateFromWizard() before handles error = %v", err)
	}

	b, err := svc.CreateFromWizard(ctx, w, reg)
	if err != nil {
		t.Fatalf("CreateFromWizard() error = %v", err)
	}
	if b.Slug != "tony-s-barbershop" || b.WhatsApp != "12345678900" || b.Instagram != "tonys" {
		t.Errorf("business = %+v", b)
	}
	if b.Theme.Style != domain.StyleDark || b.Profile.Bio != "Premium cuts" {
		t.Errorf("starter not applied: %+v %+v", b.Theme, b.Profile)
	}
	if len(b.Services) != 1 || b.Services[0].Name != "Classic Haircut" {
		t.Errorf("services = %+v", b.Services)
	}
	if len(b.Links) != 1 || b.Links[0].URL != "https://tiktok.com/@tonycuts" || !b.Links[0].Visible {
		t.Errorf("links = %+v", b.Links)
	}

	bad := w
	bad.Name = ""
	if _, err := svc.CreateFromWizard(ctx, bad, reg); err == nil {
		t.Error("CreateFromWizard() accepted an earlier invalid step")
	}
}
