package routes

import (
	"slices"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
)

func TestRegisterAllMountsEveryGroup(t *testing.T) {
	r := chi.NewRouter()
	RegisterAll(r, deps.Deps{Logger: logger.NewNop()})

	got := List(r)
	want := []string{
		"GET /",
		"POST /",
		"GET /{slug}",
		"GET /{slug}/edit",
		"GET /api/catalog",
		"POST /api/businesses",
		"PATCH /api/businesses/{slug}/session",
		"POST /api/businesses/{slug}/session/flush",
		"POST /api/wizard",
		"GET /healthz",
		"GET /readyz",
		"GET /infra",
		"POST /reload",
	}
	for _, w := range want {
		if !slices.Contains(got, w) {
			t.Errorf("route %q not mounted; have %v", w, got)
		}
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for duplicate group")
		}
	}()
	Register("api", func(chi.Router, deps.Deps) {})
}
