package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/mw"
)

func init() { Register("create", registerCreate) }

// Every route that inserts a business shares one per-IP bucket.
func registerCreate(r chi.Router, d deps.Deps) {
	limited := r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimit.Burst,
		RefillPerIPPerMin: d.RateLimit.PerMin,
		MaxEntries:        10000,
		TrustProxy:        d.TrustProxy,
	}))

	limited.Post("/", handlers.IntakeSubmit(d))
	limited.Post("/api/businesses", handlers.CreateBusiness(d))
	limited.Post("/api/wizard", handlers.Wizard(d))
}
