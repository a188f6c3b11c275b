package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/handlers"
)

func init() { Register("api", registerAPI) }

func registerAPI(r chi.Router, d deps.Deps) {
	r.Get("/api/catalog", handlers.Catalog(d))
	r.Post("/api/preview", handlers.Preview(d))
	r.Post("/api/css/validate", handlers.ValidateCSS(d))

	r.Get("/api/businesses/{slug}", handlers.GetBusiness(d))
	r.Get("/api/businesses/{slug}/session", handlers.GetSession(d))
	r.Patch("/api/businesses/{slug}/session", handlers.PatchSession(d))
	r.Post("/api/businesses/{slug}/session/flush", handlers.FlushSession(d))
}
