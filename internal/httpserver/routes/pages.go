package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/handlers"
)

func init() { Register("pages", registerPages) }

func registerPages(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.IntakeForm(d))
	r.Get("/{slug}", handlers.PublicPage(d))
	r.Get("/{slug}/edit", handlers.EditPage(d))
}
