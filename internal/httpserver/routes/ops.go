package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/mw"
)

func init() { Register("ops", registerOps) }

func registerOps(r chi.Router, d deps.Deps) {
	ops := r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger), mw.EnforceHost(d.AllowedHosts, d.Logger))
	ops.Get("/infra", handlers.Infra(d))
	ops.Post("/reload", handlers.Reload(d))
}
