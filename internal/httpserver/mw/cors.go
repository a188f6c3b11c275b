package mw

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the listed origins to call the JSON API. With no origins it is
// a passthrough; "*" allows any origin without credentials.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		MaxAge:         24 * 60 * 60, // seconds
	})
}
