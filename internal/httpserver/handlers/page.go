package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/views"
	"github.com/MrSnakeDoc/tapbook/internal/intake"
	"github.com/MrSnakeDoc/tapbook/internal/style"
)

// PublicPage renders a business page. No token is needed; edit=<token>
// only adds the edit link and is not checked here.
func PublicPage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		b, err := d.Store.Get(r.Context(), slug)
		if err != nil {
			renderFailure(w, r, d, err)
			return
		}
		b = b.Public()

		q := r.URL.Query()
		data := views.PageData{
			Business:     b,
			Links:        b.VisibleLinks(),
			Presentation: style.Resolve(b.Theme, b.Layout),
			Success:      q.Get("success") == "true",
			ShareURL:     absoluteURL(d, r, "/"+b.Slug),
		}
		if token := q.Get("edit"); token != "" {
			data.EditURL = intake.EditURL(b.Slug, token)
		}
		render(w, d, http.StatusOK, views.PagePublic, data)
	}
}

// EditPage opens an edit session. A missing or wrong token gets the denied
// page and no session.
func EditPage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		token := r.URL.Query().Get("token")

		s, err := d.Sessions.Open(r.Context(), slug, token)
		if err != nil {
			renderFailure(w, r, d, err)
			return
		}

		render(w, d, http.StatusOK, views.PageEdit, views.EditData{
			Snapshot:     s.Snapshot(),
			Token:        token,
			PublicURL:    "/" + slug,
			Themes:       style.ThemePresets(),
			Filters:      style.FilterPresets(),
			Shadows:      style.ShadowPresets(),
			Patterns:     style.Patterns(),
			CSSTemplates: style.CSSTemplates(),
		})
	}
}

func absoluteURL(d deps.Deps, r *http.Request, path string) string {
	if d.BaseURL != "" {
		return d.BaseURL + path
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + path
}
