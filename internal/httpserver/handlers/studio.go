package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/tapbook/internal/catalog"
	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/style"
)

type previewRequest struct {
	Theme  domain.Theme   `json:"theme"`
	Layout *domain.Layout `json:"layout,omitempty"`
}

// Preview resolves a theme without touching any business.
func Preview(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req previewRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, d, err)
			return
		}
		layout := domain.DefaultLayout()
		if req.Layout != nil {
			layout = *req.Layout
		}
		writeJSON(w, http.StatusOK, style.Resolve(req.Theme, layout))
	}
}

type cssRequest struct {
	CSS string `json:"css"`
}

// ValidateCSS checks a custom stylesheet.
func ValidateCSS(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cssRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, style.ValidateCustomCSS(req.CSS))
	}
}

type catalogResponse struct {
	Themes       []style.ThemePreset  `json:"themes"`
	Filters      []style.FilterPreset `json:"filters"`
	Shadows      []style.ShadowPreset `json:"shadows"`
	Patterns     []style.Pattern      `json:"patterns"`
	BlendModes   []style.BlendMode    `json:"blendModes"`
	CSSTemplates []style.CSSTemplate  `json:"cssTemplates"`
	Platforms    []domain.Platform    `json:"platforms"`
	Starters     []catalog.Starter    `json:"starters"`
}

// Catalog lists every preset the editor and wizard offer.
func Catalog(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalogResponse{
			Themes:       style.ThemePresets(),
			Filters:      style.FilterPresets(),
			Shadows:      style.ShadowPresets(),
			Patterns:     style.Patterns(),
			BlendModes:   style.BlendModes(),
			CSSTemplates: style.CSSTemplates(),
			Platforms:    domain.Platforms(),
			Starters:     d.Catalog.Starters(),
		})
	}
}
