package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tapbook/internal/editor"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
)

// GetBusiness returns the public record.
func GetBusiness(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := d.Store.Get(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, b.Public())
	}
}

func openSession(d deps.Deps, r *http.Request) (*editor.Session, error) {
	return d.Sessions.Open(r.Context(), chi.URLParam(r, "slug"), r.URL.Query().Get("token"))
}

// GetSession returns the draft with its resolved presentation.
func GetSession(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := openSession(d, r)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, s.Snapshot())
	}
}

type patchRequest struct {
	Ops []editor.Operation `json:"ops"`
}

// PatchSession applies an ordered batch of edits. The batch is atomic; the
// save happens after the autosave delay.
func PatchSession(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := openSession(d, r)
		if err != nil {
			writeError(w, r, d, err)
			return
		}

		var req patchRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, d, err)
			return
		}

		snap, err := s.Apply(req.Ops)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

// FlushSession saves pending edits now.
func FlushSession(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := openSession(d, r)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		if err := s.Flush(r.Context()); err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, s.Snapshot())
	}
}
