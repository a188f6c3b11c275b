package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/views"
	"github.com/MrSnakeDoc/tapbook/internal/intake"
)

// IntakeForm renders the create form.
func IntakeForm(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, d, http.StatusOK, views.PageIntake, views.IntakeData{Starters: d.Catalog.Starters()})
	}
}

// IntakeSubmit creates a business from the form and redirects to its page
// with the edit link. Invalid input re-renders the form with inline errors.
func IntakeSubmit(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := intake.FormFromValues(r.PostForm)

		b, err := d.Intake.Create(r.Context(), form)
		if err != nil {
			if ve, ok := domain.AsValidation(err); ok {
				render(w, d, http.StatusUnprocessableEntity, views.PageIntake, views.IntakeData{
					Form:     form,
					Errors:   ve,
					Starters: d.Catalog.Starters(),
				})
				return
			}
			renderFailure(w, r, d, err)
			return
		}

		http.Redirect(w, r, intake.RedirectURL(b), http.StatusSeeOther)
	}
}

type createResponse struct {
	Slug      string `json:"slug"`
	EditToken string `json:"edit_token"`
	Redirect  string `json:"redirect"`
	EditURL   string `json:"edit_url"`
}

// CreateBusiness is the JSON twin of IntakeSubmit.
func CreateBusiness(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form intake.Form
		if err := decodeJSON(w, r, &form); err != nil {
			writeError(w, r, d, err)
			return
		}

		b, err := d.Intake.Create(r.Context(), form)
		if err != nil {
			writeError(w, r, d, err)
			return
		}

		writeJSON(w, http.StatusCreated, createView(b))
	}
}

func createView(b *domain.Business) createResponse {
	return createResponse{
		Slug:      b.Slug,
		EditToken: b.EditToken,
		Redirect:  intake.RedirectURL(b),
		EditURL:   intake.EditURL(b.Slug, b.EditToken),
	}
}
