package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/editor"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/views"
	"github.com/MrSnakeDoc/tapbook/internal/intake"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
	"github.com/MrSnakeDoc/tapbook/internal/style"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string                   `json:"error"`
	Fields domain.ValidationErrors `json:"fields,omitempty"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	if _, ok := domain.AsValidation(err); ok {
		return http.StatusUnprocessableEntity
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTokenRequired):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrStaleVersion), errors.Is(err, domain.ErrSlugTaken):
		return http.StatusConflict
	case errors.Is(err, editor.ErrSessionClosed):
		return http.StatusGone
	case errors.Is(err, editor.ErrUnknownOp), errors.Is(err, editor.ErrMissingArg), errors.Is(err, editor.ErrNoLink),
		errors.Is(err, style.ErrUnknownPreset), errors.Is(err, style.ErrUnknownPattern), errors.Is(err, style.ErrLastShadowLayer),
		errors.Is(err, style.ErrShadowLayerNotFound), errors.Is(err, intake.ErrUnknownStep), errors.Is(err, intake.ErrFirstStep),
		errors.Is(err, intake.ErrLastStep), errors.Is(err, intake.ErrNotFinished):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers a JSON API call. Server errors are logged and their
// detail withheld.
func writeError(w http.ResponseWriter, r *http.Request, d deps.Deps, err error) {
	status := statusFor(err)
	resp := errorResponse{Error: err.Error()}
	if ve, ok := domain.AsValidation(err); ok {
		resp.Error = "validation failed"
		resp.Fields = ve
	}
	if status == http.StatusInternalServerError {
		d.Logger.Error("request failed",
			logger.String("path", r.URL.Path),
			logger.Error(err))
		resp.Error = http.StatusText(status)
	}
	writeJSON(w, status, resp)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.ValidationErrors{domain.NewValidationError("", "invalid JSON body: "+err.Error())}
	}
	return nil
}

// render writes an HTML page, falling back to a plain error when the
// template itself fails.
func render(w http.ResponseWriter, d deps.Deps, status int, page string, data any) {
	if err := d.Views.Render(w, status, page, data); err != nil {
		d.Logger.Error("template render failed", logger.String("page", page), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderFailure shows the blocking page for err.
func renderFailure(w http.ResponseWriter, r *http.Request, d deps.Deps, err error) {
	switch status := statusFor(err); status {
	case http.StatusNotFound:
		render(w, d, status, views.PageNotFound, views.MessageData{
			Title:   "Business Not Found",
			Message: "The business you're looking for doesn't exist.",
		})
	case http.StatusUnauthorized, http.StatusForbidden:
		render(w, d, http.StatusForbidden, views.PageDenied, views.MessageData{
			Title:   "Access Denied",
			Message: "Invalid edit token or business not found",
		})
	default:
		d.Logger.Error("page failed", logger.String("path", r.URL.Path), logger.Error(err))
		render(w, d, http.StatusInternalServerError, views.PageError, views.MessageData{
			Title:   "Something went wrong",
			Message: "Failed to load business. Please try again.",
		})
	}
}
