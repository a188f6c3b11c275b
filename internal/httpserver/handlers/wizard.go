package handlers

import (
	"fmt"
	"net/http"

	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/intake"
)

type wizardRequest struct {
	Action string         `json:"action"` // start | next | back | finish
	Wizard *intake.Wizard `json:"wizard,omitempty"`
}

type wizardResponse struct {
	Wizard   intake.Wizard   `json:"wizard"`
	Business *createResponse `json:"business,omitempty"`
}

// Wizard moves the create wizard one transition. The client holds the
// state between calls.
func Wizard(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req wizardRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, d, err)
			return
		}

		state := intake.NewWizard()
		if req.Wizard != nil {
			state = *req.Wizard
		}

		var err error
		switch req.Action {
		case "start", "":
			state = intake.NewWizard()
		case "next":
			state, err = state.Next(d.Catalog)
		case "back":
			state, err = state.Back()
		case "finish":
			b, ferr := d.Intake.CreateFromWizard(r.Context(), state, d.Catalog)
			if ferr != nil {
				writeError(w, r, d, ferr)
				return
			}
			view := createView(b)
			writeJSON(w, http.StatusCreated, wizardResponse{Wizard: state, Business: &view})
			return
		default:
			err = fmt.Errorf("%w: action %q", intake.ErrUnknownStep, req.Action)
		}
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, wizardResponse{Wizard: state})
	}
}
