package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Error string `json:"error,omitempty"`
}

// Readyz reports ready once the store answers a ping and the catalog is loaded.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := readyzResponse{Ready: true}
		switch {
		case d.Store.Ping(ctx) != nil:
			resp = readyzResponse{Error: "store unreachable"}
		case d.Catalog.Count() == 0:
			resp = readyzResponse{Error: "catalog not loaded"}
		}

		if !resp.Ready {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
