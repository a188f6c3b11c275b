package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
)

type componentStatus struct {
	OK         bool   `json:"ok"`
	Count      *int   `json:"count,omitempty"`
	LastReload string `json:"last_reload,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Impact     string `json:"impact,omitempty"`
	Error      string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		starters := d.Catalog.Count()
		lastReload := d.Catalog.LastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = humanize.Time(lastReload)
		}
		sessions := d.Sessions.Count()

		components := map[string]componentStatus{
			"catalog": {
				OK:         starters > 0,
				Count:      &starters,
				LastReload: lastReloadStr,
			},
			"store": checkStore(r.Context(), d),
			"sessions": {
				OK:    true,
				Count: &sessions,
				Mode:  "debounced-autosave",
			},
		}

		response := infraResponse{
			Mode:       determineMode(components),
			Components: components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func determineMode(components map[string]componentStatus) string {
	// No store = nothing can be read or saved
	if store, exists := components["store"]; exists && !store.OK {
		return "critical"
	}

	// Missing catalog only affects the wizard
	if cat, exists := components["catalog"]; exists && !cat.OK {
		return "degraded"
	}

	return "operational"
}

func checkStore(ctx context.Context, d deps.Deps) componentStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   d.StoreDriver,
			Impact: "pages-and-saves-unavailable",
			Error:  err.Error(),
		}
	}

	st := componentStatus{OK: true, Mode: d.StoreDriver}
	if n, err := d.Store.Count(ctx); err == nil {
		st.Count = &n
	}
	return st
}
