package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
)

type reloadResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Reload asks the catalog reloader for an immediate pass. The trigger holds
// one pending request; a second one while it is queued gets 429.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := d.Logger.With(logger.String("remote_ip", r.RemoteAddr))

		select {
		case d.ReloadTrigger <- struct{}{}:
			log.Info("📚 catalog reload requested")
			writeJSON(w, http.StatusAccepted, reloadResponse{
				Status:  "triggered",
				Message: "✅ Catalog reload triggered",
			})
		default:
			log.Warn("catalog reload already pending")
			writeJSON(w, http.StatusTooManyRequests, reloadResponse{
				Status:  "pending",
				Message: "⏳ Reload already in progress, please wait",
			})
		}
	}
}
