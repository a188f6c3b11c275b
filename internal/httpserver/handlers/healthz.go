package handlers

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
)

type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
}

type healthzResponse struct {
	Status   string    `json:"status"`
	Service  string    `json:"service"`
	Uptime   string    `json:"uptime"`
	Sessions int       `json:"open_sessions"`
	Build    buildInfo `json:"build"`
}

// Healthz is liveness only; it reads in-process state and never touches the store.
func Healthz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthzResponse{
			Status:  "ok",
			Service: "tapbook",
			Uptime:  d.Now().Sub(d.StartTime).Round(time.Second).String(),
			Build: buildInfo{
				Version:   d.Version,
				Commit:    d.Commit,
				BuildDate: d.BuildDate,
				GoVersion: d.GoVersion,
			},
		}
		if d.Sessions != nil {
			resp.Sessions = d.Sessions.Count()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
