package deps

import (
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/catalog"
	"github.com/MrSnakeDoc/tapbook/internal/editor"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/views"
	"github.com/MrSnakeDoc/tapbook/internal/intake"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
	"github.com/MrSnakeDoc/tapbook/internal/store"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time   // for testing, defaults to time.Now
	AllowedHosts  []string           // Host headers allowed to access ops endpoints
	AllowedCIDRS  []string           // IPs allowed to access healthz/readyz/infra/reload
	TrustProxy    bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	BaseURL       string             // public origin for share links, empty = request host
	StoreDriver   string             // "redis" | "memory", reported by /infra
	Store         store.Businesses   // business records
	Intake        *intake.Service    // business creation
	Sessions      *editor.Manager    // live edit sessions
	Catalog       *catalog.Registry  // wizard starters
	Views         *views.Renderer    // HTML pages
	ReloadTrigger chan struct{}      // Channel to trigger manual catalog reload
	RateLimit     RateLimit          // limits for create endpoints
}

// RateLimit sizes the per-IP token bucket on create endpoints.
type RateLimit struct {
	Burst  int
	PerMin int
}

func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
