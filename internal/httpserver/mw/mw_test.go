package mw

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/logger"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestRateLimit(t *testing.T) {
	c := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	h := RateLimit(RateLimitConfig{Burst: 2, RefillPerIPPerMin: 60, Now: c.Now})(ok)

	req := func(ip string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.RemoteAddr = ip + ":1234"
		return serve(h, r)
	}

	for i := range 2 {
		if rec := req("198.51.100.1"); rec.Code != http.StatusNoContent {
			t.Fatalf("request %d: status = %d, want 204", i, rec.Code)
		}
	}

	rec := req("198.51.100.1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "1" {
		t.Errorf("Retry-After = %q, want 1", rec.Header().Get("Retry-After"))
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Errorf("body = %q, want JSON error", rec.Body.String())
	}

	if rec := req("198.51.100.2"); rec.Code != http.StatusNoContent {
		t.Errorf("other IP status = %d, want 204", rec.Code)
	}

	c.Advance(time.Second)
	if rec := req("198.51.100.1"); rec.Code != http.StatusNoContent {
		t.Errorf("after refill status = %d, want 204", rec.Code)
	}
}

func TestEnforceHost(t *testing.T) {
	h := EnforceHost([]string{"ops.example.com", "*.internal.test"}, logger.NewNop())(ok)

	tests := []struct {
		host string
		want int
	}{
		{"ops.example.com", http.StatusNoContent},
		{"OPS.example.com:8080", http.StatusNoContent},
		{"a.internal.test", http.StatusNoContent},
		{"internal.test", http.StatusForbidden},
		{"evil.com", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/infra", nil)
			r.Host = tt.host
			if rec := serve(h, r); rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}

	pass := EnforceHost(nil, logger.NewNop())(ok)
	if rec := serve(pass, httptest.NewRequest(http.MethodGet, "/", nil)); rec.Code != http.StatusNoContent {
		t.Errorf("passthrough status = %d", rec.Code)
	}
}

func TestAllowOnlyCIDRS(t *testing.T) {
	h := AllowOnlyCIDRS([]string{"10.0.0.0/8"}, true, logger.NewNop())(ok)

	tests := []struct {
		name   string
		remote string
		xff    string
		want   int
	}{
		{"inside", "10.1.2.3:80", "", http.StatusNoContent},
		{"outside", "203.0.113.7:80", "", http.StatusForbidden},
		{"forwarded inside", "203.0.113.7:80", "10.9.9.9", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if rec := serve(h, r); rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://studio.example.com"})(ok)

	r := httptest.NewRequest(http.MethodOptions, "/api/businesses/x/session", nil)
	r.Header.Set("Origin", "https://studio.example.com")
	r.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := serve(h, r)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://studio.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	r.Header.Set("Origin", "https://evil.example.com")
	rec = serve(h, r)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("foreign origin got Allow-Origin = %q", got)
	}

	off := CORS(nil)(ok)
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Origin", "https://studio.example.com")
	if got := serve(off, r).Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disabled CORS set Allow-Origin = %q", got)
	}
}

func TestLogCapturesStatus(t *testing.T) {
	h := Log(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusTeapot)
	}))
	if rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil)); rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}

func TestRateLimitSweepsIdleBuckets(t *testing.T) {
	c := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := newLimiter(RateLimitConfig{Burst: 1, RefillPerIPPerMin: 1, IdleTTL: time.Minute, Now: c.Now})

	l.allow("a", c.Now())
	l.allow("b", c.Now())
	c.Advance(2 * time.Minute)
	l.allow("c", c.Now())

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.buckets) != 1 {
		t.Errorf("buckets = %d, want idle ones swept", len(l.buckets))
	}
}
