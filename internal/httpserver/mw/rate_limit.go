package mw

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/utils"
)

// RateLimitConfig drives a per-IP token bucket. Burst requests are allowed at
// once, then RefillPerIPPerMin tokens come back every minute.
type RateLimitConfig struct {
	Burst             int
	RefillPerIPPerMin int
	MaxEntries        int           // sweep early once this many IPs are tracked
	SweepInterval     time.Duration // default 1m
	IdleTTL           time.Duration // buckets unseen this long are dropped, default 15m
	TrustProxy        bool          // resolve IP from proxy headers when true
	Now               func() time.Time
}

func (c RateLimitConfig) withDefaults() RateLimitConfig {
	c.Burst = max(c.Burst, 1)
	c.RefillPerIPPerMin = max(c.RefillPerIPPerMin, 1)
	if c.SweepInterval <= 0 {
		c.SweepInterval = time.Minute
	}
	if c.IdleTTL <= 0 {
		c.IdleTTL = 15 * time.Minute
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

type bucket struct {
	tokens float64
	at     time.Time // last refill, also last use
}

// take refills for the time elapsed since the last call and spends one token.
// It returns the tokens left, or how long until one is available.
func (b *bucket) take(now time.Time, perSec, capacity float64) (left float64, wait time.Duration, ok bool) {
	if dt := now.Sub(b.at).Seconds(); dt > 0 {
		b.tokens = math.Min(capacity, b.tokens+dt*perSec)
	}
	b.at = now

	if b.tokens < 1 {
		return b.tokens, time.Duration((1 - b.tokens) / perSec * float64(time.Second)), false
	}
	b.tokens--
	return b.tokens, 0, true
}

type limiter struct {
	cfg       RateLimitConfig
	perSec    float64
	capacity  float64
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newLimiter(cfg RateLimitConfig) *limiter {
	cfg = cfg.withDefaults()
	return &limiter{
		cfg:       cfg,
		perSec:    float64(cfg.RefillPerIPPerMin) / 60,
		capacity:  float64(cfg.Burst),
		buckets:   make(map[string]*bucket),
		lastSweep: cfg.Now(),
	}
}

func (l *limiter) allow(key string, now time.Time) (remaining int, retryAfter int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	full := l.cfg.MaxEntries > 0 && len(l.buckets) >= l.cfg.MaxEntries
	if full || now.Sub(l.lastSweep) >= l.cfg.SweepInterval {
		l.sweep(now)
	}

	b, found := l.buckets[key]
	if !found {
		b = &bucket{tokens: l.capacity, at: now}
		l.buckets[key] = b
	}

	left, wait, ok := b.take(now, l.perSec, l.capacity)
	if !ok {
		return 0, max(int(math.Ceil(wait.Seconds())), 1), false
	}
	return int(left), 0, true
}

func (l *limiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.at) > l.cfg.IdleTTL {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// RateLimit rejects callers that ran out of tokens with a JSON 429 and a
// Retry-After header.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	l := newLimiter(cfg)
	limit := strconv.Itoa(l.cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			remaining, retry, ok := l.allow(utils.ClientIP(r, l.cfg.TrustProxy), l.cfg.Now())

			h := w.Header()
			h.Set("X-RateLimit-Limit", limit)
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				h.Set("Retry-After", strconv.Itoa(retry))
				h.Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"too many requests, slow down"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
