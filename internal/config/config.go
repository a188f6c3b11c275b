package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreRedis  = "redis"
	StoreMemory = "memory"

	MinAutosaveDelay = 2 * time.Second
	MaxAutosaveDelay = 3 * time.Second
)

// EnvFiles are loaded in order before reading the environment. Variables
// already set win over file values.
var EnvFiles = []string{".env.local", ".env"}

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	BaseURL         string        // public origin used in share links, ex: https://tap.example.com

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	StoreDriver string // "redis" | "memory"

	// Editing
	AutosaveDelay       time.Duration // debounce before an edit session saves (2s..3s)
	SessionIdleTTL      time.Duration // idle edit sessions are saved and dropped after this
	SessionReapInterval time.Duration

	// Catalog
	CatalogFile           string        // starter catalog yaml, empty = builtin
	CatalogReloadInterval time.Duration // 0 disables periodic reload

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	AllowedHosts []string // optional, restrict ops routes to specific Host headers
	AllowedCIDRS []string // optional, restrict ops routes to specific IPs (e.g. "10.0.0.0/8, 1.2.3.4")
	CORSOrigins  []string // optional, origins allowed to call the JSON API
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	RateLimitBurst  int // create requests allowed in a burst per IP
	RateLimitPerMin int // sustained create requests per IP per minute
}

// LoadEnvFiles reads the first existing env files into the process
// environment without overriding it.
func LoadEnvFiles(files ...string) []string {
	var loaded []string
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			panic(fmt.Sprintf("❌ FATAL: Cannot parse env file %s: %v", f, err))
		}
		loaded = append(loaded, f)
	}
	return loaded
}

func Load() *Config {
	LoadEnvFiles(EnvFiles...)

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("TAPBOOK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("TAPBOOK_SHUTDOWN_TIMEOUT", 5*time.Second),
		BaseURL:         strings.TrimRight(getenv("TAPBOOK_BASE_URL", ""), "/"),

		// Logging
		LogLevel:  getenv("TAPBOOK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("TAPBOOK_PRETTY_LOG", true),

		StoreDriver: strings.ToLower(getenv("TAPBOOK_STORE_DRIVER", StoreRedis)),

		// Editing
		AutosaveDelay:       clampDuration(mustDuration("TAPBOOK_AUTOSAVE_DELAY", 2500*time.Millisecond), MinAutosaveDelay, MaxAutosaveDelay),
		SessionIdleTTL:      mustDuration("TAPBOOK_SESSION_IDLE_TTL", 30*time.Minute),
		SessionReapInterval: mustDuration("TAPBOOK_SESSION_REAP_INTERVAL", 5*time.Minute),

		// Catalog
		CatalogFile:           getenv("TAPBOOK_CATALOG_FILE", ""),
		CatalogReloadInterval: mustDuration("TAPBOOK_CATALOG_RELOAD_INTERVAL", time.Hour),

		// Redis settings
		RedisUser:           getenv("TAPBOOK_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("TAPBOOK_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("TAPBOOK_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("TAPBOOK_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("TAPBOOK_ALLOWED_CIDRS", "")),
		CORSOrigins:  splitAndTrim(getenv("TAPBOOK_CORS_ORIGINS", "")),
		TrustProxy:   mustBool("TAPBOOK_TRUST_PROXY", true),

		RateLimitBurst:  getenvInt("TAPBOOK_RATE_LIMIT_BURST", 10),
		RateLimitPerMin: getenvInt("TAPBOOK_RATE_LIMIT_PER_MIN", 20),
	}

	switch cfg.StoreDriver {
	case StoreRedis:
		cfg.RedisAddr = requireEnv("TAPBOOK_REDIS_ADDR")
	case StoreMemory:
	default:
		panic(fmt.Sprintf("❌ FATAL: Unknown TAPBOOK_STORE_DRIVER %q (want redis or memory)", cfg.StoreDriver))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	if c.RedisPassword != "" {
		c.RedisPassword = "***REDACTED***"
	}
	if c.RedisUser != "" {
		c.RedisUser = "***REDACTED***"
	}
	return c
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	return min(max(d, lo), hi)
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
