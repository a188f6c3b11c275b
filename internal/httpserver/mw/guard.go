package mw

import (
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/tapbook/internal/logger"
	"github.com/MrSnakeDoc/tapbook/internal/utils"
)

func passthrough(next http.Handler) http.Handler { return next }

func forbid(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
}

// AllowOnlyCIDRS keeps ops routes to the listed IPs and CIDRs. An empty list
// lets everything through. With trustProxy the client IP is read from proxy
// headers (cloudflared, nginx) instead of the socket.
func AllowOnlyCIDRS(allowed []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	m := utils.NewIPMatcher(allowed)
	if m.IsEmpty() {
		log.Debug("AllowOnlyCIDRS: no rules, passthrough")
		return passthrough
	}
	log.Debug("AllowOnlyCIDRS: active", logger.Int("rules", m.Len()), logger.Bool("trust_proxy", trustProxy))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ip := utils.ClientIP(r, trustProxy); !m.Allow(ip) {
				log.Warn("🚫 ops route: ip not allowed", logger.String("ip", ip), logger.String("path", r.URL.Path))
				forbid(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// EnforceHost keeps ops routes to the listed Host headers, compared without
// port and case-insensitively. "*.example.com" matches any subdomain but not
// example.com itself. An empty list lets everything through.
func EnforceHost(allowedHosts []string, log logger.Logger) func(http.Handler) http.Handler {
	if len(allowedHosts) == 0 {
		log.Debug("EnforceHost: no hosts, passthrough")
		return passthrough
	}

	var exact []string
	var suffixes []string
	for _, h := range allowedHosts {
		h = strings.ToLower(utils.ParseHostNoPort(h))
		if rest, ok := strings.CutPrefix(h, "*."); ok {
			suffixes = append(suffixes, "."+rest)
			continue
		}
		exact = append(exact, h)
	}
	log.Debug("EnforceHost: active", logger.Strings("hosts", exact), logger.Strings("suffixes", suffixes))

	allowed := func(host string) bool {
		for _, e := range exact {
			if host == e {
				return true
			}
		}
		for _, s := range suffixes {
			if strings.HasSuffix(host, s) {
				return true
			}
		}
		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allowed(strings.ToLower(utils.ParseHostNoPort(r.Host))) {
				log.Warn("🚫 ops route: host not allowed", logger.String("host", r.Host))
				forbid(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
