// Package utils resolves client addresses and matches them against
// allow-lists.
package utils

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// proxyHeaders are consulted in order when the proxy is trusted.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// ParseHostNoPort strips an optional port and IPv6 brackets:
// "1.2.3.4:80", "[::1]:80" and "host" all work.
func ParseHostNoPort(s string) string {
	if h, _, err := net.SplitHostPort(s); err == nil {
		return h
	}
	return strings.Trim(s, "[]")
}

// FirstForwardedFor returns the left-most entry of an X-Forwarded-For list.
func FirstForwardedFor(xff string) string {
	first, _, _ := strings.Cut(xff, ",")
	return strings.TrimSpace(first)
}

// ClientIP is the socket peer, or the first proxy header set when
// trustProxy is true.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, name := range proxyHeaders {
			v := r.Header.Get(name)
			if name == "X-Forwarded-For" {
				v = FirstForwardedFor(v)
			}
			if ip := ParseHostNoPort(strings.TrimSpace(v)); ip != "" {
				return ip
			}
		}
	}
	return ParseHostNoPort(r.RemoteAddr)
}

// IPMatcher holds exact addresses (as /32 or /128) and CIDR prefixes.
// Entries that parse as neither are dropped.
type IPMatcher struct {
	prefixes []netip.Prefix
}

func NewIPMatcher(list []string) *IPMatcher {
	m := &IPMatcher{}
	for _, raw := range list {
		s := strings.TrimSpace(raw)
		if p, err := netip.ParsePrefix(s); err == nil {
			m.prefixes = append(m.prefixes, p.Masked())
		} else if a, err := netip.ParseAddr(s); err == nil {
			a = a.Unmap()
			m.prefixes = append(m.prefixes, netip.PrefixFrom(a, a.BitLen()))
		}
	}
	return m
}

func (m *IPMatcher) IsEmpty() bool { return len(m.prefixes) == 0 }

func (m *IPMatcher) Len() int { return len(m.prefixes) }

// Allow reports whether ip falls in any entry. IPv4-mapped IPv6 addresses
// match their IPv4 form.
func (m *IPMatcher) Allow(ip string) bool {
	a, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	a = a.Unmap()
	for _, p := range m.prefixes {
		if p.Contains(a) {
			return true
		}
	}
	return false
}
