package xhttp

import (
	"net"
	"net/http"
	"strings"
)

// GetRequestIP returns the client IP, preferring the first hop of
// X-Forwarded-For when present.
func GetRequestIP(r *http.Request) string {
	if forwarded := r.Header.Get(XForwardedFor); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
