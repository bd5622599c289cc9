// Package clientip derives a best-effort device identifier from request
// forwarding metadata. The headers are client-controlled and unverified,
// so the identifier is a rate-limiting heuristic, not an identity. A
// stronger fingerprint can replace FromRequest without touching callers.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Unknown is returned when no address can be derived at all.
const Unknown = "Unknown"

// trustedHeaders in decreasing order of preference.
var trustedHeaders = []string{
	"X-Forwarded-For",
	"X-Real-IP",
	"X-Client-IP",
	"CF-Connecting-IP",
}

// FromRequest resolves the device identifier for a request: the first
// X-Forwarded-For entry, then the other forwarding headers in order, then
// the transport peer address, then Unknown.
func FromRequest(r *http.Request) string {
	for _, header := range trustedHeaders {
		value := strings.TrimSpace(r.Header.Get(header))
		if value == "" {
			continue
		}
		if header == "X-Forwarded-For" {
			// First entry is the originating client.
			if first, _, found := strings.Cut(value, ","); found {
				value = strings.TrimSpace(first)
			}
		}
		if value != "" {
			return value
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}

	return Unknown
}
