// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// GenerateID creates a random UUIDv4 string for database records
func GenerateID() string {
	return uuid.NewString()
}

// VoterIdentity returns the identity votes are attributed to: the
// requester's network address. When trustProxy is set the first
// X-Forwarded-For entry, then X-Real-IP, take precedence over RemoteAddr.
//
// This is not a robust identity. Voters behind one NAT share an address
// and anyone who can choose their address can vote again.
func VoterIdentity(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if ip := ClientIPFromHeaders(r.Header); ip != "" {
			return ip
		}
	}
	return StripPort(r.RemoteAddr)
}

// ClientIPFromHeaders reads proxy headers.
// Checks X-Forwarded-For, then X-Real-IP
func ClientIPFromHeaders(h http.Header) string {
	// Check X-Forwarded-For (load balancers)
	if xff := h.Get("X-Forwarded-For"); xff != "" {
		// Take first IP in chain
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	// Check X-Real-IP (nginx)
	if xri := h.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	return ""
}

// StripPort removes a trailing port from host:port, including bracketed IPv6
func StripPort(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
