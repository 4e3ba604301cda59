// Package clientip resolves the visitor's IP address behind the proxies the
// site runs behind: CloudFront, API Gateway and ordinary reverse proxies.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest returns the client IP for r, or "" when none can be parsed.
// Headers are checked in order:
//  1. CloudFront-Viewer-Address (CloudFront, "ip:port")
//  2. X-Forwarded-For (first valid entry)
//  3. X-Real-IP
//  4. RemoteAddr
func FromRequest(r *http.Request) string {
	if v := r.Header.Get("CloudFront-Viewer-Address"); v != "" {
		if ip := parseIP(stripPort(v)); ip != "" {
			return ip
		}
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for part := range strings.SplitSeq(forwarded, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	return parseIP(stripPort(r.RemoteAddr))
}

// stripPort removes a trailing port from host:port or [v6]:port.
func stripPort(s string) string {
	if host, _, err := net.SplitHostPort(s); err == nil {
		return host
	}
	// CloudFront writes IPv6 viewer addresses unbracketed, e.g. "2001:db8::1:46532".
	// A port that also parses as a hextet is left in place.
	if i := strings.LastIndexByte(s, ':'); i > 0 && strings.Count(s, ":") > 1 {
		if net.ParseIP(s) == nil {
			return s[:i]
		}
	}
	return s
}

// parseIP validates and normalizes an IP address string.
func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
