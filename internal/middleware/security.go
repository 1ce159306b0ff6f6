// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"
)

// SecureHeaders adds security-related HTTP headers to every response.
//
// The grid page is meant to open inside other apps' web views, so framing
// is controlled with a CSP frame-ancestors list instead of a blanket
// X-Frame-Options. With no ancestors only same-origin framing is allowed.
func SecureHeaders(frameAncestors []string) func(http.Handler) http.Handler {
	ancestors := "'self'"
	for _, origin := range frameAncestors {
		origin = strings.TrimSpace(origin)
		if origin == "" || origin == "'self'" {
			continue
		}
		ancestors += " " + origin
	}
	csp := "frame-ancestors " + ancestors

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()

			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Content-Security-Policy", csp)
			if len(frameAncestors) == 0 {
				h.Set("X-Frame-Options", "SAMEORIGIN")
			}

			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "interest-cohort=()")

			next.ServeHTTP(w, r)
		})
	}
}
