// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/feedback-board/session"
)

// userKey is the context key for the authenticated username.
type userKey struct{}

// WithLogging wraps a handler with request logging
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Log request
		slog.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		// Call the next handler
		next(w, r)

		// Log completion
		duration := time.Since(start)
		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// WithSession verifies the session cookie and, when valid, stores the
// authenticated username in the request context. Verification runs fresh on
// every request; nothing is cached across requests.
func WithSession(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if username, ok := session.Read(r, secret); ok {
			r = r.WithContext(context.WithValue(r.Context(), userKey{}, username))
		}
		next(w, r)
	}
}

// CurrentUser returns the authenticated username from the request context.
// The second return is false for anonymous requests.
func CurrentUser(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(userKey{}).(string)
	return username, ok
}
