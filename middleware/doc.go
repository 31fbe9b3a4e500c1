// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /login", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Session Context

WithSession turns the ambient session cookie into an explicit request-scoped
value:

	middleware.WithSession(cfg.SessionSecret, handler)

The cookie signature is verified on every request. When valid, the username
is stored in the request context and handlers read it back with:

	username, ok := middleware.CurrentUser(r.Context())

Anonymous requests (no cookie, or a tampered one) simply have no username in
context. There is no process-wide session state; the context value lives for
one request.
*/
package middleware
