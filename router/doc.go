// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the feedback board.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, tmpl)

# Endpoints

Health:

	GET /health

Account lifecycle (anonymous only; authenticated clients are redirected to
their own profile):

	GET,POST /register - Create account, set session
	GET,POST /login    - Authenticate, set session
	GET,POST /logout   - Clear session

Profile (session username must equal the path username):

	GET  /users/{username}        - Render profile with feedback list
	POST /users/{username}/delete - Delete account and its feedback

Feedback (owner only; update/delete check existence before ownership):

	GET,POST /users/{username}/feedback/new - Create feedback
	GET,POST /feedback/{id}/update          - Edit feedback
	POST     /feedback/{id}/delete          - Delete feedback

Error pages (targets of gate denials):

	GET /not_found
	GET /unauthorized

Root:

	GET / - Redirect to /register (exact match; unknown paths 404)

# Middleware

Every route is wrapped in request logging and session verification, so each
handler sees the authenticated username (if any) in its request context.
*/
package router
