// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the feedback board.

# Handler Types

Each handler is a struct with database, config, and renderer dependencies:

  - UserHandler: registration, login, logout, profile, account deletion
  - FeedbackHandler: feedback create, update, delete
  - ErrorHandler: the fixed /not_found and /unauthorized pages

Handlers are created via constructor functions:

	userHandler := handlers.NewUserHandler(db, cfg, tmpl)

# Authorization Gate

Every privacy-sensitive or mutating route passes through the same predicate:
the request is permitted iff the session carries a username equal to the
resource's owning username. Denial redirects to /unauthorized before any
database access for the profile routes.

Feedback update and delete check existence first and ownership second, so an
absent id redirects to /not_found for any caller. This ordering lets anyone
distinguish "does not exist" from "exists but isn't mine"; feedback ids carry
no sensitive information, so the simpler ordering is kept on purpose.

# Session Transitions

	anonymous ── register, login ──▶ authenticated
	authenticated ── logout, account delete ──▶ anonymous

Register and login redirect already-authenticated clients to their own
profile. Logout clears the cookie unconditionally.

# Account Deletion

Deleting an account removes the user's feedback rows and the user row inside
one transaction, then clears the session and redirects to /login.

# Responses

Success paths redirect with 302 Found; validation failures re-render the
submitted form with inline errors and status 200. One-time flash messages
ride a cookie across redirects (package flash).
*/
package handlers
