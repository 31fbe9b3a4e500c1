// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the feedback board server.

Feedback Board is a small server-rendered web application: users register,
authenticate with a signed session cookie, and post feedback records they
alone can view, edit, and delete.

# Starting the Server

The server reads environment variables (a .env file is honored) or CLI flags:

	SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 5000 -t sqlite -d feedback.db --session-secret ...

# Configuration

Required settings:

  - SESSION_SECRET (--session-secret): Secret for session cookie HMAC

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string, or sqlite path (default: feedback.db)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, feedback, error pages)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request logging, session-to-context
  - session: Signed session cookie read/write/clear
  - flash: One-time notices across redirects
  - forms: Typed form binding and validation
  - templates: Embedded html/template pages
  - models: Domain types
  - auth: Password hashing and HMAC token signing
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
