// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/feedback-board/flash"
	"github.com/danielhkuo/feedback-board/middleware"
	"github.com/danielhkuo/feedback-board/templates"
)

// authorized is the ownership gate: a request may act on a resource iff a
// username is present in the session AND it equals the owning username.
// Evaluated fresh on every request, before any database access.
func authorized(r *http.Request, owner string) bool {
	username, ok := middleware.CurrentUser(r.Context())
	return ok && username == owner
}

// page builds the shared page data, consuming any pending flash message.
func page(w http.ResponseWriter, r *http.Request, title string) templates.Page {
	msg, _ := flash.ReadAndClear(w, r)
	return templates.Page{Title: title, Flash: msg}
}

// render executes a page template, logging failures.
func render(w http.ResponseWriter, tmpl *templates.Renderer, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Render(w, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}
