// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/feedback-board/templates"
)

// ErrorHandler serves the fixed error pages that gated routes redirect to.
type ErrorHandler struct {
	tmpl *templates.Renderer
}

func NewErrorHandler(tmpl *templates.Renderer) *ErrorHandler {
	return &ErrorHandler{tmpl: tmpl}
}

// NotFound handles GET /not_found
func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	render(w, h.tmpl, "not_found.html", page(w, r, "Not Found"))
}

// Unauthorized handles GET /unauthorized
func (h *ErrorHandler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	render(w, h.tmpl, "unauthorized.html", page(w, r, "Unauthorized"))
}
