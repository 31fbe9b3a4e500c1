// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/feedback-board/cliparse"
	"github.com/danielhkuo/feedback-board/handlers"
	"github.com/danielhkuo/feedback-board/middleware"
	"github.com/danielhkuo/feedback-board/templates"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, tmpl *templates.Renderer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg, tmpl)
	feedbackHandler := handlers.NewFeedbackHandler(db, cfg, tmpl)
	errorHandler := handlers.NewErrorHandler(tmpl)

	// Every route gets logging and fresh session verification
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithSession(cfg.SessionSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Account lifecycle
	mux.HandleFunc("GET /register", wrap(userHandler.Register))
	mux.HandleFunc("POST /register", wrap(userHandler.Register))
	mux.HandleFunc("GET /login", wrap(userHandler.Login))
	mux.HandleFunc("POST /login", wrap(userHandler.Login))
	mux.HandleFunc("GET /logout", wrap(userHandler.Logout))
	mux.HandleFunc("POST /logout", wrap(userHandler.Logout))

	// Profile (owner only)
	mux.HandleFunc("GET /users/{username}", wrap(userHandler.Show))
	mux.HandleFunc("POST /users/{username}/delete", wrap(userHandler.Delete))

	// Feedback (owner only)
	mux.HandleFunc("GET /users/{username}/feedback/new", wrap(feedbackHandler.New))
	mux.HandleFunc("POST /users/{username}/feedback/new", wrap(feedbackHandler.New))
	mux.HandleFunc("GET /feedback/{id}/update", wrap(feedbackHandler.Update))
	mux.HandleFunc("POST /feedback/{id}/update", wrap(feedbackHandler.Update))
	mux.HandleFunc("POST /feedback/{id}/delete", wrap(feedbackHandler.Delete))

	// Error pages (redirect targets)
	mux.HandleFunc("GET /not_found", wrap(errorHandler.NotFound))
	mux.HandleFunc("GET /unauthorized", wrap(errorHandler.Unauthorized))

	// Root endpoint: exact match only, everything else falls through to 404
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/register", http.StatusFound)
	})

	return mux
}
