// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/feedback-board/auth"
	"github.com/danielhkuo/feedback-board/cliparse"
	"github.com/danielhkuo/feedback-board/db"
	"github.com/danielhkuo/feedback-board/flash"
	"github.com/danielhkuo/feedback-board/forms"
	"github.com/danielhkuo/feedback-board/middleware"
	"github.com/danielhkuo/feedback-board/models"
	"github.com/danielhkuo/feedback-board/session"
	"github.com/danielhkuo/feedback-board/templates"
)

type UserHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	tmpl *templates.Renderer
}

func NewUserHandler(conn *sql.DB, cfg cliparse.Config, tmpl *templates.Renderer) *UserHandler {
	return &UserHandler{db: conn, cfg: cfg, tmpl: tmpl}
}

// Register handles GET and POST /register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	// No re-registration while a session is active
	if username, ok := middleware.CurrentUser(r.Context()); ok {
		http.Redirect(w, r, "/users/"+username, http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		render(w, h.tmpl, "register.html", templates.RegisterPage{
			Page: page(w, r, "Register"),
		})
		return
	}

	form := forms.ParseRegister(r)
	errs := form.Validate()
	if len(errs) > 0 {
		render(w, h.tmpl, "register.html", templates.RegisterPage{
			Page:   page(w, r, "Register"),
			Form:   form,
			Errors: errs,
		})
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// The primary key serializes concurrent registrations of the same
	// username; a pre-check could not
	_, err = h.db.Exec(`
		INSERT INTO users (username, password_hash, email, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
	`, form.Username, hash, form.Email, form.FirstName, form.LastName)

	if db.IsUniqueViolation(err) {
		errs.Add("username", "Username taken. Please pick another.")
		render(w, h.tmpl, "register.html", templates.RegisterPage{
			Page:   page(w, r, "Register"),
			Form:   form,
			Errors: errs,
		})
		return
	}
	if err != nil {
		slog.Error("failed to insert user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("user registered", "username", form.Username)

	session.Write(w, form.Username, h.cfg.SessionSecret)
	flash.Write(w, "Welcome! Your account has been created.")
	http.Redirect(w, r, "/users/"+form.Username, http.StatusFound)
}

// Login handles GET and POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	// No re-authentication while a session is active
	if username, ok := middleware.CurrentUser(r.Context()); ok {
		http.Redirect(w, r, "/users/"+username, http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		render(w, h.tmpl, "login.html", templates.LoginPage{
			Page: page(w, r, "Log In"),
		})
		return
	}

	form := forms.ParseLogin(r)
	errs := form.Validate()
	if len(errs) > 0 {
		render(w, h.tmpl, "login.html", templates.LoginPage{
			Page:   page(w, r, "Log In"),
			Form:   form,
			Errors: errs,
		})
		return
	}

	var hash, firstName string
	err := h.db.QueryRow(`
		SELECT password_hash, first_name FROM users WHERE username = $1
	`, form.Username).Scan(&hash, &firstName)

	if err != nil && err != sql.ErrNoRows {
		slog.Error("failed to query user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Unknown username and wrong password are reported identically
	if err == sql.ErrNoRows || !auth.CheckPassword(hash, form.Password) {
		errs.Add("username", "Invalid username or password.")
		render(w, h.tmpl, "login.html", templates.LoginPage{
			Page:   page(w, r, "Log In"),
			Form:   form,
			Errors: errs,
		})
		return
	}

	slog.Info("user logged in", "username", form.Username)

	session.Write(w, form.Username, h.cfg.SessionSecret)
	flash.Write(w, "Welcome back "+firstName+"!")
	http.Redirect(w, r, "/users/"+form.Username, http.StatusFound)
}

// Logout handles GET and POST /logout
// Clearing is unconditional: logging out an anonymous client is a no-op
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session.Clear(w)
	flash.Write(w, "Successfully logged out.")
	http.Redirect(w, r, "/login", http.StatusFound)
}

// Show handles GET /users/{username}
func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if !authorized(r, username) {
		http.Redirect(w, r, "/unauthorized", http.StatusFound)
		return
	}

	var user models.User
	err := h.db.QueryRow(`
		SELECT username, email, first_name, last_name
		FROM users
		WHERE username = $1
	`, username).Scan(&user.Username, &user.Email, &user.FirstName, &user.LastName)

	if err == sql.ErrNoRows {
		http.Redirect(w, r, "/not_found", http.StatusFound)
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	rows, err := h.db.Query(`
		SELECT id, title, content, username
		FROM feedback
		WHERE username = $1
		ORDER BY id
	`, username)
	if err != nil {
		slog.Error("failed to query feedback", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	feedback := []models.Feedback{}
	for rows.Next() {
		var fb models.Feedback
		if err := rows.Scan(&fb.ID, &fb.Title, &fb.Content, &fb.Username); err != nil {
			slog.Error("failed to scan feedback", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		feedback = append(feedback, fb)
	}

	render(w, h.tmpl, "show.html", templates.ProfilePage{
		Page:     page(w, r, user.Username),
		User:     user,
		Feedback: feedback,
	})
}

// Delete handles POST /users/{username}/delete
// Removes the user's feedback rows and the user row in one transaction
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if !authorized(r, username) {
		http.Redirect(w, r, "/unauthorized", http.StatusFound)
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM feedback WHERE username = $1`, username); err != nil {
		slog.Error("failed to delete user's feedback", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if _, err := tx.Exec(`DELETE FROM users WHERE username = $1`, username); err != nil {
		slog.Error("failed to delete user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("user deleted", "username", username)

	session.Clear(w)
	flash.Write(w, "Successfully deleted account.")
	http.Redirect(w, r, "/login", http.StatusFound)
}
