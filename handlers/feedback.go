// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/feedback-board/cliparse"
	"github.com/danielhkuo/feedback-board/forms"
	"github.com/danielhkuo/feedback-board/models"
	"github.com/danielhkuo/feedback-board/templates"
)

type FeedbackHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	tmpl *templates.Renderer
}

func NewFeedbackHandler(conn *sql.DB, cfg cliparse.Config, tmpl *templates.Renderer) *FeedbackHandler {
	return &FeedbackHandler{db: conn, cfg: cfg, tmpl: tmpl}
}

// New handles GET and POST /users/{username}/feedback/new
func (h *FeedbackHandler) New(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if !authorized(r, username) {
		http.Redirect(w, r, "/unauthorized", http.StatusFound)
		return
	}

	action := "/users/" + username + "/feedback/new"

	if r.Method == http.MethodGet {
		render(w, h.tmpl, "feedback_new.html", templates.FeedbackPage{
			Page:   page(w, r, "Add Feedback"),
			Action: action,
		})
		return
	}

	form := forms.ParseFeedback(r)
	errs := form.Validate()
	if len(errs) > 0 {
		render(w, h.tmpl, "feedback_new.html", templates.FeedbackPage{
			Page:   page(w, r, "Add Feedback"),
			Form:   form,
			Errors: errs,
			Action: action,
		})
		return
	}

	var id int64
	err := h.db.QueryRow(`
		INSERT INTO feedback (title, content, username)
		VALUES ($1, $2, $3)
		RETURNING id
	`, form.Title, form.Content, username).Scan(&id)

	if err != nil {
		slog.Error("failed to insert feedback", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("feedback created", "feedback_id", id, "username", username)

	http.Redirect(w, r, "/users/"+username, http.StatusFound)
}

// Update handles GET and POST /feedback/{id}/update
func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	fb, ok := h.load(w, r)
	if !ok {
		return
	}

	action := fmt.Sprintf("/feedback/%d/update", fb.ID)

	if r.Method == http.MethodGet {
		render(w, h.tmpl, "feedback_edit.html", templates.FeedbackPage{
			Page:   page(w, r, "Edit Feedback"),
			Form:   forms.FeedbackForm{Title: fb.Title, Content: fb.Content},
			Action: action,
		})
		return
	}

	form := forms.ParseFeedback(r)
	errs := form.Validate()
	if len(errs) > 0 {
		render(w, h.tmpl, "feedback_edit.html", templates.FeedbackPage{
			Page:   page(w, r, "Edit Feedback"),
			Form:   form,
			Errors: errs,
			Action: action,
		})
		return
	}

	// Title and content only; the owner column is never reassigned
	_, err := h.db.Exec(`
		UPDATE feedback SET title = $1, content = $2 WHERE id = $3
	`, form.Title, form.Content, fb.ID)

	if err != nil {
		slog.Error("failed to update feedback", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("feedback updated", "feedback_id", fb.ID, "username", fb.Username)

	http.Redirect(w, r, "/users/"+fb.Username, http.StatusFound)
}

// Delete handles POST /feedback/{id}/delete
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	fb, ok := h.load(w, r)
	if !ok {
		return
	}

	if _, err := h.db.Exec(`DELETE FROM feedback WHERE id = $1`, fb.ID); err != nil {
		slog.Error("failed to delete feedback", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("feedback deleted", "feedback_id", fb.ID, "username", fb.Username)

	http.Redirect(w, r, "/users/"+fb.Username, http.StatusFound)
}

// load fetches the feedback row named by the {id} path value and applies the
// ownership gate. Existence is checked before ownership, so probing an absent
// id redirects to /not_found even for anonymous callers; this matches the
// historical behavior and is kept deliberately.
// When load returns false it has already written the redirect.
func (h *FeedbackHandler) load(w http.ResponseWriter, r *http.Request) (models.Feedback, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/not_found", http.StatusFound)
		return models.Feedback{}, false
	}

	var fb models.Feedback
	err = h.db.QueryRow(`
		SELECT id, title, content, username FROM feedback WHERE id = $1
	`, id).Scan(&fb.ID, &fb.Title, &fb.Content, &fb.Username)

	if err == sql.ErrNoRows {
		http.Redirect(w, r, "/not_found", http.StatusFound)
		return models.Feedback{}, false
	}
	if err != nil {
		slog.Error("failed to query feedback", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return models.Feedback{}, false
	}

	if !authorized(r, fb.Username) {
		http.Redirect(w, r, "/unauthorized", http.StatusFound)
		return models.Feedback{}, false
	}

	return fb, true
}
