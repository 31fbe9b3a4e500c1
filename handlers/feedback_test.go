// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/feedback-board/testutil"
)

func TestNewFeedback_Success(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewFeedbackHandler(conn, cfg, testutil.NewRenderer(t))
	testutil.CreateTestUser(t, conn, "alice", "secret1")

	form := url.Values{"title": {"Hi"}, "content": {"Hello"}}
	req := testutil.MakeFormRequest("POST", "/users/alice/feedback/new", form, testutil.SessionCookie(cfg, "alice"))
	req.SetPathValue("username", "alice")
	w := httptest.NewRecorder()
	wrap(cfg.SessionSecret, handler.New)(w, req)

	testutil.AssertRedirect(t, w, "/users/alice")

	var title, content, owner string
	err := conn.QueryRow(`SELECT title, content, username FROM feedback`).Scan(&title, &content, &owner)
	if err != nil {
		t.Fatalf("Expected a feedback row: %v", err)
	}
	if title != "Hi" || content != "Hello" || owner != "alice" {
		t.Errorf("Unexpected row: %q %q owned by %q", title, content, owner)
	}
}

func TestNewFeedback_Denied(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewFeedbackHandler(conn, cfg, testutil.NewRenderer(t))
	testutil.CreateTestUser(t, conn, "alice", "secret1")

	form := url.Values{"title": {"Hi"}, "content": {"Hello"}}

	tests := []struct {
		name   string
		cookie bool
		as     string
	}{
		{"anonymous", false, ""},
		{"other user", true, "bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.cookie {
				req = testutil.MakeFormRequest("POST", "/users/alice/feedback/new", form, testutil.SessionCookie(cfg, tt.as))
			} else {
				req = testutil.MakeFormRequest("POST", "/users/alice/feedback/new", form)
			}
			req.SetPathValue("username", "alice")
			w := httptest.NewRecorder()
			wrap(cfg.SessionSecret, handler.New)(w, req)

			testutil.AssertRedirect(t, w, "/unauthorized")

			if got := testutil.CountFeedback(t, conn, "alice"); got != 0 {
				t.Errorf("Expected no feedback row, got %d", got)
			}
		})
	}
}

func TestNewFeedback_ValidationFailure(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewFeedbackHandler(conn, cfg, testutil.NewRenderer(t))
	testutil.CreateTestUser(t, conn, "alice", "secret1")

	form := url.Values{"title": {""}, "content": {"Hello"}}
	req := testutil.MakeFormRequest("POST", "/users/alice/feedback/new", form, testutil.SessionCookie(cfg, "alice"))
	req.SetPathValue("username", "alice")
	w := httptest.NewRecorder()
	wrap(cfg.SessionSecret, handler.New)(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := testutil.CountFeedback(t, conn, "alice"); got != 0 {
		t.Errorf("Expected no feedback row after invalid submission, got %d", got)
	}
}

func TestUpdateFeedback(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewFeedbackHandler(conn, cfg, testutil.NewRenderer(t))
	testutil.CreateTestUser(t, conn, "alice", "secret1")
	id := testutil.CreateTestFeedback(t, conn, "alice", "Old Title", "Old content")

	// GET renders the form prefilled with the current values
	req := testutil.MakeFormRequest("GET", fmt.Sprintf("/feedback/%d/update", id), nil, testutil.SessionCookie(cfg, "alice"))
	req.SetPathValue("id", strconv.FormatInt(id, 10))
	w := httptest.NewRecorder()
	wrap(cfg.SessionSecret, handler.Update)(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Old Title") {
		t.Error("Expected edit form to be prefilled")
	}

	// POST updates title and content in place
	form := url.Values{"title": {"New Title"}, "content": {"New content"}}
	req = testutil.MakeFormRequest("POST", fmt.Sprintf("/feedback/%d/update", id), form, testutil.SessionCookie(cfg, "alice"))
	req.SetPathValue("id", strconv.FormatInt(id, 10))
	w = httptest.NewRecorder()
	wrap(cfg.SessionSecret, handler.Update)(w, req)

	testutil.AssertRedirect(t, w, "/users/alice")

	var title, content, owner string
	if err := conn.QueryRow(`SELECT title, content, username FROM feedback WHERE id = $1`, id).Scan(&title, &content, &owner); err != nil {
		t.Fatal(err)
	}
	if title != "New Title" || content != "New content" {
		t.Errorf("Expected updated row, got %q %q", title, content)
	}
	if owner != "alice" {
		t.Errorf("Owner must never be reassigned, got %q", owner)
	}
}

func TestUpdateFeedback_NotFoundBeforeOwnership(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewFeedbackHandler(conn, cfg, testutil.NewRenderer(t))

	// An absent id redirects to /not_found even for anonymous callers:
	// existence is checked before the ownership gate
	tests := []struct {
		name string
		id   string
	}{
		{"missing id", "9999"},
		{"malformed id", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeFormRequest("GET", "/feedback/"+tt.id+"/update", nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()
			wrap(cfg.SessionSecret, handler.Update)(w, req)

			testutil.AssertRedirect(t, w, "/not_found")
		})
	}
}

func TestUpdateFeedback_Denied(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewFeedbackHandler(conn, cfg, testutil.NewRenderer(t))
	testutil.CreateTestUser(t, conn, "alice", "secret1")
	id := testutil.CreateTestFeedback(t, conn, "alice", "Hi", "Hello")

	form := url.Values{"title": {"Hacked"}, "content": {"Hacked"}}
	req := testutil.MakeFormRequest("POST", fmt.Sprintf("/feedback/%d/update", id), form, testutil.SessionCookie(cfg, "bob"))
	req.SetPathValue("id", strconv.FormatInt(id, 10))
	w := httptest.NewRecorder()
	wrap(cfg.SessionSecret, handler.Update)(w, req)

	testutil.AssertRedirect(t, w, "/unauthorized")

	var title string
	if err := conn.QueryRow(`SELECT title FROM feedback WHERE id = $1`, id).Scan(&title); err != nil {
		t.Fatal(err)
	}
	if title != "Hi" {
		t.Errorf("Expected row unchanged, got title %q", title)
	}
}

func TestDeleteFeedback(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewFeedbackHandler(conn, cfg, testutil.NewRenderer(t))
	testutil.CreateTestUser(t, conn, "alice", "secret1")
	id := testutil.CreateTestFeedback(t, conn, "alice", "Hi", "Hello")

	req := testutil.MakeFormRequest("POST", fmt.Sprintf("/feedback/%d/delete", id), nil, testutil.SessionCookie(cfg, "alice"))
	req.SetPathValue("id", strconv.FormatInt(id, 10))
	w := httptest.NewRecorder()
	wrap(cfg.SessionSecret, handler.Delete)(w, req)

	testutil.AssertRedirect(t, w, "/users/alice")

	if got := testutil.CountFeedback(t, conn, "alice"); got != 0 {
		t.Errorf("Expected the row to be deleted, %d remain", got)
	}
}

func TestDeleteFeedback_OtherUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewFeedbackHandler(conn, cfg, testutil.NewRenderer(t))
	testutil.CreateTestUser(t, conn, "alice", "secret1")
	testutil.CreateTestUser(t, conn, "bob", "secret1")
	id := testutil.CreateTestFeedback(t, conn, "alice", "Hi", "Hello")

	req := testutil.MakeFormRequest("POST", fmt.Sprintf("/feedback/%d/delete", id), nil, testutil.SessionCookie(cfg, "bob"))
	req.SetPathValue("id", strconv.FormatInt(id, 10))
	w := httptest.NewRecorder()
	wrap(cfg.SessionSecret, handler.Delete)(w, req)

	testutil.AssertRedirect(t, w, "/unauthorized")

	if got := testutil.CountFeedback(t, conn, "alice"); got != 1 {
		t.Errorf("Expected the row to survive, got %d", got)
	}
}

func TestDeleteFeedback_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewFeedbackHandler(conn, cfg, testutil.NewRenderer(t))

	req := testutil.MakeFormRequest("POST", "/feedback/9999/delete", nil)
	req.SetPathValue("id", "9999")
	w := httptest.NewRecorder()
	wrap(cfg.SessionSecret, handler.Delete)(w, req)

	testutil.AssertRedirect(t, w, "/not_found")
}
