// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/feedback-board/auth"
	"github.com/danielhkuo/feedback-board/cliparse"
	"github.com/danielhkuo/feedback-board/db"
	"github.com/danielhkuo/feedback-board/session"
	"github.com/danielhkuo/feedback-board/templates"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Each pool connection gets its own :memory: database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		SessionSecret: "test-session-secret",
	}
}

// NewRenderer parses the embedded page templates
func NewRenderer(t *testing.T) *templates.Renderer {
	t.Helper()

	tmpl, err := templates.New()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return tmpl
}

// CreateTestUser inserts a user with a real bcrypt hash of password
func CreateTestUser(t *testing.T, conn *sql.DB, username, password string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO users (username, password_hash, email, first_name, last_name)
		VALUES ($1, $2, $3, 'Test', 'User')
	`, username, hash, username+"@example.com")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CreateTestFeedback inserts a feedback row and returns its id
func CreateTestFeedback(t *testing.T, conn *sql.DB, username, title, content string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO feedback (title, content, username)
		VALUES ($1, $2, $3)
		RETURNING id
	`, title, content, username).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test feedback: %v", err)
	}

	return id
}

// CountFeedback returns the number of feedback rows owned by username
func CountFeedback(t *testing.T, conn *sql.DB, username string) int {
	t.Helper()

	var count int
	err := conn.QueryRow(`SELECT COUNT(*) FROM feedback WHERE username = $1`, username).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count feedback: %v", err)
	}
	return count
}

// UserExists reports whether a user row exists
func UserExists(t *testing.T, conn *sql.DB, username string) bool {
	t.Helper()

	var count int
	err := conn.QueryRow(`SELECT COUNT(*) FROM users WHERE username = $1`, username).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	return count > 0
}

// SessionCookie builds a valid signed session cookie for username
func SessionCookie(cfg cliparse.Config, username string) *http.Cookie {
	return &http.Cookie{
		Name:  session.CookieName,
		Value: auth.EncodeToken(username, cfg.SessionSecret),
	}
}

// MakeFormRequest creates an HTTP test request with a form-encoded body
func MakeFormRequest(method, path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 302 redirect to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Errorf("Expected status %d, got %d. Body: %s", http.StatusFound, w.Code, w.Body.String())
		return
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %s, got %s", location, got)
	}
}
