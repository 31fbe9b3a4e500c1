// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/feedback-board/auth"
)

// CookieName is the canonical session cookie name.
const CookieName = "feedback_session"

// Read returns the authenticated username from the request's session cookie.
// A missing, malformed, or tampered cookie reads as anonymous.
func Read(r *http.Request, secret string) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(cookie.Value)
	if token == "" {
		return "", false
	}
	username, err := auth.DecodeToken(token, secret)
	if err != nil {
		return "", false
	}
	return username, true
}

// Write sets the session cookie for the given username.
func Write(w http.ResponseWriter, username, secret string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    auth.EncodeToken(username, secret),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie unconditionally.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
