// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flash

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// CookieName is the cookie used for one-time notices.
const CookieName = "feedback_flash"

// Write stores a flash message for the next page render.
func Write(w http.ResponseWriter, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear reads and clears the flash message cookie.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	Clear(w)
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(cookie.Value))
	if err != nil || len(decoded) == 0 {
		return "", false
	}
	return string(decoded), true
}

// Clear expires any flash message cookie.
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
