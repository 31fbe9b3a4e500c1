// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidToken     = errors.New("invalid token format")
)

// HashPassword derives a one-way salted hash from a plaintext password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash
// bcrypt comparison is constant-time
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// SignValue creates an HMAC-SHA256 signature for a value
// This is deterministic and verifiable without storing the signature
func SignValue(value, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(value))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// VerifyValue checks that sig is a valid signature for value
func VerifyValue(value, sig, secret string) error {
	expected := SignValue(value, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}

// EncodeToken packs a value and its signature into a single cookie-safe token
func EncodeToken(value, secret string) string {
	encoded := strings.TrimRight(base64.URLEncoding.EncodeToString([]byte(value)), "=")
	return encoded + "." + SignValue(value, secret)
}

// DecodeToken unpacks and verifies a token produced by EncodeToken
// Returns the original value, or an error for malformed or tampered tokens
func DecodeToken(token, secret string) (string, error) {
	encoded, sig, ok := strings.Cut(token, ".")
	if !ok {
		return "", ErrInvalidToken
	}
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidToken
	}
	value := string(raw)
	if err := VerifyValue(value, sig, secret); err != nil {
		return "", err
	}
	return value, nil
}
