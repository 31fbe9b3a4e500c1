// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and signed-token utilities.

# Password Hashing

Passwords are hashed with bcrypt before storage:

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, password)

CheckPassword uses bcrypt's constant-time comparison. Plaintext passwords
are never stored or compared directly.

# Signed Tokens

Session cookies carry an HMAC-SHA256 signed value:

	token := auth.EncodeToken(username, secret)
	username, err := auth.DecodeToken(token, secret)

The token format is base64(value) + "." + signature, both URL-safe base64
without padding. DecodeToken returns ErrInvalidToken for malformed input and
ErrInvalidSignature for a valid shape with a bad signature; callers treat
both as an anonymous client.

# Raw Signatures

SignValue and VerifyValue expose the underlying HMAC for cases where the
value travels separately from its signature:

	sig := auth.SignValue(value, secret)
	err := auth.VerifyValue(value, sig, secret)

Verification uses hmac.Equal to avoid timing side channels.
*/
package auth
