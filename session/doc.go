// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session centralizes session cookie behavior.

A session holds at most one value: the authenticated username. The cookie
value is the username signed with the server's session secret (see package
auth), so the server keeps no per-client state between requests.

	session.Write(w, username, secret)
	username, ok := session.Read(r, secret)
	session.Clear(w)

Read verifies the signature on every call; a tampered or malformed cookie is
indistinguishable from no cookie at all. The cookie is HttpOnly with
SameSite=Lax and lives for the browser session.
*/
package session
