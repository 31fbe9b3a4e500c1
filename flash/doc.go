// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package flash provides one-time notices persisted across redirects.

Handlers write a notice before redirecting; the next rendered page reads and
clears it:

	flash.Write(w, "Welcome! Your account has been created.")

	if msg, ok := flash.ReadAndClear(w, r); ok {
		data.Flash = msg
	}

The message is stored in a base64-encoded cookie and survives exactly one
read. An unreadable cookie is dropped silently.
*/
package flash
