// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package templates renders the server-side HTML pages.

Pages live under pages/ and are embedded into the binary. Every page is
parsed against the shared layout at startup:

	tmpl, err := templates.New()
	err = tmpl.Render(w, "register.html", templates.RegisterPage{...})

Each page has a typed data struct (RegisterPage, LoginPage, ProfilePage,
FeedbackPage) embedding Page, which carries the title and the one-time flash
message displayed by the layout. html/template escaping applies to all
user-provided values.
*/
package templates
