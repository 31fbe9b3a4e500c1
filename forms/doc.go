// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package forms defines typed input structs for each form-posting operation
and pure validation over them.

# Binding

Each operation has a Parse function that binds the POST body into a struct:

	form := forms.ParseRegister(r)

Values are trimmed except passwords, which are taken verbatim.

# Validation

Validate is a pure function from a form to an ordered error list:

	if errs := form.Validate(); len(errs) > 0 {
		// re-render the form with inline errors
	}

Errors.On(field) looks up the first message for a field, which is what the
templates use to render inline errors next to each input.

# Rules

  - username: required, 3-20 characters
  - password: required, 6-20 characters
  - email: required, at most 50 characters, syntactically valid bare address
  - first_name, last_name: required, at most 30 characters
  - title: required, at most 100 characters
  - content: required
*/
package forms
