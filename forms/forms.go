// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package forms

import (
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Field length limits
const (
	UsernameMin = 3
	UsernameMax = 20
	PasswordMin = 6
	PasswordMax = 20
	// bcrypt rejects inputs longer than 72 bytes, so multibyte
	// passwords need a byte cap on top of the rune limit.
	PasswordMaxBytes = 72
	EmailMax         = 50
	NameMax          = 30
	TitleMax         = 100
)

// FieldError reports a validation failure on a single form field.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the ordered list of validation failures for one submission.
type Errors []FieldError

// On returns the first error message for the named field, or "".
func (e Errors) On(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Add appends a field error.
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// RegisterForm carries the registration form fields.
type RegisterForm struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// ParseRegister binds a registration submission from the request body.
func ParseRegister(r *http.Request) RegisterForm {
	return RegisterForm{
		Username:  strings.TrimSpace(r.FormValue("username")),
		Password:  r.FormValue("password"),
		Email:     strings.TrimSpace(r.FormValue("email")),
		FirstName: strings.TrimSpace(r.FormValue("first_name")),
		LastName:  strings.TrimSpace(r.FormValue("last_name")),
	}
}

// Validate checks all registration fields and returns the failures.
func (f RegisterForm) Validate() Errors {
	var errs Errors
	checkLength(&errs, "username", f.Username, UsernameMin, UsernameMax)
	checkPassword(&errs, f.Password)
	checkEmail(&errs, f.Email)
	checkLength(&errs, "first_name", f.FirstName, 1, NameMax)
	checkLength(&errs, "last_name", f.LastName, 1, NameMax)
	return errs
}

// LoginForm carries the login form fields.
type LoginForm struct {
	Username string
	Password string
}

// ParseLogin binds a login submission from the request body.
func ParseLogin(r *http.Request) LoginForm {
	return LoginForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
}

// Validate checks the login fields and returns the failures.
func (f LoginForm) Validate() Errors {
	var errs Errors
	checkLength(&errs, "username", f.Username, UsernameMin, UsernameMax)
	checkPassword(&errs, f.Password)
	return errs
}

// FeedbackForm carries the feedback create/update form fields.
type FeedbackForm struct {
	Title   string
	Content string
}

// ParseFeedback binds a feedback submission from the request body.
func ParseFeedback(r *http.Request) FeedbackForm {
	return FeedbackForm{
		Title:   strings.TrimSpace(r.FormValue("title")),
		Content: strings.TrimSpace(r.FormValue("content")),
	}
}

// Validate checks the feedback fields and returns the failures.
func (f FeedbackForm) Validate() Errors {
	var errs Errors
	checkLength(&errs, "title", f.Title, 1, TitleMax)
	if f.Content == "" {
		errs.Add("content", "This field is required.")
	}
	return errs
}

func checkPassword(errs *Errors, password string) {
	checkLength(errs, "password", password, PasswordMin, PasswordMax)
	if len(password) > PasswordMaxBytes {
		errs.Add("password", fmt.Sprintf("Must be at most %d bytes.", PasswordMaxBytes))
	}
}

func checkLength(errs *Errors, field, value string, min, max int) {
	if value == "" {
		errs.Add(field, "This field is required.")
		return
	}
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		if min <= 1 {
			errs.Add(field, fmt.Sprintf("Must be at most %d characters.", max))
		} else {
			errs.Add(field, fmt.Sprintf("Must be between %d and %d characters.", min, max))
		}
	}
}

func checkEmail(errs *Errors, email string) {
	if email == "" {
		errs.Add("email", "This field is required.")
		return
	}
	if utf8.RuneCountInString(email) > EmailMax {
		errs.Add("email", fmt.Sprintf("Must be at most %d characters.", EmailMax))
		return
	}
	// ParseAddress accepts "Name <addr>" forms; require a bare address
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		errs.Add("email", "Invalid email address.")
	}
}
