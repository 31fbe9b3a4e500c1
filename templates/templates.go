// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/danielhkuo/feedback-board/forms"
	"github.com/danielhkuo/feedback-board/models"
)

//go:embed pages/*.html
var files embed.FS

// pages lists every renderable page template.
var pages = []string{
	"register.html",
	"login.html",
	"show.html",
	"feedback_new.html",
	"feedback_edit.html",
	"not_found.html",
	"unauthorized.html",
}

// Page holds the fields shared by every rendered page.
type Page struct {
	Title string
	Flash string
}

type RegisterPage struct {
	Page
	Form   forms.RegisterForm
	Errors forms.Errors
}

type LoginPage struct {
	Page
	Form   forms.LoginForm
	Errors forms.Errors
}

type ProfilePage struct {
	Page
	User     models.User
	Feedback []models.Feedback
}

type FeedbackPage struct {
	Page
	Form   forms.FeedbackForm
	Errors forms.Errors
	Action string
}

// Renderer renders embedded HTML pages against a shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses all embedded pages. Fails fast on a malformed template.
func New() (*Renderer, error) {
	parsed := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		tmpl, err := template.ParseFS(files, "pages/layout.html", "pages/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		parsed[name] = tmpl
	}
	return &Renderer{templates: parsed}, nil
}

// Render executes the named page with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %s", name)
	}
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
