package email

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"strings"
	texttemplate "text/template"

	"eventattendance/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// templateRenderer serves templates parsed once from the embedded templates directory.
// Template "x" consists of x_subject.txt, x.html and x.txt.
type templateRenderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewTemplateRenderer parses every embedded template. It fails if a file is malformed
// or a subject has no matching bodies.
func NewTemplateRenderer() (domain.EmailTemplateRenderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	names, err := templateNames()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if html.Lookup(name+".html") == nil || text.Lookup(name+".txt") == nil {
			return nil, fmt.Errorf("template %s is missing a body", name)
		}
	}
	return &templateRenderer{html: html, text: text}, nil
}

func (r *templateRenderer) Render(name string, data any) (domain.EmailMessage, error) {
	var subject, text, html strings.Builder
	if err := r.text.ExecuteTemplate(&subject, name+"_subject.txt", data); err != nil {
		return domain.EmailMessage{}, fmt.Errorf("subject: %w", err)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return domain.EmailMessage{}, fmt.Errorf("text body: %w", err)
	}
	if err := r.html.ExecuteTemplate(&html, name+".html", data); err != nil {
		return domain.EmailMessage{}, fmt.Errorf("html body: %w", err)
	}
	return domain.EmailMessage{
		Subject: strings.TrimSpace(subject.String()),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}

// templateNames lists the templates available to Render.
func templateNames() ([]string, error) {
	files, err := fs.Glob(templateFS, "templates/*_subject.txt")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(strings.TrimPrefix(f, "templates/"), "_subject.txt"))
	}
	return names, nil
}
