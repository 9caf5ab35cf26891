// Package render turns feed snapshots into HTML: a full page for the
// one-shot endpoint and a feed fragment pushed over the event stream.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/vovakirdan/livefeed-server/internal/core"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer holds the parsed templates. Safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// PageData is the model for the full page render.
type PageData struct {
	Username string
	Posts    []core.Post
}

// Page writes the full home page for the given snapshot.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	return r.tmpl.ExecuteTemplate(w, "page", data)
}

// Feed renders the post-list fragment that streaming clients swap in on
// every change notification.
func (r *Renderer) Feed(posts []core.Post) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.ExecuteTemplate(&sb, "feed", posts); err != nil {
		return "", err
	}
	return sb.String(), nil
}
