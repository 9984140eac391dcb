// Package view renders the server-side HTML pages of the journal.
//
// Templates are embedded into the binary and parsed once at start. Every
// page shares the "layout" template defined in layout.html.
package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names accepted by Render.
const (
	PageIndex    = "index"
	PageRegister = "register"
	PageLogin    = "login"
	PageJournal  = "journal"
)

// ErrUnknownPage is returned by Render for a page that was not parsed.
var ErrUnknownPage = errors.New("unknown page")

// PageData is the value every page template is executed with.
type PageData struct {
	// Version is shown in the footer.
	Version string

	// Content is the page specific payload, e.g. models.JournalView.
	Content any
}

// Renderer executes the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every embedded page together with the layout.
func NewRenderer() (*Renderer, error) {
	return newRenderer(templatesFS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error listing templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		if name == "layout" {
			continue
		}

		tmpl, err := template.ParseFS(fsys, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("error parsing template %q: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Render writes page executed with data as a text/html response with
// status 200. The page is rendered into a buffer first, so a template
// error never leaves a half written body.
func (r *Renderer) Render(w http.ResponseWriter, page string, data PageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("error rendering page %q: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}
