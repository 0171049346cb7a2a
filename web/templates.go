package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates
var templateFS embed.FS

// Page template names
const (
	PageIndex    = "index"
	PageAdd      = "add"
	PageSelect   = "select"
	PageEdit     = "edit"
	PageNotFound = "notfound"
)

var pageNames = []string{PageIndex, PageAdd, PageSelect, PageEdit, PageNotFound}

// Templates holds the parsed page templates, each combined with the base layout
type Templates struct {
	pages map[string]*template.Template
}

// NewTemplates parses all embedded page templates
func NewTemplates() (*Templates, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS,
			"templates/base.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Templates{pages: pages}, nil
}

// Render writes the named page to w with the given data
func (t *Templates) Render(w http.ResponseWriter, name string, data interface{}) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return nil
}
