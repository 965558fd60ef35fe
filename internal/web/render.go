package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates
var templatesFS embed.FS

// standalone pages render without the shared layout (no nav for anonymous users).
var standalone = map[string]string{
	"login.html":    "login",
	"register.html": "register",
}

// pages maps each page file to its parsed template set, built once at startup.
var pages = parsePages()

func parsePages() map[string]*template.Template {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		panic(err)
	}
	layout := template.Must(template.ParseFS(templatesFS, "templates/layout.html"))

	m := make(map[string]*template.Template, len(entries))
	for _, e := range entries {
		name := e.Name()
		if name == "layout.html" {
			continue
		}
		if _, ok := standalone[name]; ok {
			m[name] = template.Must(template.ParseFS(templatesFS, "templates/"+name))
			continue
		}
		set := template.Must(layout.Clone())
		m[name] = template.Must(set.ParseFS(templatesFS, "templates/"+name))
	}
	return m
}

func renderTemplate(w http.ResponseWriter, name string, data map[string]interface{}) {
	t, ok := pages[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	target := "layout"
	if page, ok := standalone[name]; ok {
		target = page
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, target, data); err != nil {
		slog.Error("template execute", "template", name, "error", err)
	}
}
