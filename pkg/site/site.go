// Package site serves pages navigated by the menus of a definition file.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/mchmarny/navmenu/pkg/definition"
	"github.com/mchmarny/navmenu/pkg/metric"
)

const layout = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{ .Title }}</title></head>
<body>
{{- range .Menus }}
<nav data-menu="{{ .Name }}">{{ .HTML }}</nav>
{{- end }}
<main><h1>{{ .Title }}</h1><p>{{ .Path }}</p></main>
</body>
</html>
`

var page = template.Must(template.New("page").Parse(layout))

// Page is the data the layout is rendered with.
type Page struct {
	Title string
	Path  string
	Menus []RenderedMenu
}

// RenderedMenu is a menu rendered for the current request.
type RenderedMenu struct {
	Name string
	HTML template.HTML
}

// Site renders pages with the shared menus of a definition.
type Site struct {
	def      *definition.File
	recorder *metric.RenderRecorder
}

// New creates a site. recorder may be nil.
func New(def *definition.File, recorder *metric.RenderRecorder) *Site {
	return &Site{def: def, recorder: recorder}
}

// Render builds the menus of the definition for a request to currentURL and
// renders the shared ones.
func (s *Site) Render(currentURL string) ([]RenderedMenu, error) {
	set, err := s.def.Build(currentURL)
	if err != nil {
		return nil, fmt.Errorf("building menus: %w", err)
	}

	var out []RenderedMenu
	for _, b := range set.Shared() {
		decl, _ := s.def.Menu(b.Name())

		start := time.Now()
		markup, err := decl.Render(b)
		if s.recorder != nil {
			s.recorder.Record(b.Name(), len(b.All()), time.Since(start), err)
		}
		if err != nil {
			return nil, fmt.Errorf("rendering menu %q: %w", b.Name(), err)
		}

		out = append(out, RenderedMenu{Name: b.Name(), HTML: template.HTML(markup)}) //nolint:gosec // markup is escaped by the menu renderer
	}
	return out, nil
}

// Handler returns an HTTP handler rendering the page of any path with the
// menus built for it.
func (s *Site) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Info("handling page request",
			"method", r.Method,
			"url", r.URL.Path,
		)

		menus, err := s.Render(requestURL(r))
		if err != nil {
			slog.Error("failed to render menus", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := page.Execute(&buf, Page{Title: s.def.Title, Path: r.URL.Path, Menus: menus}); err != nil {
			slog.Error("failed to render page", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			slog.Error("failed to write page", "error", err)
			return
		}

		slog.Info("page sent",
			"url", r.URL.Path,
			"menus", len(menus),
			"status", http.StatusOK,
		)
	})
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path
}
