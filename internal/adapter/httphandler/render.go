package httphandler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/auracraft/storefront/internal/core/service"
)

//go:embed web/templates/*.html
var templatesFS embed.FS

//go:embed web/static
var staticFS embed.FS

const (
	pageHome    = "home"
	pageCatalog = "catalog"
	pageAuth    = "auth"
	pageSearch  = "search"
	pageError   = "error"
)

var pageNames = []string{pageHome, pageCatalog, pageAuth, pageSearch, pageError}

var templateFuncs = template.FuncMap{
	"stars":       service.StarString,
	"reviewDate":  service.FormatReviewDate,
	"avatarURL":   avatarURL,
	"categoryURL": categoryHref,
}

func avatarURL(name string) string {
	q := url.Values{}
	q.Set("name", name)
	q.Set("background", "random")
	q.Set("color", "fff")
	return "https://ui-avatars.com/api/?" + q.Encode()
}

// A Renderer holds one template set per page, each sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	const op = "NewRenderer"

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(
			templatesFS,
			"web/templates/layout.html",
			"web/templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op, name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages}, nil
}

// Render executes page into a buffer first so that a template failure
// still produces a clean 500.
func (rd *Renderer) Render(
	w http.ResponseWriter, status int, page string, data any,
) {
	const op = "Renderer.Render"
	log := slog.With("op", op)

	t, ok := rd.pages[page]
	if !ok {
		log.Error("unknown page", "page", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Error("failed to execute template", "page", page, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "web/static")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
