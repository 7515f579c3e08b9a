package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

const layoutGlob = "templates/layouts/*.html"

// Renderer executes one page template inside the shared layout. Pages are
// addressed by their path below templates/ without extension, e.g.
// "pages/venue" or "errors/404".
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"has":  slices.Contains[[]string, string],
	"join": strings.Join,
}

func NewRenderer() (*Renderer, error) {
	return newRenderer(templateFS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	base, err := template.New("layout").Funcs(funcs).ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, dir := range []string{"pages", "forms", "errors"} {
		files, err := fs.Glob(fsys, "templates/"+dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			tmpl, err := template.Must(base.Clone()).ParseFS(fsys, file)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			name := dir + "/" + strings.TrimSuffix(path.Base(file), ".html")
			r.pages[name] = tmpl
		}
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "main.html", data)
}

// Has reports whether a page template is registered.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}
