package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/xkiven/ResumeBuilder/internal/model"
)

//go:embed templates
var assets embed.FS

type pages struct {
	tpl *template.Template
	css map[Variant]template.CSS
}

var defaultPages = mustLoadPages()

// mustLoadPages parses the embedded layouts and inlines base + variant CSS so
// the output is a single self-contained document.
func mustLoadPages() *pages {
	tpl := template.Must(template.New("resume").ParseFS(assets, "templates/*.html"))
	base, err := assets.ReadFile("templates/base.css")
	if err != nil {
		panic(err)
	}
	p := &pages{tpl: tpl, css: map[Variant]template.CSS{}}
	for _, v := range Variants() {
		b, err := assets.ReadFile("templates/" + string(v) + ".css")
		if err != nil {
			panic(err)
		}
		p.css[v] = template.CSS(string(base) + "\n" + string(b))
	}
	return p
}

type page struct {
	T     *Tree
	CSS   template.CSS
	Title string
}

// HTML serializes a tree into a standalone HTML page.
func (r *Renderer) HTML(t *Tree) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrUnknownVariant)
	}
	css, ok := r.pages.css[t.Variant]
	if !ok {
		return nil, ErrUnknownVariant
	}
	p := page{T: t, CSS: css, Title: "Resume"}
	if t.Header != nil && t.Header.Name != "" {
		p.Title = t.Header.Name
	} else if t.Sidebar != nil && t.Sidebar.Name != "" {
		p.Title = t.Sidebar.Name
	}
	var buf bytes.Buffer
	if err := r.pages.tpl.ExecuteTemplate(&buf, string(t.Variant)+".html", p); err != nil {
		return nil, fmt.Errorf("execute %s template: %w", t.Variant, err)
	}
	return buf.Bytes(), nil
}

// RenderHTML renders doc straight to HTML.
func (r *Renderer) RenderHTML(doc model.Resume, v Variant) ([]byte, error) {
	t, err := r.Render(doc, v)
	if err != nil {
		return nil, err
	}
	return r.HTML(t)
}
