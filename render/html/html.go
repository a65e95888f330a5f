// Package html renders reports as standalone HTML pages styled with
// Tailwind CSS v4 (CDN) and syntax highlighting via goldmark + chroma.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/sonnes/gupshup/core"
	"github.com/sonnes/gupshup/render/markdown"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

//go:embed templates/*.html
var content embed.FS

// Renderer renders a report to a standalone HTML page. The body is the
// Markdown report converted through goldmark.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template

	// GraphHref, when non-empty, adds a link to the interactive reply graph
	// in the page header. Used by the serve command.
	GraphHref string
}

// New creates an HTML Renderer with goldmark configured for GFM and syntax
// highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(), // allow raw HTML in markdown
		),
	)

	tmpl := template.Must(
		template.New("page.html").ParseFS(content, "templates/*.html"),
	)

	return &Renderer{md: md, tmpl: tmpl}
}

// pageData is the template data passed to page.html.
type pageData struct {
	Title     string
	Generated string
	GraphHref string
	Body      template.HTML
}

// Render writes the report as a complete HTML page to w.
func (r *Renderer) Render(w io.Writer, rep *core.Report) error {
	var src bytes.Buffer
	if err := markdown.New().Render(&src, rep); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := r.md.Convert(src.Bytes(), &body); err != nil {
		return fmt.Errorf("convert report markdown: %w", err)
	}

	title := core.CleanName(rep.ChatName)
	if title == "" {
		title = "Chat report"
	}

	return r.tmpl.ExecuteTemplate(w, "page.html", pageData{
		Title:     title,
		Generated: rep.GeneratedAt.Format("Jan 2, 2006 15:04"),
		GraphHref: r.GraphHref,
		Body:      template.HTML(body.String()),
	})
}
