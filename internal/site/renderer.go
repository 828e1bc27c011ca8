// Package site renders the portfolio document into HTML: live pages served
// by the HTTP server and the static export written to disk.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/gkcodebase/folio/internal/portfolio"
	"github.com/gkcodebase/folio/internal/theme"
)

// Renderer converts a portfolio document plus theme settings into a single
// HTML page.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewRenderer parses the page template and initializes the rich-text
// converter.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{}

	// Rich-text fragments may carry markdown, inline HTML, or both.
	r.md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"rich":   r.richText,
		"period": formatPeriod,
		"join":   strings.Join,
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	r.tmpl = tmpl

	return r, nil
}

// pageData holds the data passed to the page template.
type pageData struct {
	Title     string
	BodyClass string
	ThemeCSS  template.CSS
	Doc       *portfolio.Document
	Custom    []customSectionView
}

// customSectionView pairs a custom section with its key for stable ordering
// in the template.
type customSectionView struct {
	Key     string
	Section portfolio.CustomSection
}

// RenderPage renders the full portfolio page.
func (r *Renderer) RenderPage(doc *portfolio.Document, settings theme.Settings) ([]byte, error) {
	classes := settings.Classes()
	if settings.DarkMode {
		classes = append(classes, "dark")
	}

	custom := make([]customSectionView, 0, len(doc.Custom))
	for _, key := range doc.CustomKeys() {
		custom = append(custom, customSectionView{Key: key, Section: doc.Custom[key]})
	}

	title := doc.Hero.Title
	if title == "" {
		title = "Portfolio"
	}

	data := pageData{
		Title:     title,
		BodyClass: strings.Join(classes, " "),
		ThemeCSS:  template.CSS(settings.CSSVariables()),
		Doc:       doc,
		Custom:    custom,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return buf.Bytes(), nil
}

// richText converts a rich-text fragment to HTML. Fragments written in the
// editor may be plain text, markdown, or already-formed HTML; goldmark with
// raw HTML enabled handles all three.
func (r *Renderer) richText(text string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}

// Stylesheet returns the base stylesheet served next to the page.
func Stylesheet() []byte {
	return []byte(cssContent)
}

// formatPeriod formats a year range, using "Present" for open-ended entries.
func formatPeriod(p portfolio.TimePeriod) string {
	if p.End == nil {
		return fmt.Sprintf("%d - Present", p.Start)
	}
	return fmt.Sprintf("%d - %d", p.Start, *p.End)
}
