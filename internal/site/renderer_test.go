package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkcodebase/folio/internal/portfolio"
	"github.com/gkcodebase/folio/internal/theme"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return renderer
}

func TestRenderPage(t *testing.T) {
	renderer := newTestRenderer(t)
	doc := portfolio.Default()

	page, err := renderer.RenderPage(doc, theme.DefaultSettings())
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	html := string(page)

	for _, want := range []string{
		doc.Hero.Title,
		doc.Introduction.Title,
		"theme-custom",
		"font-inter",
		"text-base",
		":root {",
		`<link rel="stylesheet" href="style.css">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in rendered page", want)
		}
	}
}

func TestRenderPageDarkMode(t *testing.T) {
	renderer := newTestRenderer(t)
	settings := theme.DefaultSettings()
	settings.DarkMode = true

	page, err := renderer.RenderPage(portfolio.Default(), settings)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(string(page), "dark") {
		t.Error("dark mode class missing from body")
	}
}

func TestRenderPageCustomSections(t *testing.T) {
	renderer := newTestRenderer(t)
	doc := portfolio.Default()

	section, err := portfolio.NewCustomSection("Testimonials", portfolio.KindGallery, "")
	if err != nil {
		t.Fatalf("NewCustomSection: %v", err)
	}
	doc.Custom = map[string]portfolio.CustomSection{"testimonials": section}

	page, err := renderer.RenderPage(doc, theme.DefaultSettings())
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, "Testimonials") {
		t.Error("custom section title missing")
	}
	if !strings.Contains(html, "Sample Item") {
		t.Error("custom section items missing")
	}
}

func TestRenderPageTitleFallback(t *testing.T) {
	renderer := newTestRenderer(t)
	doc := portfolio.Default()
	doc.Hero.Title = ""

	page, err := renderer.RenderPage(doc, theme.DefaultSettings())
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(string(page), "<title>Portfolio</title>") {
		t.Error("expected fallback page title")
	}
}

func TestStylesheetCoversThemesAndFonts(t *testing.T) {
	css := string(Stylesheet())

	for _, want := range []string{
		".theme-netflix", ".theme-spotify", ".theme-uber", ".theme-rainforest",
		".font-inter", ".font-roboto",
		".text-sm", ".text-xl",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("missing %q in stylesheet", want)
		}
	}
}

func TestExportWritesSite(t *testing.T) {
	renderer := newTestRenderer(t)

	assetsDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(assetsDir, "photo.jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(assetsDir, "docs"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(assetsDir, "docs", "resume.pdf"), []byte("pdf"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(assetsDir, ".DS_Store"), []byte("junk"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	outDir := filepath.Join(t.TempDir(), "dist")
	exporter := &Exporter{
		Renderer:  renderer,
		AssetsDir: assetsDir,
		OutputDir: outDir,
		Include:   []string{"**"},
		Exclude:   []string{"**/.DS_Store"},
	}

	written, err := exporter.Export(portfolio.Default(), theme.DefaultSettings())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	// index.html, style.css, photo.jpg, docs/resume.pdf.
	if written != 4 {
		t.Errorf("written = %d, want 4", written)
	}

	for _, rel := range []string{
		"index.html",
		"style.css",
		filepath.Join("assets", "photo.jpg"),
		filepath.Join("assets", "docs", "resume.pdf"),
	} {
		if _, err := os.Stat(filepath.Join(outDir, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "assets", ".DS_Store")); err == nil {
		t.Error("excluded file was exported")
	}
}

func TestExportMissingAssetsDir(t *testing.T) {
	renderer := newTestRenderer(t)
	outDir := filepath.Join(t.TempDir(), "dist")

	exporter := &Exporter{
		Renderer:  renderer,
		AssetsDir: filepath.Join(t.TempDir(), "no-such-dir"),
		OutputDir: outDir,
		Include:   []string{"**"},
	}

	written, err := exporter.Export(portfolio.Default(), theme.DefaultSettings())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if written != 2 {
		t.Errorf("written = %d, want just the page and stylesheet", written)
	}
}
