package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gkcodebase/folio/internal/assets"
	"github.com/gkcodebase/folio/internal/portfolio"
	"github.com/gkcodebase/folio/internal/progress"
	"github.com/gkcodebase/folio/internal/theme"
)

// Exporter writes the rendered portfolio as a static site: index.html, the
// stylesheet, and a copy of the assets directory.
type Exporter struct {
	Renderer  *Renderer
	AssetsDir string
	OutputDir string
	Include   []string
	Exclude   []string
	Reporter  progress.Reporter
}

// Export builds the static site from the given document and settings.
// Returns the number of files written.
func (e *Exporter) Export(doc *portfolio.Document, settings theme.Settings) (int, error) {
	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	page, err := e.Renderer.RenderPage(doc, settings)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(e.OutputDir, "index.html"), page, 0o644); err != nil {
		return 0, fmt.Errorf("writing index.html: %w", err)
	}

	if err := os.WriteFile(filepath.Join(e.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, fmt.Errorf("writing style.css: %w", err)
	}

	written := 2

	files, err := assets.Scan(assets.ScanConfig{
		RootDir: e.AssetsDir,
		Include: e.Include,
		Exclude: e.Exclude,
	})
	if err != nil {
		return written, err
	}

	if e.Reporter != nil {
		e.Reporter.Start(len(files))
	}
	for i, f := range files {
		if err := copyAsset(f.Path, filepath.Join(e.OutputDir, "assets", filepath.FromSlash(f.RelPath))); err != nil {
			return written, fmt.Errorf("copying %s: %w", f.RelPath, err)
		}
		written++
		if e.Reporter != nil {
			e.Reporter.Update(i+1, f.RelPath)
		}
	}
	if e.Reporter != nil {
		e.Reporter.Finish()
	}

	return written, nil
}

// copyAsset copies a single file, creating parent directories as needed.
func copyAsset(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
