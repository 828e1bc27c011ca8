package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gkcodebase/folio/internal/config"
	"github.com/gkcodebase/folio/internal/portfolio"
	"github.com/gkcodebase/folio/internal/progress"
	"github.com/gkcodebase/folio/internal/site"
	"github.com/gkcodebase/folio/internal/storage"
	"github.com/gkcodebase/folio/internal/theme"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the portfolio as a static site",
	Long:  `Renders the current portfolio into a static site: index.html, the stylesheet, and a copy of the assets directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if exportOut != "" {
			cfg.ExportDir = exportOut
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		store, err := storage.Open(filepath.Join(cfg.DataDir, "folio.db"))
		if err != nil {
			return fmt.Errorf("opening snapshot store: %w", err)
		}
		defer store.Close()

		ctx := context.Background()

		session := portfolio.NewSession(store, false)
		if err := session.Init(ctx); err != nil {
			return fmt.Errorf("loading portfolio: %w", err)
		}
		themes := theme.NewStore(store)
		if err := themes.Init(ctx); err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		renderer, err := site.NewRenderer()
		if err != nil {
			return err
		}

		exporter := &site.Exporter{
			Renderer:  renderer,
			AssetsDir: cfg.AssetsDir,
			OutputDir: cfg.ExportDir,
			Include:   cfg.AssetInclude,
			Exclude:   cfg.AssetExclude,
			Reporter:  progress.NewReporter(),
		}

		written, err := exporter.Export(session.Document(), themes.Settings())
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Exported %d files to %s\n", written, cfg.ExportDir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output directory (default from config)")
	rootCmd.AddCommand(exportCmd)
}
