package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gkcodebase/folio/internal/config"
	"github.com/gkcodebase/folio/internal/editor"
	"github.com/gkcodebase/folio/internal/history"
	"github.com/gkcodebase/folio/internal/live"
	"github.com/gkcodebase/folio/internal/portfolio"
	"github.com/gkcodebase/folio/internal/server"
	"github.com/gkcodebase/folio/internal/site"
	"github.com/gkcodebase/folio/internal/storage"
	"github.com/gkcodebase/folio/internal/theme"
)

var (
	servePort int
	serveDev  bool
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio server",
	Long:  `Starts the folio HTTP server: the rendered portfolio page, the section API, and, in dev mode, the editing surface.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("dev") {
			cfg.DevMode = serveDev
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		// Open the snapshot store.
		store, err := storage.Open(filepath.Join(cfg.DataDir, "folio.db"))
		if err != nil {
			return fmt.Errorf("opening snapshot store: %w", err)
		}
		defer store.Close()

		ctx := context.Background()

		// Boot the edit session and theme store.
		session := portfolio.NewSession(store, cfg.DevMode)
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

		srv := server.New(server.Config{
			Port:           cfg.Port,
			AssetsDir:      cfg.AssetsDir,
			AllowedOrigins: cfg.AllowedOrigins,
		}, session, themes, renderer)

		histStore := history.NewStore(store.DB())
		registerAllRoutes(srv, session, themes, histStore)

		// Graceful shutdown.
		sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Record committed mutations for the recent-changes feed.
		go history.Follow(sigCtx, session, histStore)

		go func() {
			<-sigCtx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		url := fmt.Sprintf("http://localhost:%d", cfg.Port)
		if serveOpen {
			go site.OpenBrowser(url)
		}

		fmt.Fprintf(os.Stderr, "folio v%s serving on %s\n", Version, url)
		if cfg.DevMode {
			fmt.Fprintln(os.Stderr, "  Dev mode: editing enabled")
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// registerAllRoutes wires up all feature routes.
func registerAllRoutes(srv *server.Server, session *portfolio.Session, themes *theme.Store, histStore *history.Store) {
	r := srv.Router()

	// Portfolio document and sections.
	portfolio.RegisterRoutes(r, session)

	// Theme settings.
	theme.RegisterRoutes(r, themes)

	// Section editor drafts.
	drafts := editor.NewManager(session)
	editor.RegisterRoutes(r, drafts)

	// Live change feed.
	live.RegisterRoutes(r, session)

	// Recent changes.
	history.RegisterRoutes(r, histStore)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveDev, "dev", false, "Enable dev mode (editing)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "Open the portfolio in the browser")
	rootCmd.AddCommand(serveCmd)
}
