package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gkcodebase/folio/internal/config"
	mcpserver "github.com/gkcodebase/folio/internal/mcp"
	"github.com/gkcodebase/folio/internal/portfolio"
	"github.com/gkcodebase/folio/internal/storage"
	"github.com/gkcodebase/folio/internal/theme"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing portfolio tools to AI agents. Mutating tools require dev mode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		store, err := storage.Open(filepath.Join(cfg.DataDir, "folio.db"))
		if err != nil {
			return fmt.Errorf("opening snapshot store: %w", err)
		}
		defer store.Close()

		ctx := context.Background()

		session := portfolio.NewSession(store, cfg.DevMode)
		if err := session.Init(ctx); err != nil {
			return fmt.Errorf("loading portfolio: %w", err)
		}
		themes := theme.NewStore(store)
		if err := themes.Init(ctx); err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "folio MCP server started on stdio (data=%s, dev=%v)\n", cfg.DataDir, cfg.DevMode)

		srv := mcpserver.NewServer(session, themes)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
