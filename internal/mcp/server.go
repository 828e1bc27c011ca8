// Package mcp exposes the portfolio over the Model Context Protocol so AI
// agents can read and, in dev mode, edit the document.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/gkcodebase/folio/internal/portfolio"
	"github.com/gkcodebase/folio/internal/theme"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes portfolio tools.
type Server struct {
	session *portfolio.Session
	themes  *theme.Store
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server around the edit session and theme store.
func NewServer(session *portfolio.Session, themes *theme.Store) *Server {
	s := &Server{
		session: session,
		themes:  themes,
	}

	s.mcp = server.NewMCPServer(
		"folio",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(getPortfolioTool, s.handleGetPortfolio)
	s.mcp.AddTool(getSectionTool, s.handleGetSection)
	s.mcp.AddTool(listSectionsTool, s.handleListSections)
	s.mcp.AddTool(getSettingsTool, s.handleGetSettings)
	s.mcp.AddTool(updateSectionTool, s.handleUpdateSection)
	s.mcp.AddTool(addItemTool, s.handleAddItem)
	s.mcp.AddTool(removeItemTool, s.handleRemoveItem)
	s.mcp.AddTool(addCustomSectionTool, s.handleAddCustomSection)
	s.mcp.AddTool(removeSectionTool, s.handleRemoveSection)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
