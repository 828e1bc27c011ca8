package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gkcodebase/folio/internal/portfolio"
)

// requireDevMode guards mutating tools. Without dev mode the session is
// read-only regardless of what the agent asks for.
func (s *Server) requireDevMode() *mcp.CallToolResult {
	if !s.session.DevMode() {
		return mcp.NewToolResultError("editing is disabled: the server is not running in dev mode")
	}
	return nil
}

// handleGetPortfolio returns the full document.
func (s *Server) handleGetPortfolio(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := s.session.DocumentJSON()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("serializing document: %v", err)), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// handleGetSection returns one section.
func (s *Server) handleGetSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: key"), nil
	}

	raw, ok := s.session.SectionJSON(key)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no section %q; use list_sections to see available keys", key)), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// handleListSections returns every section key, one per line.
func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc := s.session.Document()
	return mcp.NewToolResultText(strings.Join(doc.SectionKeys(), "\n")), nil
}

// handleGetSettings returns the theme settings.
func (s *Server) handleGetSettings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := json.Marshal(s.themes.Settings())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("serializing settings: %v", err)), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// handleUpdateSection replaces one section wholesale.
func (s *Server) handleUpdateSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if denied := s.requireDevMode(); denied != nil {
		return denied, nil
	}

	key, err := request.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: key"), nil
	}
	value, err := request.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: value"), nil
	}

	if err := s.session.UpdateSection(ctx, key, json.RawMessage(value)); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("update rejected: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("section %q updated, document version %d", key, s.session.Version())), nil
}

// handleAddItem appends to a section's sub-collection.
func (s *Server) handleAddItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if denied := s.requireDevMode(); denied != nil {
		return denied, nil
	}

	section, err := request.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: section"), nil
	}
	collection, err := request.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: collection"), nil
	}
	item, err := request.RequireString("item")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: item"), nil
	}

	if err := s.session.AddItem(ctx, section, collection, json.RawMessage(item)); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("add rejected: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("item added to %s.%s", section, collection)), nil
}

// handleRemoveItem removes one item by locator.
func (s *Server) handleRemoveItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if denied := s.requireDevMode(); denied != nil {
		return denied, nil
	}

	section, err := request.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: section"), nil
	}
	collection, err := request.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: collection"), nil
	}

	loc := portfolio.Locator{
		Index:    request.GetInt("index", -1),
		Category: request.GetString("category", ""),
	}
	if loc.Index < 0 {
		return mcp.NewToolResultError("missing required parameter: index"), nil
	}

	if err := s.session.RemoveItem(ctx, section, collection, loc); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("remove rejected: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("item %d removed from %s.%s", loc.Index, section, collection)), nil
}

// handleAddCustomSection creates a new viewer-style custom section.
func (s *Server) handleAddCustomSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if denied := s.requireDevMode(); denied != nil {
		return denied, nil
	}

	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: title"), nil
	}

	kind := portfolio.SectionKind(request.GetString("type", string(portfolio.KindCustom)))
	seed := request.GetString("description", "")

	key, err := s.session.AddSection(ctx, id, title, kind, seed)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("add rejected: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("section %q added", key)), nil
}

// handleRemoveSection removes a custom section.
func (s *Server) handleRemoveSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if denied := s.requireDevMode(); denied != nil {
		return denied, nil
	}

	key, err := request.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: key"), nil
	}

	if err := s.session.RemoveSection(ctx, key); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("remove rejected: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("section %q removed", key)), nil
}
