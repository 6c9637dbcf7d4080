package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/amaumene/trakt-mcp/internal/errs"
	"github.com/amaumene/trakt-mcp/internal/render"
	"github.com/amaumene/trakt-mcp/internal/services/trakt"
)

func (s *Server) registerSearchTools() {
	s.server.AddTool(mcp.NewTool("search",
		mcp.WithDescription("Search Trakt for movies and shows by text query."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search for"),
		),
		mcp.WithString("type",
			mcp.Description("Restrict results to 'movie' or 'show'. Both are searched when omitted."),
		),
		limitOption(),
		pageOption(),
	), s.handleSearch)
}

func (s *Server) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := strings.TrimSpace(argString(req, "query", ""))
	if query == "" {
		return s.errorResult(fmt.Errorf("query cannot be empty: %w", errs.ErrInvalidArgument)), nil
	}

	mediaType := strings.TrimSpace(argString(req, "type", ""))
	switch mediaType {
	case "", "movie", "show":
	default:
		return s.errorResult(fmt.Errorf("type must be 'movie' or 'show', got %q: %w", mediaType, errs.ErrInvalidArgument)), nil
	}

	return runList(ctx, s, req, s.trakt.Search(query, mediaType), func(items []trakt.SearchResult) string {
		return render.SearchResults(items, query)
	})
}
