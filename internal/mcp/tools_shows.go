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

func (s *Server) registerShowTools() {
	s.server.AddTool(mcp.NewTool("get_trending_shows",
		mcp.WithDescription("Get the shows being watched right now on Trakt."),
		limitOption(),
		pageOption(),
	), s.handleTrendingShows)

	s.server.AddTool(mcp.NewTool("get_popular_shows",
		mcp.WithDescription("Get the most popular shows on Trakt."),
		limitOption(),
		pageOption(),
	), s.handlePopularShows)

	s.server.AddTool(mcp.NewTool("get_show",
		mcp.WithDescription("Get detailed information about a show."),
		mcp.WithString("show_id",
			mcp.Required(),
			mcp.Description("Trakt ID, Trakt slug or IMDB ID of the show"),
		),
	), s.handleShowSummary)

	s.server.AddTool(mcp.NewTool("get_show_comments",
		mcp.WithDescription("Get comments for a show, newest first."),
		mcp.WithString("show_id",
			mcp.Required(),
			mcp.Description("Trakt ID, Trakt slug or IMDB ID of the show"),
		),
		limitOption(),
		pageOption(),
	), s.handleShowComments)

	s.server.AddTool(mcp.NewTool("get_show_progress",
		mcp.WithDescription("Get the authenticated user's watched progress for a show, including the next episode to watch."),
		mcp.WithString("show_id",
			mcp.Required(),
			mcp.Description("Trakt ID, Trakt slug or IMDB ID of the show"),
		),
	), s.handleShowProgress)
}

func (s *Server) handleTrendingShows(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return runList(ctx, s, req, s.trakt.TrendingShows, render.TrendingShows)
}

func (s *Server) handlePopularShows(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return runList(ctx, s, req, s.trakt.PopularShows, func(items []trakt.Show) string {
		return render.Shows("Popular Shows", items)
	})
}

func (s *Server) handleShowSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := strings.TrimSpace(argString(req, "show_id", ""))
	if id == "" {
		return s.errorResult(fmt.Errorf("show_id cannot be empty: %w", errs.ErrInvalidArgument)), nil
	}

	show, err := s.trakt.ShowSummary(ctx, id)
	if err != nil {
		return s.errorResult(err), nil
	}
	return mcp.NewToolResultText(render.ShowDetail(show)), nil
}

func (s *Server) handleShowComments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := strings.TrimSpace(argString(req, "show_id", ""))
	if id == "" {
		return s.errorResult(fmt.Errorf("show_id cannot be empty: %w", errs.ErrInvalidArgument)), nil
	}
	return runList(ctx, s, req, s.trakt.ShowComments(id), render.Comments)
}

func (s *Server) handleShowProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := strings.TrimSpace(argString(req, "show_id", ""))
	if id == "" {
		return s.errorResult(fmt.Errorf("show_id cannot be empty: %w", errs.ErrInvalidArgument)), nil
	}

	progress, err := s.trakt.GetShowProgress(ctx, id)
	if err != nil {
		return s.errorResult(err), nil
	}
	return mcp.NewToolResultText(render.ShowProgress(id, progress)), nil
}
