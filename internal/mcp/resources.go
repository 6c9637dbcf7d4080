package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/amaumene/trakt-mcp/internal/errs"
	"github.com/amaumene/trakt-mcp/internal/pagination"
	"github.com/amaumene/trakt-mcp/internal/render"
)

func (s *Server) registerResources() {
	s.server.AddResource(mcp.NewResource(
		"trakt://trending/movies",
		"Trending Movies",
		mcp.WithResourceDescription("Movies being watched right now on Trakt"),
		mcp.WithMIMEType("text/markdown"),
	), s.readTrendingMovies)

	s.server.AddResource(mcp.NewResource(
		"trakt://trending/shows",
		"Trending Shows",
		mcp.WithResourceDescription("Shows being watched right now on Trakt"),
		mcp.WithMIMEType("text/markdown"),
	), s.readTrendingShows)

	s.server.AddResource(mcp.NewResource(
		"trakt://user/history",
		"Watch History",
		mcp.WithResourceDescription("The authenticated user's watch history"),
		mcp.WithMIMEType("text/markdown"),
	), s.readHistory)
}

func markdownContents(uri, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     text,
		},
	}
}

func (s *Server) readTrendingMovies(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	res, err := pagination.Paginate(ctx, s.trakt.TrendingMovies, s.cfg.DefaultLimit, 0, s.cfg.Pagination())
	if err != nil {
		return nil, err
	}
	return markdownContents(req.Params.URI, render.TrendingMovies(res.Items)), nil
}

func (s *Server) readTrendingShows(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	res, err := pagination.Paginate(ctx, s.trakt.TrendingShows, s.cfg.DefaultLimit, 0, s.cfg.Pagination())
	if err != nil {
		return nil, err
	}
	return markdownContents(req.Params.URI, render.TrendingShows(res.Items)), nil
}

func (s *Server) readHistory(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	res, err := pagination.Paginate(ctx, s.trakt.History(""), s.cfg.DefaultLimit, 0, s.cfg.Pagination())
	if errors.Is(err, errs.ErrAuthRequired) {
		return markdownContents(req.Params.URI, "⚠️ Not authenticated with Trakt. Use the start_device_auth tool first."), nil
	}
	if err != nil {
		return nil, err
	}
	return markdownContents(req.Params.URI, render.History(res.Items)), nil
}
