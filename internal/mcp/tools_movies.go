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

func (s *Server) registerMovieTools() {
	s.server.AddTool(mcp.NewTool("get_trending_movies",
		mcp.WithDescription("Get the movies being watched right now on Trakt."),
		limitOption(),
		pageOption(),
	), s.handleTrendingMovies)

	s.server.AddTool(mcp.NewTool("get_popular_movies",
		mcp.WithDescription("Get the most popular movies on Trakt."),
		limitOption(),
		pageOption(),
	), s.handlePopularMovies)

	s.server.AddTool(mcp.NewTool("get_movie",
		mcp.WithDescription("Get detailed information about a movie."),
		mcp.WithString("movie_id",
			mcp.Required(),
			mcp.Description("Trakt ID, Trakt slug or IMDB ID of the movie"),
		),
	), s.handleMovieSummary)

	s.server.AddTool(mcp.NewTool("get_movie_comments",
		mcp.WithDescription("Get comments for a movie, newest first."),
		mcp.WithString("movie_id",
			mcp.Required(),
			mcp.Description("Trakt ID, Trakt slug or IMDB ID of the movie"),
		),
		limitOption(),
		pageOption(),
	), s.handleMovieComments)
}

func (s *Server) handleTrendingMovies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return runList(ctx, s, req, s.trakt.TrendingMovies, render.TrendingMovies)
}

func (s *Server) handlePopularMovies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return runList(ctx, s, req, s.trakt.PopularMovies, func(items []trakt.Movie) string {
		return render.Movies("Popular Movies", items)
	})
}

func (s *Server) handleMovieSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := strings.TrimSpace(argString(req, "movie_id", ""))
	if id == "" {
		return s.errorResult(fmt.Errorf("movie_id cannot be empty: %w", errs.ErrInvalidArgument)), nil
	}

	movie, err := s.trakt.MovieSummary(ctx, id)
	if err != nil {
		return s.errorResult(err), nil
	}
	return mcp.NewToolResultText(render.MovieDetail(movie)), nil
}

func (s *Server) handleMovieComments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := strings.TrimSpace(argString(req, "movie_id", ""))
	if id == "" {
		return s.errorResult(fmt.Errorf("movie_id cannot be empty: %w", errs.ErrInvalidArgument)), nil
	}
	return runList(ctx, s, req, s.trakt.MovieComments(id), render.Comments)
}
