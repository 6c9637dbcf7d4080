package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/amaumene/trakt-mcp/internal/errs"
	"github.com/amaumene/trakt-mcp/internal/ids"
	"github.com/amaumene/trakt-mcp/internal/render"
)

// identifierOptions are the parameter declarations shared by every write
// tool that accepts a flexible content identifier.
func identifierOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("media_type",
			mcp.Required(),
			mcp.Description("'movies' or 'shows'"),
		),
		mcp.WithString("trakt_id", mcp.Description("Numeric Trakt ID")),
		mcp.WithString("slug", mcp.Description("Trakt slug, e.g. 'the-matrix-1999'")),
		mcp.WithString("imdb_id", mcp.Description("IMDB ID, e.g. 'tt0133093'")),
		mcp.WithString("tmdb_id", mcp.Description("Numeric TMDB ID")),
		mcp.WithString("tvdb_id", mcp.Description("Numeric TVDB ID")),
		mcp.WithString("title", mcp.Description("Title, used together with year when no ID is given")),
		mcp.WithNumber("year", mcp.Description("Release year, used together with title")),
	}
}

func mediaTypeArg(req mcp.CallToolRequest) (string, error) {
	mediaType := strings.TrimSpace(argString(req, "media_type", ""))
	if mediaType != "movies" && mediaType != "shows" {
		return "", fmt.Errorf("media_type must be 'movies' or 'shows', got %q: %w", mediaType, errs.ErrInvalidArgument)
	}
	return mediaType, nil
}

// identifierArg validates the identifier fields of a write tool call and
// returns the sync request body for them.
func identifierArg(req mcp.CallToolRequest, label string) (ids.IDObject, string, error) {
	mediaType, err := mediaTypeArg(req)
	if err != nil {
		return nil, "", err
	}

	id, err := ids.Validate(ids.Identifier{
		TraktID: argString(req, "trakt_id", ""),
		Slug:    argString(req, "slug", ""),
		IMDBID:  argString(req, "imdb_id", ""),
		TMDBID:  argString(req, "tmdb_id", ""),
		TVDBID:  argString(req, "tvdb_id", ""),
		Title:   argString(req, "title", ""),
		Year:    argInt(req, "year", 0),
	}, label)
	if err != nil {
		return nil, "", err
	}

	return ids.IDObject{mediaType: []ids.SyncItem{id.SyncItem()}}, mediaType, nil
}

func (s *Server) registerSyncTools() {
	listType := mcp.WithString("media_type",
		mcp.Description("Restrict to 'movies' or 'shows'. Both are returned when omitted."),
	)

	s.server.AddTool(mcp.NewTool("get_watch_history",
		mcp.WithDescription("Get the authenticated user's watch history, most recent first."),
		listType,
		limitOption(),
		pageOption(),
	), s.handleWatchHistory)

	s.server.AddTool(mcp.NewTool("add_to_history",
		append([]mcp.ToolOption{
			mcp.WithDescription("Mark a movie or show as watched."),
			mcp.WithString("watched_at", mcp.Description("When it was watched, RFC 3339 UTC. Defaults to now.")),
		}, identifierOptions()...)...,
	), s.handleAddToHistory)

	s.server.AddTool(mcp.NewTool("remove_from_history",
		append([]mcp.ToolOption{
			mcp.WithDescription("Remove a movie or show from the watch history."),
		}, identifierOptions()...)...,
	), s.handleRemoveFromHistory)

	s.server.AddTool(mcp.NewTool("get_watchlist",
		mcp.WithDescription("Get the authenticated user's watchlist."),
		listType,
		limitOption(),
		pageOption(),
	), s.handleWatchlist)

	s.server.AddTool(mcp.NewTool("add_to_watchlist",
		append([]mcp.ToolOption{
			mcp.WithDescription("Add a movie or show to the watchlist."),
		}, identifierOptions()...)...,
	), s.handleAddToWatchlist)

	s.server.AddTool(mcp.NewTool("remove_from_watchlist",
		append([]mcp.ToolOption{
			mcp.WithDescription("Remove a movie or show from the watchlist."),
		}, identifierOptions()...)...,
	), s.handleRemoveFromWatchlist)

	s.server.AddTool(mcp.NewTool("get_ratings",
		mcp.WithDescription("Get the authenticated user's ratings."),
		listType,
		limitOption(),
		pageOption(),
	), s.handleRatings)

	s.server.AddTool(mcp.NewTool("rate",
		mcp.WithDescription("Rate a movie or show on a 1-10 scale."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("Trakt ID, Trakt slug or IMDB ID of the item"),
		),
		mcp.WithString("media_type",
			mcp.Required(),
			mcp.Description("'movies' or 'shows'"),
		),
		mcp.WithNumber("rating",
			mcp.Required(),
			mcp.Description("Rating from 1 to 10"),
		),
	), s.handleRate)
}

func (s *Server) handleWatchHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mediaType := strings.TrimSpace(argString(req, "media_type", ""))
	return runList(ctx, s, req, s.trakt.History(mediaType), render.History)
}

func (s *Server) handleAddToHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body, mediaType, err := identifierArg(req, "History item")
	if err != nil {
		return s.errorResult(err), nil
	}
	if watchedAt := strings.TrimSpace(argString(req, "watched_at", "")); watchedAt != "" {
		body[mediaType][0].WatchedAt = watchedAt
	}

	resp, err := s.trakt.AddToHistory(ctx, body)
	if err != nil {
		return s.errorResult(err), nil
	}
	return mcp.NewToolResultText(render.SyncOutcome("Added to history", resp)), nil
}

func (s *Server) handleRemoveFromHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body, _, err := identifierArg(req, "History item")
	if err != nil {
		return s.errorResult(err), nil
	}

	resp, err := s.trakt.RemoveFromHistory(ctx, body)
	if err != nil {
		return s.errorResult(err), nil
	}
	return mcp.NewToolResultText(render.SyncOutcome("Removed from history", resp)), nil
}

func (s *Server) handleWatchlist(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mediaType := strings.TrimSpace(argString(req, "media_type", ""))
	return runList(ctx, s, req, s.trakt.Watchlist(mediaType), render.Watchlist)
}

func (s *Server) handleAddToWatchlist(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body, _, err := identifierArg(req, "Watchlist item")
	if err != nil {
		return s.errorResult(err), nil
	}

	resp, err := s.trakt.AddToWatchlist(ctx, body)
	if err != nil {
		return s.errorResult(err), nil
	}
	return mcp.NewToolResultText(render.SyncOutcome("Added to watchlist", resp)), nil
}

func (s *Server) handleRemoveFromWatchlist(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body, _, err := identifierArg(req, "Watchlist item")
	if err != nil {
		return s.errorResult(err), nil
	}

	resp, err := s.trakt.RemoveFromWatchlist(ctx, body)
	if err != nil {
		return s.errorResult(err), nil
	}
	return mcp.NewToolResultText(render.SyncOutcome("Removed from watchlist", resp)), nil
}

func (s *Server) handleRatings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mediaType := strings.TrimSpace(argString(req, "media_type", ""))
	return runList(ctx, s, req, s.trakt.Ratings(mediaType), render.Ratings)
}

func (s *Server) handleRate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mediaType, err := mediaTypeArg(req)
	if err != nil {
		return s.errorResult(err), nil
	}

	rating := argInt(req, "rating", 0)
	if rating < 1 || rating > 10 {
		return s.errorResult(fmt.Errorf("rating must be between 1 and 10, got %d: %w", rating, errs.ErrInvalidArgument)), nil
	}

	body, err := ids.BuildIDObject(strings.TrimSpace(argString(req, "item_id", "")), mediaType)
	if err != nil {
		return s.errorResult(err), nil
	}
	body[mediaType][0].Rating = rating

	resp, err := s.trakt.AddRatings(ctx, body)
	if err != nil {
		return s.errorResult(err), nil
	}
	return mcp.NewToolResultText(render.SyncOutcome("Rated", resp)), nil
}
