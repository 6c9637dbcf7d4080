package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/amaumene/trakt-mcp/internal/ids"
	"github.com/amaumene/trakt-mcp/internal/render"
	"github.com/amaumene/trakt-mcp/internal/services/trakt"
)

func (s *Server) registerRecommendationTools() {
	s.server.AddTool(mcp.NewTool("get_recommendations",
		mcp.WithDescription("Get personalized movie or show recommendations for the authenticated user."),
		mcp.WithString("media_type",
			mcp.Required(),
			mcp.Description("'movies' or 'shows'"),
		),
		limitOption(),
		pageOption(),
	), s.handleRecommendations)

	s.server.AddTool(mcp.NewTool("hide_recommendation",
		mcp.WithDescription("Hide an item from future recommendations."),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("Trakt ID, Trakt slug or IMDB ID of the item"),
		),
		mcp.WithString("media_type",
			mcp.Required(),
			mcp.Description("'movies' or 'shows'"),
		),
	), s.handleHideRecommendation)
}

func (s *Server) handleRecommendations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mediaType, err := mediaTypeArg(req)
	if err != nil {
		return s.errorResult(err), nil
	}

	if mediaType == "movies" {
		return runList(ctx, s, req, s.trakt.MovieRecommendations(), func(items []trakt.Movie) string {
			return render.Movies("Recommended Movies", items)
		})
	}
	return runList(ctx, s, req, s.trakt.ShowRecommendations(), func(items []trakt.Show) string {
		return render.Shows("Recommended Shows", items)
	})
}

func (s *Server) handleHideRecommendation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mediaType, err := mediaTypeArg(req)
	if err != nil {
		return s.errorResult(err), nil
	}

	itemID := strings.TrimSpace(argString(req, "item_id", ""))
	body, err := ids.BuildIDObject(itemID, mediaType)
	if err != nil {
		return s.errorResult(err), nil
	}

	if _, err := s.trakt.HideRecommendations(ctx, body); err != nil {
		return s.errorResult(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("✅ %s hidden from future recommendations.", itemID)), nil
}
