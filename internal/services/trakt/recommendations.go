package trakt

import (
	"context"
	"fmt"

	"github.com/amaumene/trakt-mcp/internal/ids"
	"github.com/amaumene/trakt-mcp/internal/pagination"
)

// MovieRecommendations returns a page fetcher for personalized movie
// recommendations.
func (c *Client) MovieRecommendations() pagination.FetchFunc[Movie] {
	return func(ctx context.Context, page, limit int) (pagination.PageResult[Movie], error) {
		if err := c.requireAuth(); err != nil {
			return pagination.PageResult[Movie]{}, err
		}
		return getPage[Movie](c, ctx, "/recommendations/movies", nil, page, limit)
	}
}

// ShowRecommendations returns a page fetcher for personalized show
// recommendations.
func (c *Client) ShowRecommendations() pagination.FetchFunc[Show] {
	return func(ctx context.Context, page, limit int) (pagination.PageResult[Show], error) {
		if err := c.requireAuth(); err != nil {
			return pagination.PageResult[Show]{}, err
		}
		return getPage[Show](c, ctx, "/recommendations/shows", nil, page, limit)
	}
}

// HideRecommendations hides the items in body from future recommendations.
func (c *Client) HideRecommendations(ctx context.Context, body ids.IDObject) (*SyncResponse, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	var resp SyncResponse
	if err := c.doRequest(ctx, "POST", "/users/hidden/recommendations", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to hide recommendations: %w", err)
	}
	return &resp, nil
}
