package trakt

import (
	"context"
	"fmt"
	"net/url"

	"github.com/amaumene/trakt-mcp/internal/pagination"
)

// TrendingShows fetches one page of the shows being watched right now.
func (c *Client) TrendingShows(ctx context.Context, page, limit int) (pagination.PageResult[TrendingShow], error) {
	return getPage[TrendingShow](c, ctx, "/shows/trending", nil, page, limit)
}

// PopularShows fetches one page of the most popular shows.
func (c *Client) PopularShows(ctx context.Context, page, limit int) (pagination.PageResult[Show], error) {
	return getPage[Show](c, ctx, "/shows/popular", nil, page, limit)
}

// ShowSummary fetches full details for a single show. id is a Trakt ID,
// slug or IMDB ID.
func (c *Client) ShowSummary(ctx context.Context, id string) (*Show, error) {
	var show Show
	path := fmt.Sprintf("/shows/%s?extended=full", url.PathEscape(id))
	if err := c.doRequest(ctx, "GET", path, nil, &show); err != nil {
		return nil, fmt.Errorf("failed to get show %s: %w", id, err)
	}
	return &show, nil
}

// ShowComments returns a page fetcher for a show's comments, newest first.
func (c *Client) ShowComments(id string) pagination.FetchFunc[Comment] {
	path := fmt.Sprintf("/shows/%s/comments/newest", url.PathEscape(id))
	return pageFetcher[Comment](c, path, nil)
}

// GetShowProgress retrieves the user's watch progress for a show.
func (c *Client) GetShowProgress(ctx context.Context, id string) (*ShowProgress, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	var progress ShowProgress
	path := fmt.Sprintf("/shows/%s/progress/watched", url.PathEscape(id))
	if err := c.doRequest(ctx, "GET", path, nil, &progress); err != nil {
		return nil, fmt.Errorf("failed to get show progress: %w", err)
	}
	return &progress, nil
}
