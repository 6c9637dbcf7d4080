package trakt

import (
	"context"
	"fmt"

	"github.com/amaumene/trakt-mcp/internal/ids"
	"github.com/amaumene/trakt-mcp/internal/pagination"
)

// listPath appends an optional type filter ("movies", "shows", "episodes")
// to a sync list endpoint.
func listPath(base, mediaType string) string {
	if mediaType == "" {
		return base
	}
	return base + "/" + mediaType
}

// History returns a page fetcher for the user's watch history.
func (c *Client) History(mediaType string) pagination.FetchFunc[HistoryItem] {
	path := listPath("/sync/history", mediaType)
	return func(ctx context.Context, page, limit int) (pagination.PageResult[HistoryItem], error) {
		if err := c.requireAuth(); err != nil {
			return pagination.PageResult[HistoryItem]{}, err
		}
		return getPage[HistoryItem](c, ctx, path, nil, page, limit)
	}
}

// AddToHistory marks the items in body as watched.
func (c *Client) AddToHistory(ctx context.Context, body ids.IDObject) (*SyncResponse, error) {
	return c.syncWrite(ctx, "/sync/history", body)
}

// RemoveFromHistory removes the items in body from the watch history.
func (c *Client) RemoveFromHistory(ctx context.Context, body ids.IDObject) (*SyncResponse, error) {
	return c.syncWrite(ctx, "/sync/history/remove", body)
}

// Watchlist returns a page fetcher for the user's watchlist.
func (c *Client) Watchlist(mediaType string) pagination.FetchFunc[WatchlistItem] {
	path := listPath("/sync/watchlist", mediaType)
	return func(ctx context.Context, page, limit int) (pagination.PageResult[WatchlistItem], error) {
		if err := c.requireAuth(); err != nil {
			return pagination.PageResult[WatchlistItem]{}, err
		}
		return getPage[WatchlistItem](c, ctx, path, nil, page, limit)
	}
}

// AddToWatchlist adds the items in body to the watchlist.
func (c *Client) AddToWatchlist(ctx context.Context, body ids.IDObject) (*SyncResponse, error) {
	return c.syncWrite(ctx, "/sync/watchlist", body)
}

// RemoveFromWatchlist removes the items in body from the watchlist.
func (c *Client) RemoveFromWatchlist(ctx context.Context, body ids.IDObject) (*SyncResponse, error) {
	return c.syncWrite(ctx, "/sync/watchlist/remove", body)
}

// Ratings returns a page fetcher for the user's ratings.
func (c *Client) Ratings(mediaType string) pagination.FetchFunc[RatingItem] {
	path := listPath("/sync/ratings", mediaType)
	return func(ctx context.Context, page, limit int) (pagination.PageResult[RatingItem], error) {
		if err := c.requireAuth(); err != nil {
			return pagination.PageResult[RatingItem]{}, err
		}
		return getPage[RatingItem](c, ctx, path, nil, page, limit)
	}
}

// AddRatings rates the items in body; each item carries its rating.
func (c *Client) AddRatings(ctx context.Context, body ids.IDObject) (*SyncResponse, error) {
	return c.syncWrite(ctx, "/sync/ratings", body)
}

// syncWrite posts an id-object body to a sync write endpoint.
func (c *Client) syncWrite(ctx context.Context, path string, body ids.IDObject) (*SyncResponse, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	var resp SyncResponse
	if err := c.doRequest(ctx, "POST", path, body, &resp); err != nil {
		return nil, fmt.Errorf("sync write %s failed: %w", path, err)
	}
	return &resp, nil
}
