package trakt

import (
	"context"
	"fmt"
	"net/url"

	"github.com/amaumene/trakt-mcp/internal/pagination"
)

// TrendingMovies fetches one page of the movies being watched right now.
func (c *Client) TrendingMovies(ctx context.Context, page, limit int) (pagination.PageResult[TrendingMovie], error) {
	return getPage[TrendingMovie](c, ctx, "/movies/trending", nil, page, limit)
}

// PopularMovies fetches one page of the most popular movies.
func (c *Client) PopularMovies(ctx context.Context, page, limit int) (pagination.PageResult[Movie], error) {
	return getPage[Movie](c, ctx, "/movies/popular", nil, page, limit)
}

// MovieSummary fetches full details for a single movie. id is a Trakt ID,
// slug or IMDB ID.
func (c *Client) MovieSummary(ctx context.Context, id string) (*Movie, error) {
	var movie Movie
	path := fmt.Sprintf("/movies/%s?extended=full", url.PathEscape(id))
	if err := c.doRequest(ctx, "GET", path, nil, &movie); err != nil {
		return nil, fmt.Errorf("failed to get movie %s: %w", id, err)
	}
	return &movie, nil
}

// MovieComments returns a page fetcher for a movie's comments, newest first.
func (c *Client) MovieComments(id string) pagination.FetchFunc[Comment] {
	path := fmt.Sprintf("/movies/%s/comments/newest", url.PathEscape(id))
	return pageFetcher[Comment](c, path, nil)
}
