package trakt

import (
	"net/url"

	"github.com/amaumene/trakt-mcp/internal/pagination"
)

// Search returns a page fetcher for the text-search endpoint. mediaType
// filters to "movie" or "show"; empty searches both.
func (c *Client) Search(query, mediaType string) pagination.FetchFunc[SearchResult] {
	path := "/search/movie,show"
	if mediaType != "" {
		path = "/search/" + mediaType
	}
	q := url.Values{}
	q.Set("query", query)
	return pageFetcher[SearchResult](c, path, q)
}
