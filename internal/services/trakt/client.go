// Package trakt is a thin client for the Trakt.tv API v2: device-code OAuth,
// authenticated requests, and per-domain endpoint methods whose paged
// variants plug straight into the pagination package.
package trakt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/amaumene/trakt-mcp/internal/config"
	"github.com/amaumene/trakt-mcp/internal/pagination"
)

const apiVersion = "2"

// Client handles communication with the Trakt API
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	tokenStore   TokenStore
	httpClient   *http.Client
	logger       *logrus.Logger

	mu            sync.Mutex
	pendingDevice *DeviceCodeResponse
}

// NewClient creates a new Trakt API client
func NewClient(cfg *config.Config, logger *logrus.Logger) (*Client, error) {
	tokenStore, err := NewFileTokenStore(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create token store: %w", err)
	}

	return &Client{
		baseURL:      cfg.TraktAPIURL,
		clientID:     cfg.TraktClientID,
		clientSecret: cfg.TraktClientSecret,
		tokenStore:   tokenStore,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		logger:       logger,
	}, nil
}

// pageInfo holds the pagination counters Trakt reports in response headers.
// All zero when the endpoint sent none.
type pageInfo struct {
	page      int
	pageCount int
	itemCount int
}

// doRequest performs an authenticated HTTP request to the Trakt API
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	return c.do(ctx, method, path, body, result, nil)
}

// do performs the request and, when info is non-nil, captures the
// X-Pagination-* response headers into it.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}, info *pageInfo) error {
	// Refresh the token if it is about to expire. OAuth calls skip this:
	// the refresh itself goes through do.
	if !strings.HasPrefix(path, "/oauth/") {
		if err := c.RefreshIfNeeded(ctx); err != nil {
			c.logger.WithError(err).Warn("Token refresh failed, continuing with current token")
		}
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	fullURL := c.baseURL + path
	c.logger.WithFields(logrus.Fields{
		"method": method,
		"url":    fullURL,
	}).Debug("Making Trakt API request")

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("trakt-api-version", apiVersion)
	req.Header.Set("trakt-api-key", c.clientID)

	// Add authorization if we have a token
	token, err := c.tokenStore.GetToken()
	if err == nil && token != nil {
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	}

	// Perform request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp)
	}

	if info != nil {
		info.page = headerInt(resp, "X-Pagination-Page")
		info.pageCount = headerInt(resp, "X-Pagination-Page-Count")
		info.itemCount = headerInt(resp, "X-Pagination-Item-Count")
	}

	// Parse response
	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// getPage fetches one page of a list endpoint and returns it with the
// upstream pagination counters, in the shape pagination.FetchFunc expects.
func getPage[T any](c *Client, ctx context.Context, path string, query url.Values, page, limit int) (pagination.PageResult[T], error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var items []T
	var info pageInfo
	if err := c.do(ctx, http.MethodGet, path+"?"+query.Encode(), nil, &items, &info); err != nil {
		return pagination.PageResult[T]{}, err
	}

	return pagination.PageResult[T]{
		Items:       items,
		CurrentPage: info.page,
		TotalPages:  info.pageCount,
		TotalCount:  info.itemCount,
	}, nil
}

// pageFetcher adapts a list endpoint to a pagination.FetchFunc. The base
// query is copied per call since getPage adds the page parameters.
func pageFetcher[T any](c *Client, path string, query url.Values) pagination.FetchFunc[T] {
	return func(ctx context.Context, page, limit int) (pagination.PageResult[T], error) {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		return getPage[T](c, ctx, path, q, page, limit)
	}
}

func headerInt(resp *http.Response, name string) int {
	v := resp.Header.Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
