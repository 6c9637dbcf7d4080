package trakt

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/amaumene/trakt-mcp/internal/errs"
)

// APIError is a non-2xx response from the Trakt API. Rate-limit responses
// carry the Retry-After the API reported; they are surfaced, never smoothed.
type APIError struct {
	Status      int
	Code        string
	Description string
	RetryAfter  time.Duration
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("trakt API error: %s - %s", e.Code, e.Description)
	}
	return fmt.Sprintf("trakt API error: status %d", e.Status)
}

// apiError turns a non-2xx response into an error: 401 is the
// authentication-required kind, everything else an *APIError.
func (c *Client) apiError(resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("trakt rejected the token: %w", errs.ErrAuthRequired)
	}

	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Code = body.Error
		apiErr.Description = body.ErrorDescription
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
			apiErr.RetryAfter = time.Duration(secs) * time.Second
		}
	}

	return apiErr
}
