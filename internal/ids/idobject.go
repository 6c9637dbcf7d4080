package ids

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amaumene/trakt-mcp/internal/errs"
)

// RequestIDs is the ids block of a Trakt sync request body.
type RequestIDs struct {
	Trakt int    `json:"trakt,omitempty"`
	Slug  string `json:"slug,omitempty"`
	IMDB  string `json:"imdb,omitempty"`
	TMDB  int    `json:"tmdb,omitempty"`
	TVDB  int    `json:"tvdb,omitempty"`
}

// SyncItem is one entry of a Trakt sync request body. Rating and WatchedAt
// are set by write operations that carry them.
type SyncItem struct {
	Title     string      `json:"title,omitempty"`
	Year      int         `json:"year,omitempty"`
	Rating    int         `json:"rating,omitempty"`
	WatchedAt string      `json:"watched_at,omitempty"`
	IDs       *RequestIDs `json:"ids,omitempty"`
}

// IDObject is the batch-shaped body of a Trakt write request: a collection
// name ("movies" or "shows") mapping to its items.
type IDObject map[string][]SyncItem

// BuildIDObject classifies itemID by shape and wraps it in the write-request
// body the Trakt sync endpoints expect. Classification order is the
// contract: all digits is a Trakt ID, a "tt" prefix is an IMDB ID, anything
// else is a slug. The classifier trusts shape over semantics, matching how
// the API accepts these identifiers interchangeably, so an all-digit slug
// would classify as a Trakt ID.
func BuildIDObject(itemID, itemType string) (IDObject, error) {
	if itemID == "" {
		return nil, fmt.Errorf("item_id cannot be empty: %w", errs.ErrInvalidArgument)
	}
	if itemType != "movies" && itemType != "shows" {
		return nil, fmt.Errorf("item_type must be \"movies\" or \"shows\", got %q: %w", itemType, errs.ErrInvalidArgument)
	}

	var rids RequestIDs
	switch {
	case isDigits(itemID):
		n, err := strconv.Atoi(itemID)
		if err != nil {
			return nil, fmt.Errorf("item_id %q is not a valid Trakt ID: %w", itemID, errs.ErrInvalidArgument)
		}
		rids.Trakt = n
	case strings.HasPrefix(itemID, "tt"):
		rids.IMDB = itemID
	default:
		rids.Slug = itemID
	}

	return IDObject{itemType: {{IDs: &rids}}}, nil
}
