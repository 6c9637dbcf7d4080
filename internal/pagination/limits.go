// Package pagination drives paged Trakt API fetches: it turns a caller limit
// into per-page fetch sizes, auto-fetches successive pages with safety caps,
// and wraps explicit page requests in a response envelope.
package pagination

import (
	"fmt"

	"github.com/amaumene/trakt-mcp/internal/errs"
)

// Defaults for the pagination tunables. The running values come from
// configuration; these are only the fallbacks for zero Config fields.
const (
	DefaultLimit         = 10
	DefaultMaxPageSize   = 100
	DefaultFetchAllLimit = 100
	DefaultMaxPages      = 100
)

// Config carries the injected pagination constants.
type Config struct {
	DefaultLimit  int // items returned when the caller gives no limit
	MaxPageSize   int // largest page the Trakt API accepts per request
	FetchAllLimit int // total-item ceiling when the caller asked for everything
	MaxPages      int // page-fetch ceiling per call, independent of FetchAllLimit
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		DefaultLimit:  DefaultLimit,
		MaxPageSize:   DefaultMaxPageSize,
		FetchAllLimit: DefaultFetchAllLimit,
		MaxPages:      DefaultMaxPages,
	}
}

// normalized fills zero fields with the package defaults.
func (c Config) normalized() Config {
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = DefaultLimit
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = DefaultMaxPageSize
	}
	if c.FetchAllLimit <= 0 {
		c.FetchAllLimit = DefaultFetchAllLimit
	}
	if c.MaxPages <= 0 {
		c.MaxPages = DefaultMaxPages
	}
	return c
}

// EffectiveLimit is the per-page fetch size and total-item cap derived from a
// caller limit.
type EffectiveLimit struct {
	APILimit int // page size passed to the API
	MaxItems int // total items returned to the caller
}

// Effective maps a caller limit to an EffectiveLimit. A positive limit means
// exactly that many items, fetched directly. Zero means "fetch all": the API
// has no such mode, so pages are fetched at the largest accepted size and the
// total is capped at cfg.FetchAllLimit. Negative limits are rejected.
func Effective(limit int, cfg Config) (EffectiveLimit, error) {
	if limit < 0 {
		return EffectiveLimit{}, fmt.Errorf("limit must be >= 0, got %d: %w", limit, errs.ErrInvalidArgument)
	}
	cfg = cfg.normalized()
	if limit == 0 {
		return EffectiveLimit{APILimit: cfg.MaxPageSize, MaxItems: cfg.FetchAllLimit}, nil
	}
	return EffectiveLimit{APILimit: limit, MaxItems: limit}, nil
}

// CheckLimitPage rejects the limit=0 ("fetch all") + explicit page
// combination: fetch-all is defined only under auto-pagination.
func CheckLimitPage(limit, page int) error {
	if limit < 0 {
		return fmt.Errorf("limit must be >= 0, got %d: %w", limit, errs.ErrInvalidArgument)
	}
	if limit == 0 && page > 0 {
		return fmt.Errorf("limit must be > 0 when page is given: %w", errs.ErrInvalidArgument)
	}
	return nil
}
