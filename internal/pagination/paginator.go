package pagination

import "context"

// PageResult is one upstream page plus the pagination counters the API
// reported for it. Zero counters mean the endpoint sent no pagination
// headers; the paginator then relies on the short-page stop signal alone.
type PageResult[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
	TotalCount  int
}

// FetchFunc fetches a single page of results at the given page size. The
// Trakt client's paged endpoint methods satisfy this signature directly.
type FetchFunc[T any] func(ctx context.Context, page, limit int) (PageResult[T], error)

// Result is the outcome of Paginate. In auto mode Items holds the merged
// sequence and Page is nil; when the caller requested an explicit page, Page
// holds the envelope and Items aliases its data.
type Result[T any] struct {
	Items []T
	Page  *Response[T]
}

// Paginate fetches results through fetch. page <= 0 means no explicit page
// was requested: successive pages are fetched from page 1 and merged until a
// stop condition (see fetchAll). With an explicit page exactly one fetch is
// issued and wrapped in a Response. Fetch errors propagate unchanged and no
// partial results are returned.
func Paginate[T any](ctx context.Context, fetch FetchFunc[T], limit, page int, cfg Config) (Result[T], error) {
	if err := CheckLimitPage(limit, page); err != nil {
		return Result[T]{}, err
	}
	eff, err := Effective(limit, cfg)
	if err != nil {
		return Result[T]{}, err
	}
	cfg = cfg.normalized()

	if page > 0 {
		res, err := fetch(ctx, page, eff.APILimit)
		if err != nil {
			return Result[T]{}, err
		}
		current := res.CurrentPage
		if current == 0 {
			current = page
		}
		resp := &Response[T]{
			Data:       res.Items,
			Pagination: NewMetadata(current, res.TotalPages, res.TotalCount, eff.APILimit),
		}
		return Result[T]{Items: resp.Data, Page: resp}, nil
	}

	items, err := fetchAll(ctx, fetch, eff, cfg.MaxPages)
	if err != nil {
		return Result[T]{}, err
	}
	return Result[T]{Items: items}, nil
}

// fetchAll fetches pages sequentially starting at 1, merging items in page
// order, and stops on the first of: the total-item cap (truncating only the
// final page's excess), a short or empty page, the max-page ceiling, or the
// upstream reporting the current page is the last. Pages are fetched one at
// a time because each page's result decides whether another is needed.
func fetchAll[T any](ctx context.Context, fetch FetchFunc[T], eff EffectiveLimit, maxPages int) ([]T, error) {
	var merged []T
	for page := 1; page <= maxPages; page++ {
		res, err := fetch(ctx, page, eff.APILimit)
		if err != nil {
			return nil, err
		}
		merged = append(merged, res.Items...)
		if len(merged) >= eff.MaxItems {
			return merged[:eff.MaxItems], nil
		}
		if len(res.Items) < eff.APILimit {
			break
		}
		if res.TotalPages > 0 && res.CurrentPage >= res.TotalPages {
			break
		}
	}
	return merged, nil
}
