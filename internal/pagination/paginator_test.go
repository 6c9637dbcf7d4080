package pagination

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeFetch returns pages from the given item counts, tracking how many
// fetches were issued. Items are numbered sequentially across pages so
// ordering can be checked.
func fakeFetch(pageSizes []int) (FetchFunc[int], *int) {
	calls := new(int)
	fetch := func(ctx context.Context, page, limit int) (PageResult[int], error) {
		*calls++
		if page > len(pageSizes) {
			return PageResult[int]{CurrentPage: page}, nil
		}
		start := 0
		for _, n := range pageSizes[:page-1] {
			start += n
		}
		items := make([]int, pageSizes[page-1])
		for i := range items {
			items[i] = start + i
		}
		return PageResult[int]{Items: items, CurrentPage: page}, nil
	}
	return fetch, calls
}

func TestPaginateStopsOnShortPage(t *testing.T) {
	cfg := Config{MaxPageSize: 10, FetchAllLimit: 100, MaxPages: 100}
	fetch, calls := fakeFetch([]int{10, 3})

	res, err := Paginate(context.Background(), fetch, 0, 0, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != 13 {
		t.Errorf("expected 13 merged items, got %d", len(res.Items))
	}
	if *calls != 2 {
		t.Errorf("expected 2 fetches, got %d", *calls)
	}
	if res.Page != nil {
		t.Error("auto mode should not return a page envelope")
	}
	for i, v := range res.Items {
		if v != i {
			t.Fatalf("merged order broken at index %d: got %d", i, v)
		}
	}
}

func TestPaginateTruncatesAtItemCap(t *testing.T) {
	cfg := Config{MaxPageSize: 100, FetchAllLimit: 100, MaxPages: 100}
	fullPages := func(ctx context.Context, page, limit int) (PageResult[int], error) {
		items := make([]int, limit)
		return PageResult[int]{Items: items, CurrentPage: page}, nil
	}

	res, err := Paginate(context.Background(), fullPages, 0, 0, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != 100 {
		t.Errorf("expected exactly 100 items at the cap, got %d", len(res.Items))
	}
}

func TestPaginateMaxPagesCeiling(t *testing.T) {
	cfg := Config{MaxPageSize: 10, FetchAllLimit: 1000, MaxPages: 3}
	calls := 0
	fullPages := func(ctx context.Context, page, limit int) (PageResult[int], error) {
		calls++
		return PageResult[int]{Items: make([]int, limit), CurrentPage: page}, nil
	}

	res, err := Paginate(context.Background(), fullPages, 0, 0, cfg)
	if err != nil {
		t.Fatalf("hitting the page ceiling is not an error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected exactly 3 fetches, got %d", calls)
	}
	if len(res.Items) != 30 {
		t.Errorf("expected 30 items, got %d", len(res.Items))
	}
}

func TestPaginateStopsOnUpstreamLastPage(t *testing.T) {
	cfg := Config{MaxPageSize: 10, FetchAllLimit: 1000, MaxPages: 100}
	calls := 0
	// Upstream reports two total pages; both come back full.
	fetch := func(ctx context.Context, page, limit int) (PageResult[int], error) {
		calls++
		return PageResult[int]{
			Items:       make([]int, limit),
			CurrentPage: page,
			TotalPages:  2,
			TotalCount:  20,
		}, nil
	}

	res, err := Paginate(context.Background(), fetch, 0, 0, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 fetches, got %d", calls)
	}
	if len(res.Items) != 20 {
		t.Errorf("expected 20 items, got %d", len(res.Items))
	}
}

func TestPaginateExplicitPage(t *testing.T) {
	cfg := DefaultConfig()
	calls := 0
	fetch := func(ctx context.Context, page, limit int) (PageResult[int], error) {
		calls++
		if page != 2 {
			t.Errorf("expected fetch of page 2, got %d", page)
		}
		if limit != 10 {
			t.Errorf("expected page size 10, got %d", limit)
		}
		return PageResult[int]{
			Items:       []int{10, 11, 12},
			CurrentPage: 2,
			TotalPages:  5,
			TotalCount:  47,
		}, nil
	}

	res, err := Paginate(context.Background(), fetch, 10, 2, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("explicit page mode must issue exactly one fetch, got %d", calls)
	}
	if res.Page == nil {
		t.Fatal("expected a page envelope")
	}
	if res.Page.Pagination.CurrentPage != 2 {
		t.Errorf("expected current_page 2, got %d", res.Page.Pagination.CurrentPage)
	}
	if got := res.Page.Summary(); got != "Page 2 of 5 (47 total items)" {
		t.Errorf("unexpected summary: %q", got)
	}
}

func TestPaginateFetchErrorDiscardsPartialResults(t *testing.T) {
	cfg := Config{MaxPageSize: 10, FetchAllLimit: 100, MaxPages: 100}
	boom := errors.New("upstream exploded")
	fetch := func(ctx context.Context, page, limit int) (PageResult[int], error) {
		if page == 2 {
			return PageResult[int]{}, boom
		}
		return PageResult[int]{Items: make([]int, limit), CurrentPage: page}, nil
	}

	res, err := Paginate(context.Background(), fetch, 0, 0, cfg)
	if !errors.Is(err, boom) {
		t.Fatalf("expected the fetch error unchanged, got %v", err)
	}
	if res.Items != nil {
		t.Errorf("expected no partial results, got %d items", len(res.Items))
	}
}

func TestPaginateWrappedFetchErrorPropagates(t *testing.T) {
	cfg := DefaultConfig()
	fetch := func(ctx context.Context, page, limit int) (PageResult[int], error) {
		return PageResult[int]{}, fmt.Errorf("trakt api request: %w", context.DeadlineExceeded)
	}

	_, err := Paginate(context.Background(), fetch, 10, 0, cfg)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped cause to survive, got %v", err)
	}
}

func TestPaginateRejectsFetchAllWithExplicitPage(t *testing.T) {
	called := false
	fetch := func(ctx context.Context, page, limit int) (PageResult[int], error) {
		called = true
		return PageResult[int]{}, nil
	}

	_, err := Paginate(context.Background(), fetch, 0, 2, DefaultConfig())
	if err == nil {
		t.Fatal("expected error for limit=0 with explicit page")
	}
	if called {
		t.Error("no fetch may be issued for invalid arguments")
	}
}
