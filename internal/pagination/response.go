package pagination

import "fmt"

// Metadata describes one page's position within the full result set, as
// reported by the Trakt X-Pagination headers.
type Metadata struct {
	CurrentPage     int  `json:"current_page"`
	TotalPages      int  `json:"total_pages"`
	TotalCount      int  `json:"total_count"`
	PerPage         int  `json:"per_page"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
	NextPage        *int `json:"next_page,omitempty"`
	PreviousPage    *int `json:"previous_page,omitempty"`
}

// NewMetadata derives the navigation flags and neighbor pointers from the
// raw upstream counters. TotalPages/TotalCount may be zero when the endpoint
// did not report them.
func NewMetadata(currentPage, totalPages, totalCount, perPage int) Metadata {
	if currentPage < 1 {
		currentPage = 1
	}
	m := Metadata{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		PerPage:     perPage,
	}
	if currentPage < totalPages {
		next := currentPage + 1
		m.HasNextPage = true
		m.NextPage = &next
	}
	if currentPage > 1 {
		prev := currentPage - 1
		m.HasPreviousPage = true
		m.PreviousPage = &prev
	}
	return m
}

// Response is a single page of results plus its navigation metadata.
// Immutable once built from one upstream page.
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// Summary returns a one-line description of the page, e.g.
// "Page 2 of 5 (47 total items)".
func (r *Response[T]) Summary() string {
	p := r.Pagination
	if p.TotalPages == 0 {
		// Endpoint did not report totals.
		return fmt.Sprintf("Page %d (%d items)", p.CurrentPage, len(r.Data))
	}
	return fmt.Sprintf("Page %d of %d (%d total items)", p.CurrentPage, p.TotalPages, p.TotalCount)
}
