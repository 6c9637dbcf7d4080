package pagination

import "testing"

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		totalPages  int
		wantNext    int // 0 = absent
		wantPrev    int // 0 = absent
	}{
		{"middle page", 2, 5, 3, 1},
		{"first page", 1, 5, 2, 0},
		{"last page", 5, 5, 0, 4},
		{"single page", 1, 1, 0, 0},
		{"unknown totals", 3, 0, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMetadata(tt.current, tt.totalPages, 0, 10)

			if m.HasNextPage != (tt.wantNext != 0) {
				t.Errorf("has_next_page = %v", m.HasNextPage)
			}
			if m.HasPreviousPage != (tt.wantPrev != 0) {
				t.Errorf("has_previous_page = %v", m.HasPreviousPage)
			}
			if tt.wantNext != 0 {
				if m.NextPage == nil || *m.NextPage != tt.wantNext {
					t.Errorf("next_page = %v, want %d", m.NextPage, tt.wantNext)
				}
			} else if m.NextPage != nil {
				t.Errorf("next_page should be absent, got %d", *m.NextPage)
			}
			if tt.wantPrev != 0 {
				if m.PreviousPage == nil || *m.PreviousPage != tt.wantPrev {
					t.Errorf("previous_page = %v, want %d", m.PreviousPage, tt.wantPrev)
				}
			} else if m.PreviousPage != nil {
				t.Errorf("previous_page should be absent, got %d", *m.PreviousPage)
			}
		})
	}
}

func TestResponseSummary(t *testing.T) {
	r := &Response[string]{
		Data:       []string{"a", "b", "c"},
		Pagination: NewMetadata(2, 5, 47, 10),
	}
	if got := r.Summary(); got != "Page 2 of 5 (47 total items)" {
		t.Errorf("unexpected summary: %q", got)
	}

	// Without upstream totals the summary falls back to the page item count.
	r = &Response[string]{
		Data:       []string{"a", "b", "c"},
		Pagination: NewMetadata(1, 0, 0, 10),
	}
	if got := r.Summary(); got != "Page 1 (3 items)" {
		t.Errorf("unexpected summary: %q", got)
	}
}
