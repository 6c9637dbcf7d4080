package render

import (
	"strings"
	"testing"
	"time"

	"github.com/amaumene/trakt-mcp/internal/pagination"
	"github.com/amaumene/trakt-mcp/internal/services/trakt"
)

func TestTrendingMovies(t *testing.T) {
	got := TrendingMovies([]trakt.TrendingMovie{
		{Watchers: 42, Movie: trakt.Movie{Title: "The Matrix", Year: 1999, IDs: trakt.IDs{Trakt: 481}}},
	})
	want := "🎬 **The Matrix** (1999) - Trakt ID: 481 - 42 watchers"
	if !strings.Contains(got, want) {
		t.Errorf("TrendingMovies() = %q, want it to contain %q", got, want)
	}
}

func TestTrendingMoviesEmpty(t *testing.T) {
	if got := TrendingMovies(nil); got != "No trending movies found." {
		t.Errorf("TrendingMovies(nil) = %q", got)
	}
}

func TestHistoryEpisode(t *testing.T) {
	watched := time.Date(2024, 3, 15, 21, 0, 0, 0, time.UTC)
	got := History([]trakt.HistoryItem{
		{
			Type:      "episode",
			WatchedAt: watched,
			Show:      &trakt.Show{Title: "Severance"},
			Episode:   &trakt.Episode{Season: 2, Number: 3, Title: "Who Is Alive?"},
		},
	})
	want := "📺 Severance S02E03 - Who Is Alive? (2024-03-15)"
	if !strings.Contains(got, want) {
		t.Errorf("History() = %q, want it to contain %q", got, want)
	}
}

func TestSyncOutcome(t *testing.T) {
	tests := []struct {
		name   string
		resp   trakt.SyncResponse
		action string
		want   string
	}{
		{
			name:   "added",
			resp:   trakt.SyncResponse{Added: trakt.SyncStats{Movies: 1}},
			action: "Added to watchlist",
			want:   "✅ Added to watchlist: 1 movie(s), 0 show(s), 0 episode(s)",
		},
		{
			name:   "deleted",
			resp:   trakt.SyncResponse{Deleted: trakt.SyncStats{Shows: 2}},
			action: "Removed from history",
			want:   "✅ Removed from history: 0 movie(s), 2 show(s), 0 episode(s)",
		},
		{
			name:   "existing",
			resp:   trakt.SyncResponse{Existing: trakt.SyncStats{Movies: 1}},
			action: "Added to watchlist",
			want:   "ℹ️ Already present: 1 movie(s), 0 show(s)",
		},
		{
			name:   "nothing",
			resp:   trakt.SyncResponse{},
			action: "Rated",
			want:   "Rated: nothing changed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SyncOutcome(tt.action, &tt.resp); got != tt.want {
				t.Errorf("SyncOutcome() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSyncOutcomeNotFound(t *testing.T) {
	var resp trakt.SyncResponse
	resp.NotFound.Movies = append(resp.NotFound.Movies, struct {
		IDs trakt.IDs `json:"ids"`
	}{IDs: trakt.IDs{IMDB: "tt0000000"}})

	if got := SyncOutcome("Added to watchlist", &resp); got != "⚠️ Item not found on Trakt" {
		t.Errorf("SyncOutcome() = %q", got)
	}
}

func TestPageFooter(t *testing.T) {
	md := "# Watchlist\n"
	if got := PageFooter[trakt.Movie](md, nil); got != md {
		t.Errorf("PageFooter(nil) = %q, want unchanged input", got)
	}

	page := &pagination.Response[trakt.Movie]{
		Pagination: pagination.NewMetadata(2, 5, 47, 10),
	}
	got := PageFooter(md, page)
	if !strings.Contains(got, "Page 2 of 5 (47 total items)") {
		t.Errorf("PageFooter() = %q, want it to contain the page summary", got)
	}
}
