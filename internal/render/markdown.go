// Package render formats Trakt API payloads as markdown for tool output.
package render

import (
	"fmt"
	"strings"

	"github.com/amaumene/trakt-mcp/internal/pagination"
	"github.com/amaumene/trakt-mcp/internal/services/trakt"
)

// TrendingMovies renders a trending movie list.
func TrendingMovies(items []trakt.TrendingMovie) string {
	if len(items) == 0 {
		return "No trending movies found."
	}
	var b strings.Builder
	b.WriteString("# Trending Movies\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "🎬 **%s** (%d) - Trakt ID: %d - %d watchers\n",
			it.Movie.Title, it.Movie.Year, it.Movie.IDs.Trakt, it.Watchers)
	}
	return b.String()
}

// TrendingShows renders a trending show list.
func TrendingShows(items []trakt.TrendingShow) string {
	if len(items) == 0 {
		return "No trending shows found."
	}
	var b strings.Builder
	b.WriteString("# Trending Shows\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "📺 **%s** (%d) - Trakt ID: %d - %d watchers\n",
			it.Show.Title, it.Show.Year, it.Show.IDs.Trakt, it.Watchers)
	}
	return b.String()
}

// Movies renders a plain movie list (popular, recommendations).
func Movies(title string, items []trakt.Movie) string {
	if len(items) == 0 {
		return "No movies found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, m := range items {
		fmt.Fprintf(&b, "🎬 **%s** (%d) - Trakt ID: %d\n", m.Title, m.Year, m.IDs.Trakt)
	}
	return b.String()
}

// Shows renders a plain show list (popular, recommendations).
func Shows(title string, items []trakt.Show) string {
	if len(items) == 0 {
		return "No shows found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, s := range items {
		fmt.Fprintf(&b, "📺 **%s** (%d) - Trakt ID: %d\n", s.Title, s.Year, s.IDs.Trakt)
	}
	return b.String()
}

// MovieDetail renders the full summary of one movie.
func MovieDetail(m *trakt.Movie) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%d)\n\n", m.Title, m.Year)
	if m.Tagline != "" {
		fmt.Fprintf(&b, "*%s*\n\n", m.Tagline)
	}
	if m.Overview != "" {
		fmt.Fprintf(&b, "%s\n\n", m.Overview)
	}
	if m.Released != "" {
		fmt.Fprintf(&b, "- Released: %s\n", m.Released)
	}
	if m.Runtime > 0 {
		fmt.Fprintf(&b, "- Runtime: %d min\n", m.Runtime)
	}
	if m.Votes > 0 {
		fmt.Fprintf(&b, "- Rating: %.1f/10 (%d votes)\n", m.Rating, m.Votes)
	}
	writeIDs(&b, m.IDs)
	return b.String()
}

// ShowDetail renders the full summary of one show.
func ShowDetail(s *trakt.Show) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%d)\n\n", s.Title, s.Year)
	if s.Overview != "" {
		fmt.Fprintf(&b, "%s\n\n", s.Overview)
	}
	if s.Status != "" {
		fmt.Fprintf(&b, "- Status: %s\n", s.Status)
	}
	if s.Network != "" {
		fmt.Fprintf(&b, "- Network: %s\n", s.Network)
	}
	if s.Runtime > 0 {
		fmt.Fprintf(&b, "- Runtime: %d min\n", s.Runtime)
	}
	if s.Votes > 0 {
		fmt.Fprintf(&b, "- Rating: %.1f/10 (%d votes)\n", s.Rating, s.Votes)
	}
	writeIDs(&b, s.IDs)
	return b.String()
}

func writeIDs(b *strings.Builder, ids trakt.IDs) {
	fmt.Fprintf(b, "- Trakt ID: %d\n", ids.Trakt)
	if ids.Slug != "" {
		fmt.Fprintf(b, "- Slug: %s\n", ids.Slug)
	}
	if ids.IMDB != "" {
		fmt.Fprintf(b, "- IMDB: %s\n", ids.IMDB)
	}
	if ids.TMDB != 0 {
		fmt.Fprintf(b, "- TMDB: %d\n", ids.TMDB)
	}
}

// SearchResults renders search hits with the identifiers needed for
// follow-up tool calls.
func SearchResults(items []trakt.SearchResult, query string) string {
	if len(items) == 0 {
		return fmt.Sprintf("No results found for: %s", query)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Search Results for %q\n\n", query)
	for _, r := range items {
		switch {
		case r.Movie != nil:
			fmt.Fprintf(&b, "🎬 **%s** (%d) - movie - Trakt ID: %d\n",
				r.Movie.Title, r.Movie.Year, r.Movie.IDs.Trakt)
		case r.Show != nil:
			fmt.Fprintf(&b, "📺 **%s** (%d) - show - Trakt ID: %d\n",
				r.Show.Title, r.Show.Year, r.Show.IDs.Trakt)
		}
	}
	return b.String()
}

// History renders watch-history entries.
func History(items []trakt.HistoryItem) string {
	if len(items) == 0 {
		return "No watch history found."
	}
	var b strings.Builder
	b.WriteString("# Watch History\n\n")
	for _, h := range items {
		switch h.Type {
		case "episode":
			if h.Show != nil && h.Episode != nil {
				fmt.Fprintf(&b, "📺 %s S%02dE%02d - %s (%s)\n",
					h.Show.Title, h.Episode.Season, h.Episode.Number,
					h.Episode.Title, h.WatchedAt.Format("2006-01-02"))
			}
		case "movie":
			if h.Movie != nil {
				fmt.Fprintf(&b, "🎬 %s (%s)\n",
					h.Movie.Title, h.WatchedAt.Format("2006-01-02"))
			}
		}
	}
	return b.String()
}

// Watchlist renders watchlist entries.
func Watchlist(items []trakt.WatchlistItem) string {
	if len(items) == 0 {
		return "Watchlist is empty."
	}
	var b strings.Builder
	b.WriteString("# Watchlist\n\n")
	for _, w := range items {
		switch {
		case w.Movie != nil:
			fmt.Fprintf(&b, "🎬 **%s** (%d) - added %s\n",
				w.Movie.Title, w.Movie.Year, w.ListedAt.Format("2006-01-02"))
		case w.Show != nil:
			fmt.Fprintf(&b, "📺 **%s** (%d) - added %s\n",
				w.Show.Title, w.Show.Year, w.ListedAt.Format("2006-01-02"))
		}
	}
	return b.String()
}

// Ratings renders the user's ratings.
func Ratings(items []trakt.RatingItem) string {
	if len(items) == 0 {
		return "No ratings found."
	}
	var b strings.Builder
	b.WriteString("# Ratings\n\n")
	for _, r := range items {
		switch {
		case r.Movie != nil:
			fmt.Fprintf(&b, "🎬 **%s** (%d) - %d/10\n", r.Movie.Title, r.Movie.Year, r.Rating)
		case r.Show != nil:
			fmt.Fprintf(&b, "📺 **%s** (%d) - %d/10\n", r.Show.Title, r.Show.Year, r.Rating)
		}
	}
	return b.String()
}

// Comments renders comments for a movie or show.
func Comments(items []trakt.Comment) string {
	if len(items) == 0 {
		return "No comments found."
	}
	var b strings.Builder
	b.WriteString("# Comments\n\n")
	for _, c := range items {
		spoiler := ""
		if c.Spoiler {
			spoiler = " ⚠️ spoiler"
		}
		fmt.Fprintf(&b, "**%s** (%s, %d likes)%s\n\n%s\n\n---\n\n",
			c.User.Username, c.CreatedAt.Format("2006-01-02"), c.Likes, spoiler, c.Comment)
	}
	return b.String()
}

// ShowProgress renders the user's progress through a show.
func ShowProgress(title string, p *trakt.ShowProgress) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Progress for %s\n\n", title)
	fmt.Fprintf(&b, "Watched %d of %d aired episodes\n", p.Completed, p.Aired)
	if p.NextEpisode != nil {
		fmt.Fprintf(&b, "\nNext up: S%02dE%02d - %s\n",
			p.NextEpisode.Season, p.NextEpisode.Number, p.NextEpisode.Title)
	}
	return b.String()
}

// SyncOutcome renders the result of a sync write operation.
func SyncOutcome(action string, resp *trakt.SyncResponse) string {
	counts := func(s trakt.SyncStats) int { return s.Movies + s.Shows + s.Episodes }
	switch {
	case counts(resp.Added) > 0:
		return fmt.Sprintf("✅ %s: %d movie(s), %d show(s), %d episode(s)",
			action, resp.Added.Movies, resp.Added.Shows, resp.Added.Episodes)
	case counts(resp.Deleted) > 0:
		return fmt.Sprintf("✅ %s: %d movie(s), %d show(s), %d episode(s)",
			action, resp.Deleted.Movies, resp.Deleted.Shows, resp.Deleted.Episodes)
	case counts(resp.Existing) > 0:
		return fmt.Sprintf("ℹ️ Already present: %d movie(s), %d show(s)",
			resp.Existing.Movies, resp.Existing.Shows)
	case len(resp.NotFound.Movies) > 0 || len(resp.NotFound.Shows) > 0:
		return "⚠️ Item not found on Trakt"
	}
	return fmt.Sprintf("%s: nothing changed", action)
}

// PageFooter appends the page summary line to rendered markdown.
func PageFooter[T any](md string, page *pagination.Response[T]) string {
	if page == nil {
		return md
	}
	return md + "\n" + page.Summary() + "\n"
}
