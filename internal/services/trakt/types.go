package trakt

import "time"

// IDs holds the external identifiers of a movie, show or episode.
type IDs struct {
	Trakt int    `json:"trakt,omitempty"`
	Slug  string `json:"slug,omitempty"`
	IMDB  string `json:"imdb,omitempty"`
	TMDB  int    `json:"tmdb,omitempty"`
	TVDB  int    `json:"tvdb,omitempty"`
}

// Movie represents a Trakt movie. The extended fields are populated only by
// summary requests (?extended=full).
type Movie struct {
	Title    string  `json:"title"`
	Year     int     `json:"year"`
	IDs      IDs     `json:"ids"`
	Tagline  string  `json:"tagline,omitempty"`
	Overview string  `json:"overview,omitempty"`
	Released string  `json:"released,omitempty"`
	Runtime  int     `json:"runtime,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	Votes    int     `json:"votes,omitempty"`
}

// Show represents a Trakt TV show.
type Show struct {
	Title    string  `json:"title"`
	Year     int     `json:"year"`
	IDs      IDs     `json:"ids"`
	Overview string  `json:"overview,omitempty"`
	Status   string  `json:"status,omitempty"`
	Network  string  `json:"network,omitempty"`
	Runtime  int     `json:"runtime,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	Votes    int     `json:"votes,omitempty"`
}

// Episode represents a Trakt episode.
type Episode struct {
	Season int    `json:"season"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	IDs    IDs    `json:"ids"`
}

// TrendingMovie wraps a movie with its current watcher count.
type TrendingMovie struct {
	Watchers int   `json:"watchers"`
	Movie    Movie `json:"movie"`
}

// TrendingShow wraps a show with its current watcher count.
type TrendingShow struct {
	Watchers int  `json:"watchers"`
	Show     Show `json:"show"`
}

// SearchResult is one hit from the text-search or id-lookup endpoints.
type SearchResult struct {
	Type  string  `json:"type"` // "movie", "show" or "episode"
	Score float64 `json:"score"`
	Movie *Movie  `json:"movie,omitempty"`
	Show  *Show   `json:"show,omitempty"`
}

// HistoryItem is one entry of the user's watch history.
type HistoryItem struct {
	ID        int64     `json:"id"`
	WatchedAt time.Time `json:"watched_at"`
	Action    string    `json:"action"` // "watch", "scrobble" or "checkin"
	Type      string    `json:"type"`   // "movie" or "episode"
	Movie     *Movie    `json:"movie,omitempty"`
	Show      *Show     `json:"show,omitempty"`
	Episode   *Episode  `json:"episode,omitempty"`
}

// WatchlistItem is one entry of the user's watchlist.
type WatchlistItem struct {
	Rank     int       `json:"rank"`
	ListedAt time.Time `json:"listed_at"`
	Type     string    `json:"type"` // "movie" or "show"
	Movie    *Movie    `json:"movie,omitempty"`
	Show     *Show     `json:"show,omitempty"`
}

// RatingItem is one entry of the user's ratings.
type RatingItem struct {
	RatedAt time.Time `json:"rated_at"`
	Rating  int       `json:"rating"` // 1-10
	Type    string    `json:"type"`
	Movie   *Movie    `json:"movie,omitempty"`
	Show    *Show     `json:"show,omitempty"`
}

// Comment is a user comment on a movie or show.
type Comment struct {
	ID        int64     `json:"id"`
	Comment   string    `json:"comment"`
	Spoiler   bool      `json:"spoiler"`
	Review    bool      `json:"review"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	User      struct {
		Username string `json:"username"`
	} `json:"user"`
}

// SyncStats contains per-type counts from a sync operation.
type SyncStats struct {
	Movies   int `json:"movies"`
	Shows    int `json:"shows"`
	Episodes int `json:"episodes"`
}

// SyncResponse is the response of the sync write endpoints.
type SyncResponse struct {
	Added    SyncStats `json:"added"`
	Deleted  SyncStats `json:"deleted"`
	Existing SyncStats `json:"existing"`
	NotFound struct {
		Movies []struct {
			IDs IDs `json:"ids"`
		} `json:"movies"`
		Shows []struct {
			IDs IDs `json:"ids"`
		} `json:"shows"`
	} `json:"not_found"`
}

// ShowProgress is the user's watch progress for one show.
type ShowProgress struct {
	Aired       int      `json:"aired"`
	Completed   int      `json:"completed"`
	NextEpisode *Episode `json:"next_episode"`
	Seasons     []struct {
		Number   int `json:"number"`
		Episodes []struct {
			Number    int  `json:"number"`
			Completed bool `json:"completed"`
		} `json:"episodes"`
	} `json:"seasons"`
}
