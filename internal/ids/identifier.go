// Package ids validates caller-supplied content identifiers and builds the
// nested id objects the Trakt sync endpoints expect in request bodies.
package ids

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/amaumene/trakt-mcp/internal/errs"
)

var imdbPattern = regexp.MustCompile(`^tt\d+$`)

// Identifier is a flexible content identifier: a Trakt numeric ID, a slug,
// an IMDB/TMDB/TVDB ID, or a title+year pair. Built per call from tool
// arguments, validated once, never persisted.
type Identifier struct {
	TraktID string
	Slug    string
	IMDBID  string
	TMDBID  string
	TVDBID  string
	Title   string
	Year    int
}

// Validate trims and checks every field of in and returns the normalized
// identifier. String fields that are empty after trimming count as absent.
// At least one ID field, or both title and year, must remain; label prefixes
// the error message (e.g. "Movie must include either ...").
func Validate(in Identifier, label string) (Identifier, error) {
	id := Identifier{
		TraktID: strings.TrimSpace(in.TraktID),
		Slug:    strings.TrimSpace(in.Slug),
		IMDBID:  strings.TrimSpace(in.IMDBID),
		TMDBID:  strings.TrimSpace(in.TMDBID),
		TVDBID:  strings.TrimSpace(in.TVDBID),
		Title:   strings.TrimSpace(in.Title),
		Year:    in.Year,
	}

	for _, f := range []struct{ name, value string }{
		{"trakt_id", id.TraktID},
		{"tmdb_id", id.TMDBID},
		{"tvdb_id", id.TVDBID},
	} {
		if f.value != "" && !isDigits(f.value) {
			return Identifier{}, fmt.Errorf("%s %s %q must contain only digits: %w", label, f.name, f.value, errs.ErrInvalidArgument)
		}
	}
	if id.IMDBID != "" && !imdbPattern.MatchString(id.IMDBID) {
		return Identifier{}, fmt.Errorf("%s imdb_id %q must match \"tt\" followed by digits: %w", label, id.IMDBID, errs.ErrInvalidArgument)
	}
	if id.Year != 0 && id.Year <= 1800 {
		return Identifier{}, fmt.Errorf("%s year %d must be greater than 1800: %w", label, id.Year, errs.ErrInvalidArgument)
	}

	hasID := id.TraktID != "" || id.Slug != "" || id.IMDBID != "" || id.TMDBID != "" || id.TVDBID != ""
	if !hasID && (id.Title == "" || id.Year == 0) {
		return Identifier{}, fmt.Errorf("%s must include either an identifier (trakt_id, slug, imdb_id, tmdb_id or tvdb_id) or both title and year: %w", label, errs.ErrInvalidArgument)
	}
	return id, nil
}

// SyncItem converts the validated identifier into one entry of a Trakt sync
// request body.
func (id Identifier) SyncItem() SyncItem {
	item := SyncItem{Title: id.Title, Year: id.Year}
	rids := RequestIDs{
		Slug:   id.Slug,
		IMDB:   id.IMDBID,
		Trakt:  atoiOrZero(id.TraktID),
		TMDB:   atoiOrZero(id.TMDBID),
		TVDB:   atoiOrZero(id.TVDBID),
	}
	if rids != (RequestIDs{}) {
		item.IDs = &rids
	}
	return item
}

// PathID returns the value to use as a URL path segment for read endpoints,
// preferring the Trakt ID, then slug, then IMDB ID. Empty when the
// identifier only carries title+year.
func (id Identifier) PathID() string {
	switch {
	case id.TraktID != "":
		return id.TraktID
	case id.Slug != "":
		return id.Slug
	case id.IMDBID != "":
		return id.IMDBID
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// atoiOrZero is safe after isDigits validation; conversion failures (e.g.
// overflow) fall back to zero, leaving the field unset.
func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
