// Package movies decodes movie credit documents into records whose cast can be
// extracted as actor names.
//
// A credits document is a JSON array of objects in the TMDB credits shape:
//
//	[{"movie_id": 19995, "title": "Avatar", "cast": ..., "crew": ...}, ...]
//
// The cast field is heterogeneous in the wild. It may be
//
//   - a JSON array of objects carrying "name", or
//   - a JSON string whose content is such an array (the CSV export embeds it).
//
// Anything else is reported by Record.CastNames as ErrNoCast or
// ErrUndecodableCast; the record itself is still returned so the caller can
// account for it.
package movies

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrSourceUnavailable indicates the credits document could not be read.
	ErrSourceUnavailable = errors.New("movies: source unavailable")

	// ErrMalformedDocument indicates the document is not a JSON array.
	ErrMalformedDocument = errors.New("movies: malformed document")

	// ErrNoCast indicates the record has no cast field (absent or null).
	ErrNoCast = errors.New("movies: no cast field")

	// ErrUndecodableCast indicates the cast field is neither a list nor a
	// string holding a list.
	ErrUndecodableCast = errors.New("movies: undecodable cast")
)

// Record is one movie entry.
type Record struct {
	// ID is the TMDB movie id, 0 when absent.
	ID int64

	// Title is informational only.
	Title string

	cast  gjson.Result
	names []string // set by NewRecord; takes precedence over cast
}

// NewRecord builds a record whose cast is already a structured list of names.
func NewRecord(title string, names ...string) Record {
	cp := make([]string, len(names))
	copy(cp, names)

	return Record{Title: title, names: cp}
}

// MovieTitle returns the record title.
func (r Record) MovieTitle() string { return r.Title }

// CastNames returns the credited names in cast order.
//
// Entries without a string "name" and blank names are dropped. Duplicate
// names are kept; they only yield redundant edge insertions downstream.
func (r Record) CastNames() ([]string, error) {
	if r.names != nil {
		out := make([]string, 0, len(r.names))
		for _, n := range r.names {
			if n = strings.TrimSpace(n); n != "" {
				out = append(out, n)
			}
		}

		return out, nil
	}

	switch {
	case !r.cast.Exists() || r.cast.Type == gjson.Null:
		return nil, ErrNoCast
	case r.cast.IsArray():
		return extractNames(r.cast), nil
	case r.cast.Type == gjson.String:
		if !gjson.Valid(r.cast.Str) {
			return nil, ErrUndecodableCast
		}
		inner := gjson.Parse(r.cast.Str)
		if !inner.IsArray() {
			return nil, ErrUndecodableCast
		}

		return extractNames(inner), nil
	default:
		return nil, ErrUndecodableCast
	}
}

// extractNames collects the "name" of every object element of list.
func extractNames(list gjson.Result) []string {
	var out []string
	list.ForEach(func(_, entry gjson.Result) bool {
		if !entry.IsObject() {
			return true
		}
		name := entry.Get("name")
		if name.Type != gjson.String {
			return true
		}
		if n := strings.TrimSpace(name.Str); n != "" {
			out = append(out, n)
		}

		return true
	})

	return out
}
