// Package repositories holds the data access layer for the dashboard pages.
// Each page depends on an interface; the bundled implementations are seeded
// in-memory stores whose mutations last for the process lifetime only, until
// a real backend replaces them. User accounts and business cards are the two
// entities with durable storage and live elsewhere (Postgres, cardstore).
package repositories

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a repository has no record with the given id.
var ErrNotFound = errors.New("record not found")

// matches does a case-insensitive substring check of query against any of
// the fields. An empty query matches everything.
func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
