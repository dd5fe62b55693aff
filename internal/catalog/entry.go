// Package catalog holds the movie catalog model, the configuration document
// parser, and the service that serves the current catalog.
package catalog

// DefaultGenre is used when a movie has no genre.
const DefaultGenre = "Unknown"

// Entry is one movie in the catalog. Treat it as an immutable value.
type Entry struct {
	ID    int64  `json:"id"`
	Name  string `json:"movieName"`
	Genre string `json:"genre"`
}

// NewEntry builds an entry, defaulting an empty genre to DefaultGenre.
func NewEntry(id int64, name, genre string) Entry {
	return Entry{
		ID:    id,
		Name:  name,
		Genre: valueOr(genre, DefaultGenre),
	}
}

// HasGenre reports whether the entry carries a real genre.
func (e Entry) HasGenre() bool {
	return e.Genre != "" && e.Genre != DefaultGenre
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
