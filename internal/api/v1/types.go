// internal/api/v1/types.go
package v1

import "github.com/vmunix/marquee/internal/catalog"

// moviesResponse is the response for GET /movies.
type moviesResponse struct {
	Movies  []catalog.Entry `json:"movies"`
	Count   int             `json:"count"`
	Source  catalog.Source  `json:"source"`
	Version string          `json:"version,omitempty"`
}

// searchResponse is the response for GET /movies/search.
type searchResponse struct {
	Movies []catalog.Entry `json:"movies"`
	Count  int             `json:"count"`
	Query  queryResponse   `json:"query"`
	Source catalog.Source  `json:"source"`
}

// queryResponse echoes the normalized search terms.
type queryResponse struct {
	Name    string `json:"name,omitempty"`
	ID      int64  `json:"id,omitempty"`
	Genre   string `json:"genre,omitempty"`
	Summary string `json:"summary"`
}

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Config     string `json:"config"`
	CacheTTL   string `json:"cache_ttl"`
	GenreMatch string `json:"genre_match"`
	CachedKeys int    `json:"cached_keys"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
