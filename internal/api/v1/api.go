// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vmunix/marquee/internal/appconfig"
	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/search"
)

// Config holds API server configuration.
type Config struct {
	Key       appconfig.Key
	CacheTTL  time.Duration
	Version   string
	RateLimit float64 // requests per second per client, 0 disables
	RateBurst int
}

// Server is the v1 API server.
type Server struct {
	deps    ServerDeps
	cfg     Config
	engine  *search.Engine
	limiter *clientLimiter
	log     *slog.Logger
}

// New creates a new v1 API server with the given dependencies.
func New(deps ServerDeps, cfg Config) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	engine := deps.Engine
	if engine == nil {
		engine = search.NewEngine(search.GenreSubstring)
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		deps:   deps,
		cfg:    cfg,
		engine: engine,
		log:    log.With("component", "api"),
	}
	if cfg.RateLimit > 0 {
		s.limiter = newClientLimiter(cfg.RateLimit, cfg.RateBurst, time.Now)
	}
	return s, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/movies", s.listMovies)
	mux.HandleFunc("GET /api/v1/movies/search", s.searchMovies)
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Handler returns the API routes wrapped in panic recovery and, when
// configured, per-client rate limiting.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return s.recoverPanic(s.rateLimit(mux))
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	writeJSON(w, code, errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) catalogError(w http.ResponseWriter, err error) {
	if errors.Is(err, appconfig.ErrInvalidKey) {
		s.log.Error("catalog key misconfigured", "error", err)
		writeError(w, http.StatusInternalServerError, "CONFIG_ERROR", err.Error())
		return
	}
	s.log.Error("catalog lookup failed", "error", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "catalog lookup failed")
}

func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	snap, err := s.deps.Catalog.GetCatalog(r.Context(), s.cfg.Key, s.cfg.CacheTTL)
	if err != nil {
		s.catalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, moviesResponse{
		Movies:  snap.Entries,
		Count:   len(snap.Entries),
		Source:  snap.Source,
		Version: snap.Version,
	})
}

func (s *Server) searchMovies(w http.ResponseWriter, r *http.Request) {
	criteria, ok := parseCriteria(w, r)
	if !ok {
		return
	}

	snap, err := s.deps.Catalog.GetCatalog(r.Context(), s.cfg.Key, s.cfg.CacheTTL)
	if err != nil {
		s.catalogError(w, err)
		return
	}

	matches := s.engine.Search(snap.Entries, criteria)
	s.log.Debug("search", "query", criteria.String(), "source", snap.Source, "matches", len(matches))

	writeJSON(w, http.StatusOK, searchResponse{
		Movies: matches,
		Count:  len(matches),
		Query: queryResponse{
			Name:    criteria.Name,
			ID:      criteria.ID,
			Genre:   criteria.Genre,
			Summary: criteria.String(),
		},
		Source: snap.Source,
	})
}

// parseCriteria reads the search terms from the query string. Over-long
// terms and negative ids are rejected; an unparsable id is ignored.
func parseCriteria(w http.ResponseWriter, r *http.Request) (search.Criteria, bool) {
	q := r.URL.Query()

	name := strings.TrimSpace(q.Get("name"))
	if utf8.RuneCountInString(name) > catalog.MaxNameLength {
		writeError(w, http.StatusBadRequest, "NAME_TOO_LONG", "name must be at most 200 characters")
		return search.Criteria{}, false
	}

	idTerm := strings.TrimSpace(q.Get("id"))
	if n, err := strconv.ParseInt(idTerm, 10, 64); err == nil && n < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "id must not be negative")
		return search.Criteria{}, false
	}

	genre := strings.TrimSpace(q.Get("genre"))
	if utf8.RuneCountInString(genre) > catalog.MaxGenreLength {
		writeError(w, http.StatusBadRequest, "GENRE_TOO_LONG", "genre must be at most 50 characters")
		return search.Criteria{}, false
	}

	return search.Criteria{Name: name, ID: search.ParseID(idTerm), Genre: genre}.Normalize(), true
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:     "ok",
		Version:    s.cfg.Version,
		Config:     s.cfg.Key.String(),
		CacheTTL:   s.cfg.CacheTTL.String(),
		GenreMatch: s.engine.Mode().String(),
		CachedKeys: s.deps.Catalog.CachedKeys(),
	})
}
