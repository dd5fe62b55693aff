package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/vmunix/marquee/internal/appconfig"
	"github.com/vmunix/marquee/internal/cache"
)

// Source says where a snapshot came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Snapshot is one catalog value returned by GetCatalog.
type Snapshot struct {
	Entries   []Entry
	Source    Source
	Version   string    // remote document version, empty for fallback
	FetchedAt time.Time // zero for fallback
}

func (s Snapshot) clone() Snapshot {
	out := s
	out.Entries = make([]Entry, len(s.Entries))
	copy(out.Entries, s.Entries)
	return out
}

// SnapshotCache is the cache type the service reads and writes.
type SnapshotCache = cache.TTL[appconfig.Key, Snapshot]

// NewSnapshotCache creates an empty snapshot cache. A nil clock uses time.Now.
func NewSnapshotCache(now func() time.Time) *SnapshotCache {
	return cache.New[appconfig.Key, Snapshot](now)
}

// Service serves the current catalog: cached remote data when fresh, a new
// remote fetch otherwise, and the built-in fallback when the fetch fails.
type Service struct {
	fetcher appconfig.Fetcher
	cache   *SnapshotCache
	now     func() time.Time
	log     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock sets the clock used to stamp fetched snapshots.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCache shares an existing snapshot cache.
func WithCache(c *SnapshotCache) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

// NewService creates a catalog service over fetcher.
func NewService(fetcher appconfig.Fetcher, opts ...Option) *Service {
	s := &Service{
		fetcher: fetcher,
		now:     time.Now,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = NewSnapshotCache(s.now)
	}
	return s
}

// CachedKeys returns how many configuration keys have a cached snapshot.
func (s *Service) CachedKeys() int {
	return s.cache.Len()
}

// GetCatalog returns the catalog for key. Remote failures never surface:
// they are logged and the fallback catalog is returned without touching the
// cache, so the next call fetches again. The only error is an invalid key.
func (s *Service) GetCatalog(ctx context.Context, key appconfig.Key, ttl time.Duration) (Snapshot, error) {
	if err := key.Validate(); err != nil {
		return Snapshot{}, err
	}

	if snap, ok := s.cache.Get(key); ok {
		s.log.Debug("catalog cache hit", "key", key.String(), "entries", len(snap.Entries))
		return snap.clone(), nil
	}

	s.log.Debug("catalog cache miss, fetching", "key", key.String())
	start := time.Now()

	doc, err := s.fetcher.Fetch(ctx, key)
	if err != nil {
		s.log.Warn("catalog fetch failed, serving fallback",
			"key", key.String(),
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fallbackSnapshot(), nil
	}

	entries, err := ParseDocument(doc)
	if err != nil {
		s.log.Warn("catalog document rejected, serving fallback",
			"key", key.String(),
			"error", err,
		)
		return fallbackSnapshot(), nil
	}

	snap := Snapshot{
		Entries:   entries,
		Source:    SourceRemote,
		Version:   doc.Version,
		FetchedAt: s.now(),
	}
	s.cache.Put(key, snap, ttl, snap.FetchedAt)

	s.log.Info("catalog refreshed",
		"key", key.String(),
		"entries", len(entries),
		"version", doc.Version,
		"ttl", ttl.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return snap.clone(), nil
}

func fallbackSnapshot() Snapshot {
	return Snapshot{Entries: Fallback(), Source: SourceFallback}
}
