package v1

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vmunix/marquee/internal/appconfig"
	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/search"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

//go:generate mockgen -destination=mocks/mock_deps.go -package=mocks . CatalogService

// CatalogService defines the catalog operations the API needs.
type CatalogService interface {
	GetCatalog(ctx context.Context, key appconfig.Key, ttl time.Duration) (catalog.Snapshot, error)
	CachedKeys() int
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Catalog CatalogService

	// Optional dependencies
	Engine *search.Engine // nil uses substring genre matching
	Logger *slog.Logger
}

// Validate checks that required dependencies are set.
func (d ServerDeps) Validate() error {
	if d.Catalog == nil {
		return errors.Join(ErrMissingDependency, errors.New("catalog service is required"))
	}
	return nil
}
