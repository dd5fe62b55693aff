// Package appconfig fetches raw configuration documents from a remote
// configuration source (an AppConfig agent endpoint or a hosted SQLite store).
package appconfig

import (
	"context"
	"fmt"
	"strings"
)

// Key identifies one configuration document.
type Key struct {
	Application string
	Environment string
	Config      string
}

// String renders the key as application/environment/config.
func (k Key) String() string {
	return k.Application + "/" + k.Environment + "/" + k.Config
}

// Validate reports ErrInvalidKey when any component is blank.
func (k Key) Validate() error {
	var missing []string
	if strings.TrimSpace(k.Application) == "" {
		missing = append(missing, "application")
	}
	if strings.TrimSpace(k.Environment) == "" {
		missing = append(missing, "environment")
	}
	if strings.TrimSpace(k.Config) == "" {
		missing = append(missing, "config")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidKey, strings.Join(missing, ", "))
	}
	return nil
}

// Document is a raw configuration payload as returned by a source.
type Document struct {
	Content     []byte
	ContentType string // e.g. "application/json"
	Version     string // source-specific version label, may be empty
}

//go:generate mockgen -destination=mocks/mock_fetcher.go -package=mocks . Fetcher

// Fetcher retrieves the raw configuration document for a key.
// Implementations may block on I/O and should honor ctx.
type Fetcher interface {
	Fetch(ctx context.Context, key Key) (*Document, error)
}
