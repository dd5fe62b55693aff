package appconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/vmunix/marquee/internal/migrations"
)

// Store is a hosted configuration store backed by SQLite. It plays the role
// of the remote source; the catalog core only ever reads from it.
type Store struct {
	db *sql.DB
}

// NewStore creates a store over db. Call Migrate before first use.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the configurations table if needed.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, migrations.ConfigurationsSQL); err != nil {
		return fmt.Errorf("migrate configurations: %w", err)
	}
	return nil
}

// StoredConfig describes one stored document without its content.
type StoredConfig struct {
	Key         Key
	ContentType string
	Version     int64
	Size        int
	UpdatedAt   time.Time
}

// Put stores content under key, bumping the version. Returns the new version.
func (s *Store) Put(ctx context.Context, key Key, content []byte, contentType string) (int64, error) {
	if err := key.Validate(); err != nil {
		return 0, err
	}
	if contentType == "" {
		contentType = "application/json"
	}

	var version int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO configurations (application, environment, name, content, content_type, version, updated_at)
		VALUES (?, ?, ?, ?, ?, 1, ?)
		ON CONFLICT(application, environment, name) DO UPDATE SET
			content = excluded.content,
			content_type = excluded.content_type,
			version = configurations.version + 1,
			updated_at = excluded.updated_at
		RETURNING version`,
		key.Application, key.Environment, key.Config, content, contentType, time.Now().UTC(),
	).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("put configuration: %w", err)
	}
	return version, nil
}

// Fetch implements Fetcher.
func (s *Store) Fetch(ctx context.Context, key Key) (*Document, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	var (
		content     []byte
		contentType string
		version     int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT content, content_type, version FROM configurations
		WHERE application = ? AND environment = ? AND name = ?`,
		key.Application, key.Environment, key.Config,
	).Scan(&content, &contentType, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: query configuration: %v", ErrUnavailable, err)
	}

	return &Document{
		Content:     content,
		ContentType: contentType,
		Version:     strconv.FormatInt(version, 10),
	}, nil
}

// List returns all stored configurations ordered by key.
func (s *Store) List(ctx context.Context) ([]StoredConfig, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT application, environment, name, content_type, version, length(content), updated_at
		FROM configurations
		ORDER BY application, environment, name`)
	if err != nil {
		return nil, fmt.Errorf("list configurations: %w", err)
	}
	defer rows.Close()

	var out []StoredConfig
	for rows.Next() {
		var c StoredConfig
		if err := rows.Scan(&c.Key.Application, &c.Key.Environment, &c.Key.Config,
			&c.ContentType, &c.Version, &c.Size, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan configuration: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Delete removes the configuration for key.
func (s *Store) Delete(ctx context.Context, key Key) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM configurations WHERE application = ? AND environment = ? AND name = ?`,
		key.Application, key.Environment, key.Config,
	)
	if err != nil {
		return fmt.Errorf("delete configuration: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete configuration: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return nil
}
