// Package migrations provides embedded SQL migration files.
package migrations

import (
	_ "embed"
)

// ConfigurationsSQL creates the hosted configuration store.
//
//go:embed sql/001_configurations.sql
var ConfigurationsSQL string
