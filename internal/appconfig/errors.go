package appconfig

import "errors"

var (
	// ErrInvalidKey indicates a configuration key with a missing component.
	ErrInvalidKey = errors.New("invalid configuration key")

	// ErrNotFound indicates the configuration does not exist in the source.
	ErrNotFound = errors.New("configuration not found")

	// ErrUnauthorized indicates the source rejected our credentials.
	ErrUnauthorized = errors.New("configuration source unauthorized")

	// ErrUnavailable indicates the source could not be reached or failed.
	ErrUnavailable = errors.New("configuration source unavailable")
)
