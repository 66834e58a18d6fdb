package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (unknown
	// backend, empty data dir for the file backend, empty or in-memory DSN for
	// the sqlite backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCalendarConfigs indicates an unknown week start or timezone.
	ErrInvalidCalendarConfigs = errors.New("invalid calendar configuration")
	// ErrInvalidDashboardConfigs indicates a non-positive widget limit.
	ErrInvalidDashboardConfigs = errors.New("invalid dashboard configuration")
)
