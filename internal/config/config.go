// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Storage backends accepted by Storage.Backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Week starts accepted by Calendar.WeekStart.
const (
	WeekStartSunday = "sunday"
	WeekStartMonday = "monday"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage selects and configures the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Calendar controls month-grid layout and the display timezone.
	Calendar Calendar `envPrefix:"CALENDAR_"`

	// Dashboard holds list sizes for the dashboard widgets.
	Dashboard Dashboard `envPrefix:"DASHBOARD_"`

	// Log holds client log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the persistence settings.
type Storage struct {
	// Backend is one of "file", "sqlite" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DataDir is the directory holding one JSON snapshot file per user.
	// Used by the file backend.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// DB holds the SQLite settings used by the sqlite backend.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "planner.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Calendar holds calendar presentation settings.
type Calendar struct {
	// WeekStart is "sunday" or "monday".
	// Env: CALENDAR_WEEK_START
	WeekStart string `env:"WEEK_START"`

	// Timezone is an IANA zone name; empty means the local zone.
	// Env: CALENDAR_TIMEZONE
	Timezone string `env:"TIMEZONE"`
}

// Dashboard holds the number of items shown by each dashboard widget.
type Dashboard struct {
	// Env: DASHBOARD_UPCOMING_LIMIT
	UpcomingLimit int `env:"UPCOMING_LIMIT"`
	// Env: DASHBOARD_TASK_LIMIT
	TaskLimit int `env:"TASK_LIMIT"`
	// Env: DASHBOARD_COMPACT_TASK_LIMIT
	CompactTaskLimit int `env:"COMPACT_TASK_LIMIT"`
	// Env: DASHBOARD_RECENT_NOTES_LIMIT
	RecentNotesLimit int `env:"RECENT_NOTES_LIMIT"`
}

// Log holds log output settings.
type Log struct {
	// File is the client log file path.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Defaults returns the values used for every field no source has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Backend: BackendFile,
			DataDir: "data",
			DB:      DB{DSN: "planner.db"},
		},
		Calendar: Calendar{
			WeekStart: WeekStartSunday,
		},
		Dashboard: Dashboard{
			UpcomingLimit:    3,
			TaskLimit:        5,
			CompactTaskLimit: 3,
			RecentNotesLimit: 3,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
