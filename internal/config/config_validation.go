// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// validate checks that the merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendFile:
		if cfg.Storage.DataDir == "" {
			return fmt.Errorf("%w: data dir is empty", ErrInvalidStorageConfigs)
		}
	case BackendSQLite:
		if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
			return fmt.Errorf("%w: sqlite dsn %q", ErrInvalidStorageConfigs, cfg.Storage.DB.DSN)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if _, err := parseWeekStart(cfg.Calendar.WeekStart); err != nil {
		return err
	}
	if _, err := loadLocation(cfg.Calendar.Timezone); err != nil {
		return err
	}

	d := cfg.Dashboard
	if d.UpcomingLimit <= 0 || d.TaskLimit <= 0 || d.CompactTaskLimit <= 0 || d.RecentNotesLimit <= 0 {
		return ErrInvalidDashboardConfigs
	}

	return nil
}

func parseWeekStart(s string) (time.Weekday, error) {
	switch strings.ToLower(s) {
	case WeekStartSunday:
		return time.Sunday, nil
	case WeekStartMonday:
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("%w: week start %q", ErrInvalidCalendarConfigs, s)
	}
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %w", ErrInvalidCalendarConfigs, name, err)
	}
	return loc, nil
}
