package config

import (
	"fmt"
	"time"
)

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Backend is one of [BackendFile], [BackendSQLite], [BackendMemory].
	Backend string
	// DataDir is the snapshot directory of the file backend.
	DataDir string
	// DB holds local database settings.
	DB ClientDB
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientCalendar holds resolved calendar settings.
type ClientCalendar struct {
	// WeekStart is the first column of the month grid.
	WeekStart time.Weekday
	// Location is the zone in which calendar days are cut.
	Location *time.Location
}

// ClientDashboard holds dashboard widget sizes.
type ClientDashboard struct {
	UpcomingLimit    int
	TaskLimit        int
	CompactTaskLimit int
	RecentNotesLimit int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Storage   ClientStorage
	Calendar  ClientCalendar
	Dashboard ClientDashboard
	// LogFile is the client log file path; empty means next to the executable.
	LogFile string
}

// GetClientConfig builds a client config view from the merged structured
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps a validated [StructuredConfig] to a [ClientConfig],
// resolving the week start and the timezone.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	weekStart, err := parseWeekStart(cfg.Calendar.WeekStart)
	if err != nil {
		return nil, err
	}
	loc, err := loadLocation(cfg.Calendar.Timezone)
	if err != nil {
		return nil, err
	}

	return &ClientConfig{
		Storage: ClientStorage{
			Backend: cfg.Storage.Backend,
			DataDir: cfg.Storage.DataDir,
			DB:      ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Calendar: ClientCalendar{
			WeekStart: weekStart,
			Location:  loc,
		},
		Dashboard: ClientDashboard{
			UpcomingLimit:    cfg.Dashboard.UpcomingLimit,
			TaskLimit:        cfg.Dashboard.TaskLimit,
			CompactTaskLimit: cfg.Dashboard.CompactTaskLimit,
			RecentNotesLimit: cfg.Dashboard.RecentNotesLimit,
		},
		LogFile: cfg.Log.File,
	}, nil
}
