package config

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses the process command line.
//
// Flags:
//
//	-b storage backend: file, sqlite or memory
//	-data-dir directory for per-user snapshot files
//	-d sqlite database DSN
//	-week-start first day of the calendar week: sunday or monday
//	-tz IANA timezone for calendar days
//	-log-file client log file path
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var backend, dataDir, databaseDSN string
	var weekStart, timezone string
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("planner", flag.ContinueOnError)
	fs.StringVar(&backend, "b", "", "Storage backend (file, sqlite, memory)")
	fs.StringVar(&dataDir, "data-dir", "", "Snapshot files directory")
	fs.StringVar(&databaseDSN, "d", "", "SQLite database DSN")
	fs.StringVar(&weekStart, "week-start", "", "First day of the week (sunday, monday)")
	fs.StringVar(&timezone, "tz", "", "IANA timezone for calendar days")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Backend: backend,
			DataDir: dataDir,
			DB:      DB{DSN: databaseDSN},
		},
		Calendar: Calendar{
			WeekStart: weekStart,
			Timezone:  timezone,
		},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}
