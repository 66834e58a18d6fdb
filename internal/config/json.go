package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	Storage struct {
		Backend string `json:"backend"`
		DataDir string `json:"data_dir"`
		DB      struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Calendar struct {
		WeekStart string `json:"week_start"`
		Timezone  string `json:"timezone"`
	} `json:"calendar,omitempty"`

	Dashboard struct {
		UpcomingLimit    int `json:"upcoming_limit"`
		TaskLimit        int `json:"task_limit"`
		CompactTaskLimit int `json:"compact_task_limit"`
		RecentNotesLimit int `json:"recent_notes_limit"`
	} `json:"dashboard,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			DataDir: jsonCfg.Storage.DataDir,
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Calendar: Calendar{
			WeekStart: jsonCfg.Calendar.WeekStart,
			Timezone:  jsonCfg.Calendar.Timezone,
		},
		Dashboard: Dashboard{
			UpcomingLimit:    jsonCfg.Dashboard.UpcomingLimit,
			TaskLimit:        jsonCfg.Dashboard.TaskLimit,
			CompactTaskLimit: jsonCfg.Dashboard.CompactTaskLimit,
			RecentNotesLimit: jsonCfg.Dashboard.RecentNotesLimit,
		},
		Log:          Log{File: jsonCfg.Log.File},
		JSONFilePath: "",
	}

	return cfg, nil
}
