package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"storage": {"backend": "memory", "data_dir": "d", "db": {"dsn": "x.db"}},
		"calendar": {"week_start": "monday", "timezone": "UTC"},
		"dashboard": {"upcoming_limit": 9, "task_limit": 8, "compact_task_limit": 7, "recent_notes_limit": 6},
		"log": {"file": "p.log"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{
		Storage:   Storage{Backend: "memory", DataDir: "d", DB: DB{DSN: "x.db"}},
		Calendar:  Calendar{WeekStart: "monday", Timezone: "UTC"},
		Dashboard: Dashboard{UpcomingLimit: 9, TaskLimit: 8, CompactTaskLimit: 7, RecentNotesLimit: 6},
		Log:       Log{File: "p.log"},
	}, cfg)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeTempJSONConfig(t, `{"storage": `)

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
