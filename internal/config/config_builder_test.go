package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EmptyBuilderYieldsDefaults(t *testing.T) {
	b := &configBuilder{}

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := &configBuilder{err: errors.New("boom")}

	cfg, err := b.build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "boom")
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := &configBuilder{configs: []*StructuredConfig{
		{Storage: Storage{Backend: BackendSQLite, DB: DB{DSN: "env.db"}}},
		{Storage: Storage{DB: DB{DSN: "flag.db"}}},
	}}

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "data", cfg.Storage.DataDir)
}

func TestBuilder_EnvFlagsJSON(t *testing.T) {
	path := writeTempJSONConfig(t, `{"calendar": {"week_start": "monday"}, "dashboard": {"task_limit": 10}}`)
	setEnvVars(t, map[string]string{
		"STORAGE_BACKEND":     "memory",
		"CALENDAR_WEEK_START": "sunday",
	})

	b := newConfigBuilder()
	b.args = []string{"-c", path, "-tz", "UTC"}
	cfg, err := b.withEnv().withFlags().withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, WeekStartMonday, cfg.Calendar.WeekStart)
	assert.Equal(t, "UTC", cfg.Calendar.Timezone)
	assert.Equal(t, 10, cfg.Dashboard.TaskLimit)
	assert.Equal(t, 3, cfg.Dashboard.UpcomingLimit)
}

func TestBuilder_WithJSONMissingFile(t *testing.T) {
	b := &configBuilder{configs: []*StructuredConfig{{JSONFilePath: "/nonexistent/config.json"}}}

	_, err := b.withJSON().build()

	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(*StructuredConfig) {}},
		{name: "unknown backend", mutate: func(c *StructuredConfig) { c.Storage.Backend = "redis" }, wantErr: ErrInvalidStorageConfigs},
		{name: "file without dir", mutate: func(c *StructuredConfig) { c.Storage.DataDir = "" }, wantErr: ErrInvalidStorageConfigs},
		{
			name: "sqlite in memory",
			mutate: func(c *StructuredConfig) {
				c.Storage.Backend = BackendSQLite
				c.Storage.DB.DSN = ":memory:"
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{name: "bad week start", mutate: func(c *StructuredConfig) { c.Calendar.WeekStart = "friday" }, wantErr: ErrInvalidCalendarConfigs},
		{name: "bad timezone", mutate: func(c *StructuredConfig) { c.Calendar.Timezone = "Mars/Base" }, wantErr: ErrInvalidCalendarConfigs},
		{name: "zero limit", mutate: func(c *StructuredConfig) { c.Dashboard.TaskLimit = 0 }, wantErr: ErrInvalidDashboardConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig(t *testing.T) {
	cfg := Defaults()
	cfg.Calendar.WeekStart = "Monday"
	cfg.Calendar.Timezone = "UTC"

	client, err := NewClientConfig(cfg)

	require.NoError(t, err)
	assert.Equal(t, time.Monday, client.Calendar.WeekStart)
	assert.Equal(t, time.UTC, client.Calendar.Location)
	assert.Equal(t, BackendFile, client.Storage.Backend)
	assert.Equal(t, 5, client.Dashboard.TaskLimit)
}
