package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-planner/internal/config"
	"github.com/MKhiriev/go-study-planner/internal/logger"
)

// ClientStorages groups the client-side storage backends into a single value
// that can be passed to the service layer.
type ClientStorages struct {
	// Snapshots persists the per-user snapshot.
	Snapshots SnapshotStorage
}

// NewClientStorages initialises the storage backend selected by cfg.Backend:
//   - "file": one JSON document per user under cfg.DataDir;
//   - "sqlite": opens cfg.DB.DSN, creating the file when needed, and runs the
//     pending migrations;
//   - "memory": process-local storage, lost on exit.
//
// Returns [ErrUnknownBackend] for any other backend name.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	var snapshots SnapshotStorage
	switch cfg.Backend {
	case config.BackendFile:
		fileStorage, err := NewFileSnapshotStorage(cfg.DataDir, logger)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		snapshots = fileStorage
	case config.BackendSQLite:
		db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		snapshots = NewSQLiteSnapshotStorage(db, logger)
	case config.BackendMemory:
		snapshots = NewMemorySnapshotStorage()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	return &ClientStorages{Snapshots: snapshots}, nil
}

// Close releases the underlying backend.
func (s *ClientStorages) Close() error {
	return s.Snapshots.Close()
}
