// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-study-planner/internal/logger"
	"github.com/MKhiriev/go-study-planner/internal/utils"
	"github.com/MKhiriev/go-study-planner/models"
)

// sqliteSnapshotStorage stores every snapshot as one row of app_data keyed by
// [StorageKey]. A save is a single upsert statement.
type sqliteSnapshotStorage struct {
	*DB
	logger *logger.Logger
	closed atomic.Bool
}

// NewSQLiteSnapshotStorage returns a [SnapshotStorage] on top of an already
// migrated db.
func NewSQLiteSnapshotStorage(db *DB, log *logger.Logger) SnapshotStorage {
	return &sqliteSnapshotStorage{
		DB:     db,
		logger: log,
	}
}

func (s *sqliteSnapshotStorage) Load(ctx context.Context, userID string) (models.Snapshot, error) {
	if s.closed.Load() {
		return models.Snapshot{}, ErrStorageClosed
	}
	if userID == "" {
		return models.Snapshot{}, ErrInvalidUserID
	}

	query, args, err := selectSnapshotQuery(StorageKey(userID))
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("build select query: %w", err)
	}

	var payload string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		s.logger.Debug().Str("user_id", userID).Msg("no snapshot stored yet")
		return models.EmptySnapshot(), nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSnapshotStorage.Load").
			Str("user_id", userID).
			Msg("failed to query snapshot")
		return models.Snapshot{}, fmt.Errorf("failed to query snapshot: %w", err)
	}

	snapshot, err := decodeSnapshot([]byte(payload))
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("stored snapshot is unreadable, starting empty")
		return models.EmptySnapshot(), nil
	}

	return snapshot, nil
}

func (s *sqliteSnapshotStorage) Save(ctx context.Context, userID string, snapshot models.Snapshot) error {
	if s.closed.Load() {
		return ErrStorageClosed
	}
	if userID == "" {
		return ErrInvalidUserID
	}

	payload, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	query, args, err := upsertSnapshotQuery(StorageKey(userID), payload, utils.FormatTimestamp(time.Now()))
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSnapshotStorage.Save").
			Str("user_id", userID).
			Msg("failed to execute upsert for snapshot")
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (s *sqliteSnapshotStorage) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.DB.Close()
}
