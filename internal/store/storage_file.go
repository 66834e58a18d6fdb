// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-study-planner/internal/logger"
	"github.com/MKhiriev/go-study-planner/models"
)

// fileSnapshotStorage keeps one JSON document per user inside dir. Writes go
// through a temp file in the same directory followed by fsync and rename.
type fileSnapshotStorage struct {
	dir    string
	logger *logger.Logger

	mu     sync.Mutex
	closed bool
}

// NewFileSnapshotStorage returns a [SnapshotStorage] rooted at dir, creating
// the directory when it does not exist.
func NewFileSnapshotStorage(dir string, log *logger.Logger) (SnapshotStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}

	return &fileSnapshotStorage{
		dir:    dir,
		logger: log,
	}, nil
}

func (s *fileSnapshotStorage) path(userID string) string {
	return filepath.Join(s.dir, url.PathEscape(StorageKey(userID))+".json")
}

func (s *fileSnapshotStorage) Load(ctx context.Context, userID string) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Snapshot{}, ErrStorageClosed
	}
	if userID == "" {
		return models.Snapshot{}, ErrInvalidUserID
	}

	payload, err := os.ReadFile(s.path(userID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug().Str("user_id", userID).Msg("no snapshot stored yet")
			return models.EmptySnapshot(), nil
		}
		return models.Snapshot{}, fmt.Errorf("read snapshot file: %w", err)
	}

	snapshot, err := decodeSnapshot(payload)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("stored snapshot is unreadable, starting empty")
		return models.EmptySnapshot(), nil
	}

	return snapshot, nil
}

func (s *fileSnapshotStorage) Save(ctx context.Context, userID string, snapshot models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}
	if userID == "" {
		return ErrInvalidUserID
	}

	payload, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(s.path(userID), payload, 0o600); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}

	return nil
}

func (s *fileSnapshotStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// writeFileAtomic writes data to a temp file next to path, syncs it and
// renames it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
