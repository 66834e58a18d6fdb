package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-study-planner/models"
)

// memorySnapshotStorage keeps encoded payloads in a map, so a loaded snapshot
// never aliases the one that was saved.
type memorySnapshotStorage struct {
	mu       sync.Mutex
	payloads map[string][]byte
	closed   bool
}

// NewMemorySnapshotStorage returns a process-local [SnapshotStorage].
func NewMemorySnapshotStorage() SnapshotStorage {
	return &memorySnapshotStorage{payloads: make(map[string][]byte)}
}

func (s *memorySnapshotStorage) Load(ctx context.Context, userID string) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Snapshot{}, ErrStorageClosed
	}
	if userID == "" {
		return models.Snapshot{}, ErrInvalidUserID
	}

	payload, ok := s.payloads[StorageKey(userID)]
	if !ok {
		return models.EmptySnapshot(), nil
	}

	snapshot, err := decodeSnapshot(payload)
	if err != nil {
		return models.EmptySnapshot(), nil
	}
	return snapshot, nil
}

func (s *memorySnapshotStorage) Save(ctx context.Context, userID string, snapshot models.Snapshot) error {
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
	s.payloads[StorageKey(userID)] = payload

	return nil
}

func (s *memorySnapshotStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.payloads = nil
	return nil
}
