package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-study-planner/models"
)

// StorageKeyPrefix prefixes every per-user storage key.
const StorageKeyPrefix = "appData_"

// StorageKey derives the storage key of userID.
func StorageKey(userID string) string {
	return StorageKeyPrefix + userID
}

func encodeSnapshot(snapshot models.Snapshot) ([]byte, error) {
	payload, err := json.Marshal(snapshot.Normalize())
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return payload, nil
}

// decodeSnapshot decodes payload. Any failure is reported as
// [ErrSnapshotCorrupted].
func decodeSnapshot(payload []byte) (models.Snapshot, error) {
	var snapshot models.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return models.EmptySnapshot(), fmt.Errorf("%w: %w", ErrSnapshotCorrupted, err)
	}
	return snapshot.Normalize(), nil
}
