// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-study-planner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/snapshot_storage_mock.go -package=mock

// SnapshotStorage persists one serialized [models.Snapshot] per user.
//
// Load returns the last saved snapshot, or the empty snapshot when nothing
// was saved yet or the stored payload cannot be decoded. Save replaces the
// previous value as a whole; a concurrent or later Load never observes a
// partially written payload.
type SnapshotStorage interface {
	Load(ctx context.Context, userID string) (models.Snapshot, error)
	Save(ctx context.Context, userID string, snapshot models.Snapshot) error
	Close() error
}
