package store

import "errors"

// Sentinel errors returned by the storage backends. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidUserID is returned when Load or Save is called with an empty
	// user id.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrSnapshotCorrupted marks a stored payload that cannot be decoded.
	// Backends never return it from Load; they log it and fall back to the
	// empty snapshot.
	ErrSnapshotCorrupted = errors.New("snapshot payload is corrupted")

	// ErrUnknownBackend is returned by [NewClientStorages] for a backend name
	// it does not know.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrStorageClosed is returned by every operation after Close.
	ErrStorageClosed = errors.New("storage is closed")
)
