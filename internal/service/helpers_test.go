package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-planner/internal/logger"
	"github.com/MKhiriev/go-study-planner/internal/store"
	"github.com/MKhiriev/go-study-planner/internal/utils"
	"github.com/MKhiriev/go-study-planner/models"
)

// fakeClock is a manually advanced [utils.Clock].
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

var _ utils.Clock = (*fakeClock)(nil)

// newMemoryEntityStore returns a store over in-memory storage, loaded for
// "u1".
func newMemoryEntityStore(t *testing.T, clock utils.Clock) (EntityStore, store.SnapshotStorage) {
	t.Helper()
	storage := store.NewMemorySnapshotStorage()
	entities := NewEntityStore(storage, utils.NewUUIDGenerator(), clock, logger.Nop())
	require.NoError(t, entities.Login(t.Context(), models.User{ID: "u1"}))
	return entities, storage
}

func ptr[T any](v T) *T { return &v }
