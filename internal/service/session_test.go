package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-planner/internal/logger"
	"github.com/MKhiriev/go-study-planner/internal/store"
	"github.com/MKhiriev/go-study-planner/internal/utils"
	"github.com/MKhiriev/go-study-planner/models"
)

func TestSessionService_SwitchUser(t *testing.T) {
	storage := store.NewMemorySnapshotStorage()
	entities := NewEntityStore(storage, utils.NewUUIDGenerator(), newFakeClock(), logger.Nop())
	session := NewSessionService(entities, logger.Nop())
	ctx := context.Background()

	require.NoError(t, session.Login(ctx, models.User{ID: "alice", Email: "alice@uni.edu"}))
	entities.AddTodo(ctx, models.TodoDraft{Title: "Alice's task"})

	require.NoError(t, session.Login(ctx, models.User{ID: "bob"}))

	user, ok := session.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "bob", user.ID)
	assert.Empty(t, entities.Todos(), "no data leaks between users")

	require.NoError(t, session.Login(ctx, models.User{ID: "alice"}))
	assert.Len(t, entities.Todos(), 1)
}

func TestSessionService_Logout(t *testing.T) {
	entities := NewEntityStore(store.NewMemorySnapshotStorage(), utils.NewUUIDGenerator(), newFakeClock(), logger.Nop())
	session := NewSessionService(entities, logger.Nop())
	ctx := context.Background()

	require.NoError(t, session.Login(ctx, models.User{ID: "alice"}))
	session.Logout(ctx)
	session.Logout(ctx)

	_, ok := session.CurrentUser()
	assert.False(t, ok)
	_, loaded := entities.UserID()
	assert.False(t, loaded)
	assert.ErrorIs(t, session.Login(ctx, models.User{}), ErrEmptyUserID)
}

func TestEntityStore_LogoutReleasesIDs(t *testing.T) {
	ids := utils.NewUUIDGenerator()
	entities := NewEntityStore(store.NewMemorySnapshotStorage(), ids, newFakeClock(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, entities.Login(ctx, models.User{ID: "alice"}))
	entities.AddTodo(ctx, models.TodoDraft{Title: "a"})
	entities.AddNote(ctx, models.NoteDraft{Title: "b"})
	require.Equal(t, 2, ids.Len())

	entities.Logout(ctx)
	assert.Zero(t, ids.Len())

	// stored ids are reserved again on the next login
	require.NoError(t, entities.Login(ctx, models.User{ID: "alice"}))
	assert.Equal(t, 2, ids.Len())
}
