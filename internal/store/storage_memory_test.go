package store

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-planner/models"
)

func TestMemoryStorage_RoundTripDoesNotAlias(t *testing.T) {
	s := NewMemorySnapshotStorage()
	ctx := context.Background()
	saved := sampleSnapshot()

	require.NoError(t, s.Save(ctx, "u1", saved))
	saved.Todos[0].Title = "changed after save"

	got, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	if diff := cmp.Diff(sampleSnapshot(), got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	other, err := s.Load(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, models.EmptySnapshot(), other)
}

func TestMemoryStorage_Closed(t *testing.T) {
	s := NewMemorySnapshotStorage()
	require.NoError(t, s.Close())

	_, err := s.Load(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrStorageClosed)
}
