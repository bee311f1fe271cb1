package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.SetEntry(ctx, "sid", EntryToken, "tok", time.Hour))
	require.NoError(t, store.SetEntry(ctx, "sid", EntryUser, `{"_id":"u1"}`, time.Hour))

	token, err := store.GetEntry(ctx, "sid", EntryToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	user, err := store.GetEntry(ctx, "sid", EntryUser)
	require.NoError(t, err)
	assert.Equal(t, `{"_id":"u1"}`, user)
}

func TestMemoryStoreMissingEntry(t *testing.T) {
	store := NewMemory()

	_, err := store.GetEntry(context.Background(), "unknown", EntryToken)

	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestMemoryStoreSessionsAreIsolated(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.SetEntry(ctx, "a", EntryToken, "tok-a", time.Hour))

	_, err := store.GetEntry(ctx, "b", EntryToken)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestMemoryStoreClearSession(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.SetEntry(ctx, "sid", EntryToken, "tok", time.Hour))
	require.NoError(t, store.SetEntry(ctx, "sid", EntryUser, "{}", time.Hour))

	require.NoError(t, store.ClearSession(ctx, "sid"))

	_, err := store.GetEntry(ctx, "sid", EntryToken)
	assert.ErrorIs(t, err, ErrEntryNotFound)
	_, err = store.GetEntry(ctx, "sid", EntryUser)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	// Clearing an already-cleared session is a no-op.
	assert.NoError(t, store.ClearSession(ctx, "sid"))
}
