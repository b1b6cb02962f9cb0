package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("bank payload")
	require.NoError(t, store.Put(ctx, "banks/addition-001", data))
	require.NoError(t, store.Put(ctx, "banks/addition-002", data))
	require.NoError(t, store.Put(ctx, "other/bank", data))

	got, err := store.Get(ctx, "banks/addition-001")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// Mutating the returned slice must not affect the stored blob.
	got[0] = 'X'
	again, err := store.Get(ctx, "banks/addition-001")
	require.NoError(t, err)
	assert.Equal(t, data, again)

	names, err := store.List(ctx, "banks/")
	require.NoError(t, err)
	assert.Equal(t, []string{"banks/addition-001", "banks/addition-002"}, names)

	require.NoError(t, store.Delete(ctx, "banks/addition-001"))
	_, err = store.Get(ctx, "banks/addition-001")
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing blob is not an error.
	require.NoError(t, store.Delete(ctx, "banks/addition-001"))
}
