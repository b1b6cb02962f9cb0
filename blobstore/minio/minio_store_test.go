package minio

import (
	"context"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/thomasq/blobstore"
)

// TestStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-thomasq"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	_, err = client.ListBuckets(ctx)
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		require.NoError(t, err)
	}

	store := NewStore(client, bucket, "test-prefix/")

	// Put and Get
	data := []byte(`{"operation":"addition","items":[]}`)
	err = store.Put(ctx, "banks/addition-easy", data)
	require.NoError(t, err)

	got, err := store.Get(ctx, "banks/addition-easy")
	require.NoError(t, err)
	require.Equal(t, data, got)

	// List
	names, err := store.List(ctx, "banks/")
	require.NoError(t, err)
	assert.Contains(t, names, "banks/addition-easy")

	// Delete
	err = store.Delete(ctx, "banks/addition-easy")
	require.NoError(t, err)

	_, err = store.Get(ctx, "banks/addition-easy")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	// Deleting a missing blob is not an error
	err = store.Delete(ctx, "banks/addition-easy")
	assert.NoError(t, err)
}
