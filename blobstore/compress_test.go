package blobstore

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressedStore_RoundTrip(t *testing.T) {
	ctx := context.Background()

	// Repetitive payload so both algorithms actually compress.
	data := bytes.Repeat([]byte(`{"operation":0,"n1":11,"n2":1,"q":0.60206}`), 64)

	for _, algo := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		inner := NewMemoryStore()
		store := NewCompressedStore(inner, algo)

		require.NoError(t, store.Put(ctx, "bank-001", data))

		got, err := store.Get(ctx, "bank-001")
		require.NoError(t, err)
		assert.Equal(t, data, got)

		if algo != CompressionNone {
			framed, err := inner.Get(ctx, "bank-001")
			require.NoError(t, err)
			assert.Less(t, len(framed), len(data), "algo %d should compress", algo)
		}
	}
}

func TestCompressedStore_ReadsAnyAlgorithm(t *testing.T) {
	// The frame header names the algorithm, so a store configured for one
	// algorithm reads blobs written with another.
	ctx := context.Background()
	inner := NewMemoryStore()
	data := bytes.Repeat([]byte("thomas q-value bank "), 32)

	writer := NewCompressedStore(inner, CompressionZSTD)
	require.NoError(t, writer.Put(ctx, "bank-001", data))

	reader := NewCompressedStore(inner, CompressionLZ4)
	got, err := reader.Get(ctx, "bank-001")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestCompressedStore_IncompressibleFallsBackToRaw(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	store := NewCompressedStore(inner, CompressionLZ4)

	// Too short and too random to compress.
	data := []byte{0x01, 0xA7, 0x3F, 0x90, 0x42}
	require.NoError(t, store.Put(ctx, "blob", data))

	framed, err := inner.Get(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, byte(CompressionNone), framed[0])

	got, err := store.Get(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestCompressedStore_RejectsGarbage(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	require.NoError(t, inner.Put(ctx, "tiny", []byte{1, 2}))

	store := NewCompressedStore(inner, CompressionZSTD)
	_, err := store.Get(ctx, "tiny")
	assert.Error(t, err)
}
