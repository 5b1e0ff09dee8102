package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kuiper-sun/smart-warehouse-inventory/storage"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "uploads", "input/a.csv", []byte("sku,qty\n")))

	data, err := store.Get(ctx, "uploads", "input/a.csv")
	require.NoError(t, err)
	assert.Equal(t, []byte("sku,qty\n"), data)

	assert.Equal(t, []string{"input/a.csv"}, store.Keys("uploads"))
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "uploads", "input/missing.csv")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Put(ctx, "uploads", "input/a.csv", nil))
	_, err = store.Get(ctx, "other-bucket", "input/a.csv")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := storage.NewFileStore(t.TempDir())
	ctx := context.Background()

	// Nested keys create directories under the bucket
	require.NoError(t, store.Put(ctx, "uploads", "uploads/output/2024/3/7/out.json", []byte(`[]`)))

	data, err := store.Get(ctx, "uploads", "uploads/output/2024/3/7/out.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}

func TestFileStoreNotFound(t *testing.T) {
	store := storage.NewFileStore(t.TempDir())

	_, err := store.Get(context.Background(), "uploads", "input/missing.csv")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
