package storage

import (
	"context"
	"testing"

	"gsale/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStorageConfig(publicBaseURL string) *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{
			BucketURL:     "mem://",
			PublicBaseURL: publicBaseURL,
		},
	}
}

func TestNewBlobStorage_MissingBucketURL(t *testing.T) {
	storage, err := NewBlobStorage(context.Background(), &config.Config{})
	assert.Error(t, err)
	assert.Nil(t, storage)
	assert.Contains(t, err.Error(), "bucketUrl must be provided")
}

func TestBlobStorage_SaveAndDelete(t *testing.T) {
	ctx := context.Background()
	storage, err := NewBlobStorage(ctx, newMemStorageConfig("https://cdn.gsale.example.com/"))
	require.NoError(t, err)
	defer storage.Close()

	url, err := storage.Save(ctx, "qr/abc.png", []byte{0x89, 0x50, 0x4E, 0x47}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.gsale.example.com/qr/abc.png", url)

	require.NoError(t, storage.Delete(ctx, "qr/abc.png"))
}

func TestBlobStorage_DeleteMissingKey(t *testing.T) {
	ctx := context.Background()
	storage, err := NewBlobStorage(ctx, newMemStorageConfig(""))
	require.NoError(t, err)
	defer storage.Close()

	// Deleting a key that was never written is not an error.
	assert.NoError(t, storage.Delete(ctx, "qr/never-written.png"))
}

func TestBlobStorage_SaveWithoutPublicBaseURL(t *testing.T) {
	ctx := context.Background()
	storage, err := NewBlobStorage(ctx, newMemStorageConfig(""))
	require.NoError(t, err)
	defer storage.Close()

	url, err := storage.Save(ctx, "products/img-1.jpg", []byte("jpeg bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "products/img-1.jpg", url)
}
