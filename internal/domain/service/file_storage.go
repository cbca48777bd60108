package service

import (
	"context"
)

// FileStorage defines the interface for blob storage of product images and
// generated QR code renders. Implementations return a URL the API can hand
// back to clients.
type FileStorage interface {
	// Save writes the blob under the given key with the given content type
	// and returns its public URL.
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the blob stored under the given key.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the storage backend.
	Close() error
}
