package storage

import (
	"context"
	"strings"

	"gsale/config"
	"gsale/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Bucket drivers selectable through the storage bucketUrl scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStorage stores product images and QR renders in a Go CDK bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage opens the bucket named by the storage configuration.
func NewBlobStorage(ctx context.Context, cfg *config.Config) (service.FileStorage, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucketUrl must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.Storage.BucketURL)
	}

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.Storage.PublicBaseURL, "/"),
	}, nil
}

// Save writes the blob and returns the URL clients should use to fetch it.
func (s *blobStorage) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "write blob %s", key)
	}

	return s.publicURL(key), nil
}

// Delete removes the blob stored under the given key. Missing blobs are not
// an error; the caller only cares that the key is gone.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return errors.Wrapf(err, "stat blob %s", key)
	}
	if !exists {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "delete blob %s", key)
	}

	return nil
}

// Close releases the underlying bucket handle.
func (s *blobStorage) Close() error {
	return s.bucket.Close()
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + strings.TrimPrefix(key, "/")
}
