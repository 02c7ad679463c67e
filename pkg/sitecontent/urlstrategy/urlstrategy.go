// Package urlstrategy decides what URL gets recorded for an uploaded
// media asset. The CDN strategy produces stable public URLs suitable
// for embedding in section payloads; the storage-delegated strategy
// asks the blob backend itself (presigned URLs for S3, prefixed paths
// for the filesystem backend).
package urlstrategy

import (
	"context"
	"fmt"
	"strings"
)

// URLStrategy defines the interface for media URL generation
type URLStrategy interface {
	// MediaURL creates the public URL recorded for an asset
	MediaURL(ctx context.Context, objectKey, fileName, storageBackend string) (string, error)
}

// BlobStore is the subset of the storage interface needed for URL
// generation (kept local to avoid a circular import).
type BlobStore interface {
	GetDownloadURL(ctx context.Context, objectKey string, downloadFilename string) (string, error)
}

// CDNStrategy generates URLs that point directly at a CDN or public
// bucket host fronting the object store.
type CDNStrategy struct {
	BaseURL string // e.g. "https://cdn.example.com"
}

// NewCDNStrategy creates a CDN URL strategy rooted at baseURL.
func NewCDNStrategy(baseURL string) *CDNStrategy {
	return &CDNStrategy{BaseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *CDNStrategy) MediaURL(ctx context.Context, objectKey, fileName, storageBackend string) (string, error) {
	if s.BaseURL == "" {
		return "", fmt.Errorf("CDN base URL not configured")
	}
	return fmt.Sprintf("%s/%s", s.BaseURL, objectKey), nil
}

// StorageDelegatedStrategy delegates URL generation to the storage
// backend that holds the object.
type StorageDelegatedStrategy struct {
	BlobStores map[string]BlobStore
}

// NewStorageDelegatedStrategy creates a storage-delegated URL strategy.
func NewStorageDelegatedStrategy(blobStores map[string]BlobStore) *StorageDelegatedStrategy {
	return &StorageDelegatedStrategy{BlobStores: blobStores}
}

func (s *StorageDelegatedStrategy) MediaURL(ctx context.Context, objectKey, fileName, storageBackend string) (string, error) {
	backend, exists := s.BlobStores[storageBackend]
	if !exists {
		return "", fmt.Errorf("storage backend %s not found", storageBackend)
	}
	return backend.GetDownloadURL(ctx, objectKey, fileName)
}
