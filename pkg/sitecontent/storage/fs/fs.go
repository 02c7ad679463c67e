package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent"
)

// Backend is a filesystem implementation of the sitecontent.BlobStore interface
type Backend struct {
	baseDir   string
	urlPrefix string
}

// Config options for the filesystem backend
type Config struct {
	BaseDir   string // Base directory for storing files
	URLPrefix string // Optional URL prefix for download URLs
}

// New creates a new filesystem storage backend
func New(config Config) (sitecontent.BlobStore, error) {
	// Validate and create base directory if it doesn't exist
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}

	if err := os.MkdirAll(config.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &Backend{
		baseDir:   config.BaseDir,
		urlPrefix: config.URLPrefix,
	}, nil
}

// Upload uploads content directly to the filesystem
func (b *Backend) Upload(ctx context.Context, objectKey string, reader io.Reader) error {
	filePath := filepath.Join(b.baseDir, objectKey)

	// Create directory structure if it doesn't exist
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &sitecontent.StorageError{Backend: "fs", Key: objectKey, Op: "upload", Err: err}
	}

	// Create file
	file, err := os.Create(filePath)
	if err != nil {
		return &sitecontent.StorageError{Backend: "fs", Key: objectKey, Op: "upload", Err: err}
	}
	defer file.Close()

	// Copy data from reader to file
	if _, err := io.Copy(file, reader); err != nil {
		return &sitecontent.StorageError{Backend: "fs", Key: objectKey, Op: "upload", Err: err}
	}

	return nil
}

// UploadWithParams uploads content with additional parameters.
// The filesystem does not store MIME type separately, it's detected on read.
func (b *Backend) UploadWithParams(ctx context.Context, reader io.Reader, params sitecontent.UploadParams) error {
	return b.Upload(ctx, params.ObjectKey, reader)
}

// Download downloads content directly from the filesystem
func (b *Backend) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	filePath := filepath.Join(b.baseDir, objectKey)

	file, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return nil, &sitecontent.StorageError{Backend: "fs", Key: objectKey, Op: "download", Err: sitecontent.ErrMediaNotFound}
	} else if err != nil {
		return nil, &sitecontent.StorageError{Backend: "fs", Key: objectKey, Op: "download", Err: err}
	}

	return file, nil
}

// Delete deletes content from the filesystem
func (b *Backend) Delete(ctx context.Context, objectKey string) error {
	filePath := filepath.Join(b.baseDir, objectKey)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return &sitecontent.StorageError{Backend: "fs", Key: objectKey, Op: "delete", Err: sitecontent.ErrMediaNotFound}
	}

	if err := os.Remove(filePath); err != nil {
		return &sitecontent.StorageError{Backend: "fs", Key: objectKey, Op: "delete", Err: err}
	}

	// Clean up empty directories
	b.cleanupEmptyDirectories(filepath.Dir(filePath))

	return nil
}

// GetObjectMeta retrieves metadata for an object in the filesystem
func (b *Backend) GetObjectMeta(ctx context.Context, objectKey string) (*sitecontent.ObjectMeta, error) {
	filePath := filepath.Join(b.baseDir, objectKey)

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, &sitecontent.StorageError{Backend: "fs", Key: objectKey, Op: "head", Err: sitecontent.ErrMediaNotFound}
	} else if err != nil {
		return nil, &sitecontent.StorageError{Backend: "fs", Key: objectKey, Op: "head", Err: err}
	}

	// Detect content type from file contents
	contentType := "application/octet-stream"
	if file, err := os.Open(filePath); err == nil {
		defer file.Close()
		buffer := make([]byte, 512)
		if n, err := file.Read(buffer); err == nil {
			contentType = http.DetectContentType(buffer[:n])
		}
	}

	meta := &sitecontent.ObjectMeta{
		Key:         objectKey,
		Size:        info.Size(),
		ContentType: contentType,
		UpdatedAt:   info.ModTime(),
		Metadata:    map[string]string{"content_type": contentType},
	}

	return meta, nil
}

// GetDownloadURL returns a URL for downloading content
func (b *Backend) GetDownloadURL(ctx context.Context, objectKey string, downloadFilename string) (string, error) {
	if b.urlPrefix == "" {
		return "", &sitecontent.StorageError{Backend: "fs", Key: objectKey, Op: "download_url", Err: sitecontent.ErrNotConfigured}
	}

	// Include the download filename in the URL if provided
	if downloadFilename != "" {
		return fmt.Sprintf("%s/%s?filename=%s", b.urlPrefix, objectKey, url.QueryEscape(downloadFilename)), nil
	}
	return fmt.Sprintf("%s/%s", b.urlPrefix, objectKey), nil
}

// cleanupEmptyDirectories recursively removes empty directories up to baseDir
func (b *Backend) cleanupEmptyDirectories(dir string) {
	// Don't remove the base directory
	if dir == b.baseDir {
		return
	}

	if entries, err := os.ReadDir(dir); err == nil && len(entries) == 0 {
		if os.Remove(dir) == nil {
			b.cleanupEmptyDirectories(filepath.Dir(dir))
		}
	}
}
