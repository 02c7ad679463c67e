package sitecontent

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error types
var (
	// ErrSectionNotFound indicates no row exists for a section type
	ErrSectionNotFound = errors.New("section not found")

	// ErrMediaNotFound indicates a media asset was not found
	ErrMediaNotFound = errors.New("media asset not found")

	// ErrUnknownSectionType indicates a section type outside the recognized set
	ErrUnknownSectionType = errors.New("unknown section type")

	// ErrInvalidSectionStatus indicates a status outside draft/published
	ErrInvalidSectionStatus = errors.New("invalid section status")

	// ErrInvalidPayload indicates a content payload that does not match
	// the declared shape for its section type
	ErrInvalidPayload = errors.New("payload does not match section schema")

	// ErrMissingFile indicates an upload request with no file
	ErrMissingFile = errors.New("no file provided")

	// ErrFileTooLarge indicates an upload above MaxMediaSizeBytes
	ErrFileTooLarge = errors.New("file exceeds maximum size")

	// ErrUnsupportedMediaType indicates a mime type outside the allow-list
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrUploadFailed indicates the storage layer failed during a file write
	ErrUploadFailed = errors.New("upload failed")

	// ErrNotImplemented indicates a known-unsupported operation
	ErrNotImplemented = errors.New("not implemented")

	// ErrNotConfigured indicates a backend whose required configuration
	// was absent at process start
	ErrNotConfigured = errors.New("backend not configured")

	// ErrStorageBackendNotFound indicates a storage backend was not registered
	ErrStorageBackendNotFound = errors.New("storage backend not found")
)

// SectionError represents an error related to section operations
type SectionError struct {
	Type SectionType
	Op   string
	Err  error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section operation %s failed for section %s: %v", e.Op, e.Type, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

// MediaError represents an error related to media asset operations
type MediaError struct {
	AssetID uuid.UUID
	Op      string
	Err     error
}

func (e *MediaError) Error() string {
	return fmt.Sprintf("media operation %s failed for asset %s: %v", e.Op, e.AssetID, e.Err)
}

func (e *MediaError) Unwrap() error {
	return e.Err
}

// StorageError represents an error related to blob storage operations
type StorageError struct {
	Backend string
	Key     string
	Op      string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s on backend %s: %v", e.Op, e.Key, e.Backend, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
