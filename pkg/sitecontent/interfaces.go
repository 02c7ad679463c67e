package sitecontent

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
)

// BlobStore defines the interface for media storage backends
type BlobStore interface {
	// Upload uploads content directly
	Upload(ctx context.Context, objectKey string, reader io.Reader) error

	// UploadWithParams uploads content with additional parameters
	UploadWithParams(ctx context.Context, reader io.Reader, params UploadParams) error

	// Download downloads content directly
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete deletes content
	Delete(ctx context.Context, objectKey string) error

	// GetObjectMeta retrieves metadata for a stored object
	GetObjectMeta(ctx context.Context, objectKey string) (*ObjectMeta, error)

	// GetDownloadURL returns a URL for downloading content
	GetDownloadURL(ctx context.Context, objectKey string, downloadFilename string) (string, error)
}

// Repository defines the interface for section and media persistence
type Repository interface {
	// Section operations
	GetSection(ctx context.Context, t SectionType) (*ContentSection, error)
	GetPublishedSection(ctx context.Context, t SectionType) (*ContentSection, error)
	ListSections(ctx context.Context, status *SectionStatus) ([]*ContentSection, error)
	UpsertSection(ctx context.Context, params UpsertSectionParams) (*ContentSection, error)
	SetSectionStatus(ctx context.Context, t SectionType, status SectionStatus, updatedAt time.Time) (*ContentSection, error)

	// Media operations
	CreateMediaAsset(ctx context.Context, asset *MediaAsset) error
	GetMediaAsset(ctx context.Context, id uuid.UUID) (*MediaAsset, error)
	ListMediaAssets(ctx context.Context, params ListMediaParams) ([]*MediaAsset, int, error)
	UpdateMediaAltText(ctx context.Context, id uuid.UUID, altText string, updatedAt time.Time) (*MediaAsset, error)
	DeleteMediaAsset(ctx context.Context, id uuid.UUID) error
}

// UpsertSectionParams contains parameters for the repository-level
// create-or-update. Nil fields keep the stored value on update; the
// timestamp is stamped by the service on every mutation.
type UpsertSectionParams struct {
	Type      SectionType
	Title     *string
	Content   json.RawMessage
	Status    *SectionStatus
	UpdatedAt time.Time
}

// ListMediaParams contains parameters for listing media assets
type ListMediaParams struct {
	Limit    int
	Offset   int
	Search   string
	MimeType string
}

// UploadParams contains parameters for uploading an object
type UploadParams struct {
	ObjectKey string
	MimeType  string
}

// ObjectMeta contains metadata about an object in storage
type ObjectMeta struct {
	Key         string
	Size        int64
	ContentType string
	UpdatedAt   time.Time
	ETag        string
	Metadata    map[string]string
}
