package sitecontent

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the main interface for the sitecontent library
type Service interface {
	// Section operations
	GetSection(ctx context.Context, t SectionType) (*ContentSection, error)
	GetPublishedSection(ctx context.Context, t SectionType) (*ContentSection, error)
	ListSections(ctx context.Context, status *SectionStatus) ([]*ContentSection, error)
	UpsertSection(ctx context.Context, req UpsertSectionRequest) (*ContentSection, error)
	PublishSection(ctx context.Context, t SectionType) (*ContentSection, error)
	SetSectionStatus(ctx context.Context, t SectionType, status SectionStatus) (*ContentSection, error)
	DeleteSection(ctx context.Context, t SectionType) error

	// Media operations
	UploadMedia(ctx context.Context, req UploadMediaRequest) (*MediaAsset, error)
	GetMedia(ctx context.Context, id uuid.UUID) (*MediaAsset, error)
	ListMedia(ctx context.Context, req ListMediaRequest) (*MediaPage, error)
	UpdateMedia(ctx context.Context, id uuid.UUID, altText string) (*MediaAsset, error)
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}
