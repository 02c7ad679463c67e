package sitecontent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent/objectkey"
	"github.com/jamalakbara/adana-sub001/pkg/sitecontent/urlstrategy"
)

// service implements the Service interface
type service struct {
	repository     Repository
	blobStores     map[string]BlobStore
	defaultBackend string
	urls           urlstrategy.URLStrategy
	keyGenerator   objectkey.Generator
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithBlobStore adds a blob storage backend. The first registered
// backend becomes the default unless WithDefaultBackend overrides it.
func WithBlobStore(name string, store BlobStore) Option {
	return func(s *service) {
		if s.blobStores == nil {
			s.blobStores = make(map[string]BlobStore)
		}
		s.blobStores[name] = store
		if s.defaultBackend == "" {
			s.defaultBackend = name
		}
	}
}

// WithDefaultBackend selects which registered backend receives uploads
func WithDefaultBackend(name string) Option {
	return func(s *service) {
		s.defaultBackend = name
	}
}

// WithURLStrategy sets the URL strategy used for uploaded assets
func WithURLStrategy(strategy urlstrategy.URLStrategy) Option {
	return func(s *service) {
		s.urls = strategy
	}
}

// WithObjectKeyGenerator sets the key generator for uploaded assets
func WithObjectKeyGenerator(gen objectkey.Generator) Option {
	return func(s *service) {
		s.keyGenerator = gen
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		blobStores: make(map[string]BlobStore),
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if s.keyGenerator == nil {
		s.keyGenerator = objectkey.NewShardedGenerator()
	}
	if s.urls == nil {
		stores := make(map[string]urlstrategy.BlobStore, len(s.blobStores))
		for name, store := range s.blobStores {
			stores[name] = store
		}
		s.urls = urlstrategy.NewStorageDelegatedStrategy(stores)
	}

	return s, nil
}

func (s *service) backend() (string, BlobStore, error) {
	store, ok := s.blobStores[s.defaultBackend]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrStorageBackendNotFound, s.defaultBackend)
	}
	return s.defaultBackend, store, nil
}

// Section operations

func (s *service) GetSection(ctx context.Context, t SectionType) (*ContentSection, error) {
	return s.repository.GetSection(ctx, t)
}

func (s *service) GetPublishedSection(ctx context.Context, t SectionType) (*ContentSection, error) {
	return s.repository.GetPublishedSection(ctx, t)
}

func (s *service) ListSections(ctx context.Context, status *SectionStatus) ([]*ContentSection, error) {
	if status != nil && !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSectionStatus, *status)
	}
	return s.repository.ListSections(ctx, status)
}

func (s *service) UpsertSection(ctx context.Context, req UpsertSectionRequest) (*ContentSection, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSectionType, req.Type)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSectionStatus, *req.Status)
	}
	if req.Content != nil {
		if err := ValidatePayload(req.Type, req.Content); err != nil {
			return nil, err
		}
	}

	section, err := s.repository.UpsertSection(ctx, UpsertSectionParams{
		Type:      req.Type,
		Title:     req.Title,
		Content:   req.Content,
		Status:    req.Status,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, &SectionError{Type: req.Type, Op: "upsert", Err: err}
	}

	return section, nil
}

func (s *service) PublishSection(ctx context.Context, t SectionType) (*ContentSection, error) {
	return s.SetSectionStatus(ctx, t, SectionStatusPublished)
}

// SetSectionStatus changes the status of an existing section. Unlike
// UpsertSection it never creates a row: a status change on a missing
// section is not-found.
func (s *service) SetSectionStatus(ctx context.Context, t SectionType, status SectionStatus) (*ContentSection, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSectionType, t)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSectionStatus, status)
	}

	section, err := s.repository.SetSectionStatus(ctx, t, status, time.Now().UTC())
	if err != nil {
		if err == ErrSectionNotFound {
			return nil, err
		}
		return nil, &SectionError{Type: t, Op: "set_status", Err: err}
	}

	return section, nil
}

// DeleteSection is intentionally unsupported: sections are a fixed set
// keyed by type and rows are never hard-deleted.
func (s *service) DeleteSection(ctx context.Context, t SectionType) error {
	return ErrNotImplemented
}

// Media operations

func (s *service) UploadMedia(ctx context.Context, req UploadMediaRequest) (*MediaAsset, error) {
	if req.Reader == nil || req.FileName == "" {
		return nil, ErrMissingFile
	}
	if req.Size <= 0 {
		return nil, ErrMissingFile
	}
	if req.Size > MaxMediaSizeBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, req.Size, MaxMediaSizeBytes)
	}
	if !IsAllowedMediaType(req.MimeType) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, req.MimeType)
	}

	backendName, store, err := s.backend()
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	objectKey := s.keyGenerator.GenerateKey(id, req.FileName)

	if err := store.UploadWithParams(ctx, req.Reader, UploadParams{
		ObjectKey: objectKey,
		MimeType:  req.MimeType,
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	url, err := s.urls.MediaURL(ctx, objectKey, req.FileName, backendName)
	if err != nil {
		// URL generation never touched storage; clean up the blob.
		s.compensateBlob(ctx, store, backendName, objectKey)
		return nil, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	now := time.Now().UTC()
	asset := &MediaAsset{
		ID:         id,
		ObjectKey:  objectKey,
		URL:        url,
		FileName:   req.FileName,
		MimeType:   req.MimeType,
		AltText:    req.AltText,
		Size:       req.Size,
		UploadedBy: req.UploadedBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repository.CreateMediaAsset(ctx, asset); err != nil {
		// The blob landed but the metadata row did not. Compensate so
		// the store does not accumulate unreachable objects.
		s.compensateBlob(ctx, store, backendName, objectKey)
		return nil, &MediaError{AssetID: id, Op: "create", Err: err}
	}

	return asset, nil
}

// compensateBlob deletes a blob written by a failed upload. A failure
// here leaves an orphan, which is logged for reconciliation.
func (s *service) compensateBlob(ctx context.Context, store BlobStore, backendName, objectKey string) {
	if err := store.Delete(ctx, objectKey); err != nil {
		slog.Error("orphaned blob: compensating delete failed",
			"backend", backendName, "object_key", objectKey, "error", err)
	}
}

func (s *service) GetMedia(ctx context.Context, id uuid.UUID) (*MediaAsset, error) {
	return s.repository.GetMediaAsset(ctx, id)
}

func (s *service) ListMedia(ctx context.Context, req ListMediaRequest) (*MediaPage, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	assets, total, err := s.repository.ListMediaAssets(ctx, ListMediaParams{
		Limit:    limit,
		Offset:   offset,
		Search:   req.Search,
		MimeType: req.MimeType,
	})
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []*MediaAsset{}
	}

	return &MediaPage{Assets: assets, Total: total}, nil
}

func (s *service) UpdateMedia(ctx context.Context, id uuid.UUID, altText string) (*MediaAsset, error) {
	asset, err := s.repository.UpdateMediaAltText(ctx, id, altText, time.Now().UTC())
	if err != nil {
		if err == ErrMediaNotFound {
			return nil, err
		}
		return nil, &MediaError{AssetID: id, Op: "update", Err: err}
	}
	return asset, nil
}

func (s *service) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	asset, err := s.repository.GetMediaAsset(ctx, id)
	if err != nil {
		return err
	}

	backendName, store, err := s.backend()
	if err != nil {
		return err
	}

	// Blob first: a storage failure aborts with the metadata row
	// intact, so the asset stays listable and the delete can be
	// retried.
	if err := store.Delete(ctx, asset.ObjectKey); err != nil {
		return &StorageError{Backend: backendName, Key: asset.ObjectKey, Op: "delete", Err: err}
	}

	if err := s.repository.DeleteMediaAsset(ctx, id); err != nil {
		// The blob is gone but the row survived; flag the dangling
		// metadata for reconciliation.
		slog.Warn("dangling media row: blob deleted but metadata delete failed",
			"asset_id", id.String(), "object_key", asset.ObjectKey, "error", err)
		return &MediaError{AssetID: id, Op: "delete", Err: err}
	}

	return nil
}
