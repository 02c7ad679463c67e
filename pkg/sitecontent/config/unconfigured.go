package config

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent"
)

// unconfiguredRepository stands in when no database configuration was
// provided. Every call fails with ErrNotConfigured, which the API
// layer maps to a configuration error, so the process serves a clear
// per-request failure instead of crashing at startup.
type unconfiguredRepository struct{}

func (unconfiguredRepository) GetSection(context.Context, sitecontent.SectionType) (*sitecontent.ContentSection, error) {
	return nil, sitecontent.ErrNotConfigured
}

func (unconfiguredRepository) GetPublishedSection(context.Context, sitecontent.SectionType) (*sitecontent.ContentSection, error) {
	return nil, sitecontent.ErrNotConfigured
}

func (unconfiguredRepository) ListSections(context.Context, *sitecontent.SectionStatus) ([]*sitecontent.ContentSection, error) {
	return nil, sitecontent.ErrNotConfigured
}

func (unconfiguredRepository) UpsertSection(context.Context, sitecontent.UpsertSectionParams) (*sitecontent.ContentSection, error) {
	return nil, sitecontent.ErrNotConfigured
}

func (unconfiguredRepository) SetSectionStatus(context.Context, sitecontent.SectionType, sitecontent.SectionStatus, time.Time) (*sitecontent.ContentSection, error) {
	return nil, sitecontent.ErrNotConfigured
}

func (unconfiguredRepository) CreateMediaAsset(context.Context, *sitecontent.MediaAsset) error {
	return sitecontent.ErrNotConfigured
}

func (unconfiguredRepository) GetMediaAsset(context.Context, uuid.UUID) (*sitecontent.MediaAsset, error) {
	return nil, sitecontent.ErrNotConfigured
}

func (unconfiguredRepository) ListMediaAssets(context.Context, sitecontent.ListMediaParams) ([]*sitecontent.MediaAsset, int, error) {
	return nil, 0, sitecontent.ErrNotConfigured
}

func (unconfiguredRepository) UpdateMediaAltText(context.Context, uuid.UUID, string, time.Time) (*sitecontent.MediaAsset, error) {
	return nil, sitecontent.ErrNotConfigured
}

func (unconfiguredRepository) DeleteMediaAsset(context.Context, uuid.UUID) error {
	return sitecontent.ErrNotConfigured
}

// unconfiguredBlobStore is the storage counterpart of
// unconfiguredRepository.
type unconfiguredBlobStore struct{}

func (unconfiguredBlobStore) Upload(context.Context, string, io.Reader) error {
	return sitecontent.ErrNotConfigured
}

func (unconfiguredBlobStore) UploadWithParams(context.Context, io.Reader, sitecontent.UploadParams) error {
	return sitecontent.ErrNotConfigured
}

func (unconfiguredBlobStore) Download(context.Context, string) (io.ReadCloser, error) {
	return nil, sitecontent.ErrNotConfigured
}

func (unconfiguredBlobStore) Delete(context.Context, string) error {
	return sitecontent.ErrNotConfigured
}

func (unconfiguredBlobStore) GetObjectMeta(context.Context, string) (*sitecontent.ObjectMeta, error) {
	return nil, sitecontent.ErrNotConfigured
}

func (unconfiguredBlobStore) GetDownloadURL(context.Context, string, string) (string, error) {
	return "", sitecontent.ErrNotConfigured
}
