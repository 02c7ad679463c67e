package sitecontent_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent"
	"github.com/jamalakbara/adana-sub001/pkg/sitecontent/repo/memory"
	memorystorage "github.com/jamalakbara/adana-sub001/pkg/sitecontent/storage/memory"
)

func TestServiceCreation(t *testing.T) {
	tests := []struct {
		name        string
		options     []sitecontent.Option
		expectError bool
	}{
		{
			name:        "no options should fail",
			options:     []sitecontent.Option{},
			expectError: true,
		},
		{
			name: "with repository should succeed",
			options: []sitecontent.Option{
				sitecontent.WithRepository(memory.New()),
			},
			expectError: false,
		},
		{
			name: "with repository and blob store should succeed",
			options: []sitecontent.Option{
				sitecontent.WithRepository(memory.New()),
				sitecontent.WithBlobStore("memory", memorystorage.New()),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := sitecontent.New(tt.options...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func setupTestService(t *testing.T) sitecontent.Service {
	t.Helper()

	svc, err := sitecontent.New(
		sitecontent.WithRepository(memory.New()),
		sitecontent.WithBlobStore("memory", memorystorage.New()),
	)
	require.NoError(t, err)
	require.NotNil(t, svc)

	return svc
}

func strPtr(s string) *string { return &s }

func statusPtr(s sitecontent.SectionStatus) *sitecontent.SectionStatus { return &s }

func TestSectionOperations(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	heroContent := json.RawMessage(`{"headline":"We build brands"}`)

	t.Run("UpsertSection creates as draft by default", func(t *testing.T) {
		section, err := svc.UpsertSection(ctx, sitecontent.UpsertSectionRequest{
			Type:    sitecontent.SectionHero,
			Title:   strPtr("Hero"),
			Content: heroContent,
		})
		require.NoError(t, err)
		assert.Equal(t, sitecontent.SectionHero, section.Type)
		assert.Equal(t, "Hero", section.Title)
		assert.Equal(t, sitecontent.SectionStatusDraft, section.Status)
		assert.JSONEq(t, string(heroContent), string(section.Content))
		assert.False(t, section.UpdatedAt.IsZero())
	})

	t.Run("GetSection round-trips content", func(t *testing.T) {
		section, err := svc.GetSection(ctx, sitecontent.SectionHero)
		require.NoError(t, err)
		assert.JSONEq(t, string(heroContent), string(section.Content))
	})

	t.Run("GetSection unknown type is not found", func(t *testing.T) {
		_, err := svc.GetSection(ctx, sitecontent.SectionFooter)
		assert.ErrorIs(t, err, sitecontent.ErrSectionNotFound)
	})

	t.Run("UpsertSection rejects unknown section type", func(t *testing.T) {
		_, err := svc.UpsertSection(ctx, sitecontent.UpsertSectionRequest{
			Type:    sitecontent.SectionType("sidebar"),
			Content: json.RawMessage(`{}`),
		})
		assert.ErrorIs(t, err, sitecontent.ErrUnknownSectionType)
	})

	t.Run("UpsertSection rejects mismatched payloads", func(t *testing.T) {
		_, err := svc.UpsertSection(ctx, sitecontent.UpsertSectionRequest{
			Type:    sitecontent.SectionHero,
			Content: json.RawMessage(`{"not_a_hero_field":true}`),
		})
		assert.ErrorIs(t, err, sitecontent.ErrInvalidPayload)
	})

	t.Run("UpsertSection leaves omitted fields unchanged", func(t *testing.T) {
		section, err := svc.UpsertSection(ctx, sitecontent.UpsertSectionRequest{
			Type:  sitecontent.SectionHero,
			Title: strPtr("Hero v2"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Hero v2", section.Title)
		assert.JSONEq(t, string(heroContent), string(section.Content))
		assert.Equal(t, sitecontent.SectionStatusDraft, section.Status)
	})

	t.Run("UpsertSection is idempotent", func(t *testing.T) {
		req := sitecontent.UpsertSectionRequest{
			Type:    sitecontent.SectionAbout,
			Title:   strPtr("About"),
			Content: json.RawMessage(`{"heading":"Who we are","body":"A studio."}`),
			Status:  statusPtr(sitecontent.SectionStatusDraft),
		}

		first, err := svc.UpsertSection(ctx, req)
		require.NoError(t, err)
		second, err := svc.UpsertSection(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, first.Title, second.Title)
		assert.Equal(t, first.Status, second.Status)
		assert.JSONEq(t, string(first.Content), string(second.Content))
	})

	t.Run("PublishSection exposes the section to the published path", func(t *testing.T) {
		_, err := svc.GetPublishedSection(ctx, sitecontent.SectionHero)
		require.ErrorIs(t, err, sitecontent.ErrSectionNotFound)

		published, err := svc.PublishSection(ctx, sitecontent.SectionHero)
		require.NoError(t, err)
		assert.Equal(t, sitecontent.SectionStatusPublished, published.Status)

		section, err := svc.GetPublishedSection(ctx, sitecontent.SectionHero)
		require.NoError(t, err)
		assert.JSONEq(t, string(heroContent), string(section.Content))
	})

	t.Run("PublishSection without a row is not found", func(t *testing.T) {
		_, err := svc.PublishSection(ctx, sitecontent.SectionCTA)
		assert.ErrorIs(t, err, sitecontent.ErrSectionNotFound)
	})

	t.Run("SetSectionStatus reverts a published section to draft", func(t *testing.T) {
		section, err := svc.SetSectionStatus(ctx, sitecontent.SectionHero, sitecontent.SectionStatusDraft)
		require.NoError(t, err)
		assert.Equal(t, sitecontent.SectionStatusDraft, section.Status)

		_, err = svc.GetPublishedSection(ctx, sitecontent.SectionHero)
		assert.ErrorIs(t, err, sitecontent.ErrSectionNotFound)
	})

	t.Run("SetSectionStatus without a row is not found", func(t *testing.T) {
		_, err := svc.SetSectionStatus(ctx, sitecontent.SectionCTA, sitecontent.SectionStatusDraft)
		assert.ErrorIs(t, err, sitecontent.ErrSectionNotFound)

		// No row appeared as a side effect of the attempt.
		_, err = svc.GetSection(ctx, sitecontent.SectionCTA)
		assert.ErrorIs(t, err, sitecontent.ErrSectionNotFound)
	})

	t.Run("SetSectionStatus rejects an invalid status", func(t *testing.T) {
		_, err := svc.SetSectionStatus(ctx, sitecontent.SectionHero, sitecontent.SectionStatus("archived"))
		assert.ErrorIs(t, err, sitecontent.ErrInvalidSectionStatus)
	})

	t.Run("ListSections filters by status", func(t *testing.T) {
		published := sitecontent.SectionStatusPublished
		sections, err := svc.ListSections(ctx, &published)
		require.NoError(t, err)
		for _, s := range sections {
			assert.Equal(t, sitecontent.SectionStatusPublished, s.Status)
		}

		draft := sitecontent.SectionStatusDraft
		drafts, err := svc.ListSections(ctx, &draft)
		require.NoError(t, err)
		for _, s := range drafts {
			assert.Equal(t, sitecontent.SectionStatusDraft, s.Status)
		}
	})

	t.Run("DeleteSection is not implemented", func(t *testing.T) {
		err := svc.DeleteSection(ctx, sitecontent.SectionFooter)
		assert.ErrorIs(t, err, sitecontent.ErrNotImplemented)
	})
}

func TestUploadMediaValidation(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		_, err := svc.UploadMedia(ctx, sitecontent.UploadMediaRequest{
			MimeType: "image/png",
		})
		assert.ErrorIs(t, err, sitecontent.ErrMissingFile)
	})

	t.Run("file too large", func(t *testing.T) {
		_, err := svc.UploadMedia(ctx, sitecontent.UploadMediaRequest{
			FileName: "huge.png",
			MimeType: "image/png",
			Size:     sitecontent.MaxMediaSizeBytes + 1,
			Reader:   strings.NewReader("x"),
		})
		assert.ErrorIs(t, err, sitecontent.ErrFileTooLarge)
	})

	t.Run("unsupported mime type", func(t *testing.T) {
		_, err := svc.UploadMedia(ctx, sitecontent.UploadMediaRequest{
			FileName: "report.pdf",
			MimeType: "application/pdf",
			Size:     128,
			Reader:   strings.NewReader("x"),
		})
		assert.ErrorIs(t, err, sitecontent.ErrUnsupportedMediaType)
	})

	t.Run("rejected uploads write nothing to storage", func(t *testing.T) {
		store := memorystorage.New()
		svc, err := sitecontent.New(
			sitecontent.WithRepository(memory.New()),
			sitecontent.WithBlobStore("memory", store),
			sitecontent.WithObjectKeyGenerator(fixedKeyGenerator{key: "media/rejected"}),
		)
		require.NoError(t, err)

		_, err = svc.UploadMedia(ctx, sitecontent.UploadMediaRequest{
			FileName: "huge.png",
			MimeType: "image/png",
			Size:     sitecontent.MaxMediaSizeBytes + 1,
			Reader:   strings.NewReader("x"),
		})
		require.Error(t, err)

		_, err = store.Download(ctx, "media/rejected")
		assert.Error(t, err)
	})
}

type fixedKeyGenerator struct{ key string }

func (g fixedKeyGenerator) GenerateKey(assetID uuid.UUID, fileName string) string { return g.key }

// failingMediaRepo fails every metadata insert, to exercise the
// compensating blob delete.
type failingMediaRepo struct {
	sitecontent.Repository
}

func (r failingMediaRepo) CreateMediaAsset(ctx context.Context, asset *sitecontent.MediaAsset) error {
	return errors.New("insert failed")
}

func TestMediaLifecycle(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	asset, err := svc.UploadMedia(ctx, sitecontent.UploadMediaRequest{
		FileName:   "team-photo.jpg",
		MimeType:   "image/jpeg",
		Size:       512,
		Reader:     strings.NewReader(strings.Repeat("j", 512)),
		AltText:    "the team",
		UploadedBy: "editor@example.com",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, asset.ID)
	assert.Equal(t, "team-photo.jpg", asset.FileName)
	assert.Equal(t, "the team", asset.AltText)
	assert.NotEmpty(t, asset.ObjectKey)
	assert.NotEmpty(t, asset.URL)

	t.Run("GetMedia", func(t *testing.T) {
		got, err := svc.GetMedia(ctx, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, asset.ID, got.ID)
	})

	t.Run("UpdateMedia changes alt text only", func(t *testing.T) {
		updated, err := svc.UpdateMedia(ctx, asset.ID, "our whole team")
		require.NoError(t, err)
		assert.Equal(t, "our whole team", updated.AltText)
		assert.Equal(t, asset.FileName, updated.FileName)
		assert.Equal(t, asset.URL, updated.URL)
	})

	t.Run("ListMedia finds it by search", func(t *testing.T) {
		page, err := svc.ListMedia(ctx, sitecontent.ListMediaRequest{Search: "team-photo"})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		assert.Equal(t, asset.ID, page.Assets[0].ID)
	})

	t.Run("DeleteMedia removes row", func(t *testing.T) {
		require.NoError(t, svc.DeleteMedia(ctx, asset.ID))

		_, err := svc.GetMedia(ctx, asset.ID)
		assert.ErrorIs(t, err, sitecontent.ErrMediaNotFound)
	})

	t.Run("DeleteMedia on missing asset is not found", func(t *testing.T) {
		err := svc.DeleteMedia(ctx, uuid.New())
		assert.ErrorIs(t, err, sitecontent.ErrMediaNotFound)
	})
}

func TestUploadMediaCompensatesFailedInsert(t *testing.T) {
	ctx := context.Background()
	store := memorystorage.New()
	objectKey := "media/objects/ab/test_photo.png"

	svc, err := sitecontent.New(
		sitecontent.WithRepository(failingMediaRepo{memory.New()}),
		sitecontent.WithBlobStore("memory", store),
		sitecontent.WithObjectKeyGenerator(fixedKeyGenerator{key: objectKey}),
	)
	require.NoError(t, err)

	_, err = svc.UploadMedia(ctx, sitecontent.UploadMediaRequest{
		FileName: "photo.png",
		MimeType: "image/png",
		Size:     64,
		Reader:   strings.NewReader(strings.Repeat("p", 64)),
	})
	require.Error(t, err)

	var mediaErr *sitecontent.MediaError
	assert.ErrorAs(t, err, &mediaErr)

	// Compensating delete must have removed the blob.
	_, err = store.Download(ctx, objectKey)
	assert.Error(t, err)
}

func TestListMediaPagination(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	for _, name := range []string{"a.png", "b.png", "c.png"} {
		_, err := svc.UploadMedia(ctx, sitecontent.UploadMediaRequest{
			FileName: name,
			MimeType: "image/png",
			Size:     16,
			Reader:   strings.NewReader(strings.Repeat("x", 16)),
		})
		require.NoError(t, err)
	}

	page, err := svc.ListMedia(ctx, sitecontent.ListMediaRequest{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Assets, 2)

	rest, err := svc.ListMedia(ctx, sitecontent.ListMediaRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, rest.Total)
	assert.Len(t, rest.Assets, 1)

	t.Run("mime filter excludes other types", func(t *testing.T) {
		page, err := svc.ListMedia(ctx, sitecontent.ListMediaRequest{MimeType: "image/webp"})
		require.NoError(t, err)
		assert.Equal(t, 0, page.Total)
		assert.Empty(t, page.Assets)
	})
}
