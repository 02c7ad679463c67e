package memory

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent"
)

func strPtr(s string) *string { return &s }

func statusPtr(s sitecontent.SectionStatus) *sitecontent.SectionStatus { return &s }

func TestUpsertSection(t *testing.T) {
	repo := New()
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("creates row with draft default", func(t *testing.T) {
		section, err := repo.UpsertSection(ctx, sitecontent.UpsertSectionParams{
			Type:      sitecontent.SectionHero,
			Content:   json.RawMessage(`{"headline":"X"}`),
			UpdatedAt: now,
		})
		require.NoError(t, err)
		assert.Equal(t, sitecontent.SectionStatusDraft, section.Status)
		assert.Equal(t, now, section.CreatedAt)
		assert.Equal(t, now, section.UpdatedAt)
	})

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		later := now.Add(time.Minute)
		section, err := repo.UpsertSection(ctx, sitecontent.UpsertSectionParams{
			Type:      sitecontent.SectionHero,
			Title:     strPtr("Hero"),
			UpdatedAt: later,
		})
		require.NoError(t, err)
		assert.Equal(t, "Hero", section.Title)
		assert.JSONEq(t, `{"headline":"X"}`, string(section.Content))
		assert.Equal(t, sitecontent.SectionStatusDraft, section.Status)
		assert.Equal(t, now, section.CreatedAt)
		assert.Equal(t, later, section.UpdatedAt)
	})

	t.Run("status update flips visibility", func(t *testing.T) {
		section, err := repo.UpsertSection(ctx, sitecontent.UpsertSectionParams{
			Type:      sitecontent.SectionHero,
			Status:    statusPtr(sitecontent.SectionStatusPublished),
			UpdatedAt: now.Add(2 * time.Minute),
		})
		require.NoError(t, err)
		assert.Equal(t, sitecontent.SectionStatusPublished, section.Status)

		got, err := repo.GetPublishedSection(ctx, sitecontent.SectionHero)
		require.NoError(t, err)
		assert.Equal(t, sitecontent.SectionHero, got.Type)
	})

	t.Run("returned section is a copy", func(t *testing.T) {
		section, err := repo.GetSection(ctx, sitecontent.SectionHero)
		require.NoError(t, err)
		section.Title = "mutated"

		again, err := repo.GetSection(ctx, sitecontent.SectionHero)
		require.NoError(t, err)
		assert.Equal(t, "Hero", again.Title)
	})
}

func TestGetPublishedSectionHidesDrafts(t *testing.T) {
	repo := New()
	ctx := context.Background()

	_, err := repo.UpsertSection(ctx, sitecontent.UpsertSectionParams{
		Type:      sitecontent.SectionAbout,
		Content:   json.RawMessage(`{"heading":"draft only"}`),
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	_, err = repo.GetPublishedSection(ctx, sitecontent.SectionAbout)
	assert.ErrorIs(t, err, sitecontent.ErrSectionNotFound)
}

func TestListSections(t *testing.T) {
	repo := New()
	ctx := context.Background()
	base := time.Now().UTC()

	seed := []struct {
		sectionType sitecontent.SectionType
		status      sitecontent.SectionStatus
	}{
		{sitecontent.SectionNavbar, sitecontent.SectionStatusPublished},
		{sitecontent.SectionHero, sitecontent.SectionStatusDraft},
		{sitecontent.SectionFooter, sitecontent.SectionStatusPublished},
	}
	for i, s := range seed {
		_, err := repo.UpsertSection(ctx, sitecontent.UpsertSectionParams{
			Type:      s.sectionType,
			Status:    statusPtr(s.status),
			UpdatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	t.Run("unfiltered returns all in creation order", func(t *testing.T) {
		sections, err := repo.ListSections(ctx, nil)
		require.NoError(t, err)
		require.Len(t, sections, 3)
		assert.Equal(t, sitecontent.SectionNavbar, sections[0].Type)
		assert.Equal(t, sitecontent.SectionHero, sections[1].Type)
		assert.Equal(t, sitecontent.SectionFooter, sections[2].Type)
	})

	t.Run("published filter excludes drafts", func(t *testing.T) {
		published := sitecontent.SectionStatusPublished
		sections, err := repo.ListSections(ctx, &published)
		require.NoError(t, err)
		require.Len(t, sections, 2)
		for _, s := range sections {
			assert.NotEqual(t, sitecontent.SectionStatusDraft, s.Status)
		}
	})
}

func TestSetSectionStatus(t *testing.T) {
	repo := New()
	ctx := context.Background()

	t.Run("missing row is not found", func(t *testing.T) {
		_, err := repo.SetSectionStatus(ctx, sitecontent.SectionCTA, sitecontent.SectionStatusPublished, time.Now().UTC())
		assert.ErrorIs(t, err, sitecontent.ErrSectionNotFound)
	})

	t.Run("stamps updated_at", func(t *testing.T) {
		created := time.Now().UTC()
		_, err := repo.UpsertSection(ctx, sitecontent.UpsertSectionParams{
			Type:      sitecontent.SectionCTA,
			UpdatedAt: created,
		})
		require.NoError(t, err)

		publishedAt := created.Add(time.Hour)
		section, err := repo.SetSectionStatus(ctx, sitecontent.SectionCTA, sitecontent.SectionStatusPublished, publishedAt)
		require.NoError(t, err)
		assert.Equal(t, sitecontent.SectionStatusPublished, section.Status)
		assert.Equal(t, publishedAt, section.UpdatedAt)
	})
}

func seedAsset(t *testing.T, repo sitecontent.Repository, fileName, mimeType, altText string, createdAt time.Time) *sitecontent.MediaAsset {
	t.Helper()
	asset := &sitecontent.MediaAsset{
		ID:        uuid.New(),
		ObjectKey: "media/objects/ab/" + fileName,
		URL:       "memory://media/objects/ab/" + fileName,
		FileName:  fileName,
		MimeType:  mimeType,
		AltText:   altText,
		Size:      128,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repo.CreateMediaAsset(context.Background(), asset))
	return asset
}

func TestMediaAssets(t *testing.T) {
	repo := New()
	ctx := context.Background()
	base := time.Now().UTC()

	oldest := seedAsset(t, repo, "logo.svg", "image/svg+xml", "agency logo", base)
	middle := seedAsset(t, repo, "team.jpg", "image/jpeg", "the team", base.Add(time.Second))
	newest := seedAsset(t, repo, "office.jpg", "image/jpeg", "our office", base.Add(2*time.Second))

	t.Run("GetMediaAsset", func(t *testing.T) {
		got, err := repo.GetMediaAsset(ctx, middle.ID)
		require.NoError(t, err)
		assert.Equal(t, "team.jpg", got.FileName)

		_, err = repo.GetMediaAsset(ctx, uuid.New())
		assert.ErrorIs(t, err, sitecontent.ErrMediaNotFound)
	})

	t.Run("list is newest first with total", func(t *testing.T) {
		assets, total, err := repo.ListMediaAssets(ctx, sitecontent.ListMediaParams{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, assets, 3)
		assert.Equal(t, newest.ID, assets[0].ID)
		assert.Equal(t, oldest.ID, assets[2].ID)
	})

	t.Run("pagination keeps total", func(t *testing.T) {
		assets, total, err := repo.ListMediaAssets(ctx, sitecontent.ListMediaParams{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, assets, 1)
		assert.Equal(t, oldest.ID, assets[0].ID)
	})

	t.Run("search matches file name and alt text", func(t *testing.T) {
		assets, total, err := repo.ListMediaAssets(ctx, sitecontent.ListMediaParams{Limit: 10, Search: "TEAM"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, assets, 1)
		assert.Equal(t, middle.ID, assets[0].ID)

		_, total, err = repo.ListMediaAssets(ctx, sitecontent.ListMediaParams{Limit: 10, Search: "logo"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("mime filter is exact", func(t *testing.T) {
		assets, total, err := repo.ListMediaAssets(ctx, sitecontent.ListMediaParams{Limit: 10, MimeType: "image/jpeg"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, assets, 2)
	})

	t.Run("update alt text", func(t *testing.T) {
		updated, err := repo.UpdateMediaAltText(ctx, oldest.ID, "new logo alt", base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "new logo alt", updated.AltText)
		assert.Equal(t, base.Add(time.Hour), updated.UpdatedAt)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteMediaAsset(ctx, newest.ID))
		_, err := repo.GetMediaAsset(ctx, newest.ID)
		assert.ErrorIs(t, err, sitecontent.ErrMediaNotFound)

		err = repo.DeleteMediaAsset(ctx, newest.ID)
		assert.ErrorIs(t, err, sitecontent.ErrMediaNotFound)
	})
}
