package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent"
)

// Repository implements sitecontent.Repository using in-memory storage
type Repository struct {
	mu       sync.RWMutex
	sections map[sitecontent.SectionType]*sitecontent.ContentSection
	assets   map[uuid.UUID]*sitecontent.MediaAsset
}

// New creates a new in-memory repository
func New() sitecontent.Repository {
	return &Repository{
		sections: make(map[sitecontent.SectionType]*sitecontent.ContentSection),
		assets:   make(map[uuid.UUID]*sitecontent.MediaAsset),
	}
}

// Section operations

func (r *Repository) GetSection(ctx context.Context, t sitecontent.SectionType) (*sitecontent.ContentSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	section, exists := r.sections[t]
	if !exists {
		return nil, sitecontent.ErrSectionNotFound
	}

	// Return a copy to prevent external modifications
	sectionCopy := *section
	return &sectionCopy, nil
}

func (r *Repository) GetPublishedSection(ctx context.Context, t sitecontent.SectionType) (*sitecontent.ContentSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	section, exists := r.sections[t]
	if !exists || section.Status != sitecontent.SectionStatusPublished {
		return nil, sitecontent.ErrSectionNotFound
	}

	sectionCopy := *section
	return &sectionCopy, nil
}

func (r *Repository) ListSections(ctx context.Context, status *sitecontent.SectionStatus) ([]*sitecontent.ContentSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*sitecontent.ContentSection
	for _, section := range r.sections {
		if status != nil && section.Status != *status {
			continue
		}
		sectionCopy := *section
		result = append(result, &sectionCopy)
	}

	// Sort by creation order so listings are stable across calls
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *Repository) UpsertSection(ctx context.Context, params sitecontent.UpsertSectionParams) (*sitecontent.ContentSection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	section, exists := r.sections[params.Type]
	if !exists {
		section = &sitecontent.ContentSection{
			Type:      params.Type,
			Status:    sitecontent.SectionStatusDraft,
			CreatedAt: params.UpdatedAt,
		}
		r.sections[params.Type] = section
	}

	if params.Title != nil {
		section.Title = *params.Title
	}
	if params.Content != nil {
		section.Content = append([]byte(nil), params.Content...)
	}
	if params.Status != nil {
		section.Status = *params.Status
	}
	section.UpdatedAt = params.UpdatedAt

	sectionCopy := *section
	return &sectionCopy, nil
}

func (r *Repository) SetSectionStatus(ctx context.Context, t sitecontent.SectionType, status sitecontent.SectionStatus, updatedAt time.Time) (*sitecontent.ContentSection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	section, exists := r.sections[t]
	if !exists {
		return nil, sitecontent.ErrSectionNotFound
	}

	section.Status = status
	section.UpdatedAt = updatedAt

	sectionCopy := *section
	return &sectionCopy, nil
}

// Media operations

func (r *Repository) CreateMediaAsset(ctx context.Context, asset *sitecontent.MediaAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	assetCopy := *asset
	r.assets[asset.ID] = &assetCopy

	return nil
}

func (r *Repository) GetMediaAsset(ctx context.Context, id uuid.UUID) (*sitecontent.MediaAsset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	asset, exists := r.assets[id]
	if !exists {
		return nil, sitecontent.ErrMediaNotFound
	}

	assetCopy := *asset
	return &assetCopy, nil
}

func (r *Repository) ListMediaAssets(ctx context.Context, params sitecontent.ListMediaParams) ([]*sitecontent.MediaAsset, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*sitecontent.MediaAsset
	for _, asset := range r.assets {
		if params.MimeType != "" && asset.MimeType != params.MimeType {
			continue
		}
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(asset.FileName), needle) &&
				!strings.Contains(strings.ToLower(asset.AltText), needle) {
				continue
			}
		}
		assetCopy := *asset
		matched = append(matched, &assetCopy)
	}

	// Newest first, matching the Postgres repository's ordering
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)

	if params.Offset >= total {
		return []*sitecontent.MediaAsset{}, total, nil
	}
	end := params.Offset + params.Limit
	if params.Limit <= 0 || end > total {
		end = total
	}

	return matched[params.Offset:end], total, nil
}

func (r *Repository) UpdateMediaAltText(ctx context.Context, id uuid.UUID, altText string, updatedAt time.Time) (*sitecontent.MediaAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset, exists := r.assets[id]
	if !exists {
		return nil, sitecontent.ErrMediaNotFound
	}

	asset.AltText = altText
	asset.UpdatedAt = updatedAt

	assetCopy := *asset
	return &assetCopy, nil
}

func (r *Repository) DeleteMediaAsset(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assets[id]; !exists {
		return sitecontent.ErrMediaNotFound
	}

	delete(r.assets, id)
	return nil
}
