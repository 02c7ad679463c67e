package sitecontent

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SectionType identifies one editable block of the marketing site.
type SectionType string

// Section type constants (typed). One row exists per type.
const (
	SectionNavbar          SectionType = "navbar"
	SectionHero            SectionType = "hero"
	SectionAbout           SectionType = "about"
	SectionServices        SectionType = "services"
	SectionPortfolio       SectionType = "portfolio"
	SectionMarqueeClients  SectionType = "marquee_clients"
	SectionDigitalPartners SectionType = "digital_partners"
	SectionCTA             SectionType = "cta"
	SectionFooter          SectionType = "footer"
)

// AllSectionTypes returns every recognized section type in page order.
func AllSectionTypes() []SectionType {
	return []SectionType{
		SectionNavbar,
		SectionHero,
		SectionAbout,
		SectionServices,
		SectionPortfolio,
		SectionMarqueeClients,
		SectionDigitalPartners,
		SectionCTA,
		SectionFooter,
	}
}

// IsValid reports whether t is a recognized section type.
func (t SectionType) IsValid() bool {
	switch t {
	case SectionNavbar, SectionHero, SectionAbout, SectionServices,
		SectionPortfolio, SectionMarqueeClients, SectionDigitalPartners,
		SectionCTA, SectionFooter:
		return true
	}
	return false
}

// SectionStatus is the domain type for section visibility states.
type SectionStatus string

// Section status constants (typed).
const (
	SectionStatusDraft     SectionStatus = "draft"
	SectionStatusPublished SectionStatus = "published"
)

// IsValid reports whether s is a recognized section status.
func (s SectionStatus) IsValid() bool {
	return s == SectionStatusDraft || s == SectionStatusPublished
}

// ContentSection is one named block of marketing-page content. The
// Content payload's shape is determined by Type; see ValidatePayload.
type ContentSection struct {
	Type      SectionType     `json:"section_type"`
	Title     string          `json:"title,omitempty"`
	Content   json.RawMessage `json:"content"`
	Status    SectionStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MaxMediaSizeBytes is the upload size ceiling for media assets.
const MaxMediaSizeBytes = 5 << 20 // 5 MiB

// AllowedMediaTypes is the mime allow-list for uploads.
var AllowedMediaTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/svg+xml",
}

// IsAllowedMediaType reports whether mimeType is on the upload allow-list.
func IsAllowedMediaType(mimeType string) bool {
	for _, t := range AllowedMediaTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// MediaAsset is an uploaded image and its metadata. Sections reference
// assets by embedded URL string only; there is no foreign key.
type MediaAsset struct {
	ID         uuid.UUID `json:"id"`
	ObjectKey  string    `json:"object_key"`
	URL        string    `json:"url"`
	FileName   string    `json:"file_name"`
	MimeType   string    `json:"mime_type"`
	AltText    string    `json:"alt_text,omitempty"`
	Size       int64     `json:"size"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MediaPage is one page of a media listing plus the unpaged total.
type MediaPage struct {
	Assets []*MediaAsset `json:"assets"`
	Total  int           `json:"total"`
}
