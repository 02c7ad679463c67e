package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent"
)

// PublicHandler serves the unauthenticated read path. It only ever
// surfaces published content; drafts are invisible here under every
// input combination.
type PublicHandler struct {
	service sitecontent.Service
}

// NewPublicHandler creates a new public read handler
func NewPublicHandler(service sitecontent.Service) *PublicHandler {
	return &PublicHandler{service: service}
}

// PublishedSection is the public projection of a section: payload and
// freshness only, no workflow fields.
type PublishedSection struct {
	Content   json.RawMessage `json:"content"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GetPublishedSections returns published content. With a section_type
// query it returns that one section or NOT_FOUND; without it, a map
// from every published type to its content.
func (h *PublicHandler) GetPublishedSections(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("section_type"); raw != "" {
		sectionType := sitecontent.SectionType(raw)
		if !sectionType.IsValid() {
			writeError(w, r, http.StatusBadRequest, CodeValidationError, "unknown section type", raw)
			return
		}

		section, err := h.service.GetPublishedSection(r.Context(), sectionType)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		render.JSON(w, r, PublishedSection{
			Content:   section.Content,
			UpdatedAt: section.UpdatedAt,
		})
		return
	}

	published := sitecontent.SectionStatusPublished
	sections, err := h.service.ListSections(r.Context(), &published)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make(map[string]PublishedSection, len(sections))
	for _, section := range sections {
		out[string(section.Type)] = PublishedSection{
			Content:   section.Content,
			UpdatedAt: section.UpdatedAt,
		}
	}

	render.JSON(w, r, out)
}
