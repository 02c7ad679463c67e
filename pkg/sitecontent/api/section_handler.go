package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent"
)

// SectionHandler handles HTTP requests for content sections
type SectionHandler struct {
	service sitecontent.Service
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(service sitecontent.Service) *SectionHandler {
	return &SectionHandler{service: service}
}

// Routes returns the admin routes for sections
func (h *SectionHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListSections)
	r.Post("/", h.CreateSection)
	r.Get("/{type}", h.GetSection)
	r.Put("/{type}", h.UpdateSection)
	r.Patch("/{type}", h.SetSectionStatus)
	r.Delete("/{type}", h.DeleteSection)

	return r
}

// SectionBody is the request body for creating or updating a section
type SectionBody struct {
	Type    string          `json:"section_type"`
	Title   *string         `json:"title"`
	Content json.RawMessage `json:"content"`
	Status  *string         `json:"status"`
}

// ListSectionsResponse is the response body for a section listing
type ListSectionsResponse struct {
	Sections []*sitecontent.ContentSection `json:"sections"`
}

func sectionTypeFromPath(r *http.Request) (sitecontent.SectionType, bool) {
	t := sitecontent.SectionType(chi.URLParam(r, "type"))
	return t, t.IsValid()
}

// ListSections lists all sections, optionally filtered by status
func (h *SectionHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	var status *sitecontent.SectionStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := sitecontent.SectionStatus(raw)
		if !s.IsValid() {
			writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid status filter", raw)
			return
		}
		status = &s
	}

	sections, err := h.service.ListSections(r.Context(), status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if sections == nil {
		sections = []*sitecontent.ContentSection{}
	}

	render.JSON(w, r, ListSectionsResponse{Sections: sections})
}

// GetSection fetches a single section by type
func (h *SectionHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	sectionType, ok := sectionTypeFromPath(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "unknown section type", string(sectionType))
		return
	}

	section, err := h.service.GetSection(r.Context(), sectionType)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, section)
}

// CreateSection creates a section as a draft. Type and content are
// required; a caller-supplied status is ignored, drafts go live only
// through an explicit publish.
func (h *SectionHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var body SectionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid request body", err.Error())
		return
	}

	if body.Type == "" || len(body.Content) == 0 {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "section_type and content are required", "")
		return
	}

	draft := sitecontent.SectionStatusDraft
	section, err := h.service.UpsertSection(r.Context(), sitecontent.UpsertSectionRequest{
		Type:    sitecontent.SectionType(body.Type),
		Title:   body.Title,
		Content: body.Content,
		Status:  &draft,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slog.Info("section created", "section_type", section.Type)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, section)
}

// UpdateSection partially updates a section. Omitted fields keep their
// stored values.
func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	sectionType, ok := sectionTypeFromPath(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "unknown section type", string(sectionType))
		return
	}

	var body SectionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid request body", err.Error())
		return
	}

	var status *sitecontent.SectionStatus
	if body.Status != nil {
		s := sitecontent.SectionStatus(*body.Status)
		status = &s
	}

	section, err := h.service.UpsertSection(r.Context(), sitecontent.UpsertSectionRequest{
		Type:    sectionType,
		Title:   body.Title,
		Content: body.Content,
		Status:  status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slog.Info("section updated", "section_type", section.Type)
	render.JSON(w, r, section)
}

// SetSectionStatusBody is the request body for a status change
type SetSectionStatusBody struct {
	Status string `json:"status"`
}

// SetSectionStatus changes a section's visibility. A status change on
// a missing row is NOT_FOUND; rows are created through POST/PUT only.
func (h *SectionHandler) SetSectionStatus(w http.ResponseWriter, r *http.Request) {
	sectionType, ok := sectionTypeFromPath(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "unknown section type", string(sectionType))
		return
	}

	var body SetSectionStatusBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid request body", err.Error())
		return
	}

	status := sitecontent.SectionStatus(body.Status)
	if !status.IsValid() {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid status", body.Status)
		return
	}

	section, err := h.service.SetSectionStatus(r.Context(), sectionType, status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slog.Info("section status changed", "section_type", section.Type, "status", section.Status)
	render.JSON(w, r, section)
}

// DeleteSection is not supported; sections are never hard-deleted
func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	sectionType, ok := sectionTypeFromPath(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "unknown section type", string(sectionType))
		return
	}

	if err := h.service.DeleteSection(r.Context(), sectionType); err != nil {
		writeServiceError(w, r, err)
		return
	}
}
