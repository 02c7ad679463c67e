package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent"
)

// multipart envelope overhead on top of the media size ceiling
const maxUploadRequestBytes = sitecontent.MaxMediaSizeBytes + 1<<20

// MediaHandler handles HTTP requests for media assets
type MediaHandler struct {
	service sitecontent.Service
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(service sitecontent.Service) *MediaHandler {
	return &MediaHandler{service: service}
}

// Routes returns the admin routes for media assets
func (h *MediaHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListMedia)
	r.Post("/", h.UploadMedia)
	r.Get("/{id}", h.GetMedia)
	r.Put("/{id}", h.UpdateMedia)
	r.Delete("/{id}", h.DeleteMedia)

	return r
}

func mediaIDFromPath(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// ListMedia lists media assets with pagination and optional filters
func (h *MediaHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := parseIntParam(query.Get("limit"), 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid limit", query.Get("limit"))
		return
	}
	offset, err := parseIntParam(query.Get("offset"), 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid offset", query.Get("offset"))
		return
	}

	page, err := h.service.ListMedia(r.Context(), sitecontent.ListMediaRequest{
		Limit:    limit,
		Offset:   offset,
		Search:   query.Get("search"),
		MimeType: query.Get("mime_type"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, page)
}

// UploadMedia accepts a multipart upload with fields "file" and
// "alt_text" and stores the file plus its metadata row.
func (h *MediaHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadRequestBytes)

	if err := r.ParseMultipartForm(sitecontent.MaxMediaSizeBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, http.StatusRequestEntityTooLarge, CodeFileTooLarge, "file exceeds maximum size", "")
			return
		}
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid multipart request", err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "no file provided", "")
		return
	}
	defer file.Close()

	uploadedBy := ""
	if identity, ok := IdentityFromContext(r.Context()); ok {
		uploadedBy = identity.Subject
	}

	asset, err := h.service.UploadMedia(r.Context(), sitecontent.UploadMediaRequest{
		FileName:   header.Filename,
		MimeType:   header.Header.Get("Content-Type"),
		Size:       header.Size,
		Reader:     file,
		AltText:    r.FormValue("alt_text"),
		UploadedBy: uploadedBy,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slog.Info("media uploaded",
		"asset_id", asset.ID.String(),
		"file_name", asset.FileName,
		"size", asset.Size,
		"uploaded_by", uploadedBy)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, asset)
}

// GetMedia fetches a single media asset by id
func (h *MediaHandler) GetMedia(w http.ResponseWriter, r *http.Request) {
	id, err := mediaIDFromPath(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid media id", "")
		return
	}

	asset, err := h.service.GetMedia(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, asset)
}

// UpdateMediaBody is the request body for a media metadata update.
// Alt text is the only mutable field after upload.
type UpdateMediaBody struct {
	AltText string `json:"alt_text"`
}

// UpdateMedia updates a media asset's alt text
func (h *MediaHandler) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	id, err := mediaIDFromPath(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid media id", "")
		return
	}

	var body UpdateMediaBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid request body", err.Error())
		return
	}

	asset, err := h.service.UpdateMedia(r.Context(), id, body.AltText)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, asset)
}

// DeleteMedia removes a media asset's storage object and metadata row
func (h *MediaHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	id, err := mediaIDFromPath(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid media id", "")
		return
	}

	if err := h.service.DeleteMedia(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	slog.Info("media deleted", "asset_id", id.String())
	render.NoContent(w, r)
}

func parseIntParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
