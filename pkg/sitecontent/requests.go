package sitecontent

import (
	"encoding/json"
	"io"
)

// UpsertSectionRequest contains parameters for creating or updating a
// section. Nil fields are left unchanged on an existing row; a nil
// Status on a new row defaults to draft.
type UpsertSectionRequest struct {
	Type    SectionType
	Title   *string
	Content json.RawMessage
	Status  *SectionStatus
}

// UploadMediaRequest contains parameters for uploading a media asset.
type UploadMediaRequest struct {
	FileName   string
	MimeType   string
	Size       int64
	Reader     io.Reader
	AltText    string
	UploadedBy string
}

// ListMediaRequest contains pagination and filtering parameters for
// listing media assets. Search matches file name and alt text as a
// substring; MimeType is an exact match.
type ListMediaRequest struct {
	Limit    int
	Offset   int
	Search   string
	MimeType string
}
