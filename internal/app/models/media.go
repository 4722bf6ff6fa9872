package models

import (
	"strings"
	"time"
)

// MediaType classifies an uploaded file
type MediaType string

const (
	MediaTypeImage    MediaType = "image"
	MediaTypeDocument MediaType = "document"
	MediaTypeVideo    MediaType = "video"
)

// IsValid reports whether the media type is one of the known values
func (t MediaType) IsValid() bool {
	return t == MediaTypeImage || t == MediaTypeDocument || t == MediaTypeVideo
}

// MediaTypeFromMIME infers the media type from a MIME type string. Anything
// that is not an image or a video counts as a document.
func MediaTypeFromMIME(mimeType string) MediaType {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return MediaTypeImage
	case strings.HasPrefix(mimeType, "video/"):
		return MediaTypeVideo
	default:
		return MediaTypeDocument
	}
}

// MediaFile defines an uploaded file based on the 'media_files' table.
// Media is write-once: there is no update path, only delete-and-replace,
// so the model carries no updatedAt.
type MediaFile struct {
	ID           string    `json:"id" db:"id"`
	Filename     string    `json:"filename" db:"filename"` // sanitized storage name
	OriginalName string    `json:"originalName" db:"original_name"`
	URL          string    `json:"url" db:"url"`
	Type         MediaType `json:"type" db:"type"`
	Size         int64     `json:"size" db:"size"` // bytes
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
