package dto

import (
	"time"

	"github.com/osahenru/uniportal/internal/app/models"
)

// MediaFileResponse decorates a media file with its human-readable size
type MediaFileResponse struct {
	ID            string           `json:"id"`
	Filename      string           `json:"filename"`
	OriginalName  string           `json:"originalName"`
	URL           string           `json:"url"`
	Type          models.MediaType `json:"type"`
	Size          int64            `json:"size"`
	SizeFormatted string           `json:"sizeFormatted"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// FromMediaFile converts a media file model to its response shape.
// sizeFormatted is produced by the caller so this package stays free of
// formatting concerns.
func FromMediaFile(f *models.MediaFile, sizeFormatted string) MediaFileResponse {
	if f == nil {
		return MediaFileResponse{}
	}
	return MediaFileResponse{
		ID:            f.ID,
		Filename:      f.Filename,
		OriginalName:  f.OriginalName,
		URL:           f.URL,
		Type:          f.Type,
		Size:          f.Size,
		SizeFormatted: sizeFormatted,
		CreatedAt:     f.CreatedAt,
	}
}

// MediaListResponse represents a paginated page of media files
type MediaListResponse struct {
	Files      []MediaFileResponse `json:"files"`
	Pagination PaginationInfo      `json:"pagination"`
}
