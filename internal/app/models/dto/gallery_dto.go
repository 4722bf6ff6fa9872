package dto

import (
	"time"

	"github.com/osahenru/uniportal/internal/app/models"
)

// CreateGalleryItemRequest represents the request to create a gallery item
type CreateGalleryItemRequest struct {
	Title            string                 `json:"title" binding:"required"`
	Description      string                 `json:"description" binding:"required"`
	MainImage        string                 `json:"mainImage" binding:"required"`
	AdditionalImages []string               `json:"additionalImages"`
	Tags             []string               `json:"tags"`
	Category         models.GalleryCategory `json:"category" binding:"required"`
	Size             models.GallerySize     `json:"size" binding:"required"`
	Date             time.Time              `json:"date" binding:"required"`
	Featured         bool                   `json:"featured"`
}

// GalleryListResponse represents a paginated page of gallery items
type GalleryListResponse struct {
	Items      []*models.GalleryItem `json:"items"`
	Pagination PaginationInfo        `json:"pagination"`
}
