package dto

import (
	"time"

	"github.com/osahenru/uniportal/internal/app/models"
)

// CreateNewsRequest represents the request to create a news article.
// The slug is derived from the title server-side and cannot be supplied.
type CreateNewsRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description" binding:"required"`
	Content     string              `json:"content" binding:"required"`
	Image       *string             `json:"image,omitempty"`
	Category    models.NewsCategory `json:"category" binding:"required"`
	Status      models.NewsStatus   `json:"status" binding:"required"`
	Author      string              `json:"author" binding:"required"`
	PublishedAt *time.Time          `json:"publishedAt,omitempty"`
}

// NewsListResponse represents a paginated page of news articles
type NewsListResponse struct {
	News       []*models.NewsArticle `json:"news"`
	Pagination PaginationInfo        `json:"pagination"`
}
