package models

import "time"

// NewsStatus represents the publication state of an article
type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPublished NewsStatus = "published"
)

// IsValid reports whether the status is one of the known values
func (s NewsStatus) IsValid() bool {
	return s == NewsStatusDraft || s == NewsStatusPublished
}

// NewsCategory is the closed category set for news articles
type NewsCategory string

const (
	NewsCategoryGeneral       NewsCategory = "general"
	NewsCategoryAcademic      NewsCategory = "academic"
	NewsCategoryResearch      NewsCategory = "research"
	NewsCategoryEvents        NewsCategory = "events"
	NewsCategoryAnnouncements NewsCategory = "announcements"
	NewsCategoryStudentLife   NewsCategory = "student-life"
)

// IsValid reports whether the category is one of the known values
func (c NewsCategory) IsValid() bool {
	switch c {
	case NewsCategoryGeneral, NewsCategoryAcademic, NewsCategoryResearch,
		NewsCategoryEvents, NewsCategoryAnnouncements, NewsCategoryStudentLife:
		return true
	}
	return false
}

// NewsArticle defines a news article based on the 'news_articles' table
type NewsArticle struct {
	ID          string       `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Content     string       `json:"content" db:"content"` // rich text (HTML)
	Image       *string      `json:"image,omitempty" db:"image"`
	Category    NewsCategory `json:"category" db:"category"`
	Slug        string       `json:"slug" db:"slug"`
	Status      NewsStatus   `json:"status" db:"status"`
	Author      string       `json:"author" db:"author"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`
	PublishedAt *time.Time   `json:"publishedAt,omitempty" db:"published_at"`
}

// NewsPatch is a partial update to a news article. Nil fields are left
// untouched. Slug is managed by the news service and never patched directly.
type NewsPatch struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Content     *string       `json:"content,omitempty"`
	Image       *string       `json:"image,omitempty"`
	Category    *NewsCategory `json:"category,omitempty"`
	Status      *NewsStatus   `json:"status,omitempty"`
	Author      *string       `json:"author,omitempty"`
	PublishedAt *time.Time    `json:"publishedAt,omitempty"`
}

// Apply merges the patch into the article, field by field.
// Reverting a published article to draft deliberately keeps publishedAt,
// preserving the first-published timestamp.
func (p *NewsPatch) Apply(a *NewsArticle) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Image != nil {
		a.Image = p.Image
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.PublishedAt != nil {
		a.PublishedAt = p.PublishedAt
	}
}
