package models

import "time"

// GalleryCategory is the closed category set for gallery items
type GalleryCategory string

const (
	GalleryCategoryEvents     GalleryCategory = "events"
	GalleryCategoryCampus     GalleryCategory = "campus"
	GalleryCategoryAcademic   GalleryCategory = "academic"
	GalleryCategorySports     GalleryCategory = "sports"
	GalleryCategoryCultural   GalleryCategory = "cultural"
	GalleryCategoryGraduation GalleryCategory = "graduation"
)

// IsValid reports whether the category is one of the known values
func (c GalleryCategory) IsValid() bool {
	switch c {
	case GalleryCategoryEvents, GalleryCategoryCampus, GalleryCategoryAcademic,
		GalleryCategorySports, GalleryCategoryCultural, GalleryCategoryGraduation:
		return true
	}
	return false
}

// GallerySize controls how large an item renders in the gallery grid
type GallerySize string

const (
	GallerySizeSmall  GallerySize = "small"
	GallerySizeMedium GallerySize = "medium"
	GallerySizeLarge  GallerySize = "large"
)

// IsValid reports whether the size is one of the known values
func (s GallerySize) IsValid() bool {
	return s == GallerySizeSmall || s == GallerySizeMedium || s == GallerySizeLarge
}

// GalleryItem defines a gallery entry based on the 'gallery_items' table
type GalleryItem struct {
	ID               string          `json:"id" db:"id"`
	Title            string          `json:"title" db:"title"`
	Description      string          `json:"description" db:"description"`
	MainImage        string          `json:"mainImage" db:"main_image"`
	AdditionalImages []string        `json:"additionalImages" db:"additional_images"`
	Tags             []string        `json:"tags" db:"tags"` // case-sensitive, de-duplicated
	Category         GalleryCategory `json:"category" db:"category"`
	Size             GallerySize     `json:"size" db:"size"`
	Date             time.Time       `json:"date" db:"date"`
	Featured         bool            `json:"featured" db:"featured"`
	CreatedAt        time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time       `json:"updatedAt" db:"updated_at"`
}

// GalleryPatch is a partial update to a gallery item. Nil fields are left
// untouched; slice fields replace the whole list when set.
type GalleryPatch struct {
	Title            *string          `json:"title,omitempty"`
	Description      *string          `json:"description,omitempty"`
	MainImage        *string          `json:"mainImage,omitempty"`
	AdditionalImages []string         `json:"additionalImages,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	Category         *GalleryCategory `json:"category,omitempty"`
	Size             *GallerySize     `json:"size,omitempty"`
	Date             *time.Time       `json:"date,omitempty"`
	Featured         *bool            `json:"featured,omitempty"`
}

// Apply merges the patch into the item, field by field.
func (p *GalleryPatch) Apply(g *GalleryItem) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.MainImage != nil {
		g.MainImage = *p.MainImage
	}
	if p.AdditionalImages != nil {
		g.AdditionalImages = p.AdditionalImages
	}
	if p.Tags != nil {
		g.Tags = DedupeTags(p.Tags)
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.Size != nil {
		g.Size = *p.Size
	}
	if p.Date != nil {
		g.Date = *p.Date
	}
	if p.Featured != nil {
		g.Featured = *p.Featured
	}
}

// DedupeTags removes duplicate tags case-sensitively, keeping first-seen order.
func DedupeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
