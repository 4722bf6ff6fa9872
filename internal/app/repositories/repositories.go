// Package repositories defines the persistence contracts the resource
// stores are built on. Two implementations exist, selected by configuration
// at startup: postgres (remote backend) and local (durable key-value slots).
package repositories

import (
	"context"

	"github.com/osahenru/uniportal/internal/app/models"
)

// NewsRepository persists news articles.
type NewsRepository interface {
	// LoadAll returns the full collection, newest first.
	LoadAll(ctx context.Context) ([]*models.NewsArticle, error)
	// Insert persists a new article, filling in its id and timestamps.
	Insert(ctx context.Context, article *models.NewsArticle) error
	// Update persists an already-patched article. The patch indicates which
	// fields changed so the remote driver can write only those columns.
	Update(ctx context.Context, article *models.NewsArticle, patch *models.NewsPatch) error
	Delete(ctx context.Context, id string) error
	// SlugExists reports whether a slug is taken by a record other than excludeID.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

// EventRepository persists events.
type EventRepository interface {
	LoadAll(ctx context.Context) ([]*models.Event, error)
	Insert(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event, patch *models.EventPatch) error
	Delete(ctx context.Context, id string) error
}

// GalleryRepository persists gallery items.
type GalleryRepository interface {
	LoadAll(ctx context.Context) ([]*models.GalleryItem, error)
	Insert(ctx context.Context, item *models.GalleryItem) error
	Update(ctx context.Context, item *models.GalleryItem, patch *models.GalleryPatch) error
	Delete(ctx context.Context, id string) error
}

// MediaRepository persists media file records. Media is write-once, so
// there is no update operation.
type MediaRepository interface {
	LoadAll(ctx context.Context) ([]*models.MediaFile, error)
	Insert(ctx context.Context, file *models.MediaFile) error
	Delete(ctx context.Context, id string) error
}

// OrganizationRepository persists Exco sections and their members.
type OrganizationRepository interface {
	// LoadSections returns all sections of both organization types with
	// head and members attached, members ordered by their order field.
	LoadSections(ctx context.Context) ([]*models.ExcoSection, error)
	InsertSection(ctx context.Context, section *models.ExcoSection) error
	UpdateSection(ctx context.Context, section *models.ExcoSection, patch *models.SectionPatch) error
	// DeleteSection removes a section and cascade-deletes its member rows.
	DeleteSection(ctx context.Context, id string) error
	InsertMember(ctx context.Context, sectionID string, member *models.ExcoMember) error
	UpdateMember(ctx context.Context, member *models.ExcoMember, patch *models.MemberPatch) error
	DeleteMember(ctx context.Context, id string) error
}

// UserRepository persists admin accounts.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

// TokenRepository persists refresh tokens.
type TokenRepository interface {
	Insert(ctx context.Context, token *models.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, token string) error
}

// Repositories bundles every repository behind one handle for injection.
type Repositories struct {
	News         NewsRepository
	Events       EventRepository
	Gallery      GalleryRepository
	Media        MediaRepository
	Organization OrganizationRepository
	Users        UserRepository
	Tokens       TokenRepository
}
