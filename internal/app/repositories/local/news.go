package local

import (
	"context"
	"sync"
	"time"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/storage/kv"
)

// NewsRepository persists news articles in a single slot, newest first.
type NewsRepository struct {
	store *kv.Store
	mu    sync.Mutex
}

// NewNewsRepository creates a new slot-backed NewsRepository
func NewNewsRepository(store *kv.Store) *NewsRepository {
	return &NewsRepository{store: store}
}

// LoadAll returns the full collection of articles
func (r *NewsRepository) LoadAll(ctx context.Context) ([]*models.NewsArticle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return readSlot[models.NewsArticle](r.store, slotNews)
}

// Insert assigns id and timestamps, prepends the article and rewrites the slot
func (r *NewsRepository) Insert(ctx context.Context, article *models.NewsArticle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	articles, err := readSlot[models.NewsArticle](r.store, slotNews)
	if err != nil {
		return err
	}

	now := time.Now()
	article.ID = newID()
	article.CreatedAt = now
	article.UpdatedAt = now

	articles = append([]*models.NewsArticle{article}, articles...)
	return writeSlot(r.store, slotNews, articles)
}

// Update replaces the stored article and rewrites the slot
func (r *NewsRepository) Update(ctx context.Context, article *models.NewsArticle, patch *models.NewsPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	articles, err := readSlot[models.NewsArticle](r.store, slotNews)
	if err != nil {
		return err
	}

	for i, existing := range articles {
		if existing.ID == article.ID {
			clone := *article
			articles[i] = &clone
			return writeSlot(r.store, slotNews, articles)
		}
	}

	return apperrors.ErrArticleNotFound
}

// Delete removes an article by id and rewrites the slot
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	articles, err := readSlot[models.NewsArticle](r.store, slotNews)
	if err != nil {
		return err
	}

	for i, existing := range articles {
		if existing.ID == id {
			articles = append(articles[:i], articles[i+1:]...)
			return writeSlot(r.store, slotNews, articles)
		}
	}

	return apperrors.ErrArticleNotFound
}

// SlugExists reports whether a slug is taken by a record other than excludeID
func (r *NewsRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	articles, err := readSlot[models.NewsArticle](r.store, slotNews)
	if err != nil {
		return false, err
	}

	for _, existing := range articles {
		if existing.Slug == slug && existing.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}
