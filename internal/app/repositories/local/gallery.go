package local

import (
	"context"
	"sync"
	"time"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/storage/kv"
)

// GalleryRepository persists gallery items in a single slot, newest first.
type GalleryRepository struct {
	store *kv.Store
	mu    sync.Mutex
}

// NewGalleryRepository creates a new slot-backed GalleryRepository
func NewGalleryRepository(store *kv.Store) *GalleryRepository {
	return &GalleryRepository{store: store}
}

// LoadAll returns the full collection of gallery items
func (r *GalleryRepository) LoadAll(ctx context.Context) ([]*models.GalleryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return readSlot[models.GalleryItem](r.store, slotGallery)
}

// Insert assigns id and timestamps, prepends the item and rewrites the slot
func (r *GalleryRepository) Insert(ctx context.Context, item *models.GalleryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := readSlot[models.GalleryItem](r.store, slotGallery)
	if err != nil {
		return err
	}

	now := time.Now()
	item.ID = newID()
	item.CreatedAt = now
	item.UpdatedAt = now

	items = append([]*models.GalleryItem{item}, items...)
	return writeSlot(r.store, slotGallery, items)
}

// Update replaces the stored item and rewrites the slot
func (r *GalleryRepository) Update(ctx context.Context, item *models.GalleryItem, patch *models.GalleryPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := readSlot[models.GalleryItem](r.store, slotGallery)
	if err != nil {
		return err
	}

	for i, existing := range items {
		if existing.ID == item.ID {
			clone := *item
			items[i] = &clone
			return writeSlot(r.store, slotGallery, items)
		}
	}

	return apperrors.ErrGalleryItemNotFound
}

// Delete removes an item by id and rewrites the slot
func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := readSlot[models.GalleryItem](r.store, slotGallery)
	if err != nil {
		return err
	}

	for i, existing := range items {
		if existing.ID == id {
			items = append(items[:i], items[i+1:]...)
			return writeSlot(r.store, slotGallery, items)
		}
	}

	return apperrors.ErrGalleryItemNotFound
}
