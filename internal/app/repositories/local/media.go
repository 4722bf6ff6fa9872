package local

import (
	"context"
	"sync"
	"time"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/storage/kv"
)

// MediaRepository persists media file records in a single slot, newest first.
type MediaRepository struct {
	store *kv.Store
	mu    sync.Mutex
}

// NewMediaRepository creates a new slot-backed MediaRepository
func NewMediaRepository(store *kv.Store) *MediaRepository {
	return &MediaRepository{store: store}
}

// LoadAll returns the full collection of media records
func (r *MediaRepository) LoadAll(ctx context.Context) ([]*models.MediaFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return readSlot[models.MediaFile](r.store, slotMedia)
}

// Insert assigns id and timestamp, prepends the record and rewrites the slot
func (r *MediaRepository) Insert(ctx context.Context, file *models.MediaFile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	files, err := readSlot[models.MediaFile](r.store, slotMedia)
	if err != nil {
		return err
	}

	file.ID = newID()
	file.CreatedAt = time.Now()

	files = append([]*models.MediaFile{file}, files...)
	return writeSlot(r.store, slotMedia, files)
}

// Delete removes a record by id and rewrites the slot
func (r *MediaRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	files, err := readSlot[models.MediaFile](r.store, slotMedia)
	if err != nil {
		return err
	}

	for i, existing := range files {
		if existing.ID == id {
			files = append(files[:i], files[i+1:]...)
			return writeSlot(r.store, slotMedia, files)
		}
	}

	return apperrors.ErrMediaFileNotFound
}
