package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/app/models/dto"
	"github.com/osahenru/uniportal/internal/app/repositories"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/pkg/helpers"
	"github.com/osahenru/uniportal/internal/pkg/imageurl"
)

// GalleryService defines the interface for gallery operations
type GalleryService interface {
	Load(ctx context.Context)
	Create(ctx context.Context, req *dto.CreateGalleryItemRequest) (*models.GalleryItem, error)
	Update(ctx context.Context, id string, patch *models.GalleryPatch) (*models.GalleryItem, error)
	Delete(ctx context.Context, id string) error
	GetByID(id string) (*models.GalleryItem, error)
	Search(query, category string, featured *bool, page, size int) *dto.GalleryListResponse
}

// galleryServiceImpl implements GalleryService with an in-memory collection
// backed by a repository. Writes persist first, memory mutates second.
type galleryServiceImpl struct {
	mu     sync.RWMutex
	items  []*models.GalleryItem
	repo   repositories.GalleryRepository
	logger zerolog.Logger
}

// NewGalleryService creates a new GalleryService
func NewGalleryService(repo repositories.GalleryRepository, logger zerolog.Logger) GalleryService {
	return &galleryServiceImpl{
		items:  []*models.GalleryItem{},
		repo:   repo,
		logger: logger,
	}
}

// Load fetches the full collection, falling back to empty on failure
func (s *galleryServiceImpl) Load(ctx context.Context) {
	items, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load gallery items, starting with empty collection")
		items = []*models.GalleryItem{}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.logger.Info().Int("count", len(items)).Msg("Gallery items loaded")
}

// Create validates the request, persists a new item and prepends it.
// Tags are de-duplicated case-sensitively, keeping first-seen order.
func (s *galleryServiceImpl) Create(ctx context.Context, req *dto.CreateGalleryItemRequest) (*models.GalleryItem, error) {
	if !req.Category.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid gallery category: %s", req.Category))
	}
	if !req.Size.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid gallery size: %s", req.Size))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := &models.GalleryItem{
		Title:            req.Title,
		Description:      req.Description,
		MainImage:        imageurl.Normalize(req.MainImage),
		AdditionalImages: imageurl.NormalizeAll(req.AdditionalImages),
		Tags:             models.DedupeTags(req.Tags),
		Category:         req.Category,
		Size:             req.Size,
		Date:             req.Date,
		Featured:         req.Featured,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create gallery item: %w", err)
	}

	s.items = append([]*models.GalleryItem{item}, s.items...)

	s.logger.Info().Str("itemID", item.ID).Msg("Gallery item created")
	return item, nil
}

// Update applies a partial update to an item and refreshes updatedAt
func (s *galleryServiceImpl) Update(ctx context.Context, id string, patch *models.GalleryPatch) (*models.GalleryItem, error) {
	if patch.Category != nil && !patch.Category.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid gallery category: %s", *patch.Category))
	}
	if patch.Size != nil && !patch.Size.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid gallery size: %s", *patch.Size))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, apperrors.ErrGalleryItemNotFound
	}

	if patch.MainImage != nil {
		normalized := imageurl.Normalize(*patch.MainImage)
		patch.MainImage = &normalized
	}
	if patch.AdditionalImages != nil {
		patch.AdditionalImages = imageurl.NormalizeAll(patch.AdditionalImages)
	}

	updated := *s.items[idx]
	patch.Apply(&updated)
	updated.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &updated, patch); err != nil {
		return nil, fmt.Errorf("failed to update gallery item: %w", err)
	}

	s.items[idx] = &updated
	return &updated, nil
}

// Delete removes an item from storage, then from memory
func (s *galleryServiceImpl) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return apperrors.ErrGalleryItemNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)

	s.logger.Info().Str("itemID", id).Msg("Gallery item deleted")
	return nil
}

// GetByID looks an item up in memory
func (s *galleryServiceImpl) GetByID(id string) (*models.GalleryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.items[idx], nil
	}
	return nil, apperrors.ErrGalleryItemNotFound
}

// Search filters the in-memory collection, preserving order. The query
// matches title, description and tags; category and featured are
// exact-match filters.
func (s *galleryServiceImpl) Search(query, category string, featured *bool, page, size int) *dto.GalleryListResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	matched := []*models.GalleryItem{}
	for _, item := range s.items {
		if q != "" && !galleryMatches(item, q) {
			continue
		}
		if category != "" && string(item.Category) != category {
			continue
		}
		if featured != nil && item.Featured != *featured {
			continue
		}
		matched = append(matched, item)
	}

	start, end := helpers.CalculateSliceIndices(page, size, len(matched))
	return &dto.GalleryListResponse{
		Items:      matched[start:end],
		Pagination: helpers.NewPaginationInfo(int64(len(matched)), page, size),
	}
}

func galleryMatches(item *models.GalleryItem, q string) bool {
	if strings.Contains(strings.ToLower(item.Title), q) ||
		strings.Contains(strings.ToLower(item.Description), q) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// indexOf returns the position of an item, or -1. Callers hold the lock.
func (s *galleryServiceImpl) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
