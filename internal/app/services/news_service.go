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
	"github.com/osahenru/uniportal/internal/pkg/slugs"
)

// NewsService defines the interface for news article operations
type NewsService interface {
	Load(ctx context.Context)
	Create(ctx context.Context, req *dto.CreateNewsRequest) (*models.NewsArticle, error)
	Update(ctx context.Context, id string, patch *models.NewsPatch) (*models.NewsArticle, error)
	Delete(ctx context.Context, id string) error
	GetByID(id string) (*models.NewsArticle, error)
	GetBySlug(slug string) (*models.NewsArticle, error)
	Search(query, category, status string, page, size int) *dto.NewsListResponse
}

// newsServiceImpl implements NewsService. It keeps the full collection in
// memory, newest first, and treats the repository as the source of truth:
// writes hit storage first and memory only after they succeed.
type newsServiceImpl struct {
	mu       sync.RWMutex
	articles []*models.NewsArticle
	repo     repositories.NewsRepository
	logger   zerolog.Logger
}

// NewNewsService creates a new NewsService
func NewNewsService(repo repositories.NewsRepository, logger zerolog.Logger) NewsService {
	return &newsServiceImpl{
		articles: []*models.NewsArticle{},
		repo:     repo,
		logger:   logger,
	}
}

// Load fetches the full collection. A failed load logs and leaves the
// store serving an empty collection rather than failing startup.
func (s *newsServiceImpl) Load(ctx context.Context) {
	articles, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load news articles, starting with empty collection")
		articles = []*models.NewsArticle{}
	}

	s.mu.Lock()
	s.articles = articles
	s.mu.Unlock()

	s.logger.Info().Int("count", len(articles)).Msg("News articles loaded")
}

// Create validates the request, persists a new article and prepends it
func (s *newsServiceImpl) Create(ctx context.Context, req *dto.CreateNewsRequest) (*models.NewsArticle, error) {
	if !req.Category.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid news category: %s", req.Category))
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid news status: %s", req.Status))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	article := &models.NewsArticle{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Status:      req.Status,
		Author:      req.Author,
		PublishedAt: req.PublishedAt,
	}
	if req.Image != nil {
		normalized := imageurl.Normalize(*req.Image)
		article.Image = &normalized
	}
	if article.Status == models.NewsStatusPublished && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	slug, err := s.uniqueSlug(ctx, slugs.Slugify(req.Title), "")
	if err != nil {
		return nil, err
	}
	article.Slug = slug

	if err := s.repo.Insert(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create news article: %w", err)
	}

	s.articles = append([]*models.NewsArticle{article}, s.articles...)

	s.logger.Info().Str("articleID", article.ID).Str("slug", article.Slug).Msg("News article created")
	return article, nil
}

// Update applies a partial update to an article. A title change re-derives
// the slug. First publication stamps publishedAt; reverting to draft keeps it.
func (s *newsServiceImpl) Update(ctx context.Context, id string, patch *models.NewsPatch) (*models.NewsArticle, error) {
	if patch.Category != nil && !patch.Category.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid news category: %s", *patch.Category))
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid news status: %s", *patch.Status))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, apperrors.ErrArticleNotFound
	}

	if patch.Image != nil {
		normalized := imageurl.Normalize(*patch.Image)
		patch.Image = &normalized
	}

	updated := *s.articles[idx]
	patch.Apply(&updated)

	if patch.Title != nil {
		slug, err := s.uniqueSlug(ctx, slugs.Slugify(*patch.Title), id)
		if err != nil {
			return nil, err
		}
		updated.Slug = slug
	}
	if patch.Status != nil && *patch.Status == models.NewsStatusPublished && updated.PublishedAt == nil {
		now := time.Now()
		updated.PublishedAt = &now
		// The stamp has to travel with the patch or column-wise drivers
		// would never write it.
		patch.PublishedAt = &now
	}
	updated.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &updated, patch); err != nil {
		return nil, fmt.Errorf("failed to update news article: %w", err)
	}

	s.articles[idx] = &updated
	return &updated, nil
}

// Delete removes an article from storage, then from memory
func (s *newsServiceImpl) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return apperrors.ErrArticleNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete news article: %w", err)
	}

	s.articles = append(s.articles[:idx], s.articles[idx+1:]...)

	s.logger.Info().Str("articleID", id).Msg("News article deleted")
	return nil
}

// GetByID looks an article up in memory
func (s *newsServiceImpl) GetByID(id string) (*models.NewsArticle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.articles[idx], nil
	}
	return nil, apperrors.ErrArticleNotFound
}

// GetBySlug looks an article up in memory by slug
func (s *newsServiceImpl) GetBySlug(slug string) (*models.NewsArticle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, apperrors.ErrArticleNotFound
}

// Search filters the in-memory collection, preserving order. An empty query
// matches everything; category and status are exact-match filters.
func (s *newsServiceImpl) Search(query, category, status string, page, size int) *dto.NewsListResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	matched := []*models.NewsArticle{}
	for _, a := range s.articles {
		if q != "" &&
			!strings.Contains(strings.ToLower(a.Title), q) &&
			!strings.Contains(strings.ToLower(a.Description), q) {
			continue
		}
		if category != "" && string(a.Category) != category {
			continue
		}
		if status != "" && string(a.Status) != status {
			continue
		}
		matched = append(matched, a)
	}

	start, end := helpers.CalculateSliceIndices(page, size, len(matched))
	return &dto.NewsListResponse{
		News:       matched[start:end],
		Pagination: helpers.NewPaginationInfo(int64(len(matched)), page, size),
	}
}

// indexOf returns the position of an article, or -1. Callers hold the lock.
func (s *newsServiceImpl) indexOf(id string) int {
	for i, a := range s.articles {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// uniqueSlug probes the repository for a free slug, appending -1, -2 and so
// on until one is available. excludeID lets an article keep its own slug.
func (s *newsServiceImpl) uniqueSlug(ctx context.Context, base, excludeID string) (string, error) {
	candidate := base
	for suffix := 1; ; suffix++ {
		taken, err := s.repo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to check slug availability: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}
