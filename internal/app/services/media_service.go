package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/app/models/dto"
	"github.com/osahenru/uniportal/internal/app/repositories"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/pkg/filestorage"
	"github.com/osahenru/uniportal/internal/pkg/helpers"
)

// MediaService defines the interface for media library operations. Media is
// write-once: files are uploaded and deleted, never updated in place.
type MediaService interface {
	Load(ctx context.Context)
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*models.MediaFile, error)
	Delete(ctx context.Context, id string) error
	GetByID(id string) (*models.MediaFile, error)
	Search(query, mediaType string, page, size int) *dto.MediaListResponse
}

// mediaServiceImpl implements MediaService with an in-memory collection
// backed by a repository and the physical file store.
type mediaServiceImpl struct {
	mu      sync.RWMutex
	files   []*models.MediaFile
	repo    repositories.MediaRepository
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// NewMediaService creates a new MediaService
func NewMediaService(repo repositories.MediaRepository, storage filestorage.FileStorage, logger zerolog.Logger) MediaService {
	return &mediaServiceImpl{
		files:   []*models.MediaFile{},
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

// Load fetches the full collection, falling back to empty on failure
func (s *mediaServiceImpl) Load(ctx context.Context) {
	files, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load media files, starting with empty collection")
		files = []*models.MediaFile{}
	}

	s.mu.Lock()
	s.files = files
	s.mu.Unlock()

	s.logger.Info().Int("count", len(files)).Msg("Media files loaded")
}

// Upload stores the physical file, detects its type from content and
// records the result. The stored filename is a sanitized form of the
// original name.
func (s *mediaServiceImpl) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*models.MediaFile, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	mtype, err := mimetype.DetectReader(src)
	src.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}

	stored, err := s.storage.SaveFile(fileHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	file := &models.MediaFile{
		Filename:     stored.Filename,
		OriginalName: fileHeader.Filename,
		URL:          stored.URL,
		Type:         models.MediaTypeFromMIME(mtype.String()),
		Size:         stored.Size,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Insert(ctx, file); err != nil {
		// Roll the orphaned file back off disk.
		if delErr := s.storage.DeleteFile(stored.Filename); delErr != nil {
			s.logger.Warn().Err(delErr).Str("filename", stored.Filename).Msg("Failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("failed to record media file: %w", err)
	}

	s.files = append([]*models.MediaFile{file}, s.files...)

	s.logger.Info().
		Str("fileID", file.ID).
		Str("filename", file.Filename).
		Str("type", string(file.Type)).
		Str("size", helpers.FormatFileSize(file.Size)).
		Msg("Media file uploaded")
	return file, nil
}

// Delete removes the record from storage, the file from disk, then the
// entry from memory. A failed disk removal is logged, not fatal.
func (s *mediaServiceImpl) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return apperrors.ErrMediaFileNotFound
	}
	file := s.files[idx]

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete media file: %w", err)
	}

	if err := s.storage.DeleteFile(file.Filename); err != nil {
		s.logger.Warn().Err(err).Str("filename", file.Filename).Msg("Failed to remove media file from disk")
	}

	s.files = append(s.files[:idx], s.files[idx+1:]...)

	s.logger.Info().Str("fileID", id).Msg("Media file deleted")
	return nil
}

// GetByID looks a media record up in memory
func (s *mediaServiceImpl) GetByID(id string) (*models.MediaFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.files[idx], nil
	}
	return nil, apperrors.ErrMediaFileNotFound
}

// Search filters the in-memory collection, preserving order. The query
// matches filename and original name; mediaType is an exact-match filter.
func (s *mediaServiceImpl) Search(query, mediaType string, page, size int) *dto.MediaListResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	matched := []*models.MediaFile{}
	for _, f := range s.files {
		if q != "" &&
			!strings.Contains(strings.ToLower(f.Filename), q) &&
			!strings.Contains(strings.ToLower(f.OriginalName), q) {
			continue
		}
		if mediaType != "" && string(f.Type) != mediaType {
			continue
		}
		matched = append(matched, f)
	}

	start, end := helpers.CalculateSliceIndices(page, size, len(matched))
	out := make([]dto.MediaFileResponse, 0, end-start)
	for _, f := range matched[start:end] {
		out = append(out, dto.FromMediaFile(f, helpers.FormatFileSize(f.Size)))
	}

	return &dto.MediaListResponse{
		Files:      out,
		Pagination: helpers.NewPaginationInfo(int64(len(matched)), page, size),
	}
}

// indexOf returns the position of a record, or -1. Callers hold the lock.
func (s *mediaServiceImpl) indexOf(id string) int {
	for i, f := range s.files {
		if f.ID == id {
			return i
		}
	}
	return -1
}
