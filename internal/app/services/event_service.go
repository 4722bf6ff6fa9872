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

// EventService defines the interface for event operations
type EventService interface {
	Load(ctx context.Context)
	Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error)
	Update(ctx context.Context, id string, patch *models.EventPatch) (*models.Event, error)
	Delete(ctx context.Context, id string) error
	GetByID(id string) (*models.Event, error)
	Search(query, eligibility, status string, page, size int) *dto.EventListResponse
}

// eventServiceImpl implements EventService with an in-memory collection
// backed by a repository. Writes persist first, memory mutates second.
type eventServiceImpl struct {
	mu     sync.RWMutex
	events []*models.Event
	repo   repositories.EventRepository
	logger zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(repo repositories.EventRepository, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		events: []*models.Event{},
		repo:   repo,
		logger: logger,
	}
}

// Load fetches the full collection, falling back to empty on failure
func (s *eventServiceImpl) Load(ctx context.Context) {
	events, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load events, starting with empty collection")
		events = []*models.Event{}
	}

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()

	s.logger.Info().Int("count", len(events)).Msg("Events loaded")
}

// Create validates the request, persists a new event and prepends it
func (s *eventServiceImpl) Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	if !req.Eligibility.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid event eligibility: %s", req.Eligibility))
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid event status: %s", req.Status))
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("event capacity must be positive, got %d", *req.Capacity))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := &models.Event{
		Title:                req.Title,
		Description:          req.Description,
		Date:                 req.Date,
		Time:                 req.Time,
		Location:             req.Location,
		Eligibility:          req.Eligibility,
		RegistrationRequired: req.RegistrationRequired,
		Capacity:             req.Capacity,
		Status:               req.Status,
	}
	if req.Image != nil {
		normalized := imageurl.Normalize(*req.Image)
		event.Image = &normalized
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.events = append([]*models.Event{event}, s.events...)

	s.logger.Info().Str("eventID", event.ID).Msg("Event created")
	return event, nil
}

// Update applies a partial update to an event and refreshes updatedAt
func (s *eventServiceImpl) Update(ctx context.Context, id string, patch *models.EventPatch) (*models.Event, error) {
	if patch.Eligibility != nil && !patch.Eligibility.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid event eligibility: %s", *patch.Eligibility))
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid event status: %s", *patch.Status))
	}
	if patch.Capacity != nil && *patch.Capacity <= 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("event capacity must be positive, got %d", *patch.Capacity))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, apperrors.ErrEventNotFound
	}

	if patch.Image != nil {
		normalized := imageurl.Normalize(*patch.Image)
		patch.Image = &normalized
	}

	updated := *s.events[idx]
	patch.Apply(&updated)
	updated.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &updated, patch); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.events[idx] = &updated
	return &updated, nil
}

// Delete removes an event from storage, then from memory
func (s *eventServiceImpl) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return apperrors.ErrEventNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.events = append(s.events[:idx], s.events[idx+1:]...)

	s.logger.Info().Str("eventID", id).Msg("Event deleted")
	return nil
}

// GetByID looks an event up in memory
func (s *eventServiceImpl) GetByID(id string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.events[idx], nil
	}
	return nil, apperrors.ErrEventNotFound
}

// Search filters the in-memory collection, preserving order. The query
// matches title, description and location; eligibility and status are
// exact-match filters.
func (s *eventServiceImpl) Search(query, eligibility, status string, page, size int) *dto.EventListResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	matched := []*models.Event{}
	for _, e := range s.events {
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) &&
			!strings.Contains(strings.ToLower(e.Location), q) {
			continue
		}
		if eligibility != "" && string(e.Eligibility) != eligibility {
			continue
		}
		if status != "" && string(e.Status) != status {
			continue
		}
		matched = append(matched, e)
	}

	start, end := helpers.CalculateSliceIndices(page, size, len(matched))
	return &dto.EventListResponse{
		Events:     matched[start:end],
		Pagination: helpers.NewPaginationInfo(int64(len(matched)), page, size),
	}
}

// indexOf returns the position of an event, or -1. Callers hold the lock.
func (s *eventServiceImpl) indexOf(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}
