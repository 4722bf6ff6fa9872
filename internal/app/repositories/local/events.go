package local

import (
	"context"
	"sync"
	"time"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/storage/kv"
)

// EventRepository persists events in a single slot, newest first.
type EventRepository struct {
	store *kv.Store
	mu    sync.Mutex
}

// NewEventRepository creates a new slot-backed EventRepository
func NewEventRepository(store *kv.Store) *EventRepository {
	return &EventRepository{store: store}
}

// LoadAll returns the full collection of events
func (r *EventRepository) LoadAll(ctx context.Context) ([]*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return readSlot[models.Event](r.store, slotEvents)
}

// Insert assigns id and timestamps, prepends the event and rewrites the slot
func (r *EventRepository) Insert(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := readSlot[models.Event](r.store, slotEvents)
	if err != nil {
		return err
	}

	now := time.Now()
	event.ID = newID()
	event.CreatedAt = now
	event.UpdatedAt = now

	events = append([]*models.Event{event}, events...)
	return writeSlot(r.store, slotEvents, events)
}

// Update replaces the stored event and rewrites the slot
func (r *EventRepository) Update(ctx context.Context, event *models.Event, patch *models.EventPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := readSlot[models.Event](r.store, slotEvents)
	if err != nil {
		return err
	}

	for i, existing := range events {
		if existing.ID == event.ID {
			clone := *event
			events[i] = &clone
			return writeSlot(r.store, slotEvents, events)
		}
	}

	return apperrors.ErrEventNotFound
}

// Delete removes an event by id and rewrites the slot
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := readSlot[models.Event](r.store, slotEvents)
	if err != nil {
		return err
	}

	for i, existing := range events {
		if existing.ID == id {
			events = append(events[:i], events[i+1:]...)
			return writeSlot(r.store, slotEvents, events)
		}
	}

	return apperrors.ErrEventNotFound
}
