package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/pkg/logger"
)

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: statementBuilder(),
	}
}

const eventColumns = "id, title, description, image, date, time, location, eligibility, registration_required, capacity, status, created_at, updated_at"

func scanEvent(row pgx.Row) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(
		&event.ID, &event.Title, &event.Description, &event.Image, &event.Date,
		&event.Time, &event.Location, &event.Eligibility, &event.RegistrationRequired,
		&event.Capacity, &event.Status, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// LoadAll retrieves all events, newest first
func (r *EventRepository) LoadAll(ctx context.Context) ([]*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns).
		From("events").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying events")
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// Insert persists a new event, writing back the server-assigned id and timestamps
func (r *EventRepository) Insert(ctx context.Context, event *models.Event) error {
	sql, args, err := r.sb.Insert("events").
		Columns("title", "description", "image", "date", "time", "location",
			"eligibility", "registration_required", "capacity", "status").
		Values(event.Title, event.Description, event.Image, event.Date, event.Time,
			event.Location, event.Eligibility, event.RegistrationRequired,
			event.Capacity, event.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert event query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing insert event query")
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// Update writes the patched columns of an event
func (r *EventRepository) Update(ctx context.Context, event *models.Event, patch *models.EventPatch) error {
	set := map[string]interface{}{
		"updated_at": event.UpdatedAt,
	}
	if patch.Title != nil {
		set["title"] = event.Title
	}
	if patch.Description != nil {
		set["description"] = event.Description
	}
	if patch.Image != nil {
		set["image"] = event.Image
	}
	if patch.Date != nil {
		set["date"] = event.Date
	}
	if patch.Time != nil {
		set["time"] = event.Time
	}
	if patch.Location != nil {
		set["location"] = event.Location
	}
	if patch.Eligibility != nil {
		set["eligibility"] = event.Eligibility
	}
	if patch.RegistrationRequired != nil {
		set["registration_required"] = event.RegistrationRequired
	}
	if patch.Capacity != nil {
		set["capacity"] = event.Capacity
	}
	if patch.Status != nil {
		set["status"] = event.Status
	}

	sql, args, err := r.sb.Update("events").
		SetMap(set).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("eventID", event.ID).Msg("Error executing update event query")
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event by id
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("eventID", id).Msg("Error executing delete event query")
		return fmt.Errorf("error deleting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
