package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/app/models/dto"
	"github.com/osahenru/uniportal/internal/app/services"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
)

func newTestEventService(t *testing.T) services.EventService {
	t.Helper()

	svc := services.NewEventService(newTestRepos(t).Events, zerolog.Nop())
	svc.Load(context.Background())

	return svc
}

func eventRequest(title string) *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Title:       title,
		Description: "An event",
		Date:        time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC),
		Time:        "10:00 AM - 2:00 PM",
		Location:    "Main Hall",
		Eligibility: models.EligibilityAllStudents,
		Status:      models.EventStatusUpcoming,
	}
}

func TestEventCreateAndGet(t *testing.T) {
	svc := newTestEventService(t)
	ctx := context.Background()

	capacity := 150
	req := eventRequest("Career Fair")
	req.RegistrationRequired = true
	req.Capacity = &capacity

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.True(t, created.RegistrationRequired)
	require.NotNil(t, created.Capacity)
	require.Equal(t, 150, *created.Capacity)
	require.False(t, created.CreatedAt.IsZero())

	found, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, "Career Fair", found.Title)
}

func TestEventUpdateTouchesUpdatedAt(t *testing.T) {
	svc := newTestEventService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, eventRequest("Career Fair"))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	cancelled := models.EventStatusCancelled
	updated, err := svc.Update(ctx, created.ID, &models.EventPatch{Status: &cancelled})
	require.NoError(t, err)
	require.Equal(t, models.EventStatusCancelled, updated.Status)
	require.True(t, updated.UpdatedAt.After(updated.CreatedAt),
		"updatedAt %s should be after createdAt %s", updated.UpdatedAt, updated.CreatedAt)

	// Untouched fields survive the patch.
	require.Equal(t, "Career Fair", updated.Title)
	require.Equal(t, "Main Hall", updated.Location)
}

func TestEventUpdateRejectsUnknownStatus(t *testing.T) {
	svc := newTestEventService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, eventRequest("Career Fair"))
	require.NoError(t, err)

	bad := models.EventStatus("postponed")
	_, err = svc.Update(ctx, created.ID, &models.EventPatch{Status: &bad})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestEventDelete(t *testing.T) {
	svc := newTestEventService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, eventRequest("One Off"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(created.ID)
	require.ErrorIs(t, err, apperrors.ErrEventNotFound)

	_, err = svc.Update(ctx, created.ID, &models.EventPatch{})
	require.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestEventSearch(t *testing.T) {
	svc := newTestEventService(t)
	ctx := context.Background()

	reqA := eventRequest("Science Fair")
	_, err := svc.Create(ctx, reqA)
	require.NoError(t, err)

	reqB := eventRequest("Alumni Dinner")
	reqB.Location = "Fairmont Hotel"
	reqB.Eligibility = models.EligibilityPublic
	_, err = svc.Create(ctx, reqB)
	require.NoError(t, err)

	reqC := eventRequest("Orientation")
	reqC.Status = models.EventStatusCompleted
	_, err = svc.Create(ctx, reqC)
	require.NoError(t, err)

	// The query also matches the location field.
	page := svc.Search("fair", "", "", 1, 10)
	require.Len(t, page.Events, 2)

	page = svc.Search("", string(models.EligibilityPublic), "", 1, 10)
	require.Len(t, page.Events, 1)
	require.Equal(t, "Alumni Dinner", page.Events[0].Title)

	page = svc.Search("", "", string(models.EventStatusCompleted), 1, 10)
	require.Len(t, page.Events, 1)
	require.Equal(t, "Orientation", page.Events[0].Title)

	page = svc.Search("", "", "", 1, 10)
	require.Len(t, page.Events, 3)
	require.Equal(t, "Orientation", page.Events[0].Title, "newest first")
}

func TestEventRejectsNonPositiveCapacity(t *testing.T) {
	svc := newTestEventService(t)
	ctx := context.Background()

	zero := 0
	req := eventRequest("Packed Hall")
	req.Capacity = &zero
	_, err := svc.Create(ctx, req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	negative := -5
	req.Capacity = &negative
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	created, err := svc.Create(ctx, eventRequest("Packed Hall"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, &models.EventPatch{Capacity: &negative})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// A valid capacity still goes through.
	hundred := 100
	updated, err := svc.Update(ctx, created.ID, &models.EventPatch{Capacity: &hundred})
	require.NoError(t, err)
	require.Equal(t, 100, *updated.Capacity)
}
