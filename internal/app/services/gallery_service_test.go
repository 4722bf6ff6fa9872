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

func newTestGalleryService(t *testing.T) services.GalleryService {
	t.Helper()

	svc := services.NewGalleryService(newTestRepos(t).Gallery, zerolog.Nop())
	svc.Load(context.Background())

	return svc
}

func galleryRequest(title string) *dto.CreateGalleryItemRequest {
	return &dto.CreateGalleryItemRequest{
		Title:       title,
		Description: "Photos",
		MainImage:   "https://cdn.example.edu/img/main.jpg",
		Category:    models.GalleryCategoryEvents,
		Size:        models.GallerySizeMedium,
		Date:        time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
	}
}

func TestGalleryCreateDedupesTags(t *testing.T) {
	svc := newTestGalleryService(t)

	req := galleryRequest("Spring Festival")
	req.Tags = []string{"festival", "campus", "festival", "Festival", "campus"}

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	// Duplicates collapse case-sensitively, keeping first-seen order.
	require.Equal(t, []string{"festival", "campus", "Festival"}, created.Tags)
}

func TestGalleryUpdateReplacesTagList(t *testing.T) {
	svc := newTestGalleryService(t)
	ctx := context.Background()

	req := galleryRequest("Graduation 2026")
	req.Tags = []string{"graduation", "ceremony"}

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &models.GalleryPatch{
		Tags: []string{"gowns", "gowns", "caps"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"gowns", "caps"}, updated.Tags)

	// A patch without tags leaves the list untouched.
	newTitle := "Graduation Ceremony 2026"
	updated, err = svc.Update(ctx, created.ID, &models.GalleryPatch{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, []string{"gowns", "caps"}, updated.Tags)
}

func TestGallerySearchMatchesTags(t *testing.T) {
	svc := newTestGalleryService(t)
	ctx := context.Background()

	reqA := galleryRequest("Spring Gathering")
	reqA.Tags = []string{"festival", "music"}
	_, err := svc.Create(ctx, reqA)
	require.NoError(t, err)

	reqB := galleryRequest("Festival of Lights")
	_, err = svc.Create(ctx, reqB)
	require.NoError(t, err)

	reqC := galleryRequest("Lab Tour")
	reqC.Category = models.GalleryCategoryAcademic
	_, err = svc.Create(ctx, reqC)
	require.NoError(t, err)

	// Matches title on one item and a tag on the other.
	page := svc.Search("festival", "", nil, 1, 10)
	require.Len(t, page.Items, 2)

	page = svc.Search("", string(models.GalleryCategoryAcademic), nil, 1, 10)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Lab Tour", page.Items[0].Title)
}

func TestGallerySearchFeaturedFilter(t *testing.T) {
	svc := newTestGalleryService(t)
	ctx := context.Background()

	reqA := galleryRequest("Homecoming")
	reqA.Featured = true
	_, err := svc.Create(ctx, reqA)
	require.NoError(t, err)

	_, err = svc.Create(ctx, galleryRequest("Open Day"))
	require.NoError(t, err)

	featured := true
	page := svc.Search("", "", &featured, 1, 10)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Homecoming", page.Items[0].Title)

	notFeatured := false
	page = svc.Search("", "", &notFeatured, 1, 10)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Open Day", page.Items[0].Title)

	// Nil means no featured filter at all.
	page = svc.Search("", "", nil, 1, 10)
	require.Len(t, page.Items, 2)
}

func TestGalleryDelete(t *testing.T) {
	svc := newTestGalleryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, galleryRequest("Short Lived"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(created.ID)
	require.ErrorIs(t, err, apperrors.ErrGalleryItemNotFound)
}
