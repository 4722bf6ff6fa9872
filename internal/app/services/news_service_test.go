package services_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/app/models/dto"
	"github.com/osahenru/uniportal/internal/app/repositories"
	"github.com/osahenru/uniportal/internal/app/repositories/local"
	"github.com/osahenru/uniportal/internal/app/services"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/storage/kv"
)

func newTestRepos(t *testing.T) *repositories.Repositories {
	t.Helper()

	store, err := kv.Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return local.NewRepositories(store)
}

func newTestNewsService(t *testing.T) services.NewsService {
	t.Helper()

	svc := services.NewNewsService(newTestRepos(t).News, zerolog.Nop())
	svc.Load(context.Background())

	return svc
}

func newsRequest(title string) *dto.CreateNewsRequest {
	return &dto.CreateNewsRequest{
		Title:       title,
		Description: "Short summary",
		Content:     "<p>Body</p>",
		Category:    models.NewsCategoryGeneral,
		Status:      models.NewsStatusDraft,
		Author:      "Admin",
	}
}

func TestNewsCreateGeneratesUniqueSlugs(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, newsRequest("Open House 2024!"))
	require.NoError(t, err)
	require.Equal(t, "open-house-2024", first.Slug)

	second, err := svc.Create(ctx, newsRequest("Open House 2024!"))
	require.NoError(t, err)
	require.Equal(t, "open-house-2024-1", second.Slug)

	third, err := svc.Create(ctx, newsRequest("Open House 2024!"))
	require.NoError(t, err)
	require.Equal(t, "open-house-2024-2", third.Slug)

	found, err := svc.GetBySlug("open-house-2024-1")
	require.NoError(t, err)
	require.Equal(t, second.ID, found.ID)
}

func TestNewsUpdateTitleRegeneratesSlug(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, newsRequest("Original Title"))
	require.NoError(t, err)
	require.Equal(t, "original-title", article.Slug)

	newTitle := "Renamed Article"
	updated, err := svc.Update(ctx, article.ID, &models.NewsPatch{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, "renamed-article", updated.Slug)

	_, err = svc.GetBySlug("original-title")
	require.ErrorIs(t, err, apperrors.ErrArticleNotFound)
}

func TestNewsPublishStampsPublishedAtOnce(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, newsRequest("Draft First"))
	require.NoError(t, err)
	require.Nil(t, article.PublishedAt)

	published := models.NewsStatusPublished
	updated, err := svc.Update(ctx, article.ID, &models.NewsPatch{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)

	firstPublished := *updated.PublishedAt

	// Reverting to draft keeps the original publication timestamp.
	draft := models.NewsStatusDraft
	reverted, err := svc.Update(ctx, article.ID, &models.NewsPatch{Status: &draft})
	require.NoError(t, err)
	require.NotNil(t, reverted.PublishedAt)
	require.Equal(t, firstPublished, *reverted.PublishedAt)

	// Re-publishing does not reset it either.
	again, err := svc.Update(ctx, article.ID, &models.NewsPatch{Status: &published})
	require.NoError(t, err)
	require.Equal(t, firstPublished, *again.PublishedAt)
}

func TestNewsCreatePublishedStampsImmediately(t *testing.T) {
	svc := newTestNewsService(t)

	req := newsRequest("Hot Off The Press")
	req.Status = models.NewsStatusPublished

	article, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, article.PublishedAt)
	require.WithinDuration(t, time.Now(), *article.PublishedAt, 5*time.Second)
}

func TestNewsDeleteRemovesArticle(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, newsRequest("Ephemeral"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, article.ID))

	_, err = svc.GetByID(article.ID)
	require.ErrorIs(t, err, apperrors.ErrArticleNotFound)

	require.ErrorIs(t, svc.Delete(ctx, article.ID), apperrors.ErrArticleNotFound)
}

func TestNewsCreateRejectsUnknownCategory(t *testing.T) {
	svc := newTestNewsService(t)

	req := newsRequest("Bad Category")
	req.Category = models.NewsCategory("sports")

	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestNewsSearch(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	reqA := newsRequest("Annual Science Fair")
	reqA.Category = models.NewsCategoryResearch
	_, err := svc.Create(ctx, reqA)
	require.NoError(t, err)

	reqB := newsRequest("Library Opening Hours")
	reqB.Description = "New SCIENCE wing schedule"
	_, err = svc.Create(ctx, reqB)
	require.NoError(t, err)

	reqC := newsRequest("Sports Day")
	reqC.Status = models.NewsStatusPublished
	_, err = svc.Create(ctx, reqC)
	require.NoError(t, err)

	// Empty query matches everything, newest first.
	page := svc.Search("", "", "", 1, 10)
	require.Len(t, page.News, 3)
	require.Equal(t, "Sports Day", page.News[0].Title)
	require.EqualValues(t, 3, page.Pagination.TotalItems)

	// Case-insensitive substring across title and description.
	page = svc.Search("science", "", "", 1, 10)
	require.Len(t, page.News, 2)

	// Category filter is exact.
	page = svc.Search("", string(models.NewsCategoryResearch), "", 1, 10)
	require.Len(t, page.News, 1)
	require.Equal(t, "Annual Science Fair", page.News[0].Title)

	// Status filter combines with the query.
	page = svc.Search("sports", "", string(models.NewsStatusPublished), 1, 10)
	require.Len(t, page.News, 1)

	// A page past the end is empty but keeps the totals.
	page = svc.Search("", "", "", 5, 10)
	require.Empty(t, page.News)
	require.EqualValues(t, 3, page.Pagination.TotalItems)
}

func TestNewsSearchPagination(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three", "Four", "Five"} {
		_, err := svc.Create(ctx, newsRequest(title))
		require.NoError(t, err)
	}

	page := svc.Search("", "", "", 1, 2)
	require.Len(t, page.News, 2)
	require.Equal(t, "Five", page.News[0].Title)
	require.Equal(t, 3, page.Pagination.TotalPages)

	page = svc.Search("", "", "", 3, 2)
	require.Len(t, page.News, 1)
	require.Equal(t, "One", page.News[0].Title)
}

func TestNewsSurvivesReload(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	svc := services.NewNewsService(repos.News, zerolog.Nop())
	svc.Load(ctx)

	created, err := svc.Create(ctx, newsRequest("Durable"))
	require.NoError(t, err)

	// A fresh service over the same repository sees the persisted article.
	reloaded := services.NewNewsService(repos.News, zerolog.Nop())
	reloaded.Load(ctx)

	found, err := reloaded.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, "Durable", found.Title)
	require.Equal(t, "durable", found.Slug)
}

// recordingNewsRepo captures what the service hands the storage layer, so
// tests can assert on the repository boundary rather than on memory.
type recordingNewsRepo struct {
	lastArticle *models.NewsArticle
	lastPatch   *models.NewsPatch
}

func (r *recordingNewsRepo) LoadAll(ctx context.Context) ([]*models.NewsArticle, error) {
	return []*models.NewsArticle{}, nil
}

func (r *recordingNewsRepo) Insert(ctx context.Context, article *models.NewsArticle) error {
	now := time.Now()
	article.ID = "article-1"
	article.CreatedAt = now
	article.UpdatedAt = now
	return nil
}

func (r *recordingNewsRepo) Update(ctx context.Context, article *models.NewsArticle, patch *models.NewsPatch) error {
	r.lastArticle = article
	r.lastPatch = patch
	return nil
}

func (r *recordingNewsRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *recordingNewsRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	return false, nil
}

func TestNewsPublishStampReachesStorage(t *testing.T) {
	repo := &recordingNewsRepo{}
	svc := services.NewNewsService(repo, zerolog.Nop())
	svc.Load(context.Background())
	ctx := context.Background()

	article, err := svc.Create(ctx, newsRequest("Column Writes"))
	require.NoError(t, err)

	published := models.NewsStatusPublished
	updated, err := svc.Update(ctx, article.ID, &models.NewsPatch{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)

	// Column-wise drivers only write fields the patch names, so the first
	// publication stamp must be carried by the patch itself.
	require.NotNil(t, repo.lastPatch.PublishedAt)
	require.Equal(t, *updated.PublishedAt, *repo.lastPatch.PublishedAt)
	require.NotNil(t, repo.lastArticle.PublishedAt)
	require.Equal(t, *updated.PublishedAt, *repo.lastArticle.PublishedAt)

	// A later status flip must not re-stamp through the patch.
	draft := models.NewsStatusDraft
	_, err = svc.Update(ctx, article.ID, &models.NewsPatch{Status: &draft})
	require.NoError(t, err)
	require.Nil(t, repo.lastPatch.PublishedAt)

	_, err = svc.Update(ctx, article.ID, &models.NewsPatch{Status: &published})
	require.NoError(t, err)
	require.Nil(t, repo.lastPatch.PublishedAt, "publishedAt is stamped once, later publishes leave it alone")
}
