package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/pkg/dberrors"
	"github.com/osahenru/uniportal/internal/pkg/logger"
)

// NewsRepository handles news article database operations
type NewsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{
		db: db,
		sb: statementBuilder(),
	}
}

const newsColumns = "id, title, description, content, image, category, slug, status, author, created_at, updated_at, published_at"

func scanArticle(row pgx.Row) (*models.NewsArticle, error) {
	article := &models.NewsArticle{}
	err := row.Scan(
		&article.ID, &article.Title, &article.Description, &article.Content,
		&article.Image, &article.Category, &article.Slug, &article.Status,
		&article.Author, &article.CreatedAt, &article.UpdatedAt, &article.PublishedAt,
	)
	if err != nil {
		return nil, err
	}
	return article, nil
}

// LoadAll retrieves all news articles, newest first
func (r *NewsRepository) LoadAll(ctx context.Context) ([]*models.NewsArticle, error) {
	sql, args, err := r.sb.Select(newsColumns).
		From("news_articles").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build news query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying news articles")
		return nil, fmt.Errorf("error querying news articles: %w", err)
	}
	defer rows.Close()

	articles := []*models.NewsArticle{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning news row: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news rows: %w", err)
	}

	return articles, nil
}

// Insert persists a new article. Id and timestamps are assigned by the
// backend and written back into the passed article.
func (r *NewsRepository) Insert(ctx context.Context, article *models.NewsArticle) error {
	sql, args, err := r.sb.Insert("news_articles").
		Columns("title", "description", "content", "image", "category", "slug", "status", "author", "published_at").
		Values(article.Title, article.Description, article.Content, article.Image,
			article.Category, article.Slug, article.Status, article.Author, article.PublishedAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert news query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		logger.Error().Err(err).Msg("Error executing insert news query")
		return fmt.Errorf("error creating news article: %w", err)
	}

	return nil
}

// Update writes the patched columns of an article. Only the fields named by
// the patch (plus slug when the title changed and updated_at) are written.
func (r *NewsRepository) Update(ctx context.Context, article *models.NewsArticle, patch *models.NewsPatch) error {
	set := map[string]interface{}{
		"updated_at": article.UpdatedAt,
	}
	if patch.Title != nil {
		set["title"] = article.Title
		set["slug"] = article.Slug
	}
	if patch.Description != nil {
		set["description"] = article.Description
	}
	if patch.Content != nil {
		set["content"] = article.Content
	}
	if patch.Image != nil {
		set["image"] = article.Image
	}
	if patch.Category != nil {
		set["category"] = article.Category
	}
	if patch.Status != nil {
		set["status"] = article.Status
	}
	if patch.Author != nil {
		set["author"] = article.Author
	}
	if patch.PublishedAt != nil {
		set["published_at"] = article.PublishedAt
	}

	sql, args, err := r.sb.Update("news_articles").
		SetMap(set).
		Where(squirrel.Eq{"id": article.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update news query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("articleID", article.ID).Msg("Error executing update news query")
		return fmt.Errorf("error updating news article: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrArticleNotFound
	}

	return nil
}

// Delete removes an article by id
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("news_articles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete news query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("articleID", id).Msg("Error executing delete news query")
		return fmt.Errorf("error deleting news article: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrArticleNotFound
	}

	return nil
}

// SlugExists reports whether a slug is taken by an article other than excludeID
func (r *NewsRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	conditions := squirrel.And{squirrel.Eq{"slug": slug}}
	if excludeID != "" {
		conditions = append(conditions, squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := r.sb.Select("1").
		From("news_articles").
		Where(conditions).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build slug existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("slug", slug).Msg("Error checking slug existence")
		return false, fmt.Errorf("error checking slug existence: %w", err)
	}

	return exists, nil
}
