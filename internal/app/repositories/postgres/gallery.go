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

// GalleryRepository handles gallery item database operations
type GalleryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{
		db: db,
		sb: statementBuilder(),
	}
}

const galleryColumns = "id, title, description, main_image, additional_images, tags, category, size, date, featured, created_at, updated_at"

func scanGalleryItem(row pgx.Row) (*models.GalleryItem, error) {
	item := &models.GalleryItem{}
	err := row.Scan(
		&item.ID, &item.Title, &item.Description, &item.MainImage,
		&item.AdditionalImages, &item.Tags, &item.Category, &item.Size,
		&item.Date, &item.Featured, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// LoadAll retrieves all gallery items, newest first
func (r *GalleryRepository) LoadAll(ctx context.Context) ([]*models.GalleryItem, error) {
	sql, args, err := r.sb.Select(galleryColumns).
		From("gallery_items").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build gallery query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying gallery items")
		return nil, fmt.Errorf("error querying gallery items: %w", err)
	}
	defer rows.Close()

	items := []*models.GalleryItem{}
	for rows.Next() {
		item, err := scanGalleryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning gallery row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery rows: %w", err)
	}

	return items, nil
}

// Insert persists a new gallery item, writing back id and timestamps
func (r *GalleryRepository) Insert(ctx context.Context, item *models.GalleryItem) error {
	sql, args, err := r.sb.Insert("gallery_items").
		Columns("title", "description", "main_image", "additional_images", "tags",
			"category", "size", "date", "featured").
		Values(item.Title, item.Description, item.MainImage, item.AdditionalImages,
			item.Tags, item.Category, item.Size, item.Date, item.Featured).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert gallery query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing insert gallery query")
		return fmt.Errorf("error creating gallery item: %w", err)
	}

	return nil
}

// Update writes the patched columns of a gallery item
func (r *GalleryRepository) Update(ctx context.Context, item *models.GalleryItem, patch *models.GalleryPatch) error {
	set := map[string]interface{}{
		"updated_at": item.UpdatedAt,
	}
	if patch.Title != nil {
		set["title"] = item.Title
	}
	if patch.Description != nil {
		set["description"] = item.Description
	}
	if patch.MainImage != nil {
		set["main_image"] = item.MainImage
	}
	if patch.AdditionalImages != nil {
		set["additional_images"] = item.AdditionalImages
	}
	if patch.Tags != nil {
		set["tags"] = item.Tags
	}
	if patch.Category != nil {
		set["category"] = item.Category
	}
	if patch.Size != nil {
		set["size"] = item.Size
	}
	if patch.Date != nil {
		set["date"] = item.Date
	}
	if patch.Featured != nil {
		set["featured"] = item.Featured
	}

	sql, args, err := r.sb.Update("gallery_items").
		SetMap(set).
		Where(squirrel.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update gallery query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("itemID", item.ID).Msg("Error executing update gallery query")
		return fmt.Errorf("error updating gallery item: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGalleryItemNotFound
	}

	return nil
}

// Delete removes a gallery item by id
func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("gallery_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete gallery query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("itemID", id).Msg("Error executing delete gallery query")
		return fmt.Errorf("error deleting gallery item: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGalleryItemNotFound
	}

	return nil
}
