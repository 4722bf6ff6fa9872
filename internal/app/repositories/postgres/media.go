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

// MediaRepository handles media file database operations
type MediaRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMediaRepository creates a new MediaRepository
func NewMediaRepository(db *pgxpool.Pool) *MediaRepository {
	return &MediaRepository{
		db: db,
		sb: statementBuilder(),
	}
}

const mediaColumns = "id, filename, original_name, url, type, size, created_at"

func scanMediaFile(row pgx.Row) (*models.MediaFile, error) {
	f := &models.MediaFile{}
	err := row.Scan(
		&f.ID, &f.Filename, &f.OriginalName, &f.URL,
		&f.Type, &f.Size, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// LoadAll retrieves all media files, newest first
func (r *MediaRepository) LoadAll(ctx context.Context) ([]*models.MediaFile, error) {
	sql, args, err := r.sb.Select(mediaColumns).
		From("media_files").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build media query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying media files")
		return nil, fmt.Errorf("error querying media files: %w", err)
	}
	defer rows.Close()

	files := []*models.MediaFile{}
	for rows.Next() {
		f, err := scanMediaFile(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning media row: %w", err)
		}
		files = append(files, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating media rows: %w", err)
	}

	return files, nil
}

// Insert persists a new media file record, writing back id and timestamp
func (r *MediaRepository) Insert(ctx context.Context, f *models.MediaFile) error {
	sql, args, err := r.sb.Insert("media_files").
		Columns("filename", "original_name", "url", "type", "size").
		Values(f.Filename, f.OriginalName, f.URL, f.Type, f.Size).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert media query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing insert media query")
		return fmt.Errorf("error creating media file: %w", err)
	}

	return nil
}

// Delete removes a media file record by id
func (r *MediaRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("media_files").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete media query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("fileID", id).Msg("Error executing delete media query")
		return fmt.Errorf("error deleting media file: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMediaFileNotFound
	}

	return nil
}
