// Package postgres implements the repository contracts against a remote
// PostgreSQL backend. Ids and timestamps are server-assigned.
package postgres

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osahenru/uniportal/internal/app/repositories"
)

// NewRepositories wires every postgres-backed repository onto one pool.
func NewRepositories(pool *pgxpool.Pool) *repositories.Repositories {
	return &repositories.Repositories{
		News:         NewNewsRepository(pool),
		Events:       NewEventRepository(pool),
		Gallery:      NewGalleryRepository(pool),
		Media:        NewMediaRepository(pool),
		Organization: NewOrganizationRepository(pool),
		Users:        NewUserRepository(pool),
		Tokens:       NewTokenRepository(pool),
	}
}

// statementBuilder returns a squirrel builder with postgres placeholders.
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
