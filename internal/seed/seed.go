// Package seed creates the default data a fresh installation needs.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/app/repositories"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/pkg/auth"
)

// CreateDefaultAdmin ensures the configured admin account exists. It works
// against the repository contract, so both storage drivers are covered.
func CreateDefaultAdmin(ctx context.Context, users repositories.UserRepository, email, password, displayName string, lgr zerolog.Logger) error {
	if email == "" || password == "" {
		lgr.Warn().Msg("Admin credentials not configured, skipping default admin creation")
		return nil
	}

	_, err := users.GetByEmail(ctx, email)
	if err == nil {
		lgr.Debug().Str("email", email).Msg("Default admin already exists")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:       email,
		Password:    hashed,
		DisplayName: displayName,
	}
	if admin.DisplayName == "" {
		admin.DisplayName = "Administrator"
	}

	if err := users.Insert(ctx, admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	lgr.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
