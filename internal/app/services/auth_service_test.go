package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/app/models/dto"
	"github.com/osahenru/uniportal/internal/app/repositories"
	"github.com/osahenru/uniportal/internal/app/services"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (services.AuthService, *repositories.Repositories) {
	t.Helper()

	repos := newTestRepos(t)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "uniportal-test",
	})

	hashed, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	err = repos.Users.Insert(context.Background(), &models.User{
		Email:       "admin@example.edu",
		Password:    hashed,
		DisplayName: "Admin",
	})
	require.NoError(t, err)

	return services.NewAuthService(repos.Users, repos.Tokens, jwtService, zerolog.Nop()), repos
}

func TestAuthLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.edu", Password: "correct horse"})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)
	require.Equal(t, int((15 * time.Minute).Seconds()), tokens.ExpiresIn)

	// Wrong password and unknown email fail identically.
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.edu", Password: "wrong"})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.edu", Password: "correct horse"})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthRefreshRotatesToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.edu", Password: "correct horse"})
	require.NoError(t, err)

	rotated, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	// The presented token was revoked by the rotation.
	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	require.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	// The new token still works.
	_, err = svc.Refresh(ctx, rotated.RefreshToken)
	require.NoError(t, err)
}

func TestAuthRefreshUnknownToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Refresh(context.Background(), "never-issued")
	require.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestAuthLogout(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.edu", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))

	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	require.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	// Logging out an unknown token is a no-op, not an error.
	require.NoError(t, svc.Logout(ctx, "never-issued"))
}

func TestAuthGetSession(t *testing.T) {
	svc, repos := newTestAuthService(t)
	ctx := context.Background()

	user, err := repos.Users.GetByEmail(ctx, "admin@example.edu")
	require.NoError(t, err)

	session, err := svc.GetSession(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, session.UserID)
	require.Equal(t, "admin@example.edu", session.Email)
	require.Equal(t, "Admin", session.DisplayName)
}
