package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osahenru/uniportal/internal/pkg/auth"
)

func newTestJWTService(accessExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "uniportal-test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair("user-1", "admin@example.edu")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	require.Equal(t, int((15 * time.Minute).Seconds()), expiresIn)
	require.Equal(t, int((24 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := svc.ValidateAndExtractClaims(access)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "admin@example.edu", claims.Email)
	require.Equal(t, "uniportal-test", claims.Issuer)
}

func TestRefreshTokensAreOpaqueAndUnique(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)

	_, first, _, _, err := svc.GenerateTokenPair("user-1", "admin@example.edu")
	require.NoError(t, err)
	_, second, _, _, err := svc.GenerateTokenPair("user-1", "admin@example.edu")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// The refresh token is not a JWT and never validates as one.
	_, err = svc.ValidateAndExtractClaims(first)
	require.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := newTestJWTService(15 * time.Minute)
	access, _, _, _, err := issuer.GenerateTokenPair("user-1", "admin@example.edu")
	require.NoError(t, err)

	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "uniportal-test",
	})

	_, err = other.ValidateAndExtractClaims(access)
	require.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	access, _, _, _, err := svc.GenerateTokenPair("user-1", "admin@example.edu")
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(access)
	require.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestValidateRejectsEmptyToken(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)

	_, err := svc.ValidateAndExtractClaims("")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := auth.ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	require.Equal(t, "abc123", token)

	// A bare token is accepted as-is.
	token, err = auth.ExtractBearerToken("abc123")
	require.NoError(t, err)
	require.Equal(t, "abc123", token)

	_, err = auth.ExtractBearerToken("")
	require.ErrorIs(t, err, auth.ErrInvalidFormat)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", hash)

	require.NoError(t, auth.CheckPassword(hash, "correct horse"))
	require.Error(t, auth.CheckPassword(hash, "wrong"))
}
